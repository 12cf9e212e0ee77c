package runtime

// Equal implements the dispatch order from spec §4.6 / original_source
// /runtime.cpp's Equal(): both-None, then Bool/Number/String same-type
// comparison, then a ClassInstance's __eq__/1 override, else an error.
func Equal(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	if lhs.IsEmpty() && rhs.IsEmpty() {
		return true, nil
	}
	if l, ok := TryAs[BoolValue](lhs); ok {
		if r, ok := TryAs[BoolValue](rhs); ok {
			return l.Val == r.Val, nil
		}
	}
	if l, ok := TryAs[NumberValue](lhs); ok {
		if r, ok := TryAs[NumberValue](rhs); ok {
			return l.Val == r.Val, nil
		}
	}
	if l, ok := TryAs[StringValue](lhs); ok {
		if r, ok := TryAs[StringValue](rhs); ok {
			return l.Val == r.Val, nil
		}
	}
	if inst, ok := TryAs[*Instance](lhs); ok && inst.HasMethod("__eq__", 1) {
		result, err := inst.Call("__eq__", []ObjectHolder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := TryAs[BoolValue](result)
		if !ok {
			return false, ErrWrongType("__eq__ must return a bool")
		}
		return b.Val, nil
	}
	return false, ErrNotComparable()
}

// Less mirrors Equal's dispatch order but uses < and __lt__/1; it has no
// both-None shortcut since None has no ordering (spec §4.6).
func Less(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	if l, ok := TryAs[BoolValue](lhs); ok {
		if r, ok := TryAs[BoolValue](rhs); ok {
			return !l.Val && r.Val, nil
		}
	}
	if l, ok := TryAs[NumberValue](lhs); ok {
		if r, ok := TryAs[NumberValue](rhs); ok {
			return l.Val < r.Val, nil
		}
	}
	if l, ok := TryAs[StringValue](lhs); ok {
		if r, ok := TryAs[StringValue](rhs); ok {
			return l.Val < r.Val, nil
		}
	}
	if inst, ok := TryAs[*Instance](lhs); ok && inst.HasMethod("__lt__", 1) {
		result, err := inst.Call("__lt__", []ObjectHolder{rhs}, ctx)
		if err != nil {
			return false, err
		}
		b, ok := TryAs[BoolValue](result)
		if !ok {
			return false, ErrWrongType("__lt__ must return a bool")
		}
		return b.Val, nil
	}
	return false, ErrNotComparable()
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are derived from Equal
// and Less exactly as spec §4.6 defines them.

func NotEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	if less {
		return false, nil
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func LessOrEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}
	return Equal(lhs, rhs, ctx)
}

func GreaterOrEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	less, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !less, nil
}
