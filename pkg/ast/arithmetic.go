package ast

import "github.com/OlgaLukovenkova/mython/pkg/runtime"

// binaryOperands evaluates lhs then rhs, left to right (spec §3.4).
func binaryOperands(lhs, rhs runtime.Executable, scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, runtime.ObjectHolder, error) {
	l, err := lhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), runtime.None(), err
	}
	r, err := rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), runtime.None(), err
	}
	return l, r, nil
}

// Add supports Number+Number (sum), String+String (concatenation), and a
// user class's __add__/1 override, in that order (spec §4.4), grounded in
// original_source/statement.cpp's Add::Execute.
type Add struct {
	lhs, rhs runtime.Executable
}

func NewAdd(lhs, rhs runtime.Executable) *Add { return &Add{lhs: lhs, rhs: rhs} }

func (*Add) Kind() Kind { return KindAdd }

func (n *Add) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := binaryOperands(n.lhs, n.rhs, scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if ln, ok := runtime.TryAs[runtime.NumberValue](l); ok {
		if rn, ok := runtime.TryAs[runtime.NumberValue](r); ok {
			return runtime.Own(runtime.NumberValue{Val: ln.Val + rn.Val}), nil
		}
	}
	if ls, ok := runtime.TryAs[runtime.StringValue](l); ok {
		if rs, ok := runtime.TryAs[runtime.StringValue](r); ok {
			return runtime.Own(runtime.StringValue{Val: ls.Val + rs.Val}), nil
		}
	}
	if inst, ok := runtime.TryAs[*runtime.Instance](l); ok && inst.HasMethod("__add__", 1) {
		return inst.Call("__add__", []runtime.ObjectHolder{r}, ctx)
	}
	return runtime.None(), runtime.ErrOperatorUnavailable("Add")
}

// Sub, Mult, and Div are Number-only arithmetic (spec §4.4) — unlike Add,
// they have no user-class operator-overload escape hatch, matching
// original_source/statement.cpp's Sub/Mult/Div::Execute, which throw
// immediately for any non-Number operand.

type Sub struct {
	lhs, rhs runtime.Executable
}

func NewSub(lhs, rhs runtime.Executable) *Sub { return &Sub{lhs: lhs, rhs: rhs} }

func (*Sub) Kind() Kind { return KindSub }

func (n *Sub) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := binaryOperands(n.lhs, n.rhs, scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if ln, ok := runtime.TryAs[runtime.NumberValue](l); ok {
		if rn, ok := runtime.TryAs[runtime.NumberValue](r); ok {
			return runtime.Own(runtime.NumberValue{Val: ln.Val - rn.Val}), nil
		}
	}
	return runtime.None(), runtime.ErrOperatorUnavailable("Sub")
}

type Mult struct {
	lhs, rhs runtime.Executable
}

func NewMult(lhs, rhs runtime.Executable) *Mult { return &Mult{lhs: lhs, rhs: rhs} }

func (*Mult) Kind() Kind { return KindMult }

func (n *Mult) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := binaryOperands(n.lhs, n.rhs, scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if ln, ok := runtime.TryAs[runtime.NumberValue](l); ok {
		if rn, ok := runtime.TryAs[runtime.NumberValue](r); ok {
			return runtime.Own(runtime.NumberValue{Val: ln.Val * rn.Val}), nil
		}
	}
	return runtime.None(), runtime.ErrOperatorUnavailable("Mult")
}

type Div struct {
	lhs, rhs runtime.Executable
}

func NewDiv(lhs, rhs runtime.Executable) *Div { return &Div{lhs: lhs, rhs: rhs} }

func (*Div) Kind() Kind { return KindDiv }

// Execute divides two Numbers, rejecting a zero denominator (spec §4.4).
// original_source/statement.cpp's Div::Execute has its fallback error
// message copy-pasted from Mult ("MULT is unavailable" regardless of which
// operator actually failed); this implementation reports its own operator
// name instead of carrying that bug forward (see DESIGN.md).
func (n *Div) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := binaryOperands(n.lhs, n.rhs, scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if ln, ok := runtime.TryAs[runtime.NumberValue](l); ok {
		if rn, ok := runtime.TryAs[runtime.NumberValue](r); ok {
			if rn.Val == 0 {
				return runtime.None(), runtime.ErrDivisionByZero()
			}
			return runtime.Own(runtime.NumberValue{Val: ln.Val / rn.Val}), nil
		}
	}
	return runtime.None(), runtime.ErrOperatorUnavailable("Div")
}
