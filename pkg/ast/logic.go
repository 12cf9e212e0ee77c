package ast

import "github.com/OlgaLukovenkova/mython/pkg/runtime"

// And short-circuits: if the left operand is falsy, the right is never
// evaluated and the result is False; otherwise the result is the right
// operand's truthiness (spec §3.5, §4.5), grounded in original_source
// /statement.cpp's And::Execute.
type And struct {
	lhs, rhs runtime.Executable
}

func NewAnd(lhs, rhs runtime.Executable) *And { return &And{lhs: lhs, rhs: rhs} }

func (*And) Kind() Kind { return KindAnd }

func (n *And) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, err := n.lhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if !runtime.IsTrue(l) {
		return runtime.Own(runtime.BoolValue{Val: false}), nil
	}
	r, err := n.rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.BoolValue{Val: runtime.IsTrue(r)}), nil
}

// Or short-circuits the opposite way: a truthy left operand short-circuits
// to True without evaluating the right operand.
type Or struct {
	lhs, rhs runtime.Executable
}

func NewOr(lhs, rhs runtime.Executable) *Or { return &Or{lhs: lhs, rhs: rhs} }

func (*Or) Kind() Kind { return KindOr }

func (n *Or) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, err := n.lhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if runtime.IsTrue(l) {
		return runtime.Own(runtime.BoolValue{Val: true}), nil
	}
	r, err := n.rhs.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.BoolValue{Val: runtime.IsTrue(r)}), nil
}

// Not evaluates its single operand and yields the negation of its
// truthiness.
type Not struct {
	arg runtime.Executable
}

func NewNot(arg runtime.Executable) *Not { return &Not{arg: arg} }

func (*Not) Kind() Kind { return KindNot }

func (n *Not) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	v, err := n.arg.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.BoolValue{Val: !runtime.IsTrue(v)}), nil
}

// comparator is the shape shared by runtime.Equal, NotEqual, Less, Greater,
// LessOrEqual, and GreaterOrEqual — Comparison is generic over which one it
// applies, matching original_source/statement.cpp's Comparison, which
// stores a std::function<bool(...)>.
type comparator func(lhs, rhs runtime.ObjectHolder, ctx runtime.Context) (bool, error)

// Comparison applies one of the six comparison operators from spec §4.6 to
// its evaluated operands.
type Comparison struct {
	cmp      comparator
	lhs, rhs runtime.Executable
}

func newComparison(cmp comparator, lhs, rhs runtime.Executable) *Comparison {
	return &Comparison{cmp: cmp, lhs: lhs, rhs: rhs}
}

func NewEqualComparison(lhs, rhs runtime.Executable) *Comparison {
	return newComparison(runtime.Equal, lhs, rhs)
}

func NewNotEqualComparison(lhs, rhs runtime.Executable) *Comparison {
	return newComparison(runtime.NotEqual, lhs, rhs)
}

func NewLessComparison(lhs, rhs runtime.Executable) *Comparison {
	return newComparison(runtime.Less, lhs, rhs)
}

func NewGreaterComparison(lhs, rhs runtime.Executable) *Comparison {
	return newComparison(runtime.Greater, lhs, rhs)
}

func NewLessOrEqualComparison(lhs, rhs runtime.Executable) *Comparison {
	return newComparison(runtime.LessOrEqual, lhs, rhs)
}

func NewGreaterOrEqualComparison(lhs, rhs runtime.Executable) *Comparison {
	return newComparison(runtime.GreaterOrEqual, lhs, rhs)
}

func (*Comparison) Kind() Kind { return KindComparison }

func (n *Comparison) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	l, r, err := binaryOperands(n.lhs, n.rhs, scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	result, err := n.cmp(l, r, ctx)
	if err != nil {
		return runtime.None(), err
	}
	return runtime.Own(runtime.BoolValue{Val: result}), nil
}
