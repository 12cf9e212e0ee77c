package ast

import (
	"testing"

	"github.com/OlgaLukovenkova/mython/pkg/runtime"
)

func TestAddNumbers(t *testing.T) {
	h, err := NewAdd(NewNumericConst(2), NewNumericConst(3)).Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || mustNumber(t, h) != 5 {
		t.Fatalf("got %v, err %v", h, err)
	}
}

func TestAddStringsConcatenates(t *testing.T) {
	h, err := NewAdd(NewStringConst("foo"), NewStringConst("bar")).Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := runtime.TryAs[runtime.StringValue](h); !ok || v.Val != "foobar" {
		t.Fatalf("got %v", h)
	}
}

func TestAddMixedTypesIsUnavailable(t *testing.T) {
	_, err := NewAdd(NewNumericConst(1), NewStringConst("x")).Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err == nil {
		t.Fatalf("expected Number+String to error")
	}
}

func TestSubMultNumbers(t *testing.T) {
	scope, ctx := runtime.NewScope(), runtime.NewBufferContext()
	sub, err := NewSub(NewNumericConst(5), NewNumericConst(2)).Execute(scope, ctx)
	if err != nil || mustNumber(t, sub) != 3 {
		t.Fatalf("Sub: got %v, err %v", sub, err)
	}
	mult, err := NewMult(NewNumericConst(5), NewNumericConst(2)).Execute(scope, ctx)
	if err != nil || mustNumber(t, mult) != 10 {
		t.Fatalf("Mult: got %v, err %v", mult, err)
	}
}

func TestDivByZeroErrors(t *testing.T) {
	_, err := NewDiv(NewNumericConst(4), NewNumericConst(0)).Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err == nil {
		t.Fatalf("expected division by zero to error")
	}
}

func TestDivExact(t *testing.T) {
	h, err := NewDiv(NewNumericConst(9), NewNumericConst(3)).Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || mustNumber(t, h) != 3 {
		t.Fatalf("got %v, err %v", h, err)
	}
}

func TestAddDispatchesToUserOperator(t *testing.T) {
	add := &runtime.Method{Name: "__add__", FormalParams: []string{"o"}, Body: returnArgZero{}}
	class := runtime.NewClass("Box", []*runtime.Method{add}, nil)
	inst := runtime.NewInstance(class)

	scope := runtime.NewScope()
	scope.Define("b", runtime.Own(inst))
	h, err := NewAdd(NewVariableValue([]string{"b"}), NewNumericConst(1)).Execute(scope, runtime.NewBufferContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mustNumber(t, h) != 1 {
		t.Fatalf("expected __add__ override's argument echoed back, got %v", h)
	}
}

func TestSubMultDivDoNotDispatchToUserOperator(t *testing.T) {
	sub := &runtime.Method{Name: "__sub__", FormalParams: []string{"o"}, Body: returnArgZero{}}
	mul := &runtime.Method{Name: "__mul__", FormalParams: []string{"o"}, Body: returnArgZero{}}
	div := &runtime.Method{Name: "__div__", FormalParams: []string{"o"}, Body: returnArgZero{}}
	class := runtime.NewClass("Box", []*runtime.Method{sub, mul, div}, nil)
	inst := runtime.NewInstance(class)

	scope := runtime.NewScope()
	scope.Define("b", runtime.Own(inst))

	if _, err := NewSub(NewVariableValue([]string{"b"}), NewNumericConst(1)).Execute(scope, runtime.NewBufferContext()); err == nil {
		t.Fatalf("expected Sub with a non-Number left operand to error instead of dispatching to __sub__")
	}
	if _, err := NewMult(NewVariableValue([]string{"b"}), NewNumericConst(1)).Execute(scope, runtime.NewBufferContext()); err == nil {
		t.Fatalf("expected Mult with a non-Number left operand to error instead of dispatching to __mul__")
	}
	if _, err := NewDiv(NewVariableValue([]string{"b"}), NewNumericConst(1)).Execute(scope, runtime.NewBufferContext()); err == nil {
		t.Fatalf("expected Div with a non-Number left operand to error instead of dispatching to __div__")
	}
}

// returnArgZero echoes back the method's first formal parameter, used to
// prove that Add dispatches through __add__ with the right argument bound.
type returnArgZero struct{}

func (returnArgZero) Execute(scope *runtime.Scope, _ runtime.Context) (runtime.ObjectHolder, error) {
	v, _ := scope.Get("o")
	return v, nil
}
