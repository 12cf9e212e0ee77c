package ast

import (
	"testing"

	"github.com/OlgaLukovenkova/mython/pkg/runtime"
)

func TestCompoundFallsThroughToEmptyWithoutReturn(t *testing.T) {
	body := NewCompound([]runtime.Executable{
		NewAssignment("x", NewNumericConst(1)),
		NewAssignment("y", NewNumericConst(2)),
	})
	h, err := body.Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || !h.IsEmpty() {
		t.Fatalf("expected empty result, got %v, err %v", h, err)
	}
}

func TestCompoundStopsAtReturn(t *testing.T) {
	body := NewCompound([]runtime.Executable{
		NewAssignment("x", NewNumericConst(1)),
		NewReturn(NewNumericConst(42)),
		explodingAssignment{t},
	})
	h, err := body.Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || mustNumber(t, h) != 42 {
		t.Fatalf("got %v, err %v", h, err)
	}
}

// explodingAssignment fails the test if executed, proving Compound stops at
// the first Return.
type explodingAssignment struct{ t *testing.T }

func (e explodingAssignment) Execute(*runtime.Scope, runtime.Context) (runtime.ObjectHolder, error) {
	e.t.Fatalf("statement after a Return must not execute")
	return runtime.None(), nil
}

func TestCompoundPropagatesReturnThroughNestedIfElse(t *testing.T) {
	inner := NewCompound([]runtime.Executable{NewReturn(NewNumericConst(7))})
	ifElse := NewIfElse(NewBoolConst(true), inner, nil)
	outer := NewCompound([]runtime.Executable{
		ifElse,
		explodingAssignment{t},
	})
	h, err := outer.Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || mustNumber(t, h) != 7 {
		t.Fatalf("got %v, err %v", h, err)
	}
}

func TestCompoundDoesNotEscapeOnEmptyIfElse(t *testing.T) {
	inner := NewCompound([]runtime.Executable{NewAssignment("x", NewNumericConst(1))})
	ifElse := NewIfElse(NewBoolConst(true), inner, nil)
	ran := false
	marker := markerExecutable{fn: func() { ran = true }}
	outer := NewCompound([]runtime.Executable{ifElse, marker})
	if _, err := outer.Execute(runtime.NewScope(), runtime.NewBufferContext()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatalf("statement after a non-escaping IfElse must still run")
	}
}

type markerExecutable struct{ fn func() }

func (m markerExecutable) Execute(*runtime.Scope, runtime.Context) (runtime.ObjectHolder, error) {
	m.fn()
	return runtime.None(), nil
}

func TestIfElseTakesElseBranch(t *testing.T) {
	ifElse := NewIfElse(
		NewBoolConst(false),
		NewCompound([]runtime.Executable{NewReturn(NewNumericConst(1))}),
		NewCompound([]runtime.Executable{NewReturn(NewNumericConst(2))}),
	)
	h, err := ifElse.Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || mustNumber(t, h) != 2 {
		t.Fatalf("got %v, err %v", h, err)
	}
}

func TestIfElseWithoutElseYieldsEmptyOnFalse(t *testing.T) {
	ifElse := NewIfElse(NewBoolConst(false), NewCompound(nil), nil)
	h, err := ifElse.Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || !h.IsEmpty() {
		t.Fatalf("got %v, err %v", h, err)
	}
}

func TestMethodBodySharesCompoundSemantics(t *testing.T) {
	body := NewMethodBody([]runtime.Executable{
		NewAssignment("x", NewNumericConst(1)),
		NewReturn(NewNumericConst(99)),
	})
	h, err := body.Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || mustNumber(t, h) != 99 {
		t.Fatalf("got %v, err %v", h, err)
	}
}

func TestBareReturnYieldsNone(t *testing.T) {
	h, err := NewReturn(nil).Execute(runtime.NewScope(), runtime.NewBufferContext())
	if err != nil || !h.IsEmpty() {
		t.Fatalf("got %v, err %v", h, err)
	}
}
