package ast

import (
	"testing"

	"github.com/OlgaLukovenkova/mython/pkg/runtime"
)

func TestLiteralNodesEvaluateToThemselves(t *testing.T) {
	scope := runtime.NewScope()
	ctx := runtime.NewBufferContext()

	n, err := NewNumericConst(42).Execute(scope, ctx)
	if err != nil || mustNumber(t, n) != 42 {
		t.Fatalf("NumericConst: got %v, err %v", n, err)
	}
	s, err := NewStringConst("hi").Execute(scope, ctx)
	if err != nil {
		t.Fatalf("StringConst: unexpected error %v", err)
	}
	if v, ok := runtime.TryAs[runtime.StringValue](s); !ok || v.Val != "hi" {
		t.Fatalf("StringConst: got %v", s)
	}
	b, err := NewBoolConst(true).Execute(scope, ctx)
	if err != nil {
		t.Fatalf("BoolConst: unexpected error %v", err)
	}
	if !runtime.IsTrue(b) {
		t.Fatalf("BoolConst(true) must be truthy")
	}
	none, err := NewNoneValue().Execute(scope, ctx)
	if err != nil || !none.IsEmpty() {
		t.Fatalf("NoneValue must evaluate to the empty holder, got %v, err %v", none, err)
	}
}

func mustNumber(t *testing.T, h runtime.ObjectHolder) int64 {
	t.Helper()
	v, ok := runtime.TryAs[runtime.NumberValue](h)
	if !ok {
		t.Fatalf("expected a NumberValue, got %v", h)
	}
	return v.Val
}
