package ast

import "github.com/OlgaLukovenkova/mython/pkg/runtime"

// Compound runs a sequence of statements in order and implements the
// "non-empty-result escapes" control-flow rule from spec §3.4/§4.3:
// a *Return always stops the sequence and propagates its value; a nested
// *IfElse or *Compound stops the sequence only if it produced a non-empty
// result (i.e. it itself contained a Return that fired). Every other
// statement's result is discarded. This is a structural type check on the
// child node, not a sentinel error value, matching the "no raise-as-control-
// flow" design note in spec §9 — unlike the teacher's own
// break/continue/raise handling, which threads a dedicated signal struct
// through every Execute call.
type Compound struct {
	statements []runtime.Executable
}

func NewCompound(statements []runtime.Executable) *Compound {
	return &Compound{statements: statements}
}

func (*Compound) Kind() Kind { return KindCompound }

func (n *Compound) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	for _, stmt := range n.statements {
		result, err := stmt.Execute(scope, ctx)
		if err != nil {
			return runtime.None(), err
		}
		switch stmt.(type) {
		case *Return:
			return result, nil
		case *IfElse, *Compound:
			if !result.IsEmpty() {
				return result, nil
			}
		}
	}
	return runtime.None(), nil
}

// MethodBody is the top-level statement sequence bound to a Method (spec
// §3.2). It shares Compound's escape rule; it exists as its own node, not a
// bare Compound, so that a method's outermost block is distinguishable from
// an if/else branch body when reading the tree.
type MethodBody struct {
	body *Compound
}

func NewMethodBody(statements []runtime.Executable) *MethodBody {
	return &MethodBody{body: NewCompound(statements)}
}

func (*MethodBody) Kind() Kind { return KindMethodBody }

func (n *MethodBody) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	return n.body.Execute(scope, ctx)
}

// Return evaluates its operand (or yields None for a bare `return`) and
// lets Compound's type switch carry the result out of the enclosing block
// unconditionally (spec §3.4).
type Return struct {
	value runtime.Executable
}

// NewReturn builds a Return; value may be nil for a bare `return`.
func NewReturn(value runtime.Executable) *Return {
	return &Return{value: value}
}

func (*Return) Kind() Kind { return KindReturn }

func (n *Return) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	if n.value == nil {
		return runtime.None(), nil
	}
	return n.value.Execute(scope, ctx)
}

// IfElse evaluates its condition and executes whichever branch applies
// (spec §3.4, §3.5). elseBody may be nil for an if with no else clause, in
// which case a falsy condition simply yields the empty holder.
type IfElse struct {
	condition        runtime.Executable
	ifBody, elseBody *Compound
}

func NewIfElse(condition runtime.Executable, ifBody, elseBody *Compound) *IfElse {
	return &IfElse{condition: condition, ifBody: ifBody, elseBody: elseBody}
}

func (*IfElse) Kind() Kind { return KindIfElse }

func (n *IfElse) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	cond, err := n.condition.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	if runtime.IsTrue(cond) {
		return n.ifBody.Execute(scope, ctx)
	}
	if n.elseBody == nil {
		return runtime.None(), nil
	}
	return n.elseBody.Execute(scope, ctx)
}
