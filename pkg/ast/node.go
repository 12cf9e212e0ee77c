// Package ast holds the ~20 AST node kinds from spec §3.4. Each node type
// implements runtime.Executable directly — the "open polymorphism" design
// note in spec §9 calls this out as the one place a small capability
// interface earns its keep over a tagged variant, unlike pkg/token where a
// flat struct is the better fit.
package ast

import "github.com/OlgaLukovenkova/mython/pkg/runtime"

// Kind names a node variant purely for error messages and debugging; it
// plays no role in dispatch (dispatch is ordinary Go interface
// satisfaction).
type Kind string

const (
	KindNumericConst    Kind = "NumericConst"
	KindStringConst     Kind = "StringConst"
	KindBoolConst       Kind = "BoolConst"
	KindNoneValue       Kind = "NoneValue"
	KindVariableValue   Kind = "VariableValue"
	KindAssignment      Kind = "Assignment"
	KindFieldAssignment Kind = "FieldAssignment"
	KindPrint           Kind = "Print"
	KindMethodCall      Kind = "MethodCall"
	KindNewInstance     Kind = "NewInstance"
	KindStringify       Kind = "Stringify"
	KindAdd             Kind = "Add"
	KindSub             Kind = "Sub"
	KindMult            Kind = "Mult"
	KindDiv             Kind = "Div"
	KindAnd             Kind = "And"
	KindOr              Kind = "Or"
	KindNot             Kind = "Not"
	KindComparison      Kind = "Comparison"
	KindCompound        Kind = "Compound"
	KindMethodBody      Kind = "MethodBody"
	KindReturn          Kind = "Return"
	KindIfElse          Kind = "IfElse"
	KindClassDefinition Kind = "ClassDefinition"
)

// Node is satisfied by every AST node; it adds a Kind() accessor on top of
// the bare runtime.Executable contract for error messages and tests.
type Node interface {
	runtime.Executable
	Kind() Kind
}
