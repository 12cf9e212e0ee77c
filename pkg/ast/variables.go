package ast

import "github.com/OlgaLukovenkova/mython/pkg/runtime"

// VariableValue walks a dotted name chain against the scope and then
// through instance fields (spec §3.4, §4.1's "dotted chain lookup"),
// grounded in original_source/statement.cpp's VariableValue::Execute: the
// first segment is looked up in the scope, every following segment must
// land on a ClassInstance and is resolved against its field map.
type VariableValue struct {
	names []string
}

// NewVariableValue builds a variable reference from a dotted chain, e.g.
// []string{"self", "x"} for `self.x`.
func NewVariableValue(names []string) *VariableValue {
	return &VariableValue{names: names}
}

func (*VariableValue) Kind() Kind { return KindVariableValue }

func (n *VariableValue) Execute(scope *runtime.Scope, _ runtime.Context) (runtime.ObjectHolder, error) {
	holder, ok := scope.Get(n.names[0])
	if !ok {
		return runtime.None(), runtime.ErrUnknownVariable(n.names[0])
	}
	for _, field := range n.names[1:] {
		inst, ok := runtime.TryAs[*runtime.Instance](holder)
		if !ok {
			return runtime.None(), runtime.ErrWrongType("dotted lookup requires a class instance")
		}
		next, ok := inst.Fields()[field]
		if !ok {
			return runtime.None(), runtime.ErrUnknownVariable(field)
		}
		holder = next
	}
	return holder, nil
}

// Assignment binds a simple name in the current scope to the value of an
// expression and yields that same value, matching original_source
// /statement.cpp's Assignment::Execute (assignment is itself an
// expression).
type Assignment struct {
	name  string
	value runtime.Executable
}

func NewAssignment(name string, value runtime.Executable) *Assignment {
	return &Assignment{name: name, value: value}
}

func (*Assignment) Kind() Kind { return KindAssignment }

func (n *Assignment) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	result, err := n.value.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	scope.Define(n.name, result)
	return result, nil
}

// FieldAssignment evaluates a dotted chain down to its receiver, then sets
// one field on it (spec §3.4). The receiver chain itself is a
// VariableValue, one segment shorter than the full dotted path the source
// text wrote — the last segment is the field being assigned, not part of
// the lookup.
type FieldAssignment struct {
	object    *VariableValue
	fieldName string
	value     runtime.Executable
}

func NewFieldAssignment(object *VariableValue, fieldName string, value runtime.Executable) *FieldAssignment {
	return &FieldAssignment{object: object, fieldName: fieldName, value: value}
}

func (*FieldAssignment) Kind() Kind { return KindFieldAssignment }

func (n *FieldAssignment) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	objHolder, err := n.object.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	inst, ok := runtime.TryAs[*runtime.Instance](objHolder)
	if !ok {
		return runtime.None(), runtime.ErrWrongType("field assignment requires a class instance")
	}
	result, err := n.value.Execute(scope, ctx)
	if err != nil {
		return runtime.None(), err
	}
	inst.Fields()[n.fieldName] = result
	return result, nil
}
