package ast

import "github.com/OlgaLukovenkova/mython/pkg/runtime"

// ClassDefinition binds a class's name to its *runtime.Class value in the
// enclosing scope (spec §3.4, §4.1). The Class itself is built once, with
// its flattened vtable, before this node is ever executed — executing it
// just makes the name visible, mirroring original_source/statement.cpp's
// ClassDefinition::Execute, which does nothing but closure.Declare(name,
// ObjectHolder::Share(cls_)).
type ClassDefinition struct {
	class *runtime.Class
}

func NewClassDefinition(class *runtime.Class) *ClassDefinition {
	return &ClassDefinition{class: class}
}

func (*ClassDefinition) Kind() Kind { return KindClassDefinition }

func (n *ClassDefinition) Execute(scope *runtime.Scope, _ runtime.Context) (runtime.ObjectHolder, error) {
	scope.Define(n.class.Name(), runtime.Share(n.class))
	return runtime.None(), nil
}
