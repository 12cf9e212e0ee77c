package runtime

import (
	"fmt"
	"io"
)

// Kind identifies the runtime value category, mirroring the teacher's own
// runtime.Kind enum but cut down to the five variants spec §3.2 actually
// defines.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindClass
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the Object capability from spec §3.2: every runtime value can
// print itself to an output stream, given a context.
type Value interface {
	Kind() Kind
	Print(w io.Writer, ctx Context) error
}

// Executable is the uniform contract every AST node in pkg/ast implements
// (spec §3.4). It lives here, not in pkg/ast, so that Method.Body can hold
// one without pkg/runtime importing pkg/ast — the same trick the original
// C++ source uses: runtime.h declares Executable and ast::Statement is
// just an alias for it, so statement.h can include runtime.h without a
// cycle.
type Executable interface {
	Execute(scope *Scope, ctx Context) (ObjectHolder, error)
}

// NumberValue wraps a signed integer (spec §3.2). The original source uses
// a plain C++ int; Go's int64 is the direct idiomatic match — there is no
// suffixed integer-width model in this language to justify math/big as the
// teacher's richer IntegerValue does.
type NumberValue struct {
	Val int64
}

func (NumberValue) Kind() Kind { return KindNumber }

func (v NumberValue) Print(w io.Writer, _ Context) error {
	_, err := fmt.Fprintf(w, "%d", v.Val)
	return err
}

// StringValue wraps a UTF-8 string (spec §3.2).
type StringValue struct {
	Val string
}

func (StringValue) Kind() Kind { return KindString }

func (v StringValue) Print(w io.Writer, _ Context) error {
	_, err := io.WriteString(w, v.Val)
	return err
}

// BoolValue wraps a boolean, printing as True/False (spec §3.2, §4.2).
type BoolValue struct {
	Val bool
}

func (BoolValue) Kind() Kind { return KindBool }

func (v BoolValue) Print(w io.Writer, _ Context) error {
	text := "False"
	if v.Val {
		text = "True"
	}
	_, err := io.WriteString(w, text)
	return err
}

// Method is a named, owned subtree with an ordered list of formal parameter
// names (spec §3.2).
type Method struct {
	Name         string
	FormalParams []string
	Body         Executable
}

// Class is immutable after construction (spec §3.2). Its method table is
// seeded from the parent's table and then overridden by its own methods —
// the "flattened vtable" design note in spec §9, grounded directly in
// runtime::Class's constructor in original_source/runtime.cpp, which copies
// parent_->vtbl_ before inserting its own methods.
type Class struct {
	name    string
	parent  *Class
	methods map[string]*Method
}

func NewClass(name string, methods []*Method, parent *Class) *Class {
	vtable := make(map[string]*Method, len(methods))
	if parent != nil {
		for k, m := range parent.methods {
			vtable[k] = m
		}
	}
	for _, m := range methods {
		vtable[m.Name] = m
	}
	return &Class{name: name, parent: parent, methods: vtable}
}

func (c *Class) Kind() Kind { return KindClass }

func (c *Class) Name() string { return c.name }

// Method returns the class's flattened vtable entry for name, or nil.
func (c *Class) Method(name string) *Method {
	return c.methods[name]
}

// HasMethod reports whether the class has a method with the given name and
// arity (spec §4.3).
func (c *Class) HasMethod(name string, arity int) bool {
	m := c.methods[name]
	return m != nil && len(m.FormalParams) == arity
}

func (c *Class) Print(w io.Writer, _ Context) error {
	_, err := fmt.Fprintf(w, "Class %s", c.name)
	return err
}

// Instance is a mutable ClassInstance: a reference to its class plus a
// field map (spec §3.2). Instances do not own their class; the class's
// lifetime is managed by whatever holder owns the ClassDefinition that
// created it (spec §3.6).
type Instance struct {
	class  *Class
	fields map[string]ObjectHolder
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]ObjectHolder)}
}

func (o *Instance) Kind() Kind { return KindInstance }

func (o *Instance) Class() *Class { return o.class }

func (o *Instance) Fields() map[string]ObjectHolder { return o.fields }

// HasMethod checks the instance's class vtable for a method matching both
// name and arity (spec §4.3, §4.1 "has_method").
func (o *Instance) HasMethod(name string, arity int) bool {
	return o.class.HasMethod(name, arity)
}

// Call builds a fresh scope (self + positional formal params), executes the
// method body, and returns its result or an empty holder if the body fell
// through without a Return (spec §4.3).
func (o *Instance) Call(name string, args []ObjectHolder, ctx Context) (ObjectHolder, error) {
	m := o.class.Method(name)
	if m == nil || len(m.FormalParams) != len(args) {
		return None(), ErrMethodNotFound(name, len(args))
	}
	scope := NewScope()
	scope.Define("self", Share(o))
	for i, param := range m.FormalParams {
		scope.Define(param, args[i])
	}
	result, err := m.Body.Execute(scope, ctx)
	if err != nil {
		return None(), err
	}
	return result, nil
}

// Print writes the result of __str__/0 if the instance defines it,
// otherwise a stable implementation-defined placeholder (spec §3.4 Print,
// §4.2).
func (o *Instance) Print(w io.Writer, ctx Context) error {
	if !o.HasMethod("__str__", 0) {
		_, err := fmt.Fprintf(w, "<%s instance at %p>", o.class.name, o)
		return err
	}
	result, err := o.Call("__str__", nil, ctx)
	if err != nil {
		return err
	}
	str, ok := result.Value().(StringValue)
	if !ok {
		_, err := fmt.Fprintf(w, "<%s instance at %p>", o.class.name, o)
		return err
	}
	_, err = io.WriteString(w, str.Val)
	return err
}

// Stringify renders h the way the str() builtin does (spec §3.4 str): an
// instance's __str__/0, if it has one, is printed with whatever type it
// actually returns, recursing if that's itself an instance — unlike
// Instance.Print, which backs the plain print statement and requires
// __str__ to return a StringValue. original_source/statement.cpp's
// Stringify::Execute does the same generic res->Print(os, context) on
// __str__'s raw result, never requiring String.
func Stringify(w io.Writer, h ObjectHolder, ctx Context) error {
	if h.IsEmpty() {
		_, err := io.WriteString(w, "None")
		return err
	}
	if inst, ok := TryAs[*Instance](h); ok {
		if !inst.HasMethod("__str__", 0) {
			_, err := fmt.Fprintf(w, "<%s instance at %p>", inst.class.name, inst)
			return err
		}
		result, err := inst.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		return Stringify(w, result, ctx)
	}
	return h.Value().Print(w, ctx)
}
