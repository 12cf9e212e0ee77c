// Package mython is the glue layer that bundles a root scope and an
// execution context behind one small API, the way a host embedding this
// interpreter would use it. Building the AST from source text is out of
// scope here (the recursive-descent parser lives outside this module);
// Interpreter.Run takes an already-built program.
package mython

import (
	"io"

	"github.com/OlgaLukovenkova/mython/pkg/runtime"
)

// Interpreter owns the single call frame and output sink a mython program
// runs against (spec §3.3, §4.7). There is exactly one Scope for the
// lifetime of the program — top-level statements and any `self` frames
// they spawn via Instance.Call are the only scopes this module ever
// creates.
type Interpreter struct {
	scope *runtime.Scope
	ctx   runtime.Context
}

// New builds an Interpreter that writes print output to w.
func New(w io.Writer) *Interpreter {
	return NewWithContext(runtime.NewSimpleContext(w))
}

// NewWithContext builds an Interpreter against a caller-supplied context,
// e.g. a runtime.BufferContext in tests.
func NewWithContext(ctx runtime.Context) *Interpreter {
	return &Interpreter{scope: runtime.NewScope(), ctx: ctx}
}

// Run executes a program — an ordered list of top-level statements — in
// this interpreter's persistent scope, stopping at the first error (spec
// §7's propagation policy: errors abort the run, not just one statement,
// since there is no try/except in the guest language).
func (in *Interpreter) Run(program []runtime.Executable) error {
	for _, stmt := range program {
		if _, err := stmt.Execute(in.scope, in.ctx); err != nil {
			return err
		}
	}
	return nil
}

// Scope exposes the persistent top-level scope, e.g. for a host that wants
// to inspect bound globals after Run returns.
func (in *Interpreter) Scope() *runtime.Scope { return in.scope }
