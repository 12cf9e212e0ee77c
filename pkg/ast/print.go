package ast

import (
	"io"

	"github.com/OlgaLukovenkova/mython/pkg/runtime"
)

// Print evaluates each argument left to right and writes them
// space-separated to the context's output, terminated by a newline, with
// an empty holder printing as the literal text "None" (spec §3.4, §4.2),
// grounded in original_source/statement.cpp's Print::Execute.
type Print struct {
	args []runtime.Executable
}

func NewPrint(args []runtime.Executable) *Print {
	return &Print{args: args}
}

func (*Print) Kind() Kind { return KindPrint }

func (n *Print) Execute(scope *runtime.Scope, ctx runtime.Context) (runtime.ObjectHolder, error) {
	w := ctx.Output()
	for i, arg := range n.args {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return runtime.None(), err
			}
		}
		result, err := arg.Execute(scope, ctx)
		if err != nil {
			return runtime.None(), err
		}
		if err := printHolder(w, result, ctx); err != nil {
			return runtime.None(), err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return runtime.None(), err
	}
	return runtime.None(), nil
}

func printHolder(w io.Writer, h runtime.ObjectHolder, ctx runtime.Context) error {
	if h.IsEmpty() {
		_, err := io.WriteString(w, "None")
		return err
	}
	return h.Value().Print(w, ctx)
}
