package runtime

import (
	"bytes"
	"io"
)

// Context is the narrow execution context contract from spec §4.7: a sink
// for print output, shared by every statement in one program run.
type Context interface {
	Output() io.Writer
}

// SimpleContext wraps a direct writer — the production shape (e.g. an
// os.Stdout wrapper), mirroring runtime::SimpleContext in original_source
// /runtime.h.
type SimpleContext struct {
	w io.Writer
}

func NewSimpleContext(w io.Writer) *SimpleContext {
	return &SimpleContext{w: w}
}

func (c *SimpleContext) Output() io.Writer { return c.w }

// BufferContext buffers output in memory, for tests — mirroring
// runtime::DummyContext in original_source/runtime.h.
type BufferContext struct {
	buf bytes.Buffer
}

func NewBufferContext() *BufferContext { return &BufferContext{} }

func (c *BufferContext) Output() io.Writer { return &c.buf }

func (c *BufferContext) String() string { return c.buf.String() }
