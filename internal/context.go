package internal

import (
	"bytes"
	"io"
)

// Context (C7) abstracts the output sink `print` writes to, per §6's
// collaborator contract: "an abstraction exposing output_stream()."
type Context interface {
	OutputStream() io.Writer
}

// DummyContext captures output into an in-memory buffer — the test-only
// context named in §6, grounded on original_source/src/runtime.h's
// DummyContext (an ostringstream) and mliezun-grotsky's exec_test.go
// testPrinter.
type DummyContext struct {
	buf bytes.Buffer
}

// NewDummyContext returns a DummyContext with an empty buffer.
func NewDummyContext() *DummyContext { return &DummyContext{} }

func (d *DummyContext) OutputStream() io.Writer { return &d.buf }

// Output returns everything printed so far.
func (d *DummyContext) Output() string { return d.buf.String() }

// SimpleContext wraps an externally provided writer — the "simple" context
// from §6, used by the CLI driver.
type SimpleContext struct {
	w io.Writer
}

// NewSimpleContext wraps w.
func NewSimpleContext(w io.Writer) *SimpleContext { return &SimpleContext{w: w} }

func (s *SimpleContext) OutputStream() io.Writer { return s.w }
