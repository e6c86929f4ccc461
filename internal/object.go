package internal

import (
	"fmt"
	"io"
)

// Object is the tagged-variant universe of runtime values (C3, §3): None is
// modeled as its own type rather than folded into the handle's empty state,
// since spec.md explicitly distinguishes "a wrapped None object" from "an
// empty handle" even though both are falsey.
type Object interface {
	Print(w io.Writer, ctx Context)
}

// None is the wrapped-None object, distinct from an empty Handle.
type None struct{}

func (None) Print(w io.Writer, _ Context) { fmt.Fprint(w, "None") }

// Number is Mython's only numeric type: a signed integer.
type Number int

func (n Number) Print(w io.Writer, _ Context) { fmt.Fprintf(w, "%d", int(n)) }

// String is Mython's text type.
type String string

func (s String) Print(w io.Writer, _ Context) { fmt.Fprint(w, string(s)) }

// Bool prints as the literal True/False (§4.2 "Bool printing").
type Bool bool

func (b Bool) Print(w io.Writer, _ Context) {
	if b {
		fmt.Fprint(w, "True")
	} else {
		fmt.Fprint(w, "False")
	}
}

// printObject renders a handle's contents per §4.2/§4.4: an empty handle
// prints as the literal None, otherwise the held Object prints itself.
func printObject(w io.Writer, h Handle, ctx Context) {
	if h.IsEmpty() {
		fmt.Fprint(w, "None")
		return
	}
	h.Get().Print(w, ctx)
}

// IsTrue implements is_true(handle) from §4.2:
//
//	empty handle -> false; None object -> false;
//	Number -> value != 0; Bool -> value; String -> non-empty;
//	all other objects (including classes and instances) -> false.
//
// Per §9's open question, a boolean-like wrapped object that is not exactly
// Bool has undefined truthiness; this falls into the "all other objects"
// default below, deliberately.
func IsTrue(h Handle) bool {
	if h.IsEmpty() {
		return false
	}
	switch v := h.Get().(type) {
	case None:
		return false
	case Number:
		return v != 0
	case Bool:
		return bool(v)
	case String:
		return v != ""
	default:
		return false
	}
}
