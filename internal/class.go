package internal

import (
	"fmt"
	"io"
)

// Method is a class's named, fixed-arity callable (§3).
type Method struct {
	Name         string
	FormalParams []string
	Body         Executable
}

// Class is the class descriptor (§3): name, ordered methods, and an
// optional, non-owning back-reference to a parent class (I3).
type Class struct {
	Name    string
	Methods []*Method
	Parent  *Class
}

func (c *Class) Print(w io.Writer, _ Context) { fmt.Fprintf(w, "Class %s", c.Name) }

// findMethod resolves name by scanning this class's own methods first and
// only then recursing into Parent — §4.2 step 1, grounded on
// original_source/src/runtime.cpp's Class::GetMethod. Arity is deliberately
// not considered here: a name match at any arity stops the search, so that
// ClassInstance.resolve below can distinguish UnknownMethod (name absent
// anywhere in the chain) from ArityMismatch (name present, wrong arity) —
// exactly the distinction §7 calls out.
func (c *Class) findMethod(name string) *Method {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	if c.Parent != nil {
		return c.Parent.findMethod(name)
	}
	return nil
}

// HasMethod reports whether lookup of name with the given arity succeeds.
func (c *Class) HasMethod(name string, arity int) bool {
	m := c.findMethod(name)
	return m != nil && len(m.FormalParams) == arity
}

// ClassInstance pairs a non-owning class reference with a field mapping
// (§3). Fresh instances are constructed per NewInstance evaluation (§4.4;
// see DESIGN.md for the deliberate deviation from original_source's
// once-per-AST-node ClassInstance).
type ClassInstance struct {
	Class  *Class
	Fields map[string]Handle
}

// NewClassInstance allocates an empty instance of cls.
func NewClassInstance(cls *Class) *ClassInstance {
	return &ClassInstance{Class: cls, Fields: make(map[string]Handle)}
}

func (ci *ClassInstance) HasMethod(name string, arity int) bool {
	return ci.Class.HasMethod(name, arity)
}

// resolve implements §4.2 step 1's dispatch failure modes: UnknownMethod
// when name isn't found anywhere in the parent chain, ArityMismatch when it
// is found but at a different arity.
func (ci *ClassInstance) resolve(name string, arity int) (*Method, error) {
	m := ci.Class.findMethod(name)
	if m == nil {
		return nil, newErr(UnknownMethod, name)
	}
	if len(m.FormalParams) != arity {
		return nil, newErr(ArityMismatch, name)
	}
	return m, nil
}

// Call implements §4.2 steps 2-3: resolve method, bind self (sharing) and
// formal params (in order) into a fresh local closure, execute the body.
func (ci *ClassInstance) Call(name string, args []Handle, ctx Context) (Handle, error) {
	m, err := ci.resolve(name, len(args))
	if err != nil {
		return Empty(), err
	}
	local := NewClosure()
	local.Define("self", Share(ci))
	for i, p := range m.FormalParams {
		local.Define(p, args[i])
	}
	return m.Body.Execute(local, ctx)
}

// Print implements §4.2 "Printing": invoke __str__/0 if present and print
// its result (which may itself recurse through Object.Print); otherwise
// print an implementation-defined opaque identity token.
func (ci *ClassInstance) Print(w io.Writer, ctx Context) {
	if ci.HasMethod("__str__", 0) {
		h, err := ci.Call("__str__", nil, ctx)
		if err == nil {
			printObject(w, h, ctx)
			return
		}
	}
	fmt.Fprintf(w, "<%s instance at %p>", ci.Class.Name, ci)
}
