package internal

import (
	"bytes"
	"testing"
)

func TestClassMethodResolutionIncludingInheritance(t *testing.T) {
	// P3: for every method name resolvable on C with arity k,
	// x.has_method(m, k) == true.
	base := &Class{
		Name: "Base",
		Methods: []*Method{
			{Name: "greet", FormalParams: []string{}, Body: &CompoundStmt{}},
		},
	}
	child := &Class{
		Name:   "Child",
		Parent: base,
		Methods: []*Method{
			{Name: "greet", FormalParams: []string{"who"}, Body: &CompoundStmt{}},
		},
	}
	instance := NewClassInstance(child)

	if !instance.HasMethod("greet", 1) {
		t.Fatal("expected Child's own 1-arity greet to resolve")
	}
	if instance.HasMethod("greet", 0) {
		t.Fatal("name-first resolution should stop at Child's greet and not fall through to Base's 0-arity greet")
	}

	grandchild := NewClassInstance(&Class{Name: "Grandchild", Parent: child})
	if !grandchild.HasMethod("greet", 1) {
		t.Fatal("expected inherited greet/1 to resolve through the parent chain")
	}
}

func TestClassInstanceCallUnknownMethod(t *testing.T) {
	cls := &Class{Name: "Empty"}
	instance := NewClassInstance(cls)
	ctx := NewDummyContext()
	_, err := instance.Call("missing", nil, ctx)
	me, ok := err.(*MythonError)
	if !ok || me.Kind != UnknownMethod {
		t.Fatalf("got %v, want UnknownMethod", err)
	}
}

func TestClassInstanceCallArityMismatch(t *testing.T) {
	cls := &Class{
		Name: "Point",
		Methods: []*Method{
			{Name: "move", FormalParams: []string{"dx", "dy"}, Body: &CompoundStmt{}},
		},
	}
	instance := NewClassInstance(cls)
	ctx := NewDummyContext()
	_, err := instance.Call("move", []Handle{Share(Number(1))}, ctx)
	me, ok := err.(*MythonError)
	if !ok || me.Kind != ArityMismatch {
		t.Fatalf("got %v, want ArityMismatch", err)
	}
}

func TestClassInstanceCallBindsSelfAndParams(t *testing.T) {
	// The method body reads "self" and its one formal param back out of the
	// closure it was given, proving Call wires §4.2 steps 2-3 correctly.
	readBack := &readingStmt{}
	cls := &Class{
		Name: "Echo",
		Methods: []*Method{
			{Name: "echo", FormalParams: []string{"x"}, Body: readBack},
		},
	}
	instance := NewClassInstance(cls)
	ctx := NewDummyContext()
	result, err := instance.Call("echo", []Handle{Share(Number(42))}, ctx)
	if err != nil {
		t.Fatal(err)
	}
	n, ok := TryAs[Number](result)
	if !ok || n != 42 {
		t.Fatalf("got %v, want Number(42)", result)
	}
	selfInst, ok := TryAs[*ClassInstance](readBack.seenSelf)
	if !ok || selfInst != instance {
		t.Fatal("expected self to be bound (sharing) to the calling instance")
	}
}

// readingStmt is a minimal Executable double that returns the "x" binding
// and records what "self" was bound to, used only to probe Call's closure
// wiring without needing a full parsed method body.
type readingStmt struct {
	seenSelf Handle
}

func (r *readingStmt) Execute(cl *Closure, ctx Context) (Handle, error) {
	self, _ := cl.Get("self")
	r.seenSelf = self
	x, _ := cl.Get("x")
	return x, nil
}

func TestClassPrint(t *testing.T) {
	cls := &Class{Name: "Widget"}
	var buf bytes.Buffer
	cls.Print(&buf, NewDummyContext())
	if buf.String() != "Class Widget" {
		t.Fatalf("got %q, want %q", buf.String(), "Class Widget")
	}
}

func TestClassInstancePrintWithoutStr(t *testing.T) {
	cls := &Class{Name: "Widget"}
	instance := NewClassInstance(cls)
	var buf bytes.Buffer
	instance.Print(&buf, NewDummyContext())
	if buf.String() == "" {
		t.Fatal("expected an opaque identity token")
	}
}
