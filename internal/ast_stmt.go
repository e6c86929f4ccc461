package internal

import "fmt"

// AssignmentStmt evaluates Rhs, stores it in the closure under Name, and
// returns the stored handle (§4.4). Storing is an unconditional overwrite —
// Closure.Define has no notion of "already bound" — which is also how
// ClassDefinitionStmt below satisfies §9's "treat as ordinary assignment"
// resolution for rebinding a class name.
type AssignmentStmt struct {
	Name string
	Rhs  Executable
}

func (s *AssignmentStmt) Execute(cl *Closure, ctx Context) (Handle, error) {
	v, err := s.Rhs.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	cl.Define(s.Name, v)
	return v, nil
}

// FieldAssignmentStmt resolves Object to an instance and sets
// instance.Fields[Field] = eval(Rhs) (§4.4). If Object doesn't resolve to an
// instance, it returns the empty handle without error — §9's explicit
// "field-assignment to non-instance LHS: silently return empty, flagged"
// resolution.
type FieldAssignmentStmt struct {
	Object Executable
	Field  string
	Rhs    Executable
}

func (s *FieldAssignmentStmt) Execute(cl *Closure, ctx Context) (Handle, error) {
	h, err := s.Object.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	inst, ok := TryAs[*ClassInstance](h)
	if !ok {
		return Empty(), nil
	}
	v, err := s.Rhs.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	inst.Fields[s.Field] = v
	return v, nil
}

// PrintStmt evaluates and prints each Arg separated by a single space,
// followed by a newline; no args prints only the newline (§4.4, §6).
type PrintStmt struct{ Args []Executable }

func (s *PrintStmt) Execute(cl *Closure, ctx Context) (Handle, error) {
	w := ctx.OutputStream()
	for i, a := range s.Args {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		h, err := a.Execute(cl, ctx)
		if err != nil {
			return Empty(), err
		}
		printObject(w, h, ctx)
	}
	fmt.Fprintln(w)
	return Empty(), nil
}

// ClassDefinitionStmt binds Class.Name to Class in the closure. §9's open
// question on rebinding is resolved as ordinary assignment (replace): since
// Closure.Define always overwrites, a second ClassDefinitionStmt for the
// same name simply replaces the earlier binding.
type ClassDefinitionStmt struct{ Class *Class }

func (s *ClassDefinitionStmt) Execute(cl *Closure, ctx Context) (Handle, error) {
	cl.Define(s.Class.Name, Own(s.Class))
	return Empty(), nil
}

// IfElseStmt evaluates Cond and executes the matching branch; a nil Else is
// a no-op (§4.4).
type IfElseStmt struct {
	Cond       Executable
	Then, Else Executable
}

func (s *IfElseStmt) Execute(cl *Closure, ctx Context) (Handle, error) {
	cond, err := s.Cond.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	if IsTrue(cond) {
		return s.Then.Execute(cl, ctx)
	}
	if s.Else != nil {
		return s.Else.Execute(cl, ctx)
	}
	return Empty(), nil
}

// CompoundStmt executes its children in order and always returns empty
// (§4.4) — this is also the type used for the parsed program's root and for
// every indented block.
type CompoundStmt struct{ Stmts []Executable }

func (s *CompoundStmt) Execute(cl *Closure, ctx Context) (Handle, error) {
	for _, st := range s.Stmts {
		if _, err := st.Execute(cl, ctx); err != nil {
			return Empty(), err
		}
	}
	return Empty(), nil
}

// returnSignal is the panic payload Return raises and MethodBodyStmt
// recovers — the non-local-return mechanism mandated by §4.4/§9, ported
// from mliezun-grotsky's function.go (panic(returnValue(...)) / recover())
// which is itself the idiomatic Go analog of original_source's
// ReturnException (a thrown C++ exception caught only by MethodBody's
// Execute, per original_source/src/statement.cpp).
type returnSignal struct{ value Handle }

// ReturnStmt evaluates Expr and raises a non-local control transfer that
// unwinds up to the nearest enclosing MethodBodyStmt (§4.4). The parser
// rejects `return` outside a method body, so this panic is always caught —
// see parser.go.
type ReturnStmt struct{ Expr Executable }

func (s *ReturnStmt) Execute(cl *Closure, ctx Context) (Handle, error) {
	h, err := s.Expr.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	panic(returnSignal{value: h})
}

// MethodBodyStmt executes Body; if a Return unwound through it, it completes
// with the Return's payload, otherwise it returns empty (§4.4). It is the
// only component that observes the non-local-return unwind (§9): any other
// panic value is re-raised untouched.
type MethodBodyStmt struct{ Body Executable }

func (s *MethodBodyStmt) Execute(cl *Closure, ctx Context) (result Handle, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rs, ok := r.(returnSignal); ok {
				result = rs.value
				err = nil
				return
			}
			panic(r)
		}
	}()
	if _, err = s.Body.Execute(cl, ctx); err != nil {
		return Empty(), err
	}
	return Empty(), nil
}
