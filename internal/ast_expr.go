package internal

import "strings"

// NumericConstExpr, StringConstExpr, BoolConstExpr return a sharing handle
// to their embedded value (§4.4) — the value is immutable and owned by the
// AST node itself, so every evaluation shares the same underlying Object.
type NumericConstExpr struct{ Value Number }

func (e *NumericConstExpr) Execute(*Closure, Context) (Handle, error) {
	return Share(e.Value), nil
}

type StringConstExpr struct{ Value String }

func (e *StringConstExpr) Execute(*Closure, Context) (Handle, error) {
	return Share(e.Value), nil
}

type BoolConstExpr struct{ Value Bool }

func (e *BoolConstExpr) Execute(*Closure, Context) (Handle, error) {
	return Share(e.Value), nil
}

// NoneExpr evaluates to the empty handle (§4.4: "None: return empty
// handle").
type NoneExpr struct{}

func (e *NoneExpr) Execute(*Closure, Context) (Handle, error) {
	return Empty(), nil
}

// VariableValueExpr resolves a dotted identifier path against a closure
// (§4.4): look up Path[0] in the closure, then for each later name require
// the current handle to hold a ClassInstance and descend into its fields.
// Ported from original_source/src/statement.cpp's VariableValue::Execute.
type VariableValueExpr struct{ Path []string }

func (e *VariableValueExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	h, ok := cl.Get(e.Path[0])
	if !ok {
		return Empty(), newErr(UndefinedName, e.Path[0])
	}
	for _, name := range e.Path[1:] {
		inst, ok := TryAs[*ClassInstance](h)
		if !ok {
			return Empty(), newErr(UndefinedName, name)
		}
		h, ok = inst.Fields[name]
		if !ok {
			return Empty(), newErr(UndefinedName, name)
		}
	}
	return h, nil
}

// NewInstanceExpr evaluates ClassExpr to a Class, allocates a fresh
// ClassInstance, and — only if the class declares __init__ at the matching
// arity — evaluates Args left-to-right and invokes it (§4.4). A fresh
// instance is allocated on every Execute call: see DESIGN.md for why this
// departs from original_source's once-per-AST-node ClassInstance.
type NewInstanceExpr struct {
	ClassExpr Executable
	Args      []Executable
}

func (e *NewInstanceExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	ch, err := e.ClassExpr.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	class, ok := TryAs[*Class](ch)
	if !ok {
		return Empty(), newErr(UndefinedName, "not a class")
	}
	instance := NewClassInstance(class)
	if class.HasMethod("__init__", len(e.Args)) {
		args := make([]Handle, len(e.Args))
		for i, a := range e.Args {
			ah, err := a.Execute(cl, ctx)
			if err != nil {
				return Empty(), err
			}
			args[i] = ah
		}
		if _, err := instance.Call("__init__", args, ctx); err != nil {
			return Empty(), err
		}
	}
	return Share(instance), nil
}

// MethodCallExpr evaluates Object; if it holds a ClassInstance, it evaluates
// Args left-to-right and dispatches via §4.2. If Object isn't an instance,
// it returns the empty handle, non-fatally (§4.4).
type MethodCallExpr struct {
	Object Executable
	Name   string
	Args   []Executable
}

func (e *MethodCallExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	h, err := e.Object.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	inst, ok := TryAs[*ClassInstance](h)
	if !ok {
		return Empty(), nil
	}
	args := make([]Handle, len(e.Args))
	for i, a := range e.Args {
		ah, err := a.Execute(cl, ctx)
		if err != nil {
			return Empty(), err
		}
		args[i] = ah
	}
	return inst.Call(e.Name, args, ctx)
}

// StringifyExpr evaluates Arg; if the result is an instance with __str__/0,
// it calls it first. The (possibly replaced) result is rendered through its
// own Print, or the literal None for an empty handle, and wrapped as a new
// String (§4.4).
type StringifyExpr struct{ Arg Executable }

func (e *StringifyExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	h, err := e.Arg.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	if inst, ok := TryAs[*ClassInstance](h); ok && inst.HasMethod("__str__", 0) {
		h, err = inst.Call("__str__", nil, ctx)
		if err != nil {
			return Empty(), err
		}
	}
	var buf strings.Builder
	printObject(&buf, h, ctx)
	return Own(String(buf.String())), nil
}

// AddExpr: Number+Number, String+String, or Instance.__add__(rhs) (§4.4).
type AddExpr struct{ Left, Right Executable }

func (e *AddExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	lh, rh, err := evalPair(e.Left, e.Right, cl, ctx)
	if err != nil {
		return Empty(), err
	}
	if ln, ok := TryAs[Number](lh); ok {
		if rn, ok := TryAs[Number](rh); ok {
			return Own(ln + rn), nil
		}
	}
	if ls, ok := TryAs[String](lh); ok {
		if rs, ok := TryAs[String](rh); ok {
			return Own(ls + rs), nil
		}
	}
	if inst, ok := TryAs[*ClassInstance](lh); ok {
		return inst.Call("__add__", []Handle{rh}, ctx)
	}
	return Empty(), newErr(IncompatibleOperands, "+")
}

// SubExpr, MultExpr, DivExpr accept only Number operands (§4.4); DivExpr
// additionally fails DivisionByZero.
type SubExpr struct{ Left, Right Executable }

func (e *SubExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	ln, rn, err := evalNumberPair(e.Left, e.Right, cl, ctx, "-")
	if err != nil {
		return Empty(), err
	}
	return Own(ln - rn), nil
}

type MultExpr struct{ Left, Right Executable }

func (e *MultExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	ln, rn, err := evalNumberPair(e.Left, e.Right, cl, ctx, "*")
	if err != nil {
		return Empty(), err
	}
	return Own(ln * rn), nil
}

type DivExpr struct{ Left, Right Executable }

func (e *DivExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	ln, rn, err := evalNumberPair(e.Left, e.Right, cl, ctx, "/")
	if err != nil {
		return Empty(), err
	}
	if rn == 0 {
		return Empty(), newErr(DivisionByZero, "/")
	}
	return Own(ln / rn), nil
}

func evalPair(left, right Executable, cl *Closure, ctx Context) (Handle, Handle, error) {
	lh, err := left.Execute(cl, ctx)
	if err != nil {
		return Empty(), Empty(), err
	}
	rh, err := right.Execute(cl, ctx)
	if err != nil {
		return Empty(), Empty(), err
	}
	return lh, rh, nil
}

func evalNumberPair(left, right Executable, cl *Closure, ctx Context, op string) (Number, Number, error) {
	lh, rh, err := evalPair(left, right, cl, ctx)
	if err != nil {
		return 0, 0, err
	}
	ln, ok := TryAs[Number](lh)
	if !ok {
		return 0, 0, newErr(IncompatibleOperands, op)
	}
	rn, ok := TryAs[Number](rh)
	if !ok {
		return 0, 0, newErr(IncompatibleOperands, op)
	}
	return ln, rn, nil
}

// OrExpr/AndExpr short-circuit (§4.4/§5); NotExpr negates truthiness.
type OrExpr struct{ Left, Right Executable }

func (e *OrExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	lh, err := e.Left.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	if IsTrue(lh) {
		return Own(Bool(true)), nil
	}
	rh, err := e.Right.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	return Own(Bool(IsTrue(rh))), nil
}

type AndExpr struct{ Left, Right Executable }

func (e *AndExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	lh, err := e.Left.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	if !IsTrue(lh) {
		return Own(Bool(false)), nil
	}
	rh, err := e.Right.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	return Own(Bool(IsTrue(rh))), nil
}

type NotExpr struct{ Arg Executable }

func (e *NotExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	h, err := e.Arg.Execute(cl, ctx)
	if err != nil {
		return Empty(), err
	}
	return Own(Bool(!IsTrue(h))), nil
}

// ComparisonExpr applies a pre-bound Comparator from §4.3 and returns Bool.
type ComparisonExpr struct {
	Left, Right Executable
	Cmp         Comparator
}

func (e *ComparisonExpr) Execute(cl *Closure, ctx Context) (Handle, error) {
	lh, rh, err := evalPair(e.Left, e.Right, cl, ctx)
	if err != nil {
		return Empty(), err
	}
	res, err := e.Cmp(lh, rh, ctx)
	if err != nil {
		return Empty(), err
	}
	return Own(Bool(res)), nil
}
