package internal

// Comparator is the shape shared by Equal/Less and the four derived
// relations (§4.3), so a Comparison AST node can hold a pre-bound function
// just as original_source/src/statement.cpp's Comparison node holds a
// pre-bound cmp_.
type Comparator func(lhs, rhs Handle, ctx Context) (bool, error)

func incomparable(op string) *MythonError {
	return newErr(IncomparableValues, op)
}

// Equal implements §4.3's Equal(lhs, rhs, ctx):
//  1. both empty -> true
//  2. either (not both) empty -> fail
//  3. lhs is an instance with __eq__/1 -> boolean-coerced result of the call
//  4. both same primitive type -> value equality
//  5. otherwise fail
func Equal(lhs, rhs Handle, ctx Context) (bool, error) {
	if lhs.IsEmpty() && rhs.IsEmpty() {
		return true, nil
	}
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return false, incomparable("==")
	}
	if inst, ok := TryAs[*ClassInstance](lhs); ok && inst.HasMethod("__eq__", 1) {
		h, err := inst.Call("__eq__", []Handle{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(h), nil
	}
	switch lv := lhs.Get().(type) {
	case Number:
		if rv, ok := TryAs[Number](rhs); ok {
			return lv == rv, nil
		}
	case String:
		if rv, ok := TryAs[String](rhs); ok {
			return lv == rv, nil
		}
	case Bool:
		if rv, ok := TryAs[Bool](rhs); ok {
			return lv == rv, nil
		}
	}
	return false, incomparable("==")
}

// Less implements §4.3's Less: no empty-handle acceptance; otherwise mirrors
// Equal but dispatches to __lt__ and uses primitive "<".
func Less(lhs, rhs Handle, ctx Context) (bool, error) {
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return false, incomparable("<")
	}
	if inst, ok := TryAs[*ClassInstance](lhs); ok && inst.HasMethod("__lt__", 1) {
		h, err := inst.Call("__lt__", []Handle{rhs}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(h), nil
	}
	switch lv := lhs.Get().(type) {
	case Number:
		if rv, ok := TryAs[Number](rhs); ok {
			return lv < rv, nil
		}
	case String:
		if rv, ok := TryAs[String](rhs); ok {
			return lv < rv, nil
		}
	case Bool:
		if rv, ok := TryAs[Bool](rhs); ok {
			return !bool(lv) && bool(rv), nil
		}
	}
	return false, incomparable("<")
}

// NotEqual ≡ !Equal.
func NotEqual(lhs, rhs Handle, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater ≡ !Less ∧ !Equal. Less is evaluated first so an early Less=true
// short-circuits without needing Equal at all.
func Greater(lhs, rhs Handle, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	if lt {
		return false, nil
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// LessOrEqual ≡ !Greater.
func LessOrEqual(lhs, rhs Handle, ctx Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

// GreaterOrEqual ≡ !Less.
func GreaterOrEqual(lhs, rhs Handle, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
