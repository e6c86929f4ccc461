package internal

import "testing"

func TestEqualBothEmptyIsTrue(t *testing.T) {
	ctx := NewDummyContext()
	eq, err := Equal(Empty(), Empty(), ctx)
	if err != nil || !eq {
		t.Fatalf("got (%v, %v), want (true, nil)", eq, err)
	}
}

func TestEqualOneEmptyFails(t *testing.T) {
	ctx := NewDummyContext()
	_, err := Equal(Empty(), Share(Number(1)), ctx)
	me, ok := err.(*MythonError)
	if !ok || me.Kind != IncomparableValues {
		t.Fatalf("got %v, want IncomparableValues", err)
	}
}

func TestEqualSymmetryOnPrimitives(t *testing.T) {
	// P4: Equal(a, b) == Equal(b, a) for every pair of primitive handles.
	ctx := NewDummyContext()
	values := []Handle{
		Share(Number(1)), Share(Number(2)), Share(String("x")), Share(String("y")),
		Share(Bool(true)), Share(Bool(false)), Empty(),
	}
	for _, a := range values {
		for _, b := range values {
			ab, errAB := Equal(a, b, ctx)
			ba, errBA := Equal(b, a, ctx)
			if (errAB == nil) != (errBA == nil) {
				t.Fatalf("Equal(a,b) err=%v but Equal(b,a) err=%v", errAB, errBA)
			}
			if errAB == nil && ab != ba {
				t.Fatalf("Equal not symmetric: Equal(a,b)=%v Equal(b,a)=%v", ab, ba)
			}
		}
	}
}

func TestDerivedRelationsOnNumbers(t *testing.T) {
	// P5: the four derived relations hold their defining identities with
	// respect to Equal and Less on ordered primitive pairs.
	ctx := NewDummyContext()
	lo, hi := Share(Number(1)), Share(Number(2))

	if neq, _ := NotEqual(lo, hi, ctx); !neq {
		t.Fatal("NotEqual(1,2) should be true")
	}
	if neq, _ := NotEqual(lo, lo, ctx); neq {
		t.Fatal("NotEqual(1,1) should be false")
	}
	if gt, _ := Greater(hi, lo, ctx); !gt {
		t.Fatal("Greater(2,1) should be true")
	}
	if gt, _ := Greater(lo, hi, ctx); gt {
		t.Fatal("Greater(1,2) should be false")
	}
	if gt, _ := Greater(lo, lo, ctx); gt {
		t.Fatal("Greater(1,1) should be false")
	}
	if le, _ := LessOrEqual(lo, hi, ctx); !le {
		t.Fatal("LessOrEqual(1,2) should be true")
	}
	if le, _ := LessOrEqual(lo, lo, ctx); !le {
		t.Fatal("LessOrEqual(1,1) should be true")
	}
	if le, _ := LessOrEqual(hi, lo, ctx); le {
		t.Fatal("LessOrEqual(2,1) should be false")
	}
	if ge, _ := GreaterOrEqual(hi, lo, ctx); !ge {
		t.Fatal("GreaterOrEqual(2,1) should be true")
	}
	if ge, _ := GreaterOrEqual(lo, lo, ctx); !ge {
		t.Fatal("GreaterOrEqual(1,1) should be true")
	}
	if ge, _ := GreaterOrEqual(lo, hi, ctx); ge {
		t.Fatal("GreaterOrEqual(1,2) should be false")
	}
}

func TestDerivedRelationsUseOverrides(t *testing.T) {
	// Instances whose __eq__/__lt__ always answer a fixed way, so the
	// derived relations can be checked against instance overrides too.
	ctx := NewDummyContext()
	alwaysEq := &Class{Name: "AlwaysEq", Methods: []*Method{
		{Name: "__eq__", FormalParams: []string{"other"}, Body: constBool(true)},
	}}
	alwaysLt := &Class{Name: "AlwaysLt", Methods: []*Method{
		{Name: "__lt__", FormalParams: []string{"other"}, Body: constBool(true)},
	}}
	a := Share(NewClassInstance(alwaysEq))
	l := Share(NewClassInstance(alwaysLt))
	other := Share(Number(0))

	if eq, err := Equal(a, other, ctx); err != nil || !eq {
		t.Fatalf("Equal via __eq__ override: got (%v, %v)", eq, err)
	}
	if lt, err := Less(l, other, ctx); err != nil || !lt {
		t.Fatalf("Less via __lt__ override: got (%v, %v)", lt, err)
	}
	if gt, err := Greater(l, other, ctx); err != nil || gt {
		t.Fatal("Greater should be false once Less reports true, regardless of Equal")
	}
}

// constBool is a minimal Executable that always returns Own(Bool(v)),
// standing in for a parsed "return v" method body in override tests.
func constBool(v bool) Executable {
	return &constBoolStmt{v: v}
}

type constBoolStmt struct{ v bool }

func (c *constBoolStmt) Execute(_ *Closure, _ Context) (Handle, error) {
	return Own(Bool(c.v)), nil
}

func TestIsTrueAcrossObjectTypes(t *testing.T) {
	// P6: is_true agrees with §4.2's table for every object kind.
	cases := []struct {
		name string
		h    Handle
		want bool
	}{
		{"empty", Empty(), false},
		{"none", Share(None{}), false},
		{"zero", Share(Number(0)), false},
		{"nonzero", Share(Number(-1)), true},
		{"emptyString", Share(String("")), false},
		{"nonEmptyString", Share(String("x")), true},
		{"true", Share(Bool(true)), true},
		{"false", Share(Bool(false)), false},
		{"instance", Share(NewClassInstance(&Class{Name: "C"})), false},
	}
	for _, c := range cases {
		if got := IsTrue(c.h); got != c.want {
			t.Errorf("%s: IsTrue = %v, want %v", c.name, got, c.want)
		}
	}
}
