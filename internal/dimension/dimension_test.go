package dimension

import "testing"

func TestDimEqualityIsStructural(t *testing.T) {
	a := New(1, Ident("t"))
	b := New(1, Ident("t"))
	c := New(2, Ident("t"))
	d := New(1, Ident("s"))

	if !a.Equal(b) {
		t.Fatalf("expected %v == %v", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("expected %v != %v (different i)", a, c)
	}
	if a.Equal(d) {
		t.Fatalf("expected %v != %v (different v)", a, d)
	}
}

func TestU32TagKeyDistinctFromIdent(t *testing.T) {
	a := New(0, U32(5))
	b := New(0, Ident("5"))
	if a.Key() == b.Key() {
		t.Fatalf("U32(5) and Ident(%q) must not collide: %s", "5", a.Key())
	}
}

func TestDimString(t *testing.T) {
	d := New(3, Ident("t"))
	if got, want := d.String(), "(3:t)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
