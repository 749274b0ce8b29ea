package domain

import (
	"testing"

	"github.com/translucid-lang/tlcore/internal/dimension"
)

func dim(i uint32, name string) dimension.Dim {
	return dimension.New(i, dimension.Ident(name))
}

func TestUnionDifferenceSubset(t *testing.T) {
	a := FromSlice([]dimension.Dim{dim(0, "t"), dim(0, "s")})
	b := FromSlice([]dimension.Dim{dim(0, "s")})

	if !b.IsSubset(a) {
		t.Fatalf("%v should be a subset of %v", b, a)
	}
	if a.IsSubset(b) {
		t.Fatalf("%v should not be a subset of %v", a, b)
	}

	u := a.Union(b)
	if u.Len() != 2 {
		t.Fatalf("union len = %d, want 2", u.Len())
	}

	diff := a.Difference(b)
	if diff.Len() != 1 || !diff.Contains(dim(0, "t")) {
		t.Fatalf("difference = %v, want {t}", diff)
	}
}

func TestPushIdempotent(t *testing.T) {
	d := New()
	if !d.Push(dim(0, "t")) {
		t.Fatal("first push should report true")
	}
	if d.Push(dim(0, "t")) {
		t.Fatal("second push of the same dim should report false")
	}
	if d.Len() != 1 {
		t.Fatalf("len = %d, want 1", d.Len())
	}
}

func TestEmptyDomainIsSubsetOfAnything(t *testing.T) {
	if !New().IsSubset(New()) {
		t.Fatal("empty domain must be a subset of the empty domain")
	}
}
