package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestPerturbStructuralDiff exercises go-cmp for a deep structural
// comparison of two Contexts, the way internal/parser/testutil.go (teacher,
// since trimmed) used cmp.Diff for golden AST comparisons.
func TestPerturbStructuralDiff(t *testing.T) {
	k := NewContext().
		Push(td(0, "a"), U32(1)).
		Push(td(0, "b"), U32(2))
	k2 := NewContext().Push(td(0, "b"), U32(20))

	got := k.Perturb(k2)
	want := NewContext().
		Push(td(0, "a"), U32(1)).
		Push(td(0, "b"), U32(20))

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Perturb result mismatch (-want +got):\n%s", diff)
	}
}
