// Package domain implements the Domain component (spec.md §3, §4.1): a
// finite set of dimensions with union, difference, subset and membership,
// grounded on original_source/src/domain.rs's HashSet<Dimension> wrapper.
package domain

import (
	"sort"
	"strings"

	"github.com/translucid-lang/tlcore/internal/dimension"
)

// Domain is an immutable-by-convention set of Dim. Mutating methods
// (Push) are provided for the accumulation loops the desugarer and
// evaluator both run (original's `&mut self` API); the rest return a new
// Domain and leave the receiver untouched.
type Domain struct {
	m map[string]dimension.Dim
}

// New returns the empty domain.
func New() Domain {
	return Domain{m: map[string]dimension.Dim{}}
}

// FromSlice builds a Domain from a slice of dimensions.
func FromSlice(dims []dimension.Dim) Domain {
	d := New()
	for _, x := range dims {
		d.Push(x)
	}
	return d
}

// Push inserts x into the domain in place, returning true if it was not
// already present.
func (d *Domain) Push(x dimension.Dim) bool {
	if d.m == nil {
		d.m = map[string]dimension.Dim{}
	}
	if _, ok := d.m[x.Key()]; ok {
		return false
	}
	d.m[x.Key()] = x
	return true
}

// Contains reports whether x is in the domain.
func (d Domain) Contains(x dimension.Dim) bool {
	_, ok := d.m[x.Key()]
	return ok
}

// Len returns the number of dimensions in the domain.
func (d Domain) Len() int { return len(d.m) }

// Union returns a new domain containing the dimensions of both operands.
func (d Domain) Union(other Domain) Domain {
	r := New()
	for _, x := range d.m {
		r.Push(x)
	}
	for _, x := range other.m {
		r.Push(x)
	}
	return r
}

// Difference returns a new domain with other's dimensions removed.
func (d Domain) Difference(other Domain) Domain {
	r := New()
	for _, x := range d.m {
		if !other.Contains(x) {
			r.Push(x)
		}
	}
	return r
}

// IsSubset reports whether every dimension of d is also in other.
func (d Domain) IsSubset(other Domain) bool {
	for _, x := range d.m {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

// ToSlice returns the domain's dimensions sorted by key for deterministic
// iteration (debugging, tracing); semantics never depend on this order.
func (d Domain) ToSlice() []dimension.Dim {
	out := make([]dimension.Dim, 0, len(d.m))
	for _, x := range d.m {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

func (d Domain) String() string {
	parts := make([]string, 0, len(d.m))
	for _, x := range d.ToSlice() {
		parts = append(parts, x.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
