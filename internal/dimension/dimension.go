// Package dimension implements the Dimension component of the value
// algebra (spec.md §3, §4.1): a dimension is a pair (i, v) disambiguating
// dynamically generated dimensions from the same source identifier
// activated at different depths. Equality and hashing are structural over
// both fields, grounded on original_source/src/value.rs's Dimension and
// its derived Hash/PartialEq.
package dimension

import (
	"fmt"
	"strconv"
)

// Tag is the restricted set of values a Dimension's v field may carry: an
// identifier name (declared dimensions) or an integer literal (dimensions
// generated per-activation by WhereDim). This mirrors the comment in
// spec.md §3: "v typically carries the identifier name (or, for
// generated dimensions, an integer tag)".
type Tag interface {
	tag()
	String() string
	Key() string
}

// Ident is a dimension tag carrying a declared identifier's name.
type Ident string

func (Ident) tag()            {}
func (i Ident) String() string { return string(i) }
func (i Ident) Key() string    { return "i:" + string(i) }

// U32 is a dimension tag carrying a generated depth/quantifier value.
type U32 uint32

func (U32) tag()              {}
func (n U32) String() string  { return strconv.FormatUint(uint64(n), 10) }
func (n U32) Key() string     { return "n:" + n.String() }

// Dim is the (i, v) pair identifying a dimension.
type Dim struct {
	I uint32
	V Tag
}

// New constructs a Dim from its two fields.
func New(i uint32, v Tag) Dim { return Dim{I: i, V: v} }

// Key returns a canonical string encoding both fields, used anywhere this
// module needs Dim as a map key (Domain membership, Cache keys) since a Go
// map key must be comparable and Tag is an interface that may wrap
// non-comparable implementations in the future.
func (d Dim) Key() string { return fmt.Sprintf("%d|%s", d.I, d.V.Key()) }

func (d Dim) String() string { return fmt.Sprintf("(%d:%s)", d.I, d.V.String()) }

// Equal reports structural equality over both fields.
func (d Dim) Equal(o Dim) bool { return d.Key() == o.Key() }
