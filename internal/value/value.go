// Package value implements the runtime Value algebra (spec.md §3): an
// immutable tagged sum of booleans, 32-bit unsigned integers, dimensions,
// intensions, base/value/name abstractions, contexts and
// identifiers/primitive-operator tokens. Grounded on
// original_source/src/value.rs's Value enum and the teacher's
// internal/eval/value.go tagged-interface style.
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/dimension"
	"github.com/translucid-lang/tlcore/internal/domain"
)

// Kind tags which variant of the Value sum a value is.
type Kind int

const (
	KindBool Kind = iota
	KindU32
	KindDim
	KindIntension
	KindBaseAbs
	KindValueAbs
	KindNameAbs
	KindIdent
	KindCtx
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindU32:
		return "u32"
	case KindDim:
		return "dim"
	case KindIntension:
		return "intension"
	case KindBaseAbs:
		return "base_abs"
	case KindValueAbs:
		return "value_abs"
	case KindNameAbs:
		return "name_abs"
	case KindIdent:
		return "ident"
	case KindCtx:
		return "ctx"
	default:
		return "unknown"
	}
}

// Value is the interface implemented by every variant of the runtime
// value sum. Key returns a canonical string used by Cache and by Context
// tuple equality; it is not meant for display (use String for that).
type Value interface {
	Kind() Kind
	String() string
	Key() string
}

// Bool is a boolean literal value.
type Bool bool

func (Bool) Kind() Kind          { return KindBool }
func (b Bool) String() string    { return strconv.FormatBool(bool(b)) }
func (b Bool) Key() string       { return "b:" + b.String() }

// U32 is a 32-bit unsigned integer literal value.
type U32 uint32

func (U32) Kind() Kind         { return KindU32 }
func (n U32) String() string   { return strconv.FormatUint(uint64(n), 10) }
func (n U32) Key() string      { return "n:" + n.String() }

// DimValue wraps a dimension reference as a first-class value (e.g. the
// lhs of a TupleBuilder pair, or a value passed to IntensionBuilder).
type DimValue struct {
	D dimension.Dim
}

func (DimValue) Kind() Kind          { return KindDim }
func (d DimValue) String() string    { return d.D.String() }
func (d DimValue) Key() string       { return "d:" + d.D.Key() }

// Ident is a first-class reference to a primitive operator token or an
// otherwise-unresolved identifier (spec.md §4.3's Op rule: `Op(id)` ->
// `Left(Ident(id))`).
type Ident string

func (Ident) Kind() Kind        { return KindIdent }
func (i Ident) String() string  { return string(i) }
func (i Ident) Key() string     { return "id:" + string(i) }

// Tuple is one (dimension, ordinate) entry of a Context.
type Tuple struct {
	Dim dimension.Dim
	Ord Value
}

// Context is the ordered list of (dimension, value) tuples (spec.md §3,
// §4.1). Ordering never affects semantics but is fixed to make debugging
// deterministic, grounded on original_source/src/context.rs.
type Context struct {
	Tuples []Tuple
}

// NewContext returns the empty context.
func NewContext() Context { return Context{} }

// Push appends a (dim, value) tuple.
func (c Context) Push(d dimension.Dim, v Value) Context {
	out := make([]Tuple, len(c.Tuples), len(c.Tuples)+1)
	copy(out, c.Tuples)
	out = append(out, Tuple{Dim: d, Ord: v})
	return Context{Tuples: out}
}

// Lookup returns the ordinate of the first tuple matching d, or false.
func (c Context) Lookup(d dimension.Dim) (Value, bool) {
	for _, t := range c.Tuples {
		if t.Dim.Equal(d) {
			return t.Ord, true
		}
	}
	return nil, false
}

// Domain returns the set of dimensions appearing in the context.
func (c Context) Domain() domain.Domain {
	d := domain.New()
	for _, t := range c.Tuples {
		d.Push(t.Dim)
	}
	return d
}

// Restrict returns a new context keeping only tuples whose dimension is
// in dom.
func (c Context) Restrict(dom domain.Domain) Context {
	out := make([]Tuple, 0, len(c.Tuples))
	for _, t := range c.Tuples {
		if dom.Contains(t.Dim) {
			out = append(out, t)
		}
	}
	return Context{Tuples: out}
}

// Perturb yields (tuples of c whose dimension is not in other's domain)
// ++ (tuples of other), preserving c's residual ordering (spec.md §3).
func (c Context) Perturb(other Context) Context {
	otherDom := other.Domain()
	out := make([]Tuple, 0, len(c.Tuples)+len(other.Tuples))
	for _, t := range c.Tuples {
		if !otherDom.Contains(t.Dim) {
			out = append(out, t)
		}
	}
	out = append(out, other.Tuples...)
	return Context{Tuples: out}
}

// Key returns a canonical string uniquely determined by the tuple
// sequence, used as part of the Cache key.
func (c Context) Key() string {
	parts := make([]string, len(c.Tuples))
	for i, t := range c.Tuples {
		parts[i] = t.Dim.Key() + "=" + t.Ord.Key()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (c Context) String() string {
	parts := make([]string, len(c.Tuples))
	for i, t := range c.Tuples {
		parts[i] = fmt.Sprintf("%s <- %s", t.Dim, t.Ord)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// CtxValue wraps a Context as a first-class value.
type CtxValue struct {
	K Context
}

func (CtxValue) Kind() Kind         { return KindCtx }
func (c CtxValue) String() string   { return c.K.String() }
func (c CtxValue) Key() string      { return "ctx:" + c.K.Key() }

// Intension is a first-class deferred computation: a captured restricted
// context together with its declared domain and the deferred body
// (spec.md §3, the "richer shape" adopted per §9's open question).
type Intension struct {
	K    Context
	D    domain.Domain
	Body ast.Expr
}

func (i *Intension) Kind() Kind { return KindIntension }
func (i *Intension) String() string {
	return fmt.Sprintf("{%s} %s", i.D.String(), i.Body)
}
func (i *Intension) Key() string {
	return fmt.Sprintf("intension:%s|%p", i.K.Key(), i.Body)
}

// BaseAbs is a base-parameter abstraction value.
type BaseAbs struct {
	Dims []dimension.Dim
	Body ast.Expr
}

func (b *BaseAbs) Kind() Kind   { return KindBaseAbs }
func (b *BaseAbs) String() string { return fmt.Sprintf("\\base%v -> %s", b.Dims, b.Body) }
func (b *BaseAbs) Key() string  { return fmt.Sprintf("baseabs:%v|%p", b.Dims, b.Body) }

// ValueAbs is a value-parameter abstraction value.
type ValueAbs struct {
	Dims []dimension.Dim
	Body ast.Expr
}

func (v *ValueAbs) Kind() Kind    { return KindValueAbs }
func (v *ValueAbs) String() string { return fmt.Sprintf("\\value%v -> %s", v.Dims, v.Body) }
func (v *ValueAbs) Key() string  { return fmt.Sprintf("valueabs:%v|%p", v.Dims, v.Body) }

// NameAbs is reserved for data-model fidelity with spec.md §3's Value
// sum. The desugarer (spec.md §4.4) lowers the name-parameter layer onto
// ValueAbs so the evaluator itself never constructs a NameAbs value, but
// the variant is kept so Value's tagged sum matches the specification
// exactly.
type NameAbs struct {
	Dims []dimension.Dim
	Body ast.Expr
}

func (n *NameAbs) Kind() Kind    { return KindNameAbs }
func (n *NameAbs) String() string { return fmt.Sprintf("\\name%v -> %s", n.Dims, n.Body) }
func (n *NameAbs) Key() string  { return fmt.Sprintf("nameabs:%v|%p", n.Dims, n.Body) }
