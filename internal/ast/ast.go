// Package ast is the evaluator's input language: the L0 AST produced by
// desugaring the surface (L1) tree (spec.md §3, §4.3). Every Dim node in an
// L0 tree was produced by the desugarer; no L0 dimension is created at
// evaluation time except via WhereDim generation (spec.md §3 invariants).
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/translucid-lang/tlcore/internal/dimension"
	"github.com/translucid-lang/tlcore/internal/srcpos"
)

// Expr is the interface implemented by every L0 node.
type Expr interface {
	Position() srcpos.Pos
	String() string
	exprNode()
}

// node embeds a position and anchors the exprNode marker so concrete
// types don't each repeat Position().
type node struct {
	Pos srcpos.Pos
}

func (n node) Position() srcpos.Pos { return n.Pos }
func (n node) exprNode()            {}

// Lit is a boolean or u32 literal (spec.md §3: Lit(Bool | U32)).
type Lit struct {
	node
	IsBool bool
	B      bool
	N      uint32
}

func NewBoolLit(b bool) *Lit { return &Lit{IsBool: true, B: b} }
func NewU32Lit(n uint32) *Lit { return &Lit{N: n} }

func (l *Lit) String() string {
	if l.IsBool {
		return strconv.FormatBool(l.B)
	}
	return strconv.FormatUint(uint64(l.N), 10)
}

// DimExpr is a reference to a dimension, assigned by the desugarer.
type DimExpr struct {
	node
	D dimension.Dim
}

func NewDim(d dimension.Dim) *DimExpr { return &DimExpr{D: d} }

func (d *DimExpr) String() string { return d.D.String() }

// Op is a first-class reference to a primitive operator token.
type Op struct {
	node
	Name string
}

func NewOp(name string) *Op { return &Op{Name: name} }
func (o *Op) String() string { return o.Name }

// Ident is a free identifier, resolved through the Environment at
// evaluation time via the fixpoint lookup (spec.md §4.3.1).
type Ident struct {
	node
	Name string
}

func NewIdent(name string) *Ident { return &Ident{Name: name} }
func (i *Ident) String() string   { return i.Name }

// Seq evaluates each element in order and returns the last.
type Seq struct {
	node
	Exprs []Expr
}

func NewSeq(exprs []Expr) *Seq { return &Seq{Exprs: exprs} }
func (s *Seq) String() string {
	parts := make([]string, len(s.Exprs))
	for i, e := range s.Exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}

// TuplePair is one (dimension-expr, value-expr) entry of a TupleBuilder.
type TuplePair struct {
	LHS Expr
	RHS Expr
}

// TupleBuilder constructs a Context value from (dim, ord) pairs.
type TupleBuilder struct {
	node
	Pairs []TuplePair
}

func NewTupleBuilder(pairs []TuplePair) *TupleBuilder { return &TupleBuilder{Pairs: pairs} }
func (t *TupleBuilder) String() string {
	parts := make([]string, len(t.Pairs))
	for i, p := range t.Pairs {
		parts[i] = fmt.Sprintf("%s <- %s", p.LHS, p.RHS)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// BaseAbs is a base-parameter abstraction: arguments substitute directly
// into the body under the caller's unmodified context.
type BaseAbs struct {
	node
	Dims []dimension.Dim
	Body Expr
}

func NewBaseAbs(dims []dimension.Dim, body Expr) *BaseAbs { return &BaseAbs{Dims: dims, Body: body} }
func (b *BaseAbs) String() string {
	return fmt.Sprintf("\\base%v -> %s", b.Dims, b.Body)
}

// ValueAbs is a value-parameter abstraction: arguments perturb the
// context the body is evaluated under.
type ValueAbs struct {
	node
	Dims []dimension.Dim
	Body Expr
}

func NewValueAbs(dims []dimension.Dim, body Expr) *ValueAbs { return &ValueAbs{Dims: dims, Body: body} }
func (v *ValueAbs) String() string {
	return fmt.Sprintf("\\value%v -> %s", v.Dims, v.Body)
}

// BaseApp applies a BaseAbs to positional arguments via substitution.
type BaseApp struct {
	node
	LHS  Expr
	Args []Expr
}

func NewBaseApp(lhs Expr, args []Expr) *BaseApp { return &BaseApp{LHS: lhs, Args: args} }
func (a *BaseApp) String() string { return fmt.Sprintf("%s!%v", a.LHS, a.Args) }

// ValueApp applies a ValueAbs to positional arguments via context
// perturbation.
type ValueApp struct {
	node
	LHS  Expr
	Args []Expr
}

func NewValueApp(lhs Expr, args []Expr) *ValueApp { return &ValueApp{LHS: lhs, Args: args} }
func (a *ValueApp) String() string { return fmt.Sprintf("%s@%v", a.LHS, a.Args) }

// FunApp looks an identifier up in the Environment and applies base
// arguments (by substitution), then value arguments (by perturbation).
type FunApp struct {
	node
	ID        string
	BaseArgs  []Expr
	ValueArgs []Expr
}

func NewFunApp(id string, baseArgs, valueArgs []Expr) *FunApp {
	return &FunApp{ID: id, BaseArgs: baseArgs, ValueArgs: valueArgs}
}
func (f *FunApp) String() string {
	return fmt.Sprintf("%s!%v@%v", f.ID, f.BaseArgs, f.ValueArgs)
}

// IntensionBuilder captures the current context restricted to the domain
// named by Domain, closing over Value as a deferred expression.
type IntensionBuilder struct {
	node
	Domain []Expr
	Value  Expr
}

func NewIntensionBuilder(domain []Expr, value Expr) *IntensionBuilder {
	return &IntensionBuilder{Domain: domain, Value: value}
}
func (b *IntensionBuilder) String() string {
	parts := make([]string, len(b.Domain))
	for i, d := range b.Domain {
		parts[i] = d.String()
	}
	return fmt.Sprintf("{%s} %s", strings.Join(parts, ", "), b.Value)
}

// IntensionApp re-opens an intension under the caller's perturbed context.
type IntensionApp struct {
	node
	Expr Expr
}

func NewIntensionApp(e Expr) *IntensionApp { return &IntensionApp{Expr: e} }
func (a *IntensionApp) String() string     { return fmt.Sprintf("|>%s", a.Expr) }

// App is a primitive-operator call: the first element must evaluate to an
// Ident naming a known primitive.
type App struct {
	node
	Exprs []Expr
}

func NewApp(exprs []Expr) *App { return &App{Exprs: exprs} }
func (a *App) String() string {
	parts := make([]string, len(a.Exprs))
	for i, e := range a.Exprs {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// If is the conditional form.
type If struct {
	node
	Cond Expr
	Then Expr
	Else Expr
}

func NewIf(cond, then, els Expr) *If { return &If{Cond: cond, Then: then, Else: els} }
func (i *If) String() string {
	return fmt.Sprintf("if %s then %s else %s", i.Cond, i.Then, i.Else)
}

// WhereVar merges RHS into the caller-visible environment before
// evaluating LHS (last-write-wins, no scope pop).
type WhereVar struct {
	node
	LHS Expr
	RHS *Environment
}

func NewWhereVar(lhs Expr, rhs *Environment) *WhereVar { return &WhereVar{LHS: lhs, RHS: rhs} }
func (w *WhereVar) String() string                     { return fmt.Sprintf("%s where %s", w.LHS, w.RHS) }

// Query is the observable form of context access: `#.e`.
type Query struct {
	node
	Expr Expr
}

func NewQuery(e Expr) *Query { return &Query{Expr: e} }
func (q *Query) String() string { return fmt.Sprintf("#.%s", q.Expr) }

// Perturb evaluates LHS under the context produced by perturbing the
// ambient context with the Ctx value RHS evaluates to.
type Perturb struct {
	node
	LHS Expr
	RHS Expr
}

func NewPerturb(lhs, rhs Expr) *Perturb { return &Perturb{LHS: lhs, RHS: rhs} }
func (p *Perturb) String() string      { return fmt.Sprintf("%s @ %s", p.LHS, p.RHS) }

// DimBinding is one (dimension, expr) entry of a WhereDim's rhs.
type DimBinding struct {
	Dim dimension.Dim
	RHS Expr
}

// WhereDim introduces a lexical scope that freshens its declared
// dimensions per activation, indexed by the static quantifier nat_q
// (spec.md §4.3, §4.4).
type WhereDim struct {
	node
	NatQ  uint32
	DimQ  dimension.Dim
	LHS   Expr
	Binds []DimBinding
}

func NewWhereDim(natQ uint32, dimQ dimension.Dim, lhs Expr, binds []DimBinding) *WhereDim {
	return &WhereDim{NatQ: natQ, DimQ: dimQ, LHS: lhs, Binds: binds}
}
func (w *WhereDim) String() string {
	parts := make([]string, len(w.Binds))
	for i, b := range w.Binds {
		parts[i] = fmt.Sprintf("%s <- %s", b.Dim, b.RHS)
	}
	return fmt.Sprintf("%s wheredim[%d] %s", w.LHS, w.NatQ, strings.Join(parts, "; "))
}
