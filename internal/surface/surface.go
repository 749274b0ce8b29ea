// Package surface is the parser-facing input language (spec.md §4.4,
// §6): an L1 tree with no dimensions or quantifiers of its own. The
// desugarer (internal/desugar) lowers it to an internal/ast (L0) tree,
// assigning every dimension along the way. Grounded on
// original_source/src/expression.rs's L1* types and lib.rs's
// transform_l1_dimensions.
package surface

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/translucid-lang/tlcore/internal/srcpos"
)

// Expr is the interface implemented by every L1 node.
type Expr interface {
	Position() srcpos.Pos
	String() string
	exprNode()
}

type node struct {
	Pos srcpos.Pos
}

func (n node) Position() srcpos.Pos { return n.Pos }
func (n node) exprNode()            {}

// Lit is a boolean or u32 literal.
type Lit struct {
	node
	IsBool bool
	B      bool
	N      uint32
}

func NewBoolLit(b bool) *Lit  { return &Lit{IsBool: true, B: b} }
func NewU32Lit(n uint32) *Lit { return &Lit{N: n} }

func (l *Lit) String() string {
	if l.IsBool {
		return strconv.FormatBool(l.B)
	}
	return strconv.FormatUint(uint64(l.N), 10)
}

// Op is a first-class reference to a primitive operator token.
type Op struct {
	node
	Name string
}

func NewOp(name string) *Op  { return &Op{Name: name} }
func (o *Op) String() string { return o.Name }

// Ident is an occurrence of a surface-level name: it may resolve to a
// dimension (if bound by an enclosing WhereDim or abstraction
// parameter), an implicitly-applied name parameter, or a free
// identifier looked up in the environment at evaluation time — which
// of the three is decided entirely by the desugarer (spec.md §4.4).
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

// TupleBuilder constructs a context value from (dim, ord) pairs.
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

// App is a generic application: f(args...). The desugarer always
// lowers it to ast.App, a primitive-operator call; calls of named
// functions are written as FunctionApplication instead.
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

// WhereVarBinding is one (id, expr) entry of a WhereVar's binding list.
type WhereVarBinding struct {
	ID  string
	RHS Expr
}

// WhereVar merges a set of (id, expr) bindings into the environment
// visible to LHS.
type WhereVar struct {
	node
	LHS   Expr
	Binds []WhereVarBinding
}

func NewWhereVar(lhs Expr, binds []WhereVarBinding) *WhereVar {
	return &WhereVar{LHS: lhs, Binds: binds}
}
func (w *WhereVar) String() string {
	parts := make([]string, len(w.Binds))
	for i, b := range w.Binds {
		parts[i] = fmt.Sprintf("%s = %s", b.ID, b.RHS)
	}
	return fmt.Sprintf("%s where %s", w.LHS, strings.Join(parts, "; "))
}

// Query is the observable form of context access: `#.e`.
type Query struct {
	node
	Expr Expr
}

func NewQuery(e Expr) *Query     { return &Query{Expr: e} }
func (q *Query) String() string  { return fmt.Sprintf("#.%s", q.Expr) }

// Perturb evaluates LHS under the context produced by perturbing the
// ambient context with the value RHS evaluates to.
type Perturb struct {
	node
	LHS Expr
	RHS Expr
}

func NewPerturb(lhs, rhs Expr) *Perturb { return &Perturb{LHS: lhs, RHS: rhs} }
func (p *Perturb) String() string      { return fmt.Sprintf("%s @ %s", p.LHS, p.RHS) }

// BaseAbs is a single-parameter base abstraction: `\base x -> body`.
// Multi-parameter base abstractions desugar to nested BaseAbs nodes
// one identifier at a time (spec.md §4.4), matching
// original_source/src/expression.rs's L1BaseAbstraction (always a lone
// `id`).
type BaseAbs struct {
	node
	Param string
	Body  Expr
}

func NewBaseAbs(param string, body Expr) *BaseAbs { return &BaseAbs{Param: param, Body: body} }
func (b *BaseAbs) String() string                 { return fmt.Sprintf("\\base %s -> %s", b.Param, b.Body) }

// ValueAbs is a single-parameter value abstraction: `\value x -> body`.
// Not present in the oldest original_source chunk of lib.rs, but
// present as Expression::ValueAbstraction in evaluator.rs (the larger,
// more complete chunk retrieved for this pack) — the surface form
// mirrors BaseAbs.
type ValueAbs struct {
	node
	Param string
	Body  Expr
}

func NewValueAbs(param string, body Expr) *ValueAbs { return &ValueAbs{Param: param, Body: body} }
func (v *ValueAbs) String() string                  { return fmt.Sprintf("\\value %s -> %s", v.Param, v.Body) }

// BaseApp applies a BaseAbs value to a single argument by substitution.
type BaseApp struct {
	node
	LHS Expr
	Arg Expr
}

func NewBaseApp(lhs, arg Expr) *BaseApp { return &BaseApp{LHS: lhs, Arg: arg} }
func (a *BaseApp) String() string       { return fmt.Sprintf("%s!%s", a.LHS, a.Arg) }

// ValueApp applies a ValueAbs value to a single argument by context
// perturbation.
type ValueApp struct {
	node
	LHS Expr
	Arg Expr
}

func NewValueApp(lhs, arg Expr) *ValueApp { return &ValueApp{LHS: lhs, Arg: arg} }
func (a *ValueApp) String() string        { return fmt.Sprintf("%s@%s", a.LHS, a.Arg) }

// FunctionDecl is a multi-flavour function declaration (spec.md §4.4):
// base parameters bind by substitution, value parameters by context
// perturbation, name parameters by deferred (intensional) evaluation.
// Any of the three lists may be empty.
type FunctionDecl struct {
	node
	BaseParams  []string
	ValueParams []string
	NameParams  []string
	Body        Expr
}

func NewFunctionDecl(baseParams, valueParams, nameParams []string, body Expr) *FunctionDecl {
	return &FunctionDecl{BaseParams: baseParams, ValueParams: valueParams, NameParams: nameParams, Body: body}
}
func (f *FunctionDecl) String() string {
	return fmt.Sprintf("fun(%v; %v; %v) -> %s", f.BaseParams, f.ValueParams, f.NameParams, f.Body)
}

// FunctionApplication calls a named FunctionDecl binding with three
// positional argument groups, mirroring its declaration's three
// parameter lists.
type FunctionApplication struct {
	node
	ID        string
	BaseArgs  []Expr
	ValueArgs []Expr
	NameArgs  []Expr
}

func NewFunctionApplication(id string, baseArgs, valueArgs, nameArgs []Expr) *FunctionApplication {
	return &FunctionApplication{ID: id, BaseArgs: baseArgs, ValueArgs: valueArgs, NameArgs: nameArgs}
}
func (f *FunctionApplication) String() string {
	return fmt.Sprintf("%s!%v@%v#%v", f.ID, f.BaseArgs, f.ValueArgs, f.NameArgs)
}

// IntensionBuilder captures the listed dimensions and closes over
// Value as a deferred expression.
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

// IntensionApp re-opens an intension under the caller's context.
type IntensionApp struct {
	node
	Expr Expr
}

func NewIntensionApp(e Expr) *IntensionApp { return &IntensionApp{Expr: e} }
func (a *IntensionApp) String() string     { return fmt.Sprintf("|>%s", a.Expr) }

// DimBinding is one (identifier, expr) entry of a WhereDim's binding
// list; the identifier becomes a fresh hidden dimension per
// activation, not a literal Dim (that assignment is the desugarer's
// job).
type DimBinding struct {
	ID  string
	RHS Expr
}

// WhereDim introduces a set of dimensions, each fresh per activation,
// scoped over LHS (spec.md §4.3, §4.4).
type WhereDim struct {
	node
	LHS   Expr
	Binds []DimBinding
}

func NewWhereDim(lhs Expr, binds []DimBinding) *WhereDim {
	return &WhereDim{LHS: lhs, Binds: binds}
}
func (w *WhereDim) String() string {
	parts := make([]string, len(w.Binds))
	for i, b := range w.Binds {
		parts[i] = fmt.Sprintf("%s <- %s", b.ID, b.RHS)
	}
	return fmt.Sprintf("%s wheredim %s", w.LHS, strings.Join(parts, "; "))
}
