// Package desugar lowers an internal/surface (L1) tree to an
// internal/ast (L0) tree (spec.md §4.4), grounded on
// original_source/src/lib.rs's transform_l1_dimensions. The identifier
// → dimension map and name-parameter set are threaded as shared
// mutable state and are never restored on scope exit, matching the
// original's &mut HashMap: a WhereDim or abstraction parameter that
// shadows an outer identifier stays shadowed for every subsequent
// sibling expression, not just its own lexical body. This is a known
// quirk of the source, preserved rather than fixed (see DESIGN.md).
//
// Every identifier and dimension-tag spelling is run through
// internal/lexer.Normalize before becoming an M/N key or a Dim's Ident
// tag (spec.md §2.6), so two differently-encoded spellings of the same
// name collide to one dimension.
package desugar

import (
	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/dimension"
	"github.com/translucid-lang/tlcore/internal/domain"
	"github.com/translucid-lang/tlcore/internal/errors"
	"github.com/translucid-lang/tlcore/internal/lexer"
	"github.com/translucid-lang/tlcore/internal/surface"
)

// normalizeName runs an identifier or dimension-tag spelling through the
// BOM-strip + NFC boundary (spec.md §2.6) before it is used as an M/N key
// or folded into a Dim's Ident tag, so two differently-encoded spellings
// of the same name collide to the same dimension/environment key.
func normalizeName(s string) string {
	return string(lexer.Normalize([]byte(s)))
}

// state is the mutable context threaded through every transform call.
type state struct {
	M map[string]dimension.Dim // identifier -> dimension, for base/value params and WhereDim binds
	N map[string]bool          // identifiers bound as name parameters
	Q *domain.Domain           // accumulated WhereDim quantifier dimensions
}

// Transform lowers a complete surface tree to L0, returning the set of
// quantifier dimensions (Q) the driver must seed into K and D (spec.md
// §4.5 step 4).
func Transform(e surface.Expr) (ast.Expr, domain.Domain, error) {
	q0 := domain.New()
	st := &state{M: map[string]dimension.Dim{}, N: map[string]bool{}, Q: &q0}
	out, err := transform(e, st, 0)
	if err != nil {
		return nil, domain.Domain{}, err
	}
	return out, *st.Q, nil
}

func paramDim(id string) dimension.Dim {
	return dimension.New(0, dimension.Ident(id))
}

func transform(e surface.Expr, st *state, q uint32) (ast.Expr, error) {
	switch n := e.(type) {

	case *surface.Lit:
		if n.IsBool {
			return ast.NewBoolLit(n.B), nil
		}
		return ast.NewU32Lit(n.N), nil

	case *surface.Op:
		return ast.NewOp(n.Name), nil

	case *surface.Ident:
		name := normalizeName(n.Name)
		if dim, ok := st.M[name]; ok {
			return ast.NewDim(dim), nil
		}
		if st.N[name] {
			return ast.NewIntensionApp(ast.NewDim(paramDim(name))), nil
		}
		return ast.NewIdent(name), nil

	case *surface.Seq:
		out := make([]ast.Expr, len(n.Exprs))
		for i, sub := range n.Exprs {
			v, err := transform(sub, st, q)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return ast.NewSeq(out), nil

	case *surface.TupleBuilder:
		pairs := make([]ast.TuplePair, len(n.Pairs))
		for i, p := range n.Pairs {
			lhs, err := transform(p.LHS, st, q)
			if err != nil {
				return nil, err
			}
			rhs, err := transform(p.RHS, st, q)
			if err != nil {
				return nil, err
			}
			pairs[i] = ast.TuplePair{LHS: lhs, RHS: rhs}
		}
		return ast.NewTupleBuilder(pairs), nil

	case *surface.App:
		out := make([]ast.Expr, len(n.Exprs))
		for i, sub := range n.Exprs {
			v, err := transform(sub, st, q)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return ast.NewApp(out), nil

	case *surface.If:
		cond, err := transform(n.Cond, st, q)
		if err != nil {
			return nil, err
		}
		then, err := transform(n.Then, st, q)
		if err != nil {
			return nil, err
		}
		els, err := transform(n.Else, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewIf(cond, then, els), nil

	case *surface.WhereVar:
		env := ast.NewEnvironment()
		for _, b := range n.Binds {
			v, err := transform(b.RHS, st, q)
			if err != nil {
				return nil, err
			}
			env.Define(normalizeName(b.ID), v)
		}
		lhs, err := transform(n.LHS, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewWhereVar(lhs, env), nil

	case *surface.Query:
		v, err := transform(n.Expr, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewQuery(v), nil

	case *surface.Perturb:
		lhs, err := transform(n.LHS, st, q)
		if err != nil {
			return nil, err
		}
		rhs, err := transform(n.RHS, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewPerturb(lhs, rhs), nil

	case *surface.BaseAbs:
		param := normalizeName(n.Param)
		dim := paramDim(param)
		st.M[param] = dim
		body, err := transform(n.Body, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewBaseAbs([]dimension.Dim{dim}, body), nil

	case *surface.ValueAbs:
		param := normalizeName(n.Param)
		dim := paramDim(param)
		st.M[param] = dim
		body, err := transform(n.Body, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewValueAbs([]dimension.Dim{dim}, body), nil

	case *surface.BaseApp:
		lhs, err := transform(n.LHS, st, q)
		if err != nil {
			return nil, err
		}
		arg, err := transform(n.Arg, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewBaseApp(lhs, []ast.Expr{arg}), nil

	case *surface.ValueApp:
		lhs, err := transform(n.LHS, st, q)
		if err != nil {
			return nil, err
		}
		arg, err := transform(n.Arg, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewValueApp(lhs, []ast.Expr{arg}), nil

	case *surface.FunctionDecl:
		return transformFunctionDecl(n, st, q)

	case *surface.FunctionApplication:
		return transformFunctionApplication(n, st, q)

	case *surface.IntensionBuilder:
		dom := make([]ast.Expr, len(n.Domain))
		for i, d := range n.Domain {
			v, err := transform(d, st, q)
			if err != nil {
				return nil, err
			}
			dom[i] = v
		}
		val, err := transform(n.Value, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewIntensionBuilder(dom, val), nil

	case *surface.IntensionApp:
		v, err := transform(n.Expr, st, q)
		if err != nil {
			return nil, err
		}
		return ast.NewIntensionApp(v), nil

	case *surface.WhereDim:
		return transformWhereDim(n, st, q)
	}

	return nil, errors.WrapReport(errors.New(errors.DSG002, "malformed or unrecognised surface node", nil, nil))
}

// transformFunctionDecl lowers a multi-flavour declaration into nested
// BaseAbs/ValueAbs, folding the name layer onto the ValueAbs (spec.md
// §4.4): each is omitted when its parameter list is empty.
func transformFunctionDecl(n *surface.FunctionDecl, st *state, q uint32) (ast.Expr, error) {
	baseDims := make([]dimension.Dim, len(n.BaseParams))
	for i, rawID := range n.BaseParams {
		id := normalizeName(rawID)
		dim := paramDim(id)
		st.M[id] = dim
		baseDims[i] = dim
	}
	valueDims := make([]dimension.Dim, 0, len(n.ValueParams)+len(n.NameParams))
	for _, rawID := range n.ValueParams {
		id := normalizeName(rawID)
		dim := paramDim(id)
		st.M[id] = dim
		valueDims = append(valueDims, dim)
	}
	for _, rawID := range n.NameParams {
		id := normalizeName(rawID)
		dim := paramDim(id)
		st.N[id] = true
		valueDims = append(valueDims, dim)
	}

	body, err := transform(n.Body, st, q)
	if err != nil {
		return nil, err
	}

	out := body
	if len(valueDims) > 0 {
		out = ast.NewValueAbs(valueDims, out)
	}
	if len(baseDims) > 0 {
		out = ast.NewBaseAbs(baseDims, out)
	}
	return out, nil
}

// transformFunctionApplication lowers {id, base_args, value_args,
// name_args} to FunApp{id, base_args, value_args ++ wrapped name_args}
// (spec.md §4.4): each name argument is wrapped as an empty-domain
// intension so the callee's IntensionApp materialises it lazily.
func transformFunctionApplication(n *surface.FunctionApplication, st *state, q uint32) (ast.Expr, error) {
	baseArgs := make([]ast.Expr, len(n.BaseArgs))
	for i, a := range n.BaseArgs {
		v, err := transform(a, st, q)
		if err != nil {
			return nil, err
		}
		baseArgs[i] = v
	}
	valueArgs := make([]ast.Expr, 0, len(n.ValueArgs)+len(n.NameArgs))
	for _, a := range n.ValueArgs {
		v, err := transform(a, st, q)
		if err != nil {
			return nil, err
		}
		valueArgs = append(valueArgs, v)
	}
	for _, a := range n.NameArgs {
		v, err := transform(a, st, q)
		if err != nil {
			return nil, err
		}
		valueArgs = append(valueArgs, ast.NewIntensionBuilder(nil, v))
	}
	return ast.NewFunApp(normalizeName(n.ID), baseArgs, valueArgs), nil
}

// transformWhereDim allocates one dimension per binding (indexed 0..n
// within this node), registers them in M, transforms lhs at depth q+1,
// and mints the quantifier dimension Dim{q, "φ"} (spec.md §4.4),
// grounded on original_source/src/lib.rs's WhereDim arm.
func transformWhereDim(n *surface.WhereDim, st *state, q uint32) (ast.Expr, error) {
	binds := make([]ast.DimBinding, len(n.Binds))
	for i, b := range n.Binds {
		id := normalizeName(b.ID)
		dim := dimension.New(uint32(i), dimension.Ident(id))
		st.M[id] = dim
		rhs, err := transform(b.RHS, st, q)
		if err != nil {
			return nil, err
		}
		binds[i] = ast.DimBinding{Dim: dim, RHS: rhs}
	}

	lhs, err := transform(n.LHS, st, q+1)
	if err != nil {
		return nil, err
	}

	dimQ := dimension.New(q, dimension.Ident("φ"))
	st.Q.Push(dimQ)

	return ast.NewWhereDim(q, dimQ, lhs, binds), nil
}
