// Package eval is the demand-driven evaluator (spec.md §4.3): it walks an
// L0 tree against an explicit context, domain-of-interest and
// environment, returning either a computed value or a missing-dimension
// set the caller must close before retrying. Grounded on
// original_source/src/evaluator.rs's evaluate/evaluate_id1/evaluate_id2.
package eval

import (
	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/cache"
	"github.com/translucid-lang/tlcore/internal/dimension"
	"github.com/translucid-lang/tlcore/internal/domain"
	"github.com/translucid-lang/tlcore/internal/either"
	"github.com/translucid-lang/tlcore/internal/value"
)

// Result is the two-armed outcome every evaluation produces.
type Result = either.Either[value.Value, domain.Domain]

var zero Result

func left(v value.Value) Result      { return either.Left[value.Value, domain.Domain](v) }
func right(d domain.Domain) Result   { return either.Right[value.Value, domain.Domain](d) }

// Eval walks e under environment E, context K, ambient domain dInit and
// current known domain d, threading the memoization cache C through every
// recursive call (spec.md §4.3).
func Eval(e ast.Expr, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	switch n := e.(type) {

	case *ast.Lit:
		if n.IsBool {
			return left(value.Bool(n.B)), nil
		}
		return left(value.U32(n.N)), nil

	case *ast.DimExpr:
		if d.Contains(n.D) {
			v, ok := K.Lookup(n.D)
			if !ok {
				return zero, errTypeError(n, "dimension present in context", n.D)
			}
			return left(v), nil
		}
		miss := domain.New()
		miss.Push(n.D)
		return right(miss), nil

	case *ast.Op:
		return left(value.Ident(n.Name)), nil

	case *ast.Ident:
		return evalIDFix(n, n.Name, E, K, domain.New(), dInit, d, C)

	case *ast.Seq:
		r := right(domain.New())
		for _, sub := range n.Exprs {
			sr, err := Eval(sub, E, K, dInit, d, C)
			if err != nil {
				return zero, err
			}
			r = sr
		}
		return r, nil

	case *ast.TupleBuilder:
		type pending struct {
			dim dimension.Dim
			ord value.Value
		}
		var built []pending
		missing := domain.New()
		for _, p := range n.Pairs {
			lr, err := Eval(p.LHS, E, K, dInit, d, C)
			if err != nil {
				return zero, err
			}
			rr, err := Eval(p.RHS, E, K, dInit, d, C)
			if err != nil {
				return zero, err
			}
			lv, lmiss, lIsRight := lr.Unpack()
			rv, rmiss, rIsRight := rr.Unpack()
			switch {
			case !lIsRight && !rIsRight:
				dim, err := expectDimension(p.LHS, lv)
				if de, direct := p.LHS.(*ast.DimExpr); direct && err != nil {
					// A Dim lhs whose ordinate is not itself a dimension
					// names the tuple's dimension directly.
					dim, err = de.D, nil
				}
				if err != nil {
					return zero, err
				}
				built = append(built, pending{dim, rv})
			case lIsRight && !rIsRight:
				missing = missing.Union(lmiss)
			case !lIsRight && rIsRight:
				missing = missing.Union(rmiss)
			default:
				missing = missing.Union(lmiss).Union(rmiss)
			}
		}
		if missing.Len() > 0 {
			return right(missing), nil
		}
		ctx := value.NewContext()
		for _, b := range built {
			ctx = ctx.Push(b.dim, b.ord)
		}
		return left(value.CtxValue{K: ctx}), nil

	case *ast.BaseAbs:
		return left(&value.BaseAbs{Dims: n.Dims, Body: n.Body}), nil

	case *ast.ValueAbs:
		return left(&value.ValueAbs{Dims: n.Dims, Body: n.Body}), nil

	case *ast.BaseApp:
		return evalBaseApp(n, E, K, dInit, d, C)

	case *ast.ValueApp:
		return evalValueApp(n, E, K, dInit, d, C)

	case *ast.FunApp:
		return evalFunApp(n, E, K, dInit, d, C)

	case *ast.IntensionBuilder:
		return evalIntensionBuilder(n, E, K, dInit, d, C)

	case *ast.IntensionApp:
		return evalIntensionApp(n, E, K, dInit, d, C)

	case *ast.App:
		return evalApp(n, E, K, dInit, d, C)

	case *ast.If:
		return evalIf(n, E, K, dInit, d, C)

	case *ast.WhereVar:
		E.Merge(n.RHS)
		return Eval(n.LHS, E, K, dInit, d, C)

	case *ast.Query:
		return evalQuery(n, E, K, dInit, d, C)

	case *ast.Perturb:
		return evalPerturb(n, E, K, dInit, d, C)

	case *ast.WhereDim:
		return evalWhereDim(n, E, K, dInit, d, C)
	}

	return zero, errTypeError(e, "known L0 node", e)
}

func evalBaseApp(n *ast.BaseApp, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	lr, err := Eval(n.LHS, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	lv, lmiss, lIsRight := lr.Unpack()

	args, missing, err := evalArgs(n.Args, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	if lIsRight {
		missing = missing.Union(lmiss)
	}
	if missing.Len() > 0 {
		return right(missing), nil
	}

	abs, err := expectBaseAbs(n, lv)
	if err != nil {
		return zero, err
	}
	if len(abs.Dims) != len(args) {
		return zero, errArityMismatch(n, len(abs.Dims), len(args))
	}
	// Base arguments are evaluated for their missing/arity effects only;
	// the body re-evaluates under the caller's unmodified context (base
	// parameters are substitution in name, not in the context algebra —
	// preserved faithfully, see DESIGN.md).
	return Eval(abs.Body, E, K, dInit, d, C)
}

func evalValueApp(n *ast.ValueApp, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	lr, err := Eval(n.LHS, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	lv, lmiss, lIsRight := lr.Unpack()

	args, missing, err := evalArgs(n.Args, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	if lIsRight {
		missing = missing.Union(lmiss)
	}
	if missing.Len() > 0 {
		return right(missing), nil
	}

	abs, err := expectValueAbs(n, lv)
	if err != nil {
		return zero, err
	}
	if len(abs.Dims) != len(args) {
		return zero, errArityMismatch(n, len(abs.Dims), len(args))
	}
	ctx := value.NewContext()
	for i, a := range args {
		ctx = ctx.Push(abs.Dims[i], a)
	}
	return Eval(abs.Body, E, K.Perturb(ctx), dInit, d, C)
}

func evalArgs(exprs []ast.Expr, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) ([]value.Value, domain.Domain, error) {
	args := make([]value.Value, 0, len(exprs))
	missing := domain.New()
	for _, a := range exprs {
		r, err := Eval(a, E, K, dInit, d, C)
		if err != nil {
			return nil, domain.Domain{}, err
		}
		v, m, isRight := r.Unpack()
		if isRight {
			missing = missing.Union(m)
		} else {
			args = append(args, v)
		}
	}
	return args, missing, nil
}

func evalFunApp(n *ast.FunApp, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	fnExpr, ok := E.Lookup(n.ID)
	if !ok {
		return zero, errUndefinedIdentifier(n, n.ID)
	}
	fr, err := Eval(fnExpr, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	fv, fmiss, fIsRight := fr.Unpack()

	baseArgs, baseMissing, err := evalArgs(n.BaseArgs, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	valueArgs, valueMissing, err := evalArgs(n.ValueArgs, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}

	missing := baseMissing.Union(valueMissing)
	if fIsRight {
		missing = missing.Union(fmiss)
	}
	if missing.Len() > 0 {
		return right(missing), nil
	}

	applyValueArgs := func(abs *value.ValueAbs) (Result, error) {
		if len(abs.Dims) != len(valueArgs) {
			return zero, errArityMismatch(n, len(abs.Dims), len(valueArgs))
		}
		ctx := value.NewContext()
		extend := domain.New()
		for i, a := range valueArgs {
			ctx = ctx.Push(abs.Dims[i], a)
			extend.Push(abs.Dims[i])
		}
		return Eval(abs.Body, E, K.Perturb(ctx), dInit, d.Union(extend), C)
	}

	switch fn := fv.(type) {
	case *value.BaseAbs:
		if len(fn.Dims) != len(baseArgs) {
			return zero, errArityMismatch(n, len(fn.Dims), len(baseArgs))
		}
		// As with standalone BaseApp, base_args only gate missing/arity;
		// the body evaluates under the unmodified context.
		br, err := Eval(fn.Body, E, K, dInit, d, C)
		if err != nil {
			return zero, err
		}
		bv, bmiss, bIsRight := br.Unpack()
		if bIsRight {
			return right(bmiss), nil
		}
		if va, ok := bv.(*value.ValueAbs); ok {
			return applyValueArgs(va)
		}
		return left(bv), nil

	case *value.ValueAbs:
		return applyValueArgs(fn)

	default:
		return zero, errTypeError(n, "abstraction", fv)
	}
}

func evalIntensionBuilder(n *ast.IntensionBuilder, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	captured := domain.New()
	missing := domain.New()
	for _, de := range n.Domain {
		r, err := Eval(de, E, K, dInit, d, C)
		if err != nil {
			return zero, err
		}
		v, m, isRight := r.Unpack()
		if isRight {
			missing = missing.Union(m)
			continue
		}
		dim, err := expectDimension(de, v)
		if err != nil {
			return zero, err
		}
		captured.Push(dim)
	}
	if missing.Len() > 0 {
		return right(missing), nil
	}
	return left(&value.Intension{
		K:    K.Restrict(captured),
		D:    d.Union(captured),
		Body: n.Value,
	}), nil
}

func evalIntensionApp(n *ast.IntensionApp, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	r, err := Eval(n.Expr, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	v, m, isRight := r.Unpack()
	if isRight {
		return right(m), nil
	}
	intens, err := expectIntension(n, v)
	if err != nil {
		return zero, err
	}
	return Eval(intens.Body, E, K.Perturb(intens.K), dInit, d.Union(intens.D), C)
}

func evalApp(n *ast.App, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	if len(n.Exprs) == 0 {
		return zero, errArityMismatch(n, 1, 0)
	}
	opr, err := Eval(n.Exprs[0], E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	ov, omiss, oIsRight := opr.Unpack()

	args, missing, err := evalArgs(n.Exprs[1:], E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	if oIsRight {
		missing = missing.Union(omiss)
	}
	if missing.Len() > 0 {
		return right(missing), nil
	}

	name, err := expectIdent(n.Exprs[0], ov)
	if err != nil {
		return zero, err
	}
	result, err := applyPrimitive(n, name, args)
	if err != nil {
		return zero, err
	}
	return left(result), nil
}

func evalIf(n *ast.If, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	cr, err := Eval(n.Cond, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	cv, cmiss, cIsRight := cr.Unpack()
	if cIsRight {
		return right(cmiss), nil
	}
	b, err := expectBool(n.Cond, cv)
	if err != nil {
		return zero, err
	}
	if b {
		return Eval(n.Then, E, K, dInit, d, C)
	}
	return Eval(n.Else, E, K, dInit, d, C)
}

func evalQuery(n *ast.Query, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	r, err := Eval(n.Expr, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	v, m, isRight := r.Unpack()
	if isRight {
		return right(m), nil
	}
	if _, isDim := v.(value.DimValue); !isDim {
		if _, direct := n.Expr.(*ast.DimExpr); direct {
			// A Dim operand has already checked d and looked its own
			// ordinate up in K; that ordinate is the query's result.
			return left(v), nil
		}
	}
	dim, err := expectDimension(n.Expr, v)
	if err != nil {
		return zero, err
	}
	if !d.Contains(dim) {
		miss := domain.New()
		miss.Push(dim)
		return right(miss), nil
	}
	ord, ok := K.Lookup(dim)
	if !ok {
		return zero, errTypeError(n, "dimension present in context", dim)
	}
	return left(ord), nil
}

func evalPerturb(n *ast.Perturb, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	rr, err := Eval(n.RHS, E, K, dInit, d, C)
	if err != nil {
		return zero, err
	}
	rv, rmiss, rIsRight := rr.Unpack()
	if rIsRight {
		return right(rmiss), nil
	}
	kp, err := expectContext(n.RHS, rv)
	if err != nil {
		return zero, err
	}
	return Eval(n.LHS, E, K.Perturb(kp), dInit, d.Union(kp.Domain()), C)
}

func evalWhereDim(n *ast.WhereDim, E *ast.Environment, K value.Context, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	depthV, ok := K.Lookup(n.DimQ)
	if !ok {
		return zero, errTypeError(n, "quantifier depth present in context", n.DimQ)
	}
	depth, err := expectU32(n, depthV)
	if err != nil {
		return zero, err
	}

	ctx := value.NewContext()
	extend := domain.New()
	missing := domain.New()
	for _, b := range n.Binds {
		r, err := Eval(b.RHS, E, K, dInit, d, C)
		if err != nil {
			return zero, err
		}
		v, m, isRight := r.Unpack()
		if isRight {
			missing = missing.Union(m)
			continue
		}
		fresh := generateDimension(b.Dim.I, n.NatQ, depth)
		ctx = ctx.Push(b.Dim, value.DimValue{D: fresh})
		ctx = ctx.Push(fresh, v)
		extend.Push(b.Dim)
	}
	if missing.Len() > 0 {
		return right(missing), nil
	}
	// The xi-named dims (not the freshly generated ones) are unioned into
	// d before the body evaluates, matching
	// original_source/src/evaluator.rs's WhereDim arm
	// (evaluate(lhs, ..., d.clone().union(domain), ...)).
	return Eval(n.LHS, E, K.Perturb(ctx), dInit, d.Union(extend), C)
}

// generateDimension manufactures the per-activation dimension for a
// WhereDim binding, grounded on original_source/src/evaluator.rs's
// generate_dimension(i, q, depth) -> Dim{i, Lit(q+depth)}.
func generateDimension(i uint32, natQ, depth uint32) dimension.Dim {
	return dimension.New(i, dimension.U32(natQ+depth))
}
