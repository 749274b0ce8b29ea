package eval

import (
	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/cache"
	"github.com/translucid-lang/tlcore/internal/domain"
	"github.com/translucid-lang/tlcore/internal/value"
)

// evalIDFix implements the two-level fixpoint over identifier lookup
// (spec.md §4.3.1), grounded on original_source/src/evaluator.rs's
// evaluate_id1: iteratively refine the memoization key Δ_tried until the
// identifier resolves to a value or a gap must be surfaced to the caller.
func evalIDFix(site ast.Expr, x string, E *ast.Environment, K value.Context, tried, dInit, d domain.Domain, C *cache.Cache) (Result, error) {
	r, err := evalIDMemo(site, x, E, K, tried, dInit, C)
	if err != nil {
		return zero, err
	}
	v, missing, isRight := r.Unpack()
	if !isRight {
		return left(v), nil
	}

	if missing.IsSubset(d) {
		if missing.IsSubset(K.Domain()) {
			grown := tried.Union(missing)
			if grown.Len() == tried.Len() {
				// No new dimension entered Δ_tried: surface the gap
				// rather than spin (spec.md §4.3.1's termination guard).
				return right(missing), nil
			}
			return evalIDFix(site, x, E, K, grown, dInit, d, C)
		}
		return right(missing), nil
	}
	return right(missing.Difference(d)), nil
}

// evalIDMemo is the memoized single-pass evaluation of an identifier
// against a fixed Δ, grounded on original_source/src/evaluator.rs's
// evaluate_id2.
func evalIDMemo(site ast.Expr, x string, E *ast.Environment, K value.Context, delta, dInit domain.Domain, C *cache.Cache) (Result, error) {
	key := K.Restrict(delta)
	if r, ok := C.Find(x, key); ok {
		return r, nil
	}
	expr, ok := E.Lookup(x)
	if !ok {
		return zero, errUndefinedIdentifier(site, x)
	}
	r, err := Eval(expr, E, K, dInit, delta, C)
	if err != nil {
		return zero, err
	}
	C.Insert(x, key, r)
	return r, nil
}
