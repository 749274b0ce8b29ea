package eval

import (
	"fmt"

	"github.com/translucid-lang/tlcore/internal/ast"
	tlerrors "github.com/translucid-lang/tlcore/internal/errors"
	"github.com/translucid-lang/tlcore/internal/srcpos"
)

func spanOf(e ast.Expr) *srcpos.Span {
	p := e.Position()
	return &srcpos.Span{Start: p, End: p}
}

func fail(code, msg string, e ast.Expr, data map[string]any) error {
	return tlerrors.WrapReport(tlerrors.New(code, msg, spanOf(e), data))
}

func errUndefinedIdentifier(e ast.Expr, name string) error {
	return fail(tlerrors.EVL001, fmt.Sprintf("undefined identifier %q", name), e, map[string]any{"identifier": name})
}

func errTypeError(e ast.Expr, expected string, got any) error {
	return fail(tlerrors.EVL002, fmt.Sprintf("expected %s, got %v", expected, got), e, map[string]any{"expected": expected})
}

func errArityMismatch(e ast.Expr, want, got int) error {
	return fail(tlerrors.EVL003, fmt.Sprintf("arity mismatch: expected %d argument(s), got %d", want, got), e,
		map[string]any{"want": want, "got": got})
}

func errUnknownPrimitive(e ast.Expr, name string) error {
	return fail(tlerrors.EVL004, fmt.Sprintf("unknown primitive operator %q", name), e, map[string]any{"operator": name})
}

func errNotAnOperator(e ast.Expr, got any) error {
	return fail(tlerrors.EVL005, fmt.Sprintf("operator position is not an operator: %v", got), e, nil)
}

// ErrExpectedValue reports EVL006 at the driver boundary, where a Right(Δ)
// escaped a context that demanded a fully-resolved value.
func ErrExpectedValue(missing fmt.Stringer) error {
	return tlerrors.WrapReport(tlerrors.New(tlerrors.EVL006,
		fmt.Sprintf("expected a value, got missing dimensions %s", missing.String()), nil, nil))
}
