package eval

import (
	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/dimension"
	"github.com/translucid-lang/tlcore/internal/value"
)

func expectDimension(e ast.Expr, v value.Value) (dimension.Dim, error) {
	d, ok := v.(value.DimValue)
	if !ok {
		return dimension.Dim{}, errTypeError(e, "dimension", v)
	}
	return d.D, nil
}

func expectU32(e ast.Expr, v value.Value) (uint32, error) {
	n, ok := v.(value.U32)
	if !ok {
		return 0, errTypeError(e, "u32", v)
	}
	return uint32(n), nil
}

func expectBool(e ast.Expr, v value.Value) (bool, error) {
	b, ok := v.(value.Bool)
	if !ok {
		return false, errTypeError(e, "bool", v)
	}
	return bool(b), nil
}

func expectContext(e ast.Expr, v value.Value) (value.Context, error) {
	c, ok := v.(value.CtxValue)
	if !ok {
		return value.Context{}, errTypeError(e, "context", v)
	}
	return c.K, nil
}

func expectIntension(e ast.Expr, v value.Value) (*value.Intension, error) {
	i, ok := v.(*value.Intension)
	if !ok {
		return nil, errTypeError(e, "intension", v)
	}
	return i, nil
}

func expectIdent(e ast.Expr, v value.Value) (string, error) {
	id, ok := v.(value.Ident)
	if !ok {
		return "", errNotAnOperator(e, v)
	}
	return string(id), nil
}

func expectBaseAbs(e ast.Expr, v value.Value) (*value.BaseAbs, error) {
	a, ok := v.(*value.BaseAbs)
	if !ok {
		return nil, errTypeError(e, "base abstraction", v)
	}
	return a, nil
}

func expectValueAbs(e ast.Expr, v value.Value) (*value.ValueAbs, error) {
	a, ok := v.(*value.ValueAbs)
	if !ok {
		return nil, errTypeError(e, "value abstraction", v)
	}
	return a, nil
}
