package surface

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralStrings(t *testing.T) {
	require.Equal(t, "true", NewBoolLit(true).String())
	require.Equal(t, "42", NewU32Lit(42).String())
}

func TestFunctionDeclString(t *testing.T) {
	decl := NewFunctionDecl([]string{"b"}, []string{"v"}, nil, NewIdent("v"))
	require.Contains(t, decl.String(), "fun(")
}

func TestWhereDimString(t *testing.T) {
	wd := NewWhereDim(NewIdent("t"), []DimBinding{{ID: "t", RHS: NewU32Lit(0)}})
	require.Contains(t, wd.String(), "wheredim")
	require.Contains(t, wd.String(), "t <- 0")
}

func TestFunctionApplicationString(t *testing.T) {
	call := NewFunctionApplication("f", []Expr{NewU32Lit(1)}, nil, nil)
	require.Contains(t, call.String(), "f!")
}
