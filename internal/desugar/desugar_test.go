package desugar

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/surface"
)

func TestLiteralAndOperatorPassThrough(t *testing.T) {
	x, q, err := Transform(surface.NewU32Lit(7))
	require.NoError(t, err)
	require.Equal(t, 0, q.Len())
	lit, ok := x.(*ast.Lit)
	require.True(t, ok)
	require.Equal(t, uint32(7), lit.N)
}

func TestFreeIdentifierStaysIdentifier(t *testing.T) {
	x, _, err := Transform(surface.NewIdent("answer"))
	require.NoError(t, err)
	id, ok := x.(*ast.Ident)
	require.True(t, ok)
	require.Equal(t, "answer", id.Name)
}

func TestBaseAbsParamBecomesDimension(t *testing.T) {
	abs := surface.NewBaseAbs("x", surface.NewIdent("x"))
	x, _, err := Transform(abs)
	require.NoError(t, err)
	baseAbs, ok := x.(*ast.BaseAbs)
	require.True(t, ok)
	require.Len(t, baseAbs.Dims, 1)

	body, ok := baseAbs.Body.(*ast.DimExpr)
	require.True(t, ok)
	require.True(t, body.D.Equal(baseAbs.Dims[0]))
}

func TestWhereDimMintsQuantifierAndBindingDimensions(t *testing.T) {
	body := surface.NewTupleBuilder([]surface.TuplePair{
		{LHS: surface.NewIdent("t"), RHS: surface.NewU32Lit(0)},
	})
	wd := surface.NewWhereDim(body, []surface.DimBinding{
		{ID: "t", RHS: surface.NewU32Lit(0)},
	})

	x, q, err := Transform(wd)
	require.NoError(t, err)
	require.Equal(t, 1, q.Len())

	node, ok := x.(*ast.WhereDim)
	require.True(t, ok)
	require.Equal(t, uint32(0), node.NatQ)
	require.Len(t, node.Binds, 1)
	require.Equal(t, "t", node.Binds[0].Dim.V.String())
}

func TestNestedWhereDimIncrementsDepth(t *testing.T) {
	inner := surface.NewWhereDim(surface.NewIdent("s"), []surface.DimBinding{
		{ID: "s", RHS: surface.NewU32Lit(1)},
	})
	outer := surface.NewWhereDim(inner, []surface.DimBinding{
		{ID: "t", RHS: surface.NewU32Lit(0)},
	})

	x, q, err := Transform(outer)
	require.NoError(t, err)
	require.Equal(t, 2, q.Len())

	outerNode := x.(*ast.WhereDim)
	require.Equal(t, uint32(0), outerNode.NatQ)
	innerNode := outerNode.LHS.(*ast.WhereDim)
	require.Equal(t, uint32(1), innerNode.NatQ)
}

func TestFunctionDeclWithAllThreeFlavours(t *testing.T) {
	decl := surface.NewFunctionDecl(
		[]string{"b"}, []string{"v"}, []string{"n"},
		surface.NewIdent("n"),
	)
	x, _, err := Transform(decl)
	require.NoError(t, err)

	outer, ok := x.(*ast.BaseAbs)
	require.True(t, ok)
	require.Len(t, outer.Dims, 1)

	inner, ok := outer.Body.(*ast.ValueAbs)
	require.True(t, ok)
	require.Len(t, inner.Dims, 2) // value param + name param folded in

	body, ok := inner.Body.(*ast.IntensionApp)
	require.True(t, ok, "a name-parameter reference must desugar to IntensionApp")
	_ = body
}

func TestFunctionDeclOmitsEmptyLayers(t *testing.T) {
	decl := surface.NewFunctionDecl(nil, []string{"v"}, nil, surface.NewIdent("v"))
	x, _, err := Transform(decl)
	require.NoError(t, err)
	_, isBaseAbs := x.(*ast.BaseAbs)
	require.False(t, isBaseAbs, "empty base-param list must not wrap a BaseAbs")
	_, isValueAbs := x.(*ast.ValueAbs)
	require.True(t, isValueAbs)
}

func TestFunctionApplicationWrapsNameArgsAsIntensions(t *testing.T) {
	call := surface.NewFunctionApplication("f",
		[]surface.Expr{surface.NewU32Lit(1)},
		[]surface.Expr{surface.NewU32Lit(2)},
		[]surface.Expr{surface.NewU32Lit(3)},
	)
	x, _, err := Transform(call)
	require.NoError(t, err)

	fa, ok := x.(*ast.FunApp)
	require.True(t, ok)
	require.Equal(t, "f", fa.ID)
	require.Len(t, fa.BaseArgs, 1)
	require.Len(t, fa.ValueArgs, 2) // value_args ++ wrapped name_args

	_, isIntension := fa.ValueArgs[1].(*ast.IntensionBuilder)
	require.True(t, isIntension)
}

func TestNFDAndNFCSpellingsCollideToOneDimension(t *testing.T) {
	// "café" (NFD) and "café" (NFC, precomposed) must normalize to
	// the same M key, so a BaseAbs param spelled one way and referenced
	// the other still resolves to a dimension rather than a free
	// identifier.
	const nfd = "café"
	const nfc = "café"

	abs := surface.NewBaseAbs(nfd, surface.NewIdent(nfc))
	x, _, err := Transform(abs)
	require.NoError(t, err)

	baseAbs, ok := x.(*ast.BaseAbs)
	require.True(t, ok)
	body, ok := baseAbs.Body.(*ast.DimExpr)
	require.True(t, ok, "an NFD-spelled param must still shadow an NFC-spelled reference")
	require.True(t, body.D.Equal(baseAbs.Dims[0]))
}

func TestShadowingPersistsAcrossSiblings(t *testing.T) {
	// Replicates the non-lexical-scoping quirk: once `x` is bound as a
	// dimension by a BaseAbs, a sibling reference to `x` after it (in a
	// Seq) also resolves to that dimension rather than a free identifier,
	// because M is shared mutable state never restored on scope exit.
	abs := surface.NewBaseAbs("x", surface.NewU32Lit(0))
	seq := surface.NewSeq([]surface.Expr{abs, surface.NewIdent("x")})

	x, _, err := Transform(seq)
	require.NoError(t, err)
	s := x.(*ast.Seq)
	_, isDim := s.Exprs[1].(*ast.DimExpr)
	require.True(t, isDim, "sibling reference should have been shadowed by the BaseAbs param")
}
