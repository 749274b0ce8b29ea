package replshell

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/translucid-lang/tlcore/internal/driver"
	"github.com/translucid-lang/tlcore/internal/surface"
	"github.com/translucid-lang/tlcore/internal/value"
)

func TestShellEvalArithmetic(t *testing.T) {
	s := New(driver.New())
	expr := surface.NewApp([]surface.Expr{
		surface.NewOp("+"),
		surface.NewU32Lit(2),
		surface.NewU32Lit(3),
	})
	r, err := s.Eval(expr)
	require.NoError(t, err)
	v, _, isRight := r.Unpack()
	require.False(t, isRight)
	require.Equal(t, value.U32(5), v)
}

func TestShellPersistsDomainAcrossCalls(t *testing.T) {
	s := New(driver.New())
	wd := surface.NewWhereDim(surface.NewIdent("t"), []surface.DimBinding{
		{ID: "t", RHS: surface.NewU32Lit(0)},
	})
	_, err := s.Eval(wd)
	require.NoError(t, err)
	require.Equal(t, 1, s.dom.Len())

	// A second, unrelated call must not reset the accumulated domain.
	_, err = s.Eval(surface.NewU32Lit(1))
	require.NoError(t, err)
	require.Equal(t, 1, s.dom.Len())
}
