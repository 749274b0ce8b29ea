package surface

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJSONLiteralAndOp(t *testing.T) {
	e, err := ParseJSON([]byte(`{"node":"app","exprs":[{"node":"op","name":"+"},{"node":"lit","n":2},{"node":"lit","n":3}]}`))
	require.NoError(t, err)
	app, ok := e.(*App)
	require.True(t, ok)
	require.Len(t, app.Exprs, 3)
}

func TestParseJSONWhereDim(t *testing.T) {
	data := []byte(`{
		"node": "wheredim",
		"lhs": {"node": "ident", "name": "t"},
		"dim_binds": [{"id": "t", "rhs": {"node": "lit", "n": 0}}]
	}`)
	e, err := ParseJSON(data)
	require.NoError(t, err)
	wd, ok := e.(*WhereDim)
	require.True(t, ok)
	require.Len(t, wd.Binds, 1)
	require.Equal(t, "t", wd.Binds[0].ID)
}

func TestParseJSONUnknownNodeErrors(t *testing.T) {
	_, err := ParseJSON([]byte(`{"node":"nonsense"}`))
	require.Error(t, err)
}

func TestParseJSONInvalidJSONErrors(t *testing.T) {
	_, err := ParseJSON([]byte(`not json`))
	require.Error(t, err)
}
