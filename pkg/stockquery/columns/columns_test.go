package columns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

func TestCompute(t *testing.T) {
	cols, err := Compute(nil)
	require.NoError(t, err)
	assert.Equal(t, Default, cols)

	cols, err = Compute([]string{"", " "})
	require.NoError(t, err)
	assert.Equal(t, Default, cols)

	cols, err = Compute([]string{"SYM", "from", "ticker", " ", "status"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ticker", "start", "status"}, cols)

	_, err = Compute([]string{"price"})
	var ue *UnknownColumnError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "price", ue.Name)
	assert.Contains(t, ue.Available, "ticker")
}

func TestValue(t *testing.T) {
	ok := types.Result{
		Request: types.Request{Name: "a", Ticker: " aapl", Preset: "1m"},
		Query:   &types.Query{Ticker: "AAPL", StartDate: "2024-06-15", EndDate: "2024-07-15"},
	}
	assert.Equal(t, "AAPL", Value("ticker", ok))
	assert.Equal(t, " aapl", Value("input", ok))
	assert.Equal(t, "2024-06-15", Value("start", ok))
	assert.Equal(t, "ok", Value("status", ok))

	rejected := types.Result{
		Request: types.Request{Ticker: "", Start: "2024-01-01"},
		Reason:  "missing ticker",
	}
	assert.Equal(t, "", Value("ticker", rejected))
	assert.Equal(t, "2024-01-01", Value("start", rejected))
	assert.Equal(t, "missing ticker", Value("status", rejected))
	assert.Equal(t, "", Value("bogus", rejected))
}
