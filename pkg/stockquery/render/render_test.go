package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

var sample = []types.Result{
	{
		Request: types.Request{Name: "apple", Ticker: "aapl", Preset: "1m"},
		Query:   &types.Query{Ticker: "AAPL", StartDate: "2024-06-15", EndDate: "2024-07-15"},
	},
	{
		Request: types.Request{Name: "blank", Ticker: " ", Preset: "1y"},
		Reason:  "missing ticker",
	},
}

func TestLineRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewLineRenderer().Render(&buf, sample, RenderOptions{}))
	assert.Equal(t, "AAPL 2024-06-15 2024-07-15\n", buf.String())
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(&buf, sample, RenderOptions{PrettyJSON: true}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, true, got[0]["ok"])
	assert.Equal(t, map[string]any{"ticker": "AAPL", "start_date": "2024-06-15", "end_date": "2024-07-15"}, got[0]["query"])
	assert.Equal(t, false, got[1]["ok"])
	assert.Equal(t, "missing ticker", got[1]["reason"])
	assert.NotContains(t, got[1], "query")
	assert.Contains(t, buf.String(), "\n  ")
}

func TestTableRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().Render(&buf, sample, RenderOptions{}))
	out := buf.String()
	for _, s := range []string{"TICKER", "START", "STATUS", "AAPL", "2024-06-15", "ok", "missing ticker"} {
		assert.Contains(t, out, s)
	}
}

func TestTableRendererUnknownColumn(t *testing.T) {
	err := NewTableRenderer().Render(&bytes.Buffer{}, sample, RenderOptions{Columns: []string{"price"}})
	assert.ErrorContains(t, err, "unknown column: price")
}

func TestNew(t *testing.T) {
	for _, f := range []string{"", "table", "json", "line"} {
		r, err := New(f)
		require.NoError(t, err, f)
		assert.NotNil(t, r)
	}
	_, err := New("csv")
	var ue *UnknownFormatError
	assert.True(t, errors.As(err, &ue))
}
