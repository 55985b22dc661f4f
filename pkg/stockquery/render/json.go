package render

import (
	"encoding/json"
	"io"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// jsonResult is the output shape for JSONRenderer.
type jsonResult struct {
	Name   string       `json:"name"`
	OK     bool         `json:"ok"`
	Query  *types.Query `json:"query,omitempty"`
	Reason string       `json:"reason,omitempty"`
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, results []types.Result, opts RenderOptions) error {
	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		out = append(out, jsonResult{
			Name:   res.Request.Name,
			OK:     res.OK(),
			Query:  res.Query,
			Reason: res.Reason,
		})
	}
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
