package render

import (
	"fmt"
	"io"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// lineRenderer prints "TICKER START END" for each emitted query and skips
// rejected requests, so the output can be piped into other tools.
type lineRenderer struct{}

func NewLineRenderer() Renderer {
	return lineRenderer{}
}

func (lineRenderer) Render(w io.Writer, results []types.Result, _ RenderOptions) error {
	for _, r := range results {
		if !r.OK() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", r.Query.Ticker, r.Query.StartDate, r.Query.EndDate); err != nil {
			return err
		}
	}
	return nil
}
