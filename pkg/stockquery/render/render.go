package render

import (
	"io"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// Renderer renders replay results to an output writer.
type Renderer interface {
	Render(w io.Writer, results []types.Result, opts RenderOptions) error
}

type RenderOptions struct {
	Columns     []string
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
}

// New returns the renderer registered for format.
func New(format string) (Renderer, error) {
	switch format {
	case "", "table":
		return NewTableRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "line":
		return NewLineRenderer(), nil
	}
	return nil, &UnknownFormatError{Name: format}
}

// UnknownFormatError reports an unsupported output format.
type UnknownFormatError struct{ Name string }

func (e *UnknownFormatError) Error() string {
	return "unknown format: " + e.Name + "; available: table, json, line"
}
