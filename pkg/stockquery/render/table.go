package render

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/columns"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, results []types.Result, opts RenderOptions) error {
	cols, err := columns.Compute(opts.Columns)
	if err != nil {
		return err
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if opts.Color {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleLight)
	}
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false

	hdr := make(table.Row, len(cols))
	for i, c := range cols {
		hdr[i] = strings.ToUpper(c)
	}
	tw.AppendHeader(hdr)

	// Wrap text to MaxColWidth (default 40), no truncation
	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}
	cfgs := make([]table.ColumnConfig, 0, len(cols))
	for i := range cols {
		cfgs = append(cfgs, table.ColumnConfig{Number: i + 1, WidthMax: maxWidth})
	}
	tw.SetColumnConfigs(cfgs)

	for _, res := range results {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			v := columns.Value(c, res)
			if opts.Color && c == "status" {
				if res.OK() {
					v = text.Colors{text.FgGreen}.Sprint(v)
				} else {
					v = text.Colors{text.FgRed}.Sprint(v)
				}
			}
			row[i] = v
		}
		tw.AppendRow(row)
	}

	tw.Render()
	return nil
}
