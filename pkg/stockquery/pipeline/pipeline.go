package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/filter"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/form"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/render"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/source"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// Runner replays requests through the form and renders what it emits.
type Runner struct {
	Source   source.Source
	Renderer render.Renderer
	Writer   io.Writer
	Logger   zerolog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type ExecuteOptions struct {
	Columns       []string
	Filter        filter.Filter
	DefaultPreset preset.Preset
	Color         bool
	PrettyJSON    bool
	MaxColWidth   int
}

func (r *Runner) Execute(ctx context.Context, spec any, opts ExecuteOptions) error {
	reqs, err := r.Source.Load(ctx, spec)
	if err != nil {
		return err
	}

	var filt filter.Filter = filter.Always(true)
	if opts.Filter != nil {
		filt = opts.Filter
	}

	results := make([]types.Result, 0, len(reqs))
	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !filt.Match(req.Ticker) {
			r.Logger.Debug().Str("request", req.Name).Str("ticker", req.Ticker).Msg("filtered out")
			continue
		}
		res, err := Replay(req, opts.DefaultPreset, r.now)
		if err != nil {
			return fmt.Errorf("request %s: %w", req.Name, err)
		}
		ev := r.Logger.Debug().Str("request", req.Name).Bool("ok", res.OK())
		if res.OK() {
			ev = ev.Str("ticker", res.Query.Ticker).Str("start", res.Query.StartDate).Str("end", res.Query.EndDate)
		} else {
			ev = ev.Str("reason", res.Reason)
		}
		ev.Msg("replayed")
		results = append(results, res)
	}

	return r.Renderer.Render(r.Writer, results, render.RenderOptions{
		Columns:     opts.Columns,
		Color:       opts.Color,
		PrettyJSON:  opts.PrettyJSON,
		MaxColWidth: opts.MaxColWidth,
	})
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Replay mounts a fresh form and feeds it req the way a user would: type
// the ticker, pick the preset, pick the dates, press search.
//
// An empty preset becomes Custom when dates are given and def otherwise
// (OneMonth when def is empty). Dates given alongside a non-custom preset,
// dates after today and malformed input are errors; an unsubmittable form
// is not, and is reported through Result.Reason.
func Replay(req types.Request, def preset.Preset, now func() time.Time) (types.Result, error) {
	res := types.Result{Request: req}
	hasDates := strings.TrimSpace(req.Start) != "" || strings.TrimSpace(req.End) != ""

	p := def
	if p == "" {
		p = preset.OneMonth
	}
	switch {
	case strings.TrimSpace(req.Preset) != "":
		parsed, err := preset.Parse(req.Preset)
		if err != nil {
			return res, err
		}
		p = parsed
	case hasDates:
		p = preset.Custom
	}
	if hasDates && !p.Editable() {
		return res, fmt.Errorf("start/end dates require the %q preset, got %q", preset.Custom, p)
	}

	f := form.New(func(ticker, start, end string) {
		res.Query = &types.Query{Ticker: ticker, StartDate: start, EndDate: end}
	}, form.WithClock(now))
	f.SetTicker(req.Ticker)
	f.SelectPreset(p)

	loc := now().Location()
	start, err := types.ParseDate(req.Start, loc)
	if err != nil {
		return res, fmt.Errorf("start: %w", err)
	}
	end, err := types.ParseDate(req.End, loc)
	if err != nil {
		return res, fmt.Errorf("end: %w", err)
	}
	today := f.Today()
	if start.After(today) {
		return res, fmt.Errorf("start date %s is after today", types.FormatDate(start))
	}
	if end.After(today) {
		return res, fmt.Errorf("end date %s is after today", types.FormatDate(end))
	}
	if !start.IsZero() {
		f.PickStartDate(start)
	}
	if !end.IsZero() {
		f.PickEndDate(end)
	}

	if !f.Submit() {
		res.Reason = f.State().DisabledReason()
	}
	return res, nil
}
