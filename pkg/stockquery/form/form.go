package form

import (
	"time"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
)

// SearchFunc receives a submitted query: an uppercase, trimmed ticker and
// two yyyy-MM-dd dates.
type SearchFunc func(ticker, startDate, endDate string)

// Form is a StockQueryForm instance. It is not safe for concurrent use.
type Form struct {
	state    State
	onSearch SearchFunc
	now      func() time.Time
}

// Option configures a Form.
type Option func(*Form)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

// New mounts a form that reports searches to onSearch. A nil onSearch is
// allowed; submits then only report success.
func New(onSearch SearchFunc, opts ...Option) *Form {
	f := &Form{onSearch: onSearch, now: time.Now}
	for _, o := range opts {
		o(f)
	}
	f.state = Initial(f.now())
	return f
}

// State returns a copy of the current state.
func (f *Form) State() State { return f.state }

// Dispatch runs ev through the reducer at the current clock time.
func (f *Form) Dispatch(ev Event) {
	f.state = Reduce(f.state, ev, f.now())
}

func (f *Form) SetTicker(text string) { f.Dispatch(SetTicker{Text: text}) }

func (f *Form) SelectPreset(p preset.Preset) { f.Dispatch(SelectPreset{Preset: p}) }

func (f *Form) PickStartDate(d time.Time) { f.Dispatch(PickStartDate{Date: d}) }

func (f *Form) PickEndDate(d time.Time) { f.Dispatch(PickEndDate{Date: d}) }

// CanSubmit reports whether the search control is enabled.
func (f *Form) CanSubmit() bool { return f.state.CanSubmit() }

// Today returns the current upper bound of the date pickers.
func (f *Form) Today() time.Time {
	_, end := preset.ComputeRange(preset.Custom, f.now())
	return end
}

// Submit invokes the search callback once with the normalized query and
// reports whether it did. It is a no-op while search is disabled.
func (f *Form) Submit() bool {
	q, ok := f.state.Query()
	if !ok {
		return false
	}
	if f.onSearch != nil {
		f.onSearch(q.Ticker, q.StartDate, q.EndDate)
	}
	return true
}
