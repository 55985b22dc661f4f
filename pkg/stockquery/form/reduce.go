package form

import (
	"time"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// Event is a discrete user input the reducer understands.
type Event interface {
	apply(s State, now time.Time) State
}

// SetTicker replaces the ticker text verbatim.
type SetTicker struct{ Text string }

// SelectPreset activates a preset and resets the whole range.
type SelectPreset struct{ Preset preset.Preset }

// PickStartDate sets the start date. A zero Date clears it.
type PickStartDate struct{ Date time.Time }

// PickEndDate sets the end date. A zero Date clears it.
type PickEndDate struct{ Date time.Time }

// Reduce applies ev to s. now is the wall-clock time of the event; it
// anchors presets and the "no later than today" bound of the pickers.
func Reduce(s State, ev Event, now time.Time) State {
	if ev == nil {
		return s
	}
	return ev.apply(s, now)
}

func (e SetTicker) apply(s State, _ time.Time) State {
	s.Ticker = e.Text
	return s
}

func (e SelectPreset) apply(s State, now time.Time) State {
	if !e.Preset.Valid() {
		return s
	}
	s.Preset = e.Preset
	s.Start, s.End = preset.ComputeRange(e.Preset, now)
	s.Error = ValidateRange(s.Start, s.End)
	return s
}

func (e PickStartDate) apply(s State, now time.Time) State {
	d, ok := pickable(s, e.Date, now)
	if !ok {
		return s
	}
	s.Start = d
	s.Error = ValidateRange(s.Start, s.End)
	return s
}

func (e PickEndDate) apply(s State, now time.Time) State {
	d, ok := pickable(s, e.Date, now)
	if !ok {
		return s
	}
	s.End = d
	s.Error = ValidateRange(s.Start, s.End)
	return s
}

// pickable normalizes a picked date and reports whether the picker would
// accept it: pickers are disabled outside Custom and reject days after today
// or before types.MinYear.
func pickable(s State, d, now time.Time) (time.Time, bool) {
	if !s.DatesEditable() {
		return time.Time{}, false
	}
	if d.IsZero() {
		return d, true
	}
	y, m, dd := d.Date()
	if y < types.MinYear {
		return time.Time{}, false
	}
	d = time.Date(y, m, dd, 0, 0, 0, 0, now.Location())
	if d.After(types.Day(now)) {
		return time.Time{}, false
	}
	return d, true
}
