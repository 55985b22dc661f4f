// Package form holds the stock query form: a pure reducer over State plus a
// stateful Form that owns the search callback and the clock.
package form

import (
	"errors"
	"strings"
	"time"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

// InvalidRangeMessage is shown beneath the inputs while the end date is
// before the start date.
const InvalidRangeMessage = "end date must be greater than start date"

// ErrInvalidRange is returned by State.Err while the range is inverted.
var ErrInvalidRange = errors.New(InvalidRangeMessage)

// State is the complete form state. A zero Start or End means the date has
// not been picked, so 0001-01-01 UTC cannot be held as a real date. The
// pickers only accept dates from types.MinYear on.
type State struct {
	Ticker string
	Start  time.Time
	End    time.Time
	Preset preset.Preset
	Error  string
}

// Initial returns the state the form mounts with: the last month, ending today.
func Initial(now time.Time) State {
	start, end := preset.ComputeRange(preset.OneMonth, now)
	return State{Start: start, End: end, Preset: preset.OneMonth}
}

// ValidateRange returns InvalidRangeMessage when both dates are present and
// end is before start, and "" otherwise.
func ValidateRange(start, end time.Time) string {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return InvalidRangeMessage
	}
	return ""
}

// Err exposes the soft validation error as a Go error.
func (s State) Err() error {
	if s.Error != "" {
		return ErrInvalidRange
	}
	return nil
}

// DatesEditable reports whether the date pickers accept input.
func (s State) DatesEditable() bool { return s.Preset.Editable() }

// CanSubmit reports whether the search control is enabled.
func (s State) CanSubmit() bool {
	return s.DisabledReason() == ""
}

// DisabledReason names the first condition keeping search disabled, or ""
// when search is enabled.
func (s State) DisabledReason() string {
	switch {
	case strings.TrimSpace(s.Ticker) == "":
		return "missing ticker"
	case s.Start.IsZero():
		return "missing start date"
	case s.End.IsZero():
		return "missing end date"
	case s.Error != "":
		return s.Error
	}
	return ""
}

// Query builds the normalized query. ok is false while search is disabled.
func (s State) Query() (q types.Query, ok bool) {
	if !s.CanSubmit() {
		return types.Query{}, false
	}
	return types.Query{
		Ticker:    strings.ToUpper(strings.TrimSpace(s.Ticker)),
		StartDate: types.FormatDate(s.Start),
		EndDate:   types.FormatDate(s.End),
	}, true
}
