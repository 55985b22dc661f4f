package preset

import (
	"strings"
	"time"
)

// Preset names a date range shortcut.
type Preset string

const (
	OneMonth  Preset = "1m"
	OneYear   Preset = "1y"
	FiveYears Preset = "5y"
	Custom    Preset = "custom"
)

// order is the display order of the preset buttons.
var order = []Preset{OneMonth, OneYear, FiveYears, Custom}

// Labels are the button captions shown for each preset.
var Labels = map[Preset]string{
	OneMonth:  "Last Month",
	OneYear:   "Last Year",
	FiveYears: "Last 5 Years",
	Custom:    "Custom",
}

// Aliases maps accepted spellings to presets. Lookups are case-insensitive.
var Aliases = map[string]Preset{
	"1m":         OneMonth,
	"1month":     OneMonth,
	"month":      OneMonth,
	"last-month": OneMonth,
	"1y":         OneYear,
	"1year":      OneYear,
	"year":       OneYear,
	"last-year":  OneYear,
	"5y":         FiveYears,
	"5years":     FiveYears,
	"custom":     Custom,
}

// All returns the presets in display order.
func All() []Preset {
	return append([]Preset(nil), order...)
}

// Parse resolves a preset name or alias.
func Parse(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if p, ok := Aliases[key]; ok {
		return p, nil
	}
	return "", &UnknownPresetError{Name: name, Available: names()}
}

// UnknownPresetError reports an unknown preset name.
type UnknownPresetError struct {
	Name      string
	Available []string
}

func (e *UnknownPresetError) Error() string {
	return "unknown preset: " + e.Name + "; available: " + strings.Join(e.Available, ", ")
}

func names() []string {
	out := make([]string, 0, len(order))
	for _, p := range order {
		out = append(out, string(p))
	}
	return out
}

// Label returns the button caption, or the raw name for unknown presets.
func (p Preset) Label() string {
	if l, ok := Labels[p]; ok {
		return l
	}
	return string(p)
}

// Editable reports whether the date pickers accept input under p.
func (p Preset) Editable() bool { return p == Custom }

// Valid reports whether p is one of the four known presets.
func (p Preset) Valid() bool {
	_, ok := Labels[p]
	return ok
}

// ComputeRange derives the range a preset selects relative to now. The end
// is always today; the start is absent (zero) for Custom.
func ComputeRange(p Preset, now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	switch p {
	case OneMonth:
		start = SubMonths(today, 1)
	case OneYear:
		start = SubMonths(today, 12)
	case FiveYears:
		start = SubMonths(today, 60)
	}
	return start, today
}

// SubMonths steps t back n calendar months, clamping the day to the length
// of the target month (Mar 31 minus one month is Feb 28 or 29).
func SubMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(first.Year(), first.Month(), d, hh, mm, ss, t.Nanosecond(), t.Location())
}
