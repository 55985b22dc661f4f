package types

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the yyyy-MM-dd layout used for every date the form emits.
const DateLayout = "2006-01-02"

// MinYear is the earliest year a date may carry. Year 1 would collide with
// the zero time.Time, which stands for "no date".
const MinYear = 1900

// ErrDateTooEarly is returned by ParseDate for dates before MinYear.
var ErrDateTooEarly = fmt.Errorf("dates must be on or after %d-01-01", MinYear)

// Query is the normalized output of a submitted form.
type Query struct {
	Ticker    string `json:"ticker"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Request is one set of raw form inputs, as loaded from a batch file or
// assembled from command-line flags. Empty Start/End mean "not picked".
type Request struct {
	Name   string `yaml:"name"`
	Ticker string `yaml:"ticker"`
	Preset string `yaml:"preset"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
}

// Result pairs a replayed request with either the query it emitted or the
// reason the form kept its search control disabled.
type Result struct {
	Request Request
	Query   *Query
	Reason  string
}

// OK reports whether the request produced a query.
func (r Result) OK() bool { return r.Query != nil }

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDate renders a calendar date as yyyy-MM-dd. The zero time renders
// as an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses yyyy-MM-dd in loc. Blank input yields the zero time,
// which the form treats as an absent date. Dates before MinYear are
// rejected with ErrDateTooEarly.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	if t.Year() < MinYear {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, ErrDateTooEarly)
	}
	return t, nil
}
