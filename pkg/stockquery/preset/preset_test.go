package preset

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]Preset{
		"1m":         OneMonth,
		"  1M ":      OneMonth,
		"last-month": OneMonth,
		"year":       OneYear,
		"5years":     FiveYears,
		"CUSTOM":     Custom,
	}
	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("2w")
	var ue *UnknownPresetError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "2w", ue.Name)
	assert.Equal(t, []string{"1m", "1y", "5y", "custom"}, ue.Available)
	assert.Contains(t, err.Error(), "unknown preset: 2w")
}

func TestComputeRange(t *testing.T) {
	now := time.Date(2024, time.July, 15, 9, 0, 0, 0, time.UTC)
	today := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		p         Preset
		wantStart time.Time
	}{
		{OneMonth, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{OneYear, time.Date(2023, time.July, 15, 0, 0, 0, 0, time.UTC)},
		{FiveYears, time.Date(2019, time.July, 15, 0, 0, 0, 0, time.UTC)},
		{Custom, time.Time{}},
	}
	for _, tt := range tests {
		start, end := ComputeRange(tt.p, now)
		assert.Equal(t, tt.wantStart, start, tt.p)
		assert.Equal(t, today, end, tt.p)
	}
}

func TestSubMonthsClampsToMonthEnd(t *testing.T) {
	tests := []struct {
		in   time.Time
		n    int
		want time.Time
	}{
		{time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 12, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), 60, time.Date(2019, 5, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SubMonths(tt.in, tt.n), tt.in.String())
	}
}

func TestLabelsAndEditable(t *testing.T) {
	assert.Equal(t, []Preset{OneMonth, OneYear, FiveYears, Custom}, All())
	assert.Equal(t, "Last 5 Years", FiveYears.Label())
	assert.Equal(t, "2w", Preset("2w").Label())
	assert.True(t, Custom.Editable())
	assert.False(t, OneYear.Editable())
	assert.False(t, Preset("2w").Valid())
}
