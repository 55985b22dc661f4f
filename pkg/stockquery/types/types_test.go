package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"", time.Time{}, false},
		{"  ", time.Time{}, false},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{" 1900-01-01 ", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"2024-13-01", time.Time{}, true},
		{"05/03/2024", time.Time{}, true},
		{"1899-12-31", time.Time{}, true},
		{"0001-01-01", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in, time.UTC)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), got)
		})
	}
}

func TestParseDateRejectsZeroTimeCollision(t *testing.T) {
	_, err := ParseDate("0001-01-01", time.UTC)
	assert.ErrorIs(t, err, ErrDateTooEarly)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "1900-01-01", FormatDate(time.Date(1900, 1, 1, 13, 0, 0, 0, time.UTC)))
}
