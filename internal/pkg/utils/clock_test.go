package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input    string
		expected ClockMinutes
		wantErr  bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"8:30", 510, false},
		{" 23:59 ", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12:5", 0, true},
		{"1230", 0, true},
		{"", 0, true},
		{"-1:00", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidClock))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "08:05", FormatClock(485))
	assert.Equal(t, "23:59", FormatClock(1439))
	assert.Equal(t, "00:00", FormatClock(-15))
	assert.Equal(t, "00:30", FormatClock(MinutesPerDay+30))
}

func TestClockRoundTrip(t *testing.T) {
	for m := ClockMinutes(0); m < MinutesPerDay; m += 7 {
		parsed, err := ParseClock(FormatClock(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestTimeWindow_Overlaps(t *testing.T) {
	w := func(a, b string) TimeWindow {
		s, _ := ParseClock(a)
		e, _ := ParseClock(b)
		return TimeWindow{Start: s, End: e}
	}

	tests := []struct {
		name     string
		a, b     TimeWindow
		expected bool
	}{
		{"partial overlap", w("08:00", "10:00"), w("09:00", "11:00"), true},
		{"contained", w("08:00", "12:00"), w("09:00", "10:00"), true},
		{"identical", w("08:00", "09:00"), w("08:00", "09:00"), true},
		{"touching", w("08:00", "09:00"), w("09:00", "10:00"), false},
		{"disjoint", w("08:00", "09:00"), w("13:00", "14:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}

	assert.Equal(t, "08:00-09:30", w("8:00", "09:30").String())
}
