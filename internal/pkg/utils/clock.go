package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay bounds every ClockMinutes value.
const MinutesPerDay = 24 * 60

// ErrInvalidClock is returned for anything that is not a valid 24h "HH:MM" time.
var ErrInvalidClock = errors.New("invalid HH:MM time")

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ClockMinutes is a time of day as minutes since midnight (0-1439).
type ClockMinutes int

// ParseClock parses "HH:MM" (single-digit hours allowed) into minutes since midnight.
func ParseClock(s string) (ClockMinutes, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return ClockMinutes(hours*60 + minutes), nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
// Negative input renders "00:00"; values past midnight wrap.
func FormatClock(m ClockMinutes) string {
	if m < 0 {
		m = 0
	}
	m %= MinutesPerDay
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// String implements fmt.Stringer.
func (m ClockMinutes) String() string {
	return FormatClock(m)
}

// TimeWindow is a half-open [Start, End) service interval.
type TimeWindow struct {
	Start ClockMinutes
	End   ClockMinutes
}

// Overlaps reports whether two windows share an instant; touching windows do not.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start < o.End && o.Start < w.End
}

// String renders the window as "HH:MM-HH:MM".
func (w TimeWindow) String() string {
	return FormatClock(w.Start) + "-" + FormatClock(w.End)
}
