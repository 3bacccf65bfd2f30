package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a wall-clock time of day. The zero value is midnight,
// which is also the documented default for activities without a usable
// time label.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock parses an "HH:MM" label.
func ParseClock(s string) (ClockTime, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return ClockTime{}, fmt.Errorf("time %q: missing separator", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return ClockTime{}, fmt.Errorf("time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return ClockTime{}, fmt.Errorf("time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("time %q: out of range", s)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// ClockOrMidnight is the lenient form used during extraction: any label
// that does not parse yields midnight, so intra-day sorting never fails.
func ClockOrMidnight(s string) ClockTime {
	t, err := ParseClock(s)
	if err != nil {
		return ClockTime{}
	}
	return t
}

// Minutes returns minutes since midnight, the intra-day sort key.
func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
