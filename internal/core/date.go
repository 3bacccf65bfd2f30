package core

import (
	"strings"
	"time"
)

// DateLabelLayout is the canonical ledger date label, e.g.
// "Monday 03 Jun 2024". Labels parsed from the page re-render
// identically, so parse and format round-trip.
const DateLabelLayout = "Monday 02 Jan 2006"

// Date is a calendar day pinned to UTC midnight, so that labels parsed
// from the page and cutoffs derived from the local clock compare on the
// calendar day alone.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDateLabel parses a page or ledger date label against the
// canonical layout.
func ParseDateLabel(s string) (Date, error) {
	t, err := time.Parse(DateLabelLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Label renders the canonical date label.
func (d Date) Label() string {
	return d.Format(DateLabelLayout)
}

// Before reports strict calendar order.
func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

// LastMonday returns the most recent Monday on or before now's local
// calendar day. Callers pass this as the default week-start cutoff.
func LastMonday(now time.Time) Date {
	y, m, day := now.Date()
	d := NewDate(y, m, day)
	offset := (int(d.Weekday()) + 6) % 7
	return Date{Time: d.AddDate(0, 0, -offset)}
}
