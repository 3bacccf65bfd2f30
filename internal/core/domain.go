package core

import (
	"errors"
	"sort"
	"strings"
)

const (
	// TopUpOrigin and TopUpDestination are the normalized endpoint labels
	// for balance top-up activities.
	TopUpOrigin      = "Top Up"
	TopUpDestination = "Opal Travel App"

	// UnknownPlace substitutes a missing origin or destination label.
	UnknownPlace = "Unknown"

	// topUpMarker is the raw-origin substring that marks an activity as a
	// top-up. Matching is case-sensitive and follows the Opal page wording;
	// unrelated origin text containing the substring would also match.
	topUpMarker = "Top up"
)

// ErrCorruptLedger reports a ledger date label that no longer parses with
// the canonical layout. The builder only ever emits canonical labels, so
// hitting this means a pipeline invariant broke, not that input was bad.
var ErrCorruptLedger = errors.New("ledger date label does not re-parse")

type (
	// Activity is one card transaction within a day. All four fields are
	// always populated: extraction substitutes defaults instead of failing.
	Activity struct {
		Time  ClockTime
		Start string
		End   string
		Fare  Money
	}

	// DayGroup is the extraction output for one date section of the page,
	// activities in document order.
	DayGroup struct {
		Date       Date
		Activities []Activity
	}

	// DayEntry is one ledger day: the canonical date label plus the day's
	// activities sorted ascending by time of day.
	DayEntry struct {
		Label      string
		Activities []Activity
	}

	// Ledger is the activity history derived from one page snapshot, days
	// ordered newest first. Day order is part of the type's contract, which
	// is why it is a slice of pairs rather than a map.
	Ledger struct {
		Days []DayEntry
	}
)

// IsTopUp reports whether the activity is a normalized balance top-up.
func (a Activity) IsTopUp() bool {
	return a.Start == TopUpOrigin
}

// Normalize applies the top-up rule: a raw origin containing "Top up"
// collapses origin and destination to the canonical top-up pair, whatever
// the destination said.
func (a Activity) Normalize() Activity {
	if strings.Contains(a.Start, topUpMarker) {
		a.Start = TopUpOrigin
		a.End = TopUpDestination
	}
	return a
}

// BuildLedger reshapes extracted day groups into the final ledger: each
// day's activities sorted ascending by time (stable, so equal times keep
// document order) and the days sorted newest first under their canonical
// labels. A repeated date section replaces the earlier one.
func BuildLedger(groups []DayGroup) Ledger {
	byLabel := make(map[string][]Activity, len(groups))
	dates := make(map[string]Date, len(groups))
	for _, g := range groups {
		label := g.Date.Label()
		byLabel[label] = g.Activities
		dates[label] = g.Date
	}

	days := make([]DayEntry, 0, len(byLabel))
	for label, acts := range byLabel {
		sorted := make([]Activity, len(acts))
		copy(sorted, acts)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Time.Minutes() < sorted[j].Time.Minutes()
		})
		days = append(days, DayEntry{Label: label, Activities: sorted})
	}
	sort.Slice(days, func(i, j int) bool {
		return dates[days[j].Label].Before(dates[days[i].Label])
	})
	return Ledger{Days: days}
}
