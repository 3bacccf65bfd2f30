package core

import (
	"fmt"
	"time"
)

// DefaultTargetFloorCents is the balance the account should stay at or
// above once the week's fares are debited.
const DefaultTargetFloorCents int64 = 5000

type (
	// WeeklyTotals sums activities dated on or after the week-start
	// cutoff. FareCharged keeps the raw page sign (fares are negative);
	// the absolute-value handling in DayTotals is intentionally different.
	WeeklyTotals struct {
		TopUp       Money
		FareCharged Money
	}

	// DayTotals accumulates one weekday's amounts. Fares are stored as
	// absolute values here: at this granularity they are shown as spend.
	DayTotals struct {
		TopUp Money
		Fares Money
	}
)

// WeeklyTotals computes the since-cutoff totals, cutoff inclusive. A
// ledger label that no longer parses means the ledger itself is broken
// rather than the input data, and surfaces as ErrCorruptLedger.
func (l Ledger) WeeklyTotals(since Date) (WeeklyTotals, error) {
	var totals WeeklyTotals
	for _, day := range l.Days {
		date, err := ParseDateLabel(day.Label)
		if err != nil {
			return WeeklyTotals{}, fmt.Errorf("%w: %q", ErrCorruptLedger, day.Label)
		}
		if date.Before(since) {
			continue
		}
		for _, a := range day.Activities {
			if a.IsTopUp() {
				totals.TopUp = totals.TopUp.Add(a.Fare)
			} else {
				totals.FareCharged = totals.FareCharged.Add(a.Fare)
			}
		}
	}
	return totals, nil
}

// DailyTotals buckets the same since-cutoff activities by weekday.
func (l Ledger) DailyTotals(since Date) (map[time.Weekday]DayTotals, error) {
	daily := make(map[time.Weekday]DayTotals)
	for _, day := range l.Days {
		date, err := ParseDateLabel(day.Label)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrCorruptLedger, day.Label)
		}
		if date.Before(since) {
			continue
		}
		weekday := date.Weekday()
		totals := daily[weekday]
		for _, a := range day.Activities {
			if a.IsTopUp() {
				totals.TopUp = totals.TopUp.Add(a.Fare)
			} else {
				totals.Fares = totals.Fares.Add(a.Fare.Abs())
			}
		}
		daily[weekday] = totals
	}
	return daily, nil
}

// TopUpNeeded is the shortfall against the target floor once the week's
// fares are debited from the current balance, floored at zero.
func TopUpNeeded(balance Money, totals WeeklyTotals, floor Money) Money {
	needed := floor.Sub(balance.Sub(totals.FareCharged))
	if needed.Cents < 0 {
		return Money{}
	}
	return needed
}
