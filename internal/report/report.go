// Package report derives the weekly summary from a ledger: since-Monday
// totals, the top-up shortfall against the target floor, and the
// per-weekday table.
package report

import (
	"opaltrack/internal/core"
)

// Summary is everything one pipeline run reports.
type Summary struct {
	Balance     core.Money
	Pending     core.Money
	WeekStart   core.Date
	Totals      core.WeeklyTotals
	TopUpNeeded core.Money
	Table       string
}

// Build computes the weekly summary for the given cutoff, balance and
// target floor. The only error path is a ledger whose labels no longer
// re-parse, which callers treat as fatal.
func Build(ledger core.Ledger, since core.Date, balance, pending, floor core.Money) (Summary, error) {
	totals, err := ledger.WeeklyTotals(since)
	if err != nil {
		return Summary{}, err
	}
	daily, err := ledger.DailyTotals(since)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Balance:     balance,
		Pending:     pending,
		WeekStart:   since,
		Totals:      totals,
		TopUpNeeded: core.TopUpNeeded(balance, totals, floor),
		Table:       renderTable(daily),
	}, nil
}

// Payload is the webhook body. Field names and the string-typed
// top_up_needed match the downstream consumer's existing contract.
type Payload struct {
	WeeklyFare  float64 `json:"weekly_fare"`
	OpalBalance float64 `json:"opal_balance"`
	WeekTopUp   float64 `json:"week_top_up"`
	TopUpNeeded string  `json:"top_up_needed"`
}

// Payload converts the summary to its wire form.
func (s Summary) Payload() Payload {
	return Payload{
		WeeklyFare:  s.Totals.FareCharged.Dollars(),
		OpalBalance: s.Balance.Dollars(),
		WeekTopUp:   s.Totals.TopUp.Dollars(),
		TopUpNeeded: s.TopUpNeeded.String(),
	}
}
