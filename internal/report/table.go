package report

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"opaltrack/internal/core"
)

// weekdayOrder fixes the table rows to calendar order regardless of how
// the ledger happened to be traversed.
var weekdayOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// renderTable builds the Weekday / Top Up / Fares grid. Only weekdays
// with activity get a row; the trailing Total row sums both columns
// across the rows shown.
func renderTable(daily map[time.Weekday]core.DayTotals) string {
	var totalTopUp, totalFares core.Money

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle()).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Weekday", "Top Up", "Fares")

	for _, day := range weekdayOrder {
		totals, ok := daily[day]
		if !ok {
			continue
		}
		tbl.Row(day.String(), totals.TopUp.String(), totals.Fares.String())
		totalTopUp = totalTopUp.Add(totals.TopUp)
		totalFares = totalFares.Add(totals.Fares)
	}
	tbl.Row("Total", totalTopUp.String(), totalFares.String())

	return tbl.String()
}
