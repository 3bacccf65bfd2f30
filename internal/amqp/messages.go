package amqp

import (
	"encoding/json"
	"time"

	"opaltrack/internal/report"
)

// WeeklySummaryMessage carries one run's summary over the wire. Amounts
// travel as two-decimal strings so consumers never touch float cents.
type WeeklySummaryMessage struct {
	WeekStart   string    `json:"week_start"`
	Balance     string    `json:"balance"`
	Pending     string    `json:"pending"`
	WeekTopUp   string    `json:"week_top_up"`
	WeeklyFare  string    `json:"weekly_fare"`
	TopUpNeeded string    `json:"top_up_needed"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewWeeklySummaryMessage builds the wire message for a summary.
func NewWeeklySummaryMessage(s report.Summary) *WeeklySummaryMessage {
	return &WeeklySummaryMessage{
		WeekStart:   s.WeekStart.Label(),
		Balance:     s.Balance.String(),
		Pending:     s.Pending.String(),
		WeekTopUp:   s.Totals.TopUp.String(),
		WeeklyFare:  s.Totals.FareCharged.String(),
		TopUpNeeded: s.TopUpNeeded.String(),
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *WeeklySummaryMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// WeeklySummaryMessageFromJSON creates a message from JSON bytes.
func WeeklySummaryMessageFromJSON(data []byte) (*WeeklySummaryMessage, error) {
	var msg WeeklySummaryMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
