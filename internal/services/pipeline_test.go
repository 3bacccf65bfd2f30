package services

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"opaltrack/internal/config"
	"opaltrack/internal/core"
	"opaltrack/internal/opal"
)

const travelFragment = `
<div>
  <div class="activity-by-date-container ng-star-inserted">
    <div class="activity-date">Wednesday 05 Jun 2024</div>
    <ul>
      <li class="ng-star-inserted">
        <div class="date">08:15</div>
        <span class="from">Central Station</span>
        <span class="to">Town Hall Station</span>
        <div class="amount"><span>$-4.50</span></div>
      </li>
      <li class="ng-star-inserted">
        <div class="date">07:00</div>
        <span class="from">Top up - app</span>
        <div class="amount"><span>$40.00</span></div>
      </li>
    </ul>
  </div>
  <div class="activity-by-date-container ng-star-inserted">
    <div class="activity-date">Saturday 01 Jun 2024</div>
    <ul>
      <li class="ng-star-inserted">
        <div class="date">10:00</div>
        <span class="from">Central Station</span>
        <span class="to">Bondi Junction</span>
        <div class="amount"><span>$-10.00</span></div>
      </li>
    </ul>
  </div>
</div>`

func testPipeline() *Pipeline {
	cfg := config.Load()
	cfg.TargetFloorCents = core.DefaultTargetFloorCents
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewPipeline(cfg, logger)
}

func TestSummarizeFromSnapshot(t *testing.T) {
	p := testPipeline()
	snapshot := opal.Snapshot{
		Balance:    core.Money{Cents: 1200},
		Pending:    core.Money{Cents: 0},
		TravelHTML: travelFragment,
	}

	// A Friday, so the week started Monday 03 Jun. The Saturday trip
	// falls outside the week and must not count.
	now := time.Date(2024, 6, 7, 15, 0, 0, 0, time.UTC)
	summary, err := p.Summarize(snapshot, now)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if got := summary.WeekStart.Label(); got != "Monday 03 Jun 2024" {
		t.Errorf("WeekStart = %q", got)
	}
	if summary.Totals.TopUp.Cents != 4000 {
		t.Errorf("week top-up = %d cents, want 4000", summary.Totals.TopUp.Cents)
	}
	if summary.Totals.FareCharged.Cents != -450 {
		t.Errorf("week fare = %d cents, want -450", summary.Totals.FareCharged.Cents)
	}
	// floor 5000 - (1200 - (-450)) = 3350
	if summary.TopUpNeeded.Cents != 3350 {
		t.Errorf("TopUpNeeded = %d cents, want 3350", summary.TopUpNeeded.Cents)
	}
	if summary.Table == "" {
		t.Error("expected a rendered weekday table")
	}
}

func TestSummarizeEmptySnapshot(t *testing.T) {
	p := testPipeline()
	snapshot := opal.Snapshot{TravelHTML: ""}

	summary, err := p.Summarize(snapshot, time.Date(2024, 6, 7, 15, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.Totals.TopUp.Cents != 0 || summary.Totals.FareCharged.Cents != 0 {
		t.Errorf("empty snapshot produced totals %+v", summary.Totals)
	}
	if summary.TopUpNeeded.Cents != core.DefaultTargetFloorCents {
		t.Errorf("TopUpNeeded = %d cents, want the full floor", summary.TopUpNeeded.Cents)
	}
}
