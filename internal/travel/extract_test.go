package travel_test

import (
	"testing"
	"time"

	"opaltrack/internal/core"
	"opaltrack/internal/travel"
	"opaltrack/internal/travel/memory"
)

func TestExtractNormalizesTopUps(t *testing.T) {
	doc := &memory.Document{Groups: []memory.Group{{
		Label: "Monday 03 Jun 2024",
		Entries: []memory.Entry{
			{
				Time:  memory.F("08:15"),
				Start: memory.F("Home"),
				End:   memory.F("City"),
				Fare:  memory.F("$-4.50"),
			},
			{
				Time:  memory.F("07:00"),
				Start: memory.F("Top up machine"),
				End:   memory.F(""),
				Fare:  memory.F("$20.00"),
			},
		},
	}}}

	groups := travel.Extract(doc)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if !g.Date.Equal(core.NewDate(2024, time.June, 3).Time) {
		t.Fatalf("unexpected date %v", g.Date)
	}
	if len(g.Activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(g.Activities))
	}

	// Document order is preserved; sorting is the ledger builder's job.
	trip := g.Activities[0]
	if trip.Start != "Home" || trip.End != "City" || trip.Fare.Cents != -450 {
		t.Errorf("trip extracted as %+v", trip)
	}

	topup := g.Activities[1]
	if topup.Start != core.TopUpOrigin || topup.End != core.TopUpDestination {
		t.Errorf("top-up not normalized: %+v", topup)
	}
	if topup.Fare.Cents != 2000 {
		t.Errorf("top-up fare = %v, want 20.00", topup.Fare)
	}
}

func TestExtractSkipsUnparseableDateGroups(t *testing.T) {
	doc := &memory.Document{Groups: []memory.Group{
		{
			Label:   "Sometime Last Week",
			Entries: []memory.Entry{{Start: memory.F("Home"), End: memory.F("City")}},
		},
		{
			Label:   "Tuesday 04 Jun 2024",
			Entries: []memory.Entry{{Start: memory.F("City"), End: memory.F("Home")}},
		},
	}}

	groups := travel.Extract(doc)
	if len(groups) != 1 {
		t.Fatalf("malformed date group should be dropped silently, got %d groups", len(groups))
	}
	if groups[0].Date.Label() != "Tuesday 04 Jun 2024" {
		t.Errorf("wrong group survived: %v", groups[0].Date.Label())
	}
}

func TestExtractFieldDefaults(t *testing.T) {
	doc := &memory.Document{Groups: []memory.Group{{
		Label:   "Monday 03 Jun 2024",
		Entries: []memory.Entry{{}}, // every field absent
	}}}

	a := travel.Extract(doc)[0].Activities[0]
	if a.Time.Minutes() != 0 {
		t.Errorf("missing time should default to midnight, got %v", a.Time)
	}
	if a.Start != core.UnknownPlace || a.End != core.UnknownPlace {
		t.Errorf("missing endpoints should default to %q, got (%q, %q)", core.UnknownPlace, a.Start, a.End)
	}
	if a.Fare.Cents != 0 {
		t.Errorf("missing fare should default to zero, got %v", a.Fare)
	}
}

func TestExtractFieldsFailIndependently(t *testing.T) {
	doc := &memory.Document{Groups: []memory.Group{{
		Label: "Monday 03 Jun 2024",
		Entries: []memory.Entry{{
			Time:  memory.F("not a time"),
			Start: memory.F("Home"),
			Fare:  memory.F("$-3.20"),
			// End absent.
		}},
	}}}

	a := travel.Extract(doc)[0].Activities[0]
	if a.Time.Minutes() != 0 {
		t.Errorf("bad time label should degrade to midnight, got %v", a.Time)
	}
	if a.Start != "Home" {
		t.Errorf("good fields must survive bad neighbours, start = %q", a.Start)
	}
	if a.End != core.UnknownPlace {
		t.Errorf("absent end should default, got %q", a.End)
	}
	if a.Fare.Cents != -320 {
		t.Errorf("fare = %v, want -3.20", a.Fare)
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	if groups := travel.Extract(&memory.Document{}); len(groups) != 0 {
		t.Fatalf("empty document should extract nothing, got %d groups", len(groups))
	}
}
