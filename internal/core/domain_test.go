package core

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"07:00", 7, 0, false},
		{"08:15", 8, 15, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{" 12:30 ", 12, 30, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"noon", 0, 0, true},
		{"", 0, 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q expected error", tc.in)
			}
			continue
		}
		if err != nil || got.Hour != tc.hour || got.Minute != tc.minute {
			t.Errorf("%q = %v (err=%v), want %02d:%02d", tc.in, got, err, tc.hour, tc.minute)
		}
	}
}

func TestClockOrMidnight(t *testing.T) {
	if got := ClockOrMidnight("not a time"); got.Minutes() != 0 {
		t.Fatalf("unparseable time should default to midnight, got %v", got)
	}
	if got := ClockOrMidnight("08:15"); got.Minutes() != 8*60+15 {
		t.Fatalf("expected 08:15, got %v", got)
	}
}

func TestNormalizeTopUp(t *testing.T) {
	cases := []struct {
		name      string
		start     string
		end       string
		wantStart string
		wantEnd   string
	}{
		{"top up machine", "Top up machine", "", TopUpOrigin, TopUpDestination},
		{"top up overrides destination", "Top up - app", "Central", TopUpOrigin, TopUpDestination},
		{"case sensitive", "top up machine", "Central", "top up machine", "Central"},
		{"regular trip untouched", "Home", "City", "Home", "City"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Activity{Start: tc.start, End: tc.end}.Normalize()
			if got.Start != tc.wantStart || got.End != tc.wantEnd {
				t.Errorf("Normalize(%q, %q) = (%q, %q), want (%q, %q)",
					tc.start, tc.end, got.Start, got.End, tc.wantStart, tc.wantEnd)
			}
		})
	}
}

func TestBuildLedgerOrdering(t *testing.T) {
	groups := []DayGroup{
		{
			Date: NewDate(2024, time.June, 3),
			Activities: []Activity{
				{Time: ClockTime{Hour: 8, Minute: 15}, Start: "Home", End: "City", Fare: Money{Cents: -450}},
				{Time: ClockTime{Hour: 7}, Start: TopUpOrigin, End: TopUpDestination, Fare: Money{Cents: 2000}},
			},
		},
		{
			Date: NewDate(2024, time.June, 5),
			Activities: []Activity{
				{Time: ClockTime{Hour: 17, Minute: 30}, Start: "City", End: "Home", Fare: Money{Cents: -450}},
			},
		},
	}

	ledger := BuildLedger(groups)
	if len(ledger.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(ledger.Days))
	}

	// Newest day first.
	if ledger.Days[0].Label != "Wednesday 05 Jun 2024" {
		t.Errorf("expected Wednesday first, got %q", ledger.Days[0].Label)
	}
	if ledger.Days[1].Label != "Monday 03 Jun 2024" {
		t.Errorf("expected Monday second, got %q", ledger.Days[1].Label)
	}

	// Within a day, ascending by time.
	monday := ledger.Days[1].Activities
	if len(monday) != 2 {
		t.Fatalf("expected 2 activities on Monday, got %d", len(monday))
	}
	if monday[0].Time.String() != "07:00" || monday[1].Time.String() != "08:15" {
		t.Errorf("expected 07:00 then 08:15, got %v then %v", monday[0].Time, monday[1].Time)
	}
}

func TestBuildLedgerStableOnEqualTimes(t *testing.T) {
	groups := []DayGroup{{
		Date: NewDate(2024, time.June, 3),
		Activities: []Activity{
			{Time: ClockTime{Hour: 9}, Start: "First", End: "A"},
			{Time: ClockTime{Hour: 9}, Start: "Second", End: "B"},
			{Time: ClockTime{Hour: 9}, Start: "Third", End: "C"},
		},
	}}
	acts := BuildLedger(groups).Days[0].Activities
	want := []string{"First", "Second", "Third"}
	for i, w := range want {
		if acts[i].Start != w {
			t.Fatalf("equal-time activities reordered: got %q at %d, want %q", acts[i].Start, i, w)
		}
	}
}

func TestBuildLedgerRepeatedDateReplaces(t *testing.T) {
	d := NewDate(2024, time.June, 3)
	groups := []DayGroup{
		{Date: d, Activities: []Activity{{Start: "Old", End: "A"}}},
		{Date: d, Activities: []Activity{{Start: "New", End: "B"}}},
	}
	ledger := BuildLedger(groups)
	if len(ledger.Days) != 1 || len(ledger.Days[0].Activities) != 1 {
		t.Fatalf("expected one day with one activity, got %+v", ledger.Days)
	}
	if ledger.Days[0].Activities[0].Start != "New" {
		t.Fatalf("later date section should replace the earlier one")
	}
}
