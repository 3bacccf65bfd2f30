package core

import "testing"

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"20.00", 2000, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"$4.50", 450, true},
		{"$-4.50", -450, true},
		{"-$4.50", -450, true},
		{"-4.50", -450, true},
		{"+3.20", 320, true},
		{"0", 0, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"$", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmountToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestAmountOrZero(t *testing.T) {
	if got := AmountOrZero("garbage"); got.Cents != 0 {
		t.Fatalf("malformed amount should default to zero, got %d", got.Cents)
	}
	if got := AmountOrZero("$-4.50"); got.Cents != -450 {
		t.Fatalf("expected -450, got %d", got.Cents)
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{2000, "20.00"},
		{-450, "-4.50"},
		{5, "0.05"},
		{0, "0.00"},
		{1550, "15.50"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Errorf("Money{%d}.String() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestMoneyAbs(t *testing.T) {
	if got := (Money{Cents: -450}).Abs(); got.Cents != 450 {
		t.Fatalf("Abs(-450) = %d", got.Cents)
	}
	if got := (Money{Cents: 450}).Abs(); got.Cents != 450 {
		t.Fatalf("Abs(450) = %d", got.Cents)
	}
}
