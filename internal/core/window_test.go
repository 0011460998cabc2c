package core

import (
	"testing"
	"time"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in      string
		want    ClockTime
		wantErr bool
	}{
		{"18:00", 18 * 60, false},
		{"00:00", 0, false},
		{"23:59", 23*60 + 59, false},
		{"9:00", 9 * 60, false},
		{"24:00", 0, true},
		{"18.30", 0, true},
		{"", 0, true},
	}
	for _, c := range cases {
		got, err := ParseClockTime(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: got %d want %d", c.in, got, c.want)
		}
	}
}

func TestClockTime_String(t *testing.T) {
	if got := ClockTime(18*60 + 5).String(); got != "18:05" {
		t.Fatalf("got %q", got)
	}
	if got := ClockTime(0).String(); got != "00:00" {
		t.Fatalf("got %q", got)
	}
}

func TestWorkWindow_On(t *testing.T) {
	day := time.Date(2026, 2, 13, 21, 37, 11, 0, time.UTC)
	w := WorkWindow{Start: 18 * 60, End: 23 * 60}

	start, end := w.On(day)
	if want := time.Date(2026, 2, 13, 18, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("start mismatch: got %v want %v", start, want)
	}
	if want := time.Date(2026, 2, 13, 23, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Fatalf("end mismatch: got %v want %v", end, want)
	}
}

func TestWorkWindow_Validate(t *testing.T) {
	if err := (WorkWindow{Start: 18 * 60, End: 23 * 60}).Validate(); err != nil {
		t.Fatalf("valid window rejected: %v", err)
	}
	if err := (WorkWindow{Start: 20 * 60, End: 20 * 60}).Validate(); err == nil {
		t.Fatalf("zero-length window accepted")
	}
	if err := (WorkWindow{Start: 22 * 60, End: 8 * 60}).Validate(); err == nil {
		t.Fatalf("inverted window accepted")
	}
}

func TestBlockedInterval_Validate(t *testing.T) {
	s := time.Date(2026, 2, 13, 19, 0, 0, 0, time.UTC)
	ok := BlockedInterval{Start: s, End: s.Add(time.Hour), Label: "dinner"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid interval rejected: %v", err)
	}
	bad := BlockedInterval{Start: s, End: s, Label: "empty"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("empty interval accepted")
	}
}
