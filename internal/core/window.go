package core

import (
	"fmt"
	"time"
)

// ClockTime is a time of day expressed as minutes since midnight.
//
// It deliberately carries no date or location so the same work window can be
// projected onto any day of the planning horizon.
type ClockTime int

// ParseClockTime parses an "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

// String renders the clock time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// OnDay projects the clock time onto the calendar day of the given timestamp.
func (c ClockTime) OnDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), int(c)/60, int(c)%60, 0, 0, day.Location())
}

// WorkWindow is the recurring daily interval during which work may be
// scheduled. Invariant: Start < End (no overnight windows).
type WorkWindow struct {
	Start ClockTime
	End   ClockTime
}

// Validate checks the window invariants.
func (w WorkWindow) Validate() error {
	if w.Start < 0 || w.End > 24*60 {
		return fmt.Errorf("work window out of range: %s-%s", w.Start, w.End)
	}
	if w.Start >= w.End {
		return fmt.Errorf("work window start %s is not before end %s", w.Start, w.End)
	}
	return nil
}

// On returns the absolute [start, end) of the window on the given day.
func (w WorkWindow) On(day time.Time) (start, end time.Time) {
	return w.Start.OnDay(day), w.End.OnDay(day)
}
