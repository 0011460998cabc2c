package core

import (
	"fmt"
	"time"
)

// BlockedInterval is an absolute [Start, End) span of calendar time during
// which no work may be scheduled. Intervals may overlap each other; the
// allocator treats overlapping intervals as one unavailable region.
type BlockedInterval struct {
	Start time.Time
	End   time.Time
	Label string
}

// Validate checks the interval invariant Start < End.
func (b BlockedInterval) Validate() error {
	if !b.Start.Before(b.End) {
		return fmt.Errorf("blocked interval %q ends before it starts (%s >= %s)",
			b.Label, b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339))
	}
	return nil
}
