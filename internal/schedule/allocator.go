package schedule

import (
	"time"

	"planweaver/internal/core"
	"planweaver/internal/interval"
)

// Allocate walks the ordered task list and assigns each task one or more
// concrete time blocks inside the daily work window, skipping blocked
// intervals.
//
// A single cursor moves strictly forward; tasks never overlap and never
// reorder (single work-stream). A task that does not fit the current
// available segment is split across as many segments, and days, as it
// needs. After a task's last block is placed, a Warning is emitted if that
// block ends after the task's deadline.
//
// Pure: inputs are not mutated and the output depends only on them.
func Allocate(tasks []core.Task, start time.Time, window core.WorkWindow, blocked []core.BlockedInterval) ([]Block, []Warning) {
	unavailable := make([]interval.Span, 0, len(blocked))
	for _, b := range blocked {
		unavailable = append(unavailable, interval.Span{Start: b.Start, End: b.End})
	}
	unavailable = interval.Merge(unavailable)

	blocks := make([]Block, 0, len(tasks))
	warnings := make([]Warning, 0)
	cursor := start

	for _, t := range tasks {
		remaining := t.Duration
		first := len(blocks)

		for remaining > 0 {
			seg := nextAvailable(cursor, window, unavailable)
			take := remaining
			if d := seg.Duration(); d < take {
				take = d
			}
			end := seg.Start.Add(take)
			blocks = append(blocks, Block{TaskID: t.ID, Title: t.Title, Start: seg.Start, End: end})
			cursor = end
			remaining -= take
		}

		n := len(blocks) - first
		for i := 0; i < n; i++ {
			blocks[first+i].Seq = i + 1
			blocks[first+i].SeqTotal = n
		}

		if t.Deadline != nil {
			completed := blocks[len(blocks)-1].End
			if completed.After(*t.Deadline) {
				warnings = append(warnings, Warning{
					TaskID:      t.ID,
					Deadline:    *t.Deadline,
					CompletedAt: completed,
					Overshoot:   completed.Sub(*t.Deadline),
				})
			}
		}
	}
	return blocks, warnings
}

// nextAvailable finds the earliest non-empty available segment starting at
// or after the cursor: the cursor day's work window minus the unavailable
// regions, rolling day by day until a segment exists.
//
// Termination: the unavailable set is finite, so some day's window survives
// subtraction intact; within the search the cursor is fixed and only the
// day advances.
func nextAvailable(cursor time.Time, window core.WorkWindow, unavailable []interval.Span) interval.Span {
	day := cursor
	for {
		ws, we := window.On(day)
		for _, seg := range interval.Subtract(interval.Span{Start: ws, End: we}, unavailable) {
			start := seg.Start
			if cursor.After(start) {
				start = cursor
			}
			if start.Before(seg.End) {
				return interval.Span{Start: start, End: seg.End}
			}
		}
		day = day.AddDate(0, 0, 1)
	}
}
