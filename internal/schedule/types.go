package schedule

import (
	"time"

	"planweaver/internal/core"
	"planweaver/internal/dag"
)

// Block is one contiguous stretch of scheduled work for a task.
//
// Seq/SeqTotal describe task splitting: block Seq of SeqTotal. All blocks
// of one task are contiguous in the output sequence and their durations sum
// exactly to the task's duration.
type Block struct {
	TaskID   string
	Title    string
	Start    time.Time
	End      time.Time
	Seq      int
	SeqTotal int
}

// Duration returns the length of the block.
func (b Block) Duration() time.Duration { return b.End.Sub(b.Start) }

// Warning flags a task whose last block ends after its deadline. It is a
// soft condition: the schedule is still complete.
type Warning struct {
	TaskID      string
	Deadline    time.Time
	CompletedAt time.Time
	Overshoot   time.Duration
}

// Input is the engine's complete, validated-by-construction input. The
// engine is a pure function of Input; identical Inputs produce identical
// Results.
type Input struct {
	PlanningStart time.Time
	Window        core.WorkWindow
	Blocked       []core.BlockedInterval
	Tasks         []core.Task
	TieBreak      dag.TieBreak
}

// Result is the engine's output: the execution order, the placed blocks,
// any deadline warnings, and a content-derived plan identity.
type Result struct {
	PlanID   string
	Order    []string
	Blocks   []Block
	Warnings []Warning
}
