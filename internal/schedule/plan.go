// Package schedule is the scheduling engine: it turns a validated task set
// into a time-blocked plan plus deadline warnings.
//
// The engine is single-threaded and synchronous, a pure computation with no
// I/O and no shared state. Embedders can treat a Plan call as one atomic
// side-effect-free unit; no locking is required because nothing is shared
// across invocations.
package schedule

import (
	"fmt"

	"planweaver/internal/core"
	"planweaver/internal/dag"
)

// Plan runs the full pipeline: validate -> order -> allocate.
//
// On structural failure (duplicate ID, non-positive duration, unknown
// dependency, cycle) it returns the dag error and no Result. Deadline
// overshoot is never an error; it surfaces as Warnings on a complete
// schedule.
func Plan(in Input) (*Result, error) {
	if err := in.Window.Validate(); err != nil {
		return nil, fmt.Errorf("work window: %w", err)
	}
	for _, b := range in.Blocked {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}
	policy := in.TieBreak
	if policy == "" {
		policy = dag.TieBreakDeadlineFirst
	}
	if !policy.Valid() {
		return nil, fmt.Errorf("unknown tie-break policy %q", policy)
	}

	g, err := dag.NewGraph(in.Tasks)
	if err != nil {
		return nil, err
	}

	order := g.Order(policy)
	ordered := make([]core.Task, 0, g.Len())
	for _, id := range order {
		t, _ := g.Task(id)
		ordered = append(ordered, t)
	}

	blocks, warnings := Allocate(ordered, in.PlanningStart, in.Window, in.Blocked)

	return &Result{
		PlanID:   PlanID(in),
		Order:    order,
		Blocks:   blocks,
		Warnings: warnings,
	}, nil
}
