package schedule

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"planweaver/internal/core"
	"planweaver/internal/dag"
)

func sampleInput(t *testing.T) Input {
	t.Helper()
	d1 := at(t, "2026-02-14T20:00:00")
	d2 := at(t, "2026-02-13T21:00:00")
	return Input{
		PlanningStart: at(t, "2026-02-13T18:00:00"),
		Window:        window(18*60, 23*60),
		Blocked: []core.BlockedInterval{
			{Start: at(t, "2026-02-13T19:00:00"), End: at(t, "2026-02-13T19:45:00"), Label: "dinner"},
		},
		Tasks: []core.Task{
			{ID: "write", Title: "Write report", Duration: minutes(90), Deadline: &d1, Priority: 3},
			{ID: "review", Title: "Review notes", Duration: minutes(30), Deadline: &d2, Priority: 5},
			{ID: "send", Title: "Send report", Duration: minutes(15), Deadline: &d1, Priority: 3, DependsOn: []string{"write"}},
		},
		TieBreak: dag.TieBreakDeadlineFirst,
	}
}

func TestPlan_EndToEnd(t *testing.T) {
	res, err := Plan(sampleInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []string{"review", "write", "send"}; !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("order mismatch: got %v want %v", res.Order, want)
	}

	// review 18:00-18:30, write 18:30-19:00 + 19:45-20:45, send 20:45-21:00.
	if len(res.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %v", res.Blocks)
	}
	checkBlock(t, res.Blocks[0], "review", "2026-02-13T18:00:00", "2026-02-13T18:30:00", 1, 1)
	checkBlock(t, res.Blocks[1], "write", "2026-02-13T18:30:00", "2026-02-13T19:00:00", 1, 2)
	checkBlock(t, res.Blocks[2], "write", "2026-02-13T19:45:00", "2026-02-13T20:45:00", 2, 2)
	checkBlock(t, res.Blocks[3], "send", "2026-02-13T20:45:00", "2026-02-13T21:00:00", 1, 1)

	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	if res.PlanID == "" {
		t.Fatalf("missing plan id")
	}
}

func TestPlan_Deterministic(t *testing.T) {
	first, err := Plan(sampleInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Plan(sampleInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestPlan_StructuralErrorProducesNoSchedule(t *testing.T) {
	in := sampleInput(t)
	in.Tasks[0].DependsOn = []string{"send"} // write -> send -> write

	res, err := Plan(in)
	if !errors.Is(err, dag.ErrCyclicDependency) {
		t.Fatalf("expected ErrCyclicDependency, got %v", err)
	}
	if res != nil {
		t.Fatalf("expected no result on structural error, got %+v", res)
	}
}

func TestPlan_EmptyTieBreakDefaultsToDeadlineFirst(t *testing.T) {
	in := sampleInput(t)
	in.TieBreak = ""

	res, err := Plan(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	explicit, err := Plan(sampleInput(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Order, explicit.Order) {
		t.Fatalf("default policy mismatch: %v vs %v", res.Order, explicit.Order)
	}
}

func TestPlan_RejectsUnknownTieBreak(t *testing.T) {
	in := sampleInput(t)
	in.TieBreak = "whimsy-first"
	if _, err := Plan(in); err == nil {
		t.Fatalf("expected error for unknown tie-break policy")
	}
}

func TestPlan_RejectsInvalidWindow(t *testing.T) {
	in := sampleInput(t)
	in.Window = window(20*60, 18*60)
	if _, err := Plan(in); err == nil {
		t.Fatalf("expected error for inverted work window")
	}
}

func TestPlanID_StableAndContentSensitive(t *testing.T) {
	a := PlanID(sampleInput(t))
	b := PlanID(sampleInput(t))
	if a != b {
		t.Fatalf("plan id not stable: %q vs %q", a, b)
	}

	changed := sampleInput(t)
	changed.Tasks[0].Duration = minutes(91)
	if c := PlanID(changed); c == a {
		t.Fatalf("plan id ignored a content change")
	}
}

func TestPlanID_InvariantToBlockedInsertionOrder(t *testing.T) {
	in := sampleInput(t)
	in.Blocked = append(in.Blocked, core.BlockedInterval{
		Start: at(t, "2026-02-14T19:00:00"), End: at(t, "2026-02-14T19:30:00"), Label: "call",
	})

	swapped := sampleInput(t)
	swapped.Blocked = []core.BlockedInterval{in.Blocked[1], in.Blocked[0]}

	if PlanID(in) != PlanID(swapped) {
		t.Fatalf("plan id depends on blocked interval insertion order")
	}
}

func TestPlanID_TaskOrderIsSemantic(t *testing.T) {
	in := sampleInput(t)
	swapped := sampleInput(t)
	swapped.Tasks[0], swapped.Tasks[1] = swapped.Tasks[1], swapped.Tasks[0]

	if PlanID(in) == PlanID(swapped) {
		t.Fatalf("plan id must change when task input order changes")
	}
}

func TestPlan_WarningCarriedThrough(t *testing.T) {
	deadline := at(t, "2026-02-13T19:00:00")
	in := Input{
		PlanningStart: at(t, "2026-02-13T18:00:00"),
		Window:        window(18*60, 20*60),
		Tasks: []core.Task{
			{ID: "late", Title: "Late", Duration: minutes(75), Deadline: &deadline, Priority: 3},
		},
		TieBreak: dag.TieBreakDeadlineFirst,
	}

	res, err := Plan(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Overshoot != 15*time.Minute {
		t.Fatalf("unexpected warnings: %+v", res.Warnings)
	}
}
