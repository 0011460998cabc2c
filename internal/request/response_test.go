package request

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"planweaver/internal/dag"
	"planweaver/internal/schedule"
)

func TestBuildErrorResponse_MapsRuleAndTaskIDs(t *testing.T) {
	cases := []struct {
		err  error
		rule string
	}{
		{&dag.GraphError{Rule: dag.ErrDuplicateTaskID, TaskIDs: []string{"a"}}, "DuplicateTaskID"},
		{&dag.GraphError{Rule: dag.ErrInvalidDuration, TaskIDs: []string{"a"}}, "InvalidDuration"},
		{&dag.GraphError{Rule: dag.ErrUnknownDependency, TaskIDs: []string{"a", "b"}}, "UnknownDependency"},
		{&dag.GraphError{Rule: dag.ErrCyclicDependency, TaskIDs: []string{"a", "b", "c"}}, "CyclicDependency"},
	}
	for _, c := range cases {
		resp, ok := BuildErrorResponse(c.err)
		if !ok {
			t.Fatalf("expected mapping for %v", c.err)
		}
		if resp.Error.Rule != c.rule {
			t.Fatalf("rule mismatch: got %q want %q", resp.Error.Rule, c.rule)
		}
		var ge *dag.GraphError
		errors.As(c.err, &ge)
		if !reflect.DeepEqual(resp.Error.TaskIDs, ge.TaskIDs) {
			t.Fatalf("task ids mismatch: got %v want %v", resp.Error.TaskIDs, ge.TaskIDs)
		}
	}
}

func TestBuildErrorResponse_IgnoresNonValidationErrors(t *testing.T) {
	if _, ok := BuildErrorResponse(errors.New("disk on fire")); ok {
		t.Fatalf("internal errors must not become validation responses")
	}
}

func TestEncodeJSON_Deterministic(t *testing.T) {
	resp := &Response{
		PlanID:    "00000000-0000-0000-0000-000000000000",
		TaskOrder: []string{"a", "b"},
		Schedule:  []BlockSpec{},
		Warnings:  []WarningSpec{},
	}
	first, err := EncodeJSON(resp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := EncodeJSON(resp)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("encoding is not byte-stable")
	}
	if first[len(first)-1] != '\n' {
		t.Fatalf("encoded response must end with a newline")
	}
}

func TestBuildResponse_RoundTrip(t *testing.T) {
	req, err := Decode([]byte(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	in, err := req.Resolve(StandardDefaults)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	res, err := schedule.Plan(*in)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	resp := BuildResponse(in, res)
	if resp.PlanID != res.PlanID {
		t.Fatalf("plan id mismatch")
	}
	if !reflect.DeepEqual(resp.TaskOrder, []string{"a", "b"}) {
		t.Fatalf("task order mismatch: %v", resp.TaskOrder)
	}
	if len(resp.Schedule) == 0 {
		t.Fatalf("empty schedule")
	}
	total := 0
	for _, b := range resp.Schedule {
		total += b.Minutes
	}
	if total != 75 {
		t.Fatalf("scheduled minutes mismatch: got %d want 75", total)
	}
}
