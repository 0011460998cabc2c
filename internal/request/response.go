package request

import (
	"encoding/json"
	"errors"
	"time"

	"planweaver/internal/dag"
	"planweaver/internal/schedule"
)

// Response is the successful planning result as written to disk.
//
// Field order is fixed by the struct definition and the encoder is
// deterministic, so identical inputs produce byte-identical responses.
type Response struct {
	PlanID        string        `json:"plan_id"`
	PlanningStart string        `json:"planning_start"`
	WorkWindow    WindowSpec    `json:"work_window"`
	TaskOrder     []string      `json:"task_order"`
	Schedule      []BlockSpec   `json:"schedule"`
	Warnings      []WarningSpec `json:"warnings"`
}

// BlockSpec is one scheduled block on the wire.
type BlockSpec struct {
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Minutes  int    `json:"minutes"`
	Seq      int    `json:"seq"`
	SeqTotal int    `json:"seq_total"`
}

// WarningSpec is one deadline warning on the wire.
type WarningSpec struct {
	TaskID       string `json:"task_id"`
	Deadline     string `json:"deadline"`
	CompletedAt  string `json:"completed_at"`
	OvershootMin int    `json:"overshoot_min"`
}

// ErrorResponse replaces the schedule entirely when the task set is
// structurally invalid.
type ErrorResponse struct {
	Error ErrorSpec `json:"error"`
}

// ErrorSpec names the violated rule and the offending task IDs (for
// cycles, the cycle members in detection order).
type ErrorSpec struct {
	Rule    string   `json:"rule"`
	TaskIDs []string `json:"task_ids"`
	Detail  string   `json:"detail"`
}

func formatTimestamp(t time.Time) string { return t.Format(time.RFC3339) }

// BuildResponse assembles the wire response from an engine result.
func BuildResponse(in *schedule.Input, res *schedule.Result) *Response {
	out := &Response{
		PlanID:        res.PlanID,
		PlanningStart: formatTimestamp(in.PlanningStart),
		WorkWindow:    WindowSpec{Start: in.Window.Start.String(), End: in.Window.End.String()},
		TaskOrder:     res.Order,
		Schedule:      make([]BlockSpec, 0, len(res.Blocks)),
		Warnings:      make([]WarningSpec, 0, len(res.Warnings)),
	}
	for _, b := range res.Blocks {
		out.Schedule = append(out.Schedule, BlockSpec{
			TaskID:   b.TaskID,
			Title:    b.Title,
			Start:    formatTimestamp(b.Start),
			End:      formatTimestamp(b.End),
			Minutes:  int(b.Duration() / time.Minute),
			Seq:      b.Seq,
			SeqTotal: b.SeqTotal,
		})
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, WarningSpec{
			TaskID:       w.TaskID,
			Deadline:     formatTimestamp(w.Deadline),
			CompletedAt:  formatTimestamp(w.CompletedAt),
			OvershootMin: int(w.Overshoot / time.Minute),
		})
	}
	return out
}

// ruleNames maps the dag sentinels to their wire names.
var ruleNames = []struct {
	err  error
	name string
}{
	{dag.ErrDuplicateTaskID, "DuplicateTaskID"},
	{dag.ErrInvalidDuration, "InvalidDuration"},
	{dag.ErrUnknownDependency, "UnknownDependency"},
	{dag.ErrCyclicDependency, "CyclicDependency"},
}

// BuildErrorResponse maps a structural validation error to its wire form.
// It returns false for errors that are not validation verdicts (those are
// internal failures and get no response file).
func BuildErrorResponse(err error) (*ErrorResponse, bool) {
	var ge *dag.GraphError
	if !errors.As(err, &ge) {
		return nil, false
	}
	spec := ErrorSpec{TaskIDs: ge.TaskIDs, Detail: ge.Error()}
	for _, r := range ruleNames {
		if errors.Is(ge, r.err) {
			spec.Rule = r.name
			break
		}
	}
	return &ErrorResponse{Error: spec}, true
}

// EncodeJSON renders a response deterministically: two-space indentation
// and a trailing newline.
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
