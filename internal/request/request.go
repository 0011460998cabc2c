// Package request defines the wire format of the planning boundary: the
// structured request the CLI reads and the structured response it writes.
//
// Decoding canonicalizes everything the engine consumes (timestamps, clock
// times, defaults) so that the engine itself never parses text.
package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"planweaver/internal/core"
	"planweaver/internal/schedule"
)

// Format selects the request file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Request is the raw planning request as found on disk.
type Request struct {
	PlanningStart string        `json:"planning_start" yaml:"planning_start"`
	WorkWindow    *WindowSpec   `json:"work_window,omitempty" yaml:"work_window,omitempty"`
	Blocked       []BlockedSpec `json:"blocked,omitempty" yaml:"blocked,omitempty"`
	Tasks         []TaskSpec    `json:"tasks" yaml:"tasks"`
}

// WindowSpec is the daily work window in "HH:MM" clock times.
type WindowSpec struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// BlockedSpec is one absolute blocked interval.
type BlockedSpec struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// TaskSpec is one task as declared in the request. Deadline is optional;
// Priority defaults when absent.
type TaskSpec struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	DurationMin int      `json:"duration_min" yaml:"duration_min"`
	Deadline    string   `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Priority    *int     `json:"priority,omitempty" yaml:"priority,omitempty"`
	DependsOn   []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// Defaults fill the request fields the caller may omit.
type Defaults struct {
	WindowStart core.ClockTime
	WindowEnd   core.ClockTime
	Priority    int
}

// StandardDefaults are the built-in fallbacks: an 18:00-23:00 evening
// window and priority 3.
var StandardDefaults = Defaults{
	WindowStart: 18 * 60,
	WindowEnd:   23 * 60,
	Priority:    3,
}

// DecodeError marks a malformed request, as opposed to a structurally
// invalid task set (which is the engine's verdict, not the decoder's).
type DecodeError struct {
	Msg   string
	Cause error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *DecodeError) Unwrap() error { return e.Cause }

func decodeErrorf(cause error, format string, args ...any) error {
	return &DecodeError{Msg: fmt.Sprintf(format, args...), Cause: cause}
}

// Decode parses raw request bytes in the given format.
func Decode(data []byte, format Format) (*Request, error) {
	var req Request
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, decodeErrorf(err, "invalid YAML request")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, decodeErrorf(err, "invalid JSON request")
		}
	default:
		return nil, decodeErrorf(nil, "unknown request format %q", format)
	}
	return &req, nil
}

// wireTimeLayouts are the accepted timestamp encodings: RFC 3339 and the
// zone-less ISO form. Zone-less timestamps are interpreted as UTC, which
// keeps the engine's arithmetic consistent across inputs.
var wireTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

func parseTimestamp(field, s string) (time.Time, error) {
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, decodeErrorf(nil, "invalid %s timestamp %q", field, s)
}

// Resolve canonicalizes the request into an engine Input, applying the
// given defaults for missing window, priority and labels.
//
// The engine's tie-break policy is not part of the request; the caller sets
// it from configuration after Resolve.
func (r *Request) Resolve(d Defaults) (*schedule.Input, error) {
	if r.PlanningStart == "" {
		return nil, decodeErrorf(nil, "planning_start is required")
	}
	start, err := parseTimestamp("planning_start", r.PlanningStart)
	if err != nil {
		return nil, err
	}

	window := core.WorkWindow{Start: d.WindowStart, End: d.WindowEnd}
	if r.WorkWindow != nil {
		if window.Start, err = core.ParseClockTime(r.WorkWindow.Start); err != nil {
			return nil, decodeErrorf(err, "work_window.start")
		}
		if window.End, err = core.ParseClockTime(r.WorkWindow.End); err != nil {
			return nil, decodeErrorf(err, "work_window.end")
		}
	}
	if err := window.Validate(); err != nil {
		return nil, decodeErrorf(err, "work_window")
	}

	blocked := make([]core.BlockedInterval, 0, len(r.Blocked))
	for i, b := range r.Blocked {
		bs, err := parseTimestamp(fmt.Sprintf("blocked[%d].start", i), b.Start)
		if err != nil {
			return nil, err
		}
		be, err := parseTimestamp(fmt.Sprintf("blocked[%d].end", i), b.End)
		if err != nil {
			return nil, err
		}
		label := b.Label
		if label == "" {
			label = "blocked"
		}
		iv := core.BlockedInterval{Start: bs, End: be, Label: label}
		if err := iv.Validate(); err != nil {
			return nil, decodeErrorf(err, "blocked[%d]", i)
		}
		blocked = append(blocked, iv)
	}

	tasks := make([]core.Task, 0, len(r.Tasks))
	for i, t := range r.Tasks {
		task := core.Task{
			ID:        t.ID,
			Title:     t.Title,
			Duration:  time.Duration(t.DurationMin) * time.Minute,
			Priority:  d.Priority,
			DependsOn: t.DependsOn,
		}
		if t.Priority != nil {
			task.Priority = *t.Priority
		}
		if t.Deadline != "" {
			dl, err := parseTimestamp(fmt.Sprintf("tasks[%d].deadline", i), t.Deadline)
			if err != nil {
				return nil, err
			}
			task.Deadline = &dl
		}
		tasks = append(tasks, task)
	}

	return &schedule.Input{
		PlanningStart: start,
		Window:        window,
		Blocked:       blocked,
		Tasks:         tasks,
	}, nil
}
