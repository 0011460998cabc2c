package dag

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel rules for structural validation failures. Every failure aborts
// the scheduling attempt; there is no partial-success mode.
var (
	ErrDuplicateTaskID   = errors.New("duplicate task id")
	ErrInvalidDuration   = errors.New("invalid duration")
	ErrUnknownDependency = errors.New("unknown dependency")
	ErrCyclicDependency  = errors.New("cyclic dependency")
)

// GraphError wraps a structural validation failure with enough detail to
// produce an actionable message: the violated rule and the offending task
// IDs (for cycles, the members in detection order).
type GraphError struct {
	Rule    error
	TaskIDs []string
	Msg     string
}

func (e *GraphError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Rule.Error()
	}
	return fmt.Sprintf("%s: %s", e.Rule.Error(), e.Msg)
}

func (e *GraphError) Unwrap() error { return e.Rule }

func duplicateIDError(id string) error {
	return &GraphError{Rule: ErrDuplicateTaskID, TaskIDs: []string{id}, Msg: fmt.Sprintf("%q", id)}
}

func invalidDurationError(id string, d time.Duration) error {
	return &GraphError{
		Rule:    ErrInvalidDuration,
		TaskIDs: []string{id},
		Msg:     fmt.Sprintf("task %q has non-positive duration %s", id, d),
	}
}

func unknownDependencyError(id, dep string) error {
	msg := fmt.Sprintf("task %q depends on missing task %q", id, dep)
	if id == dep {
		msg = fmt.Sprintf("task %q depends on itself", id)
	}
	return &GraphError{Rule: ErrUnknownDependency, TaskIDs: []string{id, dep}, Msg: msg}
}

func cycleError(members []string) error {
	msg := "cycle"
	if len(members) > 0 {
		msg = "cycle: " + strings.Join(members, " -> ") + " -> " + members[0]
	}
	return &GraphError{Rule: ErrCyclicDependency, TaskIDs: members, Msg: msg}
}
