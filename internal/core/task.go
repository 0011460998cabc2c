package core

import "time"

// Task is a single unit of work to be placed on the calendar.
//
// A Task is immutable once scheduling begins. Duration is a whole number of
// minutes. Deadline is optional; a nil Deadline means the task can never
// produce a deadline warning and sorts after all deadlined tasks when
// ordering ties are broken.
type Task struct {
	ID       string
	Title    string
	Duration time.Duration
	Deadline *time.Time

	// Priority breaks ordering ties; higher is more urgent.
	Priority int

	// DependsOn lists the IDs of tasks that must complete before this one
	// may start. Self-references and unknown IDs are rejected during
	// graph construction.
	DependsOn []string
}
