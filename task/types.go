// Package task implements a snapshot-backed task tracker.
//
// Tasks live in a single human-readable JSON snapshot file. Every mutation
// rewrites the whole snapshot through a temp file and an atomic rename, under
// an exclusive file lock.
//
// The public API mirrors the CLI commands:
//   - Add, Update, Complete, Reopen, Delete for task lifecycle
//   - Show, List, Search for querying
package task

// Priority is the importance classification of a task.
type Priority string

const (
	// PriorityLow indicates the task can wait.
	PriorityLow Priority = "low"

	// PriorityMedium is the default priority.
	PriorityMedium Priority = "medium"

	// PriorityHigh indicates the task should be handled first.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// PriorityRank returns the sort rank for a priority. Higher priorities rank
// first.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// PriorityPtr returns a pointer to the provided priority.
func PriorityPtr(priority Priority) *Priority {
	return &priority
}
