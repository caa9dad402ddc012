package task

import (
	"errors"
	"fmt"

	"github.com/mkern/taskbook/internal/validation"
)

var (
	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNonPositiveID is returned when a task carries an ID below 1.
	ErrNonPositiveID = errors.New("task id must be a positive integer")

	// ErrDuplicateID is returned when a snapshot contains the same ID twice.
	ErrDuplicateID = errors.New("duplicate task id")

	// ErrMissingCreatedAt is returned when a task has no creation timestamp.
	ErrMissingCreatedAt = errors.New("task must have created_at timestamp")

	// ErrCompletedMissingTimestamp is returned when a completed task has no
	// completed_at timestamp.
	ErrCompletedMissingTimestamp = errors.New("completed task must have completed_at timestamp")

	// ErrNotCompletedHasTimestamp is returned when an open task has a
	// completed_at timestamp.
	ErrNotCompletedHasTimestamp = errors.New("open task cannot have completed_at timestamp")
)

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidPriority, priority,
			validation.FormatValidValues(ValidPriorities()))
	}
	return nil
}

// ValidateTask checks if a task struct is valid.
func ValidateTask(t *Task) error {
	if t.ID < 1 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveID, t.ID)
	}

	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}

	if t.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}

	if t.Completed {
		if t.CompletedAt == nil {
			return ErrCompletedMissingTimestamp
		}
	} else if t.CompletedAt != nil {
		return ErrNotCompletedHasTimestamp
	}

	return nil
}

// ValidateSnapshot checks structural invariants across a whole snapshot.
func ValidateSnapshot(snap *Snapshot) error {
	seen := make(map[int]struct{}, len(snap.Tasks))
	for i := range snap.Tasks {
		t := &snap.Tasks[i]
		if err := ValidateTask(t); err != nil {
			return fmt.Errorf("task %d: %w", t.ID, err)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
