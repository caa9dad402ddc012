package task

import "time"

// Task represents a single tracked task.
type Task struct {
	// ID is a unique positive integer, assigned monotonically and never
	// reused after deletion.
	ID int `json:"id"`

	// Title is the short summary of the task.
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// Priority is the importance level (low, medium, high).
	Priority Priority `json:"priority"`

	// DueDate is the optional calendar date the task is due (nil when unset).
	DueDate *time.Time `json:"due_date,omitempty"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`

	// CreatedAt is when the task was created. Immutable after construction.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the task was last modified.
	UpdatedAt time.Time `json:"updated_at"`

	// CompletedAt is when the task was first completed (nil while open).
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
