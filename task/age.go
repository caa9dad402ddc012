package task

import (
	"time"

	internalage "github.com/mkern/taskbook/internal/age"
)

// AgeData computes the display age and whether timing data exists.
func AgeData(item Task, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(item.CreatedAt, now)
}

// Overdue reports whether the task is past its due date and not completed.
// A task becomes overdue at the start of the day after its due date.
func Overdue(item Task, now time.Time) bool {
	if item.Completed || item.DueDate == nil {
		return false
	}
	endOfDueDay := item.DueDate.AddDate(0, 0, 1)
	return !now.Before(endOfDueDay)
}
