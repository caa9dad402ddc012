package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/mkern/taskbook/internal/ui"
	"github.com/mkern/taskbook/task"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(t task.Task, styles ui.Styles, now time.Time) {
	fmt.Printf("ID:        %s\n", styles.ID(strconv.Itoa(t.ID)))
	fmt.Printf("Title:     %s\n", wordwrap.String(t.Title, taskDetailLineWidth-11))
	fmt.Printf("Priority:  %s\n", formatTaskPriority(t.Priority, styles))
	fmt.Printf("Status:    %s\n", formatTaskStatus(t, styles))

	if t.DueDate != nil {
		due := ui.FormatDate(*t.DueDate)
		if task.Overdue(t, now) {
			due = styles.Overdue(due + " (overdue)")
		}
		fmt.Printf("Due:       %s\n", due)
	}

	fmt.Printf("Created:   %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:   %s\n", t.UpdatedAt.Format("2006-01-02 15:04:05"))

	if t.CompletedAt != nil {
		fmt.Printf("Completed: %s\n", t.CompletedAt.Format("2006-01-02 15:04:05"))
	}

	if t.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", renderMarkdownOrDash(t.Description, taskDetailLineWidth))
	}
}
