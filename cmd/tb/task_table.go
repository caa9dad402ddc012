package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mkern/taskbook/internal/ui"
	"github.com/mkern/taskbook/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(env *cliEnv, items []task.Task, now time.Time) {
	fmt.Print(formatTaskTable(items, env.styles(), now))
}

func formatTaskTable(items []task.Task, styles ui.Styles, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "AGE", "DUE", "TITLE"}, len(items))

	for _, t := range items {
		title := ui.TruncateTableCell(t.Title)
		if t.Completed {
			title = styles.Completed(title)
		}

		builder.AddRow([]string{
			styles.ID(strconv.Itoa(t.ID)),
			formatTaskPriority(t.Priority, styles),
			formatTaskStatus(t, styles),
			formatTaskAge(t, now),
			formatTaskDue(t, styles, now),
			title,
		})
	}

	return builder.String()
}

func formatTaskPriority(priority task.Priority, styles ui.Styles) string {
	value := string(priority)
	if priority == task.PriorityHigh {
		return styles.HighPriority(value)
	}
	return value
}

func formatTaskStatus(t task.Task, styles ui.Styles) string {
	if t.Completed {
		return styles.Completed("done")
	}
	return "open"
}

func formatTaskAge(t task.Task, now time.Time) string {
	age, ok := task.AgeData(t, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(age)
}

func formatTaskDue(t task.Task, styles ui.Styles, now time.Time) string {
	if t.DueDate == nil {
		return "-"
	}

	due := ui.FormatDate(*t.DueDate)
	if task.Overdue(t, now) {
		return styles.Overdue(due)
	}
	return due
}
