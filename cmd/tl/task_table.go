package main

import (
	"io"
	"strconv"
	"time"

	"github.com/amonks/tasklist/internal/age"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
)

// printTaskTable prints tasks in a table format.
func printTaskTable(w io.Writer, tasks []task.Task, layout string, now time.Time) {
	if len(tasks) == 0 {
		io.WriteString(w, "No tasks found.\n")
		return
	}

	io.WriteString(w, formatTaskTable(tasks, taskIDSuffixLengths(tasks), ui.HighlightID, layout, now))
}

func formatTaskTable(tasks []task.Task, suffixLengths map[string]int, highlight func(string, int) string, layout string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "AGE", "REMINDER", "DUE", "TEXT"}, len(tasks))

	for _, t := range tasks {
		id := strconv.FormatInt(t.ID, 10)
		due := ui.FormatReminderDue(t, now)
		if t.Overdue(now) && !t.Completed {
			due = ui.Overdue(due)
		}
		builder.AddRow([]string{
			highlight(id, suffixLengths[id]),
			ui.StatusMark(t.Completed),
			formatTaskAge(t, now),
			ui.FormatReminder(t, layout),
			due,
			ui.TruncateTableCell(t.Text),
		})
	}

	return builder.String()
}

func formatTaskAge(t task.Task, now time.Time) string {
	value, ok := age.Since(t.ID, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(value)
}

func taskIDSuffixLengths(tasks []task.Task) map[string]int {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, strconv.FormatInt(t.ID, 10))
	}
	return ui.UniqueIDSuffixLengths(ids)
}
