package main

import (
	"fmt"
	"io"
	"time"

	"github.com/amonks/tasklist/internal/age"
	"github.com/amonks/tasklist/internal/markdown"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
)

const taskDetailLineWidth = 80

// printTaskDetail prints detailed information about a task.
func printTaskDetail(w io.Writer, t task.Task, highlight func(string) string, layout string, now time.Time) {
	status := "active"
	if t.Completed {
		status = "completed"
	}
	fmt.Fprintf(w, "ID:       %s\n", highlight(fmt.Sprint(t.ID)))
	fmt.Fprintf(w, "Status:   %s\n", status)
	if created, ok := age.CreatedAt(t.ID); ok {
		fmt.Fprintf(w, "Created:  %s (%s)\n", created.Format("2006-01-02 15:04:05"), ui.FormatTimeAgo(created, now))
	}
	fmt.Fprintf(w, "Reminder: %s\n", ui.FormatReminder(t, layout))
	if _, ok := t.Reminder(); ok {
		fmt.Fprintf(w, "Due:      %s\n", ui.FormatReminderDue(t, now))
	}
	fmt.Fprintf(w, "\n%s\n", markdown.RenderOrDash(t.Text, taskDetailLineWidth))
}
