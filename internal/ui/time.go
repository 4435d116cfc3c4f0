package ui

import (
	"fmt"
	"time"

	"github.com/amonks/tasklist/task"
)

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatTimeUntil returns a compact countdown like "in 2h".
func FormatTimeUntil(then time.Time, now time.Time) string {
	return "in " + FormatDurationShort(then.Sub(now))
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}

// FormatReminder renders a task's reminder with layout, or "-" when it has none.
func FormatReminder(t task.Task, layout string) string {
	at, ok := t.Reminder()
	if !ok {
		return "-"
	}
	return at.Format(layout)
}

// FormatReminderDue describes when a reminder fires relative to now:
// "in 2h", "overdue 5m", or "-" without a reminder.
func FormatReminderDue(t task.Task, now time.Time) string {
	at, ok := t.Reminder()
	if !ok {
		return "-"
	}
	if t.Overdue(now) {
		return "overdue " + FormatDurationShort(now.Sub(at))
	}
	return FormatTimeUntil(at, now)
}

// StatusMark is the checkbox shown for a task's completion state.
func StatusMark(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
