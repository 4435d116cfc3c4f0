package ui

import (
	"errors"

	"github.com/amonks/tasklist/task"
)

// ErrorMessage returns the text shown to a user for err. Empty-text
// rejections are silent, so they map to "".
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrEmptyText):
		return ""
	case errors.Is(err, task.ErrPastDatetime):
		return "Please select a future date and time"
	case errors.Is(err, task.ErrInvalidDatetime):
		return "Invalid date and time (use YYYY-MM-DD HH:MM)"
	case errors.Is(err, task.ErrNothingToClear):
		return "No tasks to clear in current filter!"
	default:
		return err.Error()
	}
}
