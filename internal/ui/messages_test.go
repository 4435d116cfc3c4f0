package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amonks/tasklist/task"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "empty text is silent", err: task.ErrEmptyText, want: ""},
		{name: "past", err: fmt.Errorf("%w (got x)", task.ErrPastDatetime), want: "Please select a future date and time"},
		{name: "unreadable", err: task.ErrInvalidDatetime, want: "Invalid date and time (use YYYY-MM-DD HH:MM)"},
		{name: "nothing to clear", err: task.ErrNothingToClear, want: "No tasks to clear in current filter!"},
		{name: "other", err: errors.New("write tasks: disk full"), want: "write tasks: disk full"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ErrorMessage(tc.err); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
