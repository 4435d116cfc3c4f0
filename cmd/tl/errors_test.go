package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amonks/tasklist/task"
)

func TestUserError(t *testing.T) {
	if err := userError(task.ErrEmptyText); err != nil {
		t.Fatalf("expected empty text to be silent, got %v", err)
	}

	err := userError(fmt.Errorf("create: %w", task.ErrPastDatetime))
	if err == nil || err.Error() != "Please select a future date and time" {
		t.Fatalf("expected friendly message, got %v", err)
	}
	if !errors.Is(err, task.ErrPastDatetime) {
		t.Fatal("expected wrapped error to be preserved")
	}
	var exitErr interface{ ExitCode() int }
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %v", err)
	}

	other := errors.New("disk full")
	if got := userError(other); got != other {
		t.Fatalf("expected unmapped error unchanged, got %v", got)
	}
}
