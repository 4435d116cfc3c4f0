package main

import (
	"errors"
	"fmt"

	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
)

// userError converts store errors into the messages users see.
// Empty text is dropped silently, like every other shell does.
func userError(err error) error {
	if err == nil || errors.Is(err, task.ErrEmptyText) {
		return nil
	}
	message := ui.ErrorMessage(err)
	if message == err.Error() {
		return err
	}
	return &exitError{code: 1, err: fmt.Errorf("%s: %w", message, err), message: message}
}

type exitError struct {
	code    int
	err     error
	message string
}

func (e *exitError) Error() string {
	if e.message != "" {
		return e.message
	}
	return e.err.Error()
}

func (e *exitError) ExitCode() int {
	return e.code
}

func (e *exitError) Unwrap() error {
	return e.err
}
