package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	internalstrings "github.com/amonks/tasklist/internal/strings"
)

var (
	// ErrValidation is wrapped by every error that rejects user input.
	ErrValidation = errors.New("invalid task")

	// ErrEmptyText is returned when task text is empty after trimming.
	// Shells reject it without a message.
	ErrEmptyText = fmt.Errorf("%w: text cannot be empty", ErrValidation)

	// ErrInvalidDatetime is returned when a reminder does not parse.
	ErrInvalidDatetime = fmt.Errorf("%w: unreadable date and time", ErrValidation)

	// ErrPastDatetime is returned when a reminder is not in the future.
	ErrPastDatetime = fmt.Errorf("%w: please select a future date and time", ErrValidation)

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNothingToClear is returned when a clear would remove nothing.
	ErrNothingToClear = errors.New("no tasks to clear in current filter")

	// ErrInvalidFilter is returned for an unknown filter name.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidClearMode is returned for an unknown clear mode.
	ErrInvalidClearMode = errors.New("invalid clear mode")
)

// NormalizeText trims surrounding whitespace from task text.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// ValidateText checks that text is non-empty after trimming.
func ValidateText(text string) error {
	if internalstrings.IsBlank(text) {
		return ErrEmptyText
	}
	return nil
}

// ParseDatetime parses a reminder in local time. A space may stand in for
// the 'T' separator.
func ParseDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) > len("2006-01-02") && value[len("2006-01-02")] == ' ' {
		value = value[:len("2006-01-02")] + "T" + value[len("2006-01-02")+1:]
	}
	at, err := time.ParseInLocation(DatetimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDatetime, value)
	}
	return at, nil
}

// NormalizeDatetime validates a reminder against now and returns its stored
// form. Empty input is valid and means no reminder.
func NormalizeDatetime(value string, now time.Time) (string, error) {
	if internalstrings.IsBlank(value) {
		return "", nil
	}
	at, err := ParseDatetime(value)
	if err != nil {
		return "", err
	}
	if !at.After(now) {
		return "", fmt.Errorf("%w (got %s)", ErrPastDatetime, at.Format(DatetimeLayout))
	}
	return at.Format(DatetimeLayout), nil
}

// validateInput applies the write-time checks shared by Create and Edit.
// The reminder is checked before the text so a bad reminder is always reported.
func validateInput(text, datetime string, now time.Time) (string, string, error) {
	normalizedDatetime, err := NormalizeDatetime(datetime, now)
	if err != nil {
		return "", "", err
	}
	if err := ValidateText(text); err != nil {
		return "", "", err
	}
	return NormalizeText(text), normalizedDatetime, nil
}

// ValidateTask checks the invariants of a stored task. Reminders are not
// compared against the clock: a stored reminder may lawfully be in the past.
func ValidateTask(t *Task) error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", ErrValidation, t.ID)
	}
	if err := ValidateText(t.Text); err != nil {
		return err
	}
	if t.Datetime != "" {
		if _, err := ParseDatetime(t.Datetime); err != nil {
			return err
		}
	}
	return nil
}
