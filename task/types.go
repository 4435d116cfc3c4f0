// Package task implements a local task list with optional reminders.
//
// The collection lives in memory and is mirrored to a key-value Storage
// after every mutation, so the stored value and the in-memory list never
// disagree once an operation returns. Tasks are kept newest-first.
//
// The public API mirrors what a presentation shell needs:
//   - Create, Toggle, Edit, Delete, ClearByFilter for mutation
//   - Render, SetFilter for deriving the visible list
package task

import (
	"time"

	"github.com/amonks/tasklist/internal/validation"
)

// Task is a single entry in the list.
type Task struct {
	// ID is unique and derived from the creation time in Unix milliseconds.
	ID int64 `json:"id"`

	// Text is the task summary. Never empty once stored.
	Text string `json:"text"`

	// Datetime is an optional reminder in DatetimeLayout, local time.
	// Empty means no reminder.
	Datetime string `json:"datetime"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`
}

// DatetimeLayout is the minute-precision local timestamp used for reminders.
const DatetimeLayout = "2006-01-02T15:04"

// Reminder parses the task's reminder. The second result is false when the
// task has no reminder or the stored value is unreadable.
func (t Task) Reminder() (time.Time, bool) {
	if t.Datetime == "" {
		return time.Time{}, false
	}
	at, err := ParseDatetime(t.Datetime)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// Overdue reports whether the reminder has lapsed at now.
// Stored reminders are never revalidated, so this is a display state only.
func (t Task) Overdue(now time.Time) bool {
	at, ok := t.Reminder()
	if !ok {
		return false
	}
	return !at.After(now)
}

// Filter selects which tasks are visible.
type Filter string

const (
	// FilterAll shows every task.
	FilterAll Filter = "all"

	// FilterActive shows tasks that are not completed.
	FilterActive Filter = "active"

	// FilterCompleted shows completed tasks.
	FilterCompleted Filter = "completed"
)

// ValidFilters returns all filter values in display order.
func ValidFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// IsValid returns true if the filter is a known value.
func (f Filter) IsValid() bool {
	for _, valid := range ValidFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// Match reports whether t is visible under the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// ParseFilter parses a filter name, ignoring case and surrounding space.
// An empty value selects FilterAll.
func ParseFilter(value string) (Filter, error) {
	filter, ok := validation.Choose(value, ValidFilters(), FilterAll)
	if !ok {
		return "", validation.FormatInvalidValueError(ErrInvalidFilter, Filter(value), ValidFilters())
	}
	return filter, nil
}

// ClearMode decides which tasks ClearByFilter removes under a narrowing filter.
type ClearMode string

const (
	// ClearComplement removes the tasks the filter hides: clearing under
	// "active" drops completed tasks and clearing under "completed" drops
	// active ones.
	ClearComplement ClearMode = "complement"

	// ClearMatching removes the tasks the filter shows.
	ClearMatching ClearMode = "matching"
)

// ValidClearModes returns all clear modes.
func ValidClearModes() []ClearMode {
	return []ClearMode{ClearComplement, ClearMatching}
}

// ParseClearMode parses a clear mode name. An empty value selects ClearComplement.
func ParseClearMode(value string) (ClearMode, error) {
	mode, ok := validation.Choose(value, ValidClearModes(), ClearComplement)
	if !ok {
		return "", validation.FormatInvalidValueError(ErrInvalidClearMode, ClearMode(value), ValidClearModes())
	}
	return mode, nil
}
