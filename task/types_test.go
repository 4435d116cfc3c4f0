package task

import (
	"errors"
	"testing"
	"time"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    Filter
		wantErr bool
	}{
		{input: "", want: FilterAll},
		{input: "all", want: FilterAll},
		{input: " Active ", want: FilterActive},
		{input: "COMPLETED", want: FilterCompleted},
		{input: "done", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseFilter(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidFilter) {
				t.Fatalf("input %q: expected ErrInvalidFilter, got %v", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("input %q: expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestParseClearMode(t *testing.T) {
	if got, err := ParseClearMode(""); err != nil || got != ClearComplement {
		t.Fatalf("expected default complement, got %q, %v", got, err)
	}
	if got, err := ParseClearMode("Matching"); err != nil || got != ClearMatching {
		t.Fatalf("expected matching, got %q, %v", got, err)
	}
	if _, err := ParseClearMode("all"); !errors.Is(err, ErrInvalidClearMode) {
		t.Fatalf("expected ErrInvalidClearMode, got %v", err)
	}
}

func TestFilterMatch(t *testing.T) {
	active := Task{ID: 1, Text: "a"}
	done := Task{ID: 2, Text: "b", Completed: true}

	if !FilterAll.Match(active) || !FilterAll.Match(done) {
		t.Fatalf("expected all to match everything")
	}
	if !FilterActive.Match(active) || FilterActive.Match(done) {
		t.Fatalf("expected active to match only active tasks")
	}
	if FilterCompleted.Match(active) || !FilterCompleted.Match(done) {
		t.Fatalf("expected completed to match only completed tasks")
	}
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{name: "no reminder", task: Task{}, want: false},
		{name: "future", task: Task{Datetime: "2026-10-18T12:01"}, want: false},
		{name: "exactly now", task: Task{Datetime: "2026-10-18T12:00"}, want: true},
		{name: "past", task: Task{Datetime: "2026-10-17T12:00"}, want: true},
		{name: "unreadable", task: Task{Datetime: "whenever"}, want: false},
	}

	for _, tc := range tests {
		if got := tc.task.Overdue(now); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIDSource(t *testing.T) {
	var ids idSource
	now := time.UnixMilli(1000)

	ids.observe(5000)
	if got := ids.next(now); got != 5001 {
		t.Fatalf("expected id above observed, got %d", got)
	}
	if got := ids.next(time.UnixMilli(9000)); got != 9000 {
		t.Fatalf("expected clock-derived id, got %d", got)
	}
	if got := ids.next(time.UnixMilli(8000)); got != 9001 {
		t.Fatalf("expected id not to go backwards, got %d", got)
	}
}
