package ui

import (
	"testing"
	"time"

	"github.com/amonks/tasklist/task"
)

func TestFormatDurationShort(t *testing.T) {
	cases := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "negative", duration: -time.Minute, want: "0s"},
		{name: "seconds", duration: 45 * time.Second, want: "45s"},
		{name: "minutes", duration: 2*time.Minute + 10*time.Second, want: "2m"},
		{name: "hours", duration: 3*time.Hour + 5*time.Minute, want: "3h"},
		{name: "days", duration: 48 * time.Hour, want: "2d"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDurationShort(tc.duration)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	then := now.Add(-2 * time.Minute)

	got := FormatTimeAgo(then, now)
	if got != "2m ago" {
		t.Fatalf("expected 2m ago, got %s", got)
	}
}

func TestFormatReminder(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.Local)

	cases := []struct {
		name    string
		task    task.Task
		layout  string
		want    string
		wantDue string
	}{
		{
			name:    "no reminder",
			task:    task.Task{ID: 1, Text: "a"},
			layout:  "2006-01-02 15:04",
			want:    "-",
			wantDue: "-",
		},
		{
			name:    "future",
			task:    task.Task{ID: 1, Text: "a", Datetime: "2026-10-18T11:30"},
			layout:  "2006-01-02 15:04",
			want:    "2026-10-18 11:30",
			wantDue: "in 2h",
		},
		{
			name:    "lapsed",
			task:    task.Task{ID: 1, Text: "a", Datetime: "2026-10-18T08:55"},
			layout:  "1/2/2006, 3:04:05 PM",
			want:    "10/18/2026, 8:55:00 AM",
			wantDue: "overdue 5m",
		},
		{
			name:    "unreadable",
			task:    task.Task{ID: 1, Text: "a", Datetime: "soon"},
			layout:  "2006-01-02 15:04",
			want:    "-",
			wantDue: "-",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatReminder(tc.task, tc.layout); got != tc.want {
				t.Fatalf("FormatReminder() = %q, want %q", got, tc.want)
			}
			if got := FormatReminderDue(tc.task, now); got != tc.wantDue {
				t.Fatalf("FormatReminderDue() = %q, want %q", got, tc.wantDue)
			}
		})
	}
}

func TestStatusMark(t *testing.T) {
	if StatusMark(true) != "[x]" || StatusMark(false) != "[ ]" {
		t.Fatalf("unexpected status marks %q %q", StatusMark(true), StatusMark(false))
	}
}
