package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/amonks/tasklist/task"
)

func TestFormatTaskTable(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)
	created := now.Add(-3 * time.Hour).UnixMilli()
	tasks := []task.Task{
		{ID: created, Text: "Call mom", Datetime: "2026-10-18T11:30"},
		{ID: created + 1, Text: "Buy milk", Completed: true},
	}

	highlight := func(id string, suffixLen int) string {
		return id[:len(id)-suffixLen] + "<" + id[len(id)-suffixLen:] + ">"
	}
	out := formatTaskTable(tasks, taskIDSuffixLengths(tasks), highlight, "2006-01-02 15:04", now)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %d lines:\n%s", len(lines), out)
	}

	for _, header := range []string{"ID", "STATUS", "AGE", "REMINDER", "DUE", "TEXT"} {
		if !strings.Contains(lines[0], header) {
			t.Fatalf("expected header %q in %q", header, lines[0])
		}
	}
	id := strconv.FormatInt(created, 10)
	if !strings.Contains(lines[1], id[:len(id)-1]+"<"+id[len(id)-1:]+">") {
		t.Fatalf("expected highlighted unique suffix, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "3h") {
		t.Fatalf("expected age column, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "[ ]") || !strings.Contains(lines[1], "2026-10-18 11:30") || !strings.Contains(lines[1], "in 2h") {
		t.Fatalf("expected active row with reminder, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "[x]") || !strings.Contains(lines[2], "Buy milk") {
		t.Fatalf("expected completed row, got %q", lines[2])
	}
}

func TestPrintTaskTableEmpty(t *testing.T) {
	var out bytes.Buffer
	printTaskTable(&out, nil, "2006-01-02", time.Now())
	if out.String() != "No tasks found.\n" {
		t.Fatalf("expected empty message, got %q", out.String())
	}
}
