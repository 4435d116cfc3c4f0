package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestDueAliasUsesAtFlag(t *testing.T) {
	var at string
	cmd := &cobra.Command{Use: "example"}
	addReminderFlagAliases(cmd)
	cmd.Flags().StringVar(&at, "at", "", "Reminder time")

	if err := cmd.Flags().Set("due", "2099-01-01T10:00"); err != nil {
		t.Fatalf("set due alias: %v", err)
	}
	if at != "2099-01-01T10:00" {
		t.Fatalf("expected at to be set via alias, got %q", at)
	}
	if !cmd.Flags().Changed("at") {
		t.Fatal("expected at flag to be marked as changed")
	}

	usage := cmd.Flags().FlagUsages()
	if strings.Contains(usage, "--due") {
		t.Fatalf("did not expect alias to appear in usage, got %q", usage)
	}
}

func TestClearDueAliasUsesClearAtFlag(t *testing.T) {
	var clearAt bool
	cmd := &cobra.Command{Use: "example"}
	addReminderFlagAliases(cmd)
	cmd.Flags().BoolVar(&clearAt, "clear-at", false, "Remove the reminder")

	if err := cmd.Flags().Set("clear-due", "true"); err != nil {
		t.Fatalf("set clear-due alias: %v", err)
	}
	if !clearAt {
		t.Fatal("expected clear-at to be set via alias")
	}
}
