package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// HighlightID returns an ID with its unique suffix highlighted.
// Task IDs share their leading digits, so the tail is what tells them apart.
func HighlightID(id string, suffixLen int) string {
	if id == "" {
		return id
	}

	if suffixLen <= 0 || suffixLen > len(id) {
		return id
	}

	if !ansiEnabled() {
		return id
	}

	split := len(id) - suffixLen
	return id[:split] + ansiBold + ansiCyan + id[split:] + ansiReset
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// UniqueIDSuffixLengths returns the shortest unique suffix length for each ID.
func UniqueIDSuffixLengths(ids []string) map[string]int {
	uniqueIDs := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		uniqueIDs = append(uniqueIDs, id)
	}

	lengths := make(map[string]int, len(uniqueIDs))
	for _, id := range uniqueIDs {
		lengths[id] = uniqueSuffixLength(id, uniqueIDs)
	}

	return lengths
}

func uniqueSuffixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		suffix := id[len(id)-length:]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasSuffix(other, suffix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}

	return len(id)
}
