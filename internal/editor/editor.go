// Package editor writes tasks through $EDITOR.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// editorCommand returns the program and leading arguments to edit with.
// $VISUAL wins over $EDITOR; values such as "code --wait" are split on spaces.
func editorCommand(getenv func(string) string) []string {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(getenv(name)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

// Edit opens path in the user's editor and waits for it to exit.
func Edit(path string) error {
	argv := append(editorCommand(os.Getenv), path)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editing %s: %s exited with status %d", filepath.Base(path), argv[0], exitErr.ExitCode())
		}
		return fmt.Errorf("editing %s: run %s: %w", filepath.Base(path), argv[0], err)
	}
	return nil
}
