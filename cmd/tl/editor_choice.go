package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// editorChoice is the --edit/--no-edit pair carried by add and edit.
type editorChoice struct {
	force bool
	skip  bool
}

func (c *editorChoice) register(cmd *cobra.Command, defaultWhen string) {
	cmd.Flags().BoolVar(&c.force, "edit", false, fmt.Sprintf("Open $EDITOR (default if interactive and %s)", defaultWhen))
	cmd.Flags().BoolVar(&c.skip, "no-edit", false, "Do not open $EDITOR")
	cmd.MarkFlagsMutuallyExclusive("edit", "no-edit")
}

// use reports whether the task should be written in $EDITOR. Values given on
// the command line suppress the editor unless --edit asks for it.
func (c editorChoice) use(given bool, interactive bool) bool {
	switch {
	case c.force:
		return true
	case c.skip, given:
		return false
	default:
		return interactive
	}
}

func anyFlagChanged(cmd *cobra.Command, names ...string) bool {
	flags := cmd.Flags()
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}
