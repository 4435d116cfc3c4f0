package main

import (
	"fmt"
	"os"

	"github.com/amonks/tasklist/internal/export"
	"github.com/amonks/tasklist/internal/listflags"
	"github.com/amonks/tasklist/task"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the task list as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var (
	exportFilter task.Filter
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	listflags.AddFilterFlag(exportCmd, &exportFilter)
	exportCmd.Flags().StringVar(&exportFormat, "format", string(export.FormatJSON), "Output format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	return withSession(cmd, func(sess *session) error {
		if err := sess.store.SetFilter(exportFilter); err != nil {
			return err
		}
		view := sess.store.Render()

		if exportOutput == "" {
			return export.Write(cmd.OutOrStdout(), view, format)
		}

		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		if err := export.Write(f, view, format); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
}
