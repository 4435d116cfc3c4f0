// Package main implements the tl CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tl",
	Short:        "tl - a local task list with reminders",
	SilenceUsage: true,
}

var (
	globalConfigPath string
	globalStore      string
	globalDataDir    string
	globalVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "config", "", "Config file (default: global config merged with ./tasklist.toml)")
	rootCmd.PersistentFlags().StringVar(&globalStore, "store", "", "Storage backend (file, sqlite, memory)")
	rootCmd.PersistentFlags().StringVar(&globalDataDir, "data-dir", "", "Directory task data is stored in")
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "Log storage activity to stderr")
}
