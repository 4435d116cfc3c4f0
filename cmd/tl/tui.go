package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/amonks/tasklist/internal/tasktui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive task list",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session) error {
		interval, err := sess.cfg.RefreshInterval()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		return tasktui.Run(ctx, sess.store, tasktui.Options{
			RefreshInterval: interval,
			DatetimeLayout:  sess.cfg.DatetimeFormat(),
		})
	})
}
