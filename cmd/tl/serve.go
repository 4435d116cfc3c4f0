package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/amonks/tasklist/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the task list to a browser",
	Long: `Serve the task list to a browser.

The page lives at /web/tasks. A JSON API is served under /api/tasks.
The server runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "127.0.0.1:7878", "Address to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session) error {
		server, err := web.NewServer(web.Options{
			Store:          sess.store,
			DatetimeLayout: sess.cfg.DatetimeFormat(),
			Logger:         log.New(cmd.ErrOrStderr(), "tl: ", log.LstdFlags),
		})
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		return server.Serve(ctx, serveAddr)
	})
}
