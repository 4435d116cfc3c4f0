package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/amonks/tasklist/internal/config"
	"github.com/amonks/tasklist/internal/paths"
	"github.com/amonks/tasklist/internal/storage"
	"github.com/amonks/tasklist/task"
	"github.com/spf13/cobra"
)

// session is an opened task store plus the storage and config behind it.
type session struct {
	cfg     *config.Config
	storage storage.Store
	store   *task.Store
}

func (s *session) Close() error {
	if s == nil || s.storage == nil {
		return nil
	}
	return s.storage.Close()
}

func loadConfig() (*config.Config, error) {
	if globalConfigPath != "" {
		return config.LoadFile(globalConfigPath)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return config.Load(dir)
}

func resolveBackend(cfg *config.Config) (storage.Backend, error) {
	value := globalStore
	if value == "" {
		value = cfg.Storage.Backend
	}
	return storage.ParseBackend(value)
}

func resolveDataDir(cfg *config.Config) (string, error) {
	override := globalDataDir
	if override == "" {
		override = cfg.Storage.Dir
	}
	return paths.ResolveWithDefault(override, paths.DefaultDataDir)
}

func newLogger(w io.Writer) *log.Logger {
	if !globalVerbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "tl: ", log.LstdFlags)
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	backend, err := resolveBackend(cfg)
	if err != nil {
		return nil, err
	}
	dir, err := resolveDataDir(cfg)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr())
	backing, err := storage.Open(backend, dir)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", backend, err)
	}
	logger.Printf("using %s storage in %s", backend, dir)

	store, err := task.Open(backing, task.OpenOptions{
		Prompter:  task.StdioPrompter{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()},
		Logger:    logger,
		ClearMode: task.ClearMode(cfg.Tasks.ClearMode),
	})
	if err != nil {
		backing.Close()
		return nil, err
	}

	return &session{cfg: cfg, storage: backing, store: store}, nil
}

// withSession opens the store, runs fn, and closes the storage afterwards.
func withSession(cmd *cobra.Command, fn func(*session) error) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	runErr := fn(sess)
	closeErr := sess.Close()
	if runErr != nil {
		return runErr
	}
	return closeErr
}
