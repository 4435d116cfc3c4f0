// Package web serves the task list to a browser and as a small JSON API.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/amonks/tasklist/task"
)

// Options configures NewServer.
type Options struct {
	// Store is the task store to serve. Required.
	Store *task.Store

	// DatetimeLayout formats reminders on the page.
	DatetimeLayout string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Logger receives request errors and lifecycle messages.
	// Defaults to stderr with a "tl: " prefix.
	Logger *log.Logger
}

// Server serves one task store over HTTP.
// The store is driven from a single goroutine, so every handler holds mu
// while it touches the store.
type Server struct {
	layout    string
	now       func() time.Time
	logger    *log.Logger
	templates *templateWrapper

	mu    sync.Mutex
	store *task.Store
	draft *formDraft
}

const shutdownTimeout = 5 * time.Second

// NewServer creates a server for opts.Store.
func NewServer(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("task store is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DatetimeLayout == "" {
		opts.DatetimeLayout = task.DatetimeLayout
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "tl: ", log.LstdFlags)
	}
	return &Server{
		store:     opts.Store,
		layout:    opts.DatetimeLayout,
		now:       opts.Now,
		logger:    logger,
		templates: newTemplateWrapper(),
	}, nil
}

// Handler returns the HTTP handler for the page and the API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tasks/list", s.handleAPIList)
	mux.HandleFunc("/api/tasks/create", s.handleAPICreate)
	mux.HandleFunc("/api/tasks/toggle", s.handleAPIToggle)
	mux.HandleFunc("/api/tasks/edit", s.handleAPIEdit)
	mux.HandleFunc("/api/tasks/delete", s.handleAPIDelete)
	mux.HandleFunc("/api/tasks/clear", s.handleAPIClear)
	mux.HandleFunc("/web/tasks", s.handleTasks)
	mux.HandleFunc("/web/tasks/create", s.handleTasksCreate)
	mux.HandleFunc("/web/tasks/toggle", s.handleTasksToggle)
	mux.HandleFunc("/web/tasks/update", s.handleTasksUpdate)
	mux.HandleFunc("/web/tasks/delete", s.handleTasksDelete)
	mux.HandleFunc("/web/tasks/clear", s.handleTasksClear)
	mux.Handle("/web", http.RedirectHandler("/web/tasks", http.StatusFound))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/web/tasks", http.StatusFound)
	})
	return s.recoverHandler(mux)
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.serve(ctx, listener)
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:  s.Handler(),
		ErrorLog: s.logger,
	}
	s.logf("serving tasks on http://%s/web/tasks", listener.Addr())

	listenErrs := make(chan error, 1)
	go func() {
		listenErrs <- server.Serve(listener)
	}()

	select {
	case err := <-listenErrs:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logf("server stopped: %v", err)
			return err
		}
		return nil
	case <-ctx.Done():
		s.logf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		shutdownErr := server.Shutdown(shutdownCtx)
		cancel()
		listenErr := <-listenErrs
		if errors.Is(listenErr, http.ErrServerClosed) {
			listenErr = nil
		}
		return errors.Join(shutdownErr, listenErr)
	}
}

func (s *Server) recoverHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseTracker{ResponseWriter: w}
		defer func() {
			if recovered := recover(); recovered != nil {
				s.logf("panic handling request %s %s: %v\n%s", r.Method, r.URL.Path, recovered, debug.Stack())
				if writer.wroteHeader {
					return
				}
				writeJSON(writer, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
		}()
		next.ServeHTTP(writer, r)
	})
}

func (s *Server) logf(format string, args ...any) {
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

type responseTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *responseTracker) WriteHeader(status int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseTracker) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(data)
}
