package task

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"time"
)

// StorageKey is the key the collection is stored under.
const StorageKey = "todos"

// Storage is a synchronous string key-value store.
type Storage interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)

	// Set replaces the value for key.
	Set(key, value string) error
}

// Prompter is used to ask the user for confirmation.
type Prompter interface {
	// Confirm asks the user a yes/no question and returns true if they say yes.
	Confirm(message string) (bool, error)
}

// StdioPrompter implements Prompter over a reader and writer.
// Nil fields fall back to os.Stdin and os.Stdout.
type StdioPrompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm writes message and reads a yes/no answer.
// End of input counts as no.
func (p StdioPrompter) Confirm(message string) (bool, error) {
	in, out := p.In, p.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "%s [y/n]: ", message)
	line, err := readLine(in)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine reads up to and including the next newline one byte at a time,
// leaving the rest of in for later prompts.
func readLine(in io.Reader) (string, error) {
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return line.String(), nil
			}
			line.WriteByte(buf[0])
		}
		if err == io.EOF {
			return line.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

type confirmedPrompter struct{}

func (confirmedPrompter) Confirm(string) (bool, error) { return true, nil }

// Confirmed agrees to every prompt. Shells that already asked the user pass
// it to Delete and ClearByFilter.
var Confirmed Prompter = confirmedPrompter{}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Prompter gates destructive operations. If nil, StdioPrompter is used.
	Prompter Prompter

	// Now returns the current time. If nil, time.Now is used.
	Now func() time.Time

	// Logger receives load recovery and persistence messages.
	// If nil, messages are discarded.
	Logger *log.Logger

	// ClearMode selects ClearByFilter's semantics. Defaults to ClearComplement.
	ClearMode ClearMode

	// OnRender is called with the recomputed view after every mutation
	// and filter change.
	OnRender func(View)
}

// Store owns the task collection and keeps storage in sync with it.
// A Store is driven from a single goroutine.
type Store struct {
	storage   Storage
	prompter  Prompter
	now       func() time.Time
	logger    *log.Logger
	clearMode ClearMode
	onRender  []func(View)

	tasks  []Task
	filter Filter
	ids    idSource
}

// Open loads the collection from storage. Missing or unreadable data yields
// an empty collection; Open only fails on invalid options.
func Open(storage Storage, opts OpenOptions) (*Store, error) {
	if storage == nil {
		return nil, fmt.Errorf("task storage is required")
	}
	if opts.Prompter == nil {
		opts.Prompter = StdioPrompter{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	clearMode, err := ParseClearMode(string(opts.ClearMode))
	if err != nil {
		return nil, err
	}

	s := &Store{
		storage:   storage,
		prompter:  opts.Prompter,
		now:       opts.Now,
		logger:    opts.Logger,
		clearMode: clearMode,
		filter:    FilterAll,
	}
	if opts.OnRender != nil {
		s.onRender = append(s.onRender, opts.OnRender)
	}

	s.tasks = s.load()
	for _, t := range s.tasks {
		s.ids.observe(t.ID)
	}
	return s, nil
}

// load reads the stored collection, substituting an empty one on any failure.
func (s *Store) load() []Task {
	raw, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Printf("read tasks: %v; starting empty", err)
		return []Task{}
	}
	if !ok {
		return []Task{}
	}
	tasks, err := decodeTasks(raw)
	if err != nil {
		s.logger.Printf("decode tasks: %v; starting empty", err)
		return []Task{}
	}
	return tasks
}

func decodeTasks(raw string) ([]Task, error) {
	var tasks []Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		// A stored "null" is an empty list.
		return []Task{}, nil
	}
	return tasks, nil
}

func encodeTasks(tasks []Task) (string, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// commit persists next and, only once storage accepted it, makes it the
// collection and re-renders.
func (s *Store) commit(next []Task) error {
	raw, err := encodeTasks(next)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.storage.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	s.tasks = next
	s.render()
	return nil
}

// Subscribe registers fn to receive the view after every mutation and
// filter change. The returned function unregisters it.
func (s *Store) Subscribe(fn func(View)) func() {
	s.onRender = append(s.onRender, fn)
	index := len(s.onRender) - 1
	return func() {
		if index < len(s.onRender) {
			s.onRender[index] = nil
		}
	}
}

func (s *Store) render() {
	if len(s.onRender) == 0 {
		return
	}
	view := s.Render()
	for _, fn := range s.onRender {
		if fn != nil {
			fn(view)
		}
	}
}

// Render derives the visible list from the collection and the active filter.
func (s *Store) Render() View {
	return Render(s.tasks, s.filter)
}

// Filter returns the active filter.
func (s *Store) Filter() Filter {
	return s.filter
}

// SetFilter changes the active filter and re-renders.
func (s *Store) SetFilter(filter Filter) error {
	if !filter.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	s.filter = filter
	s.render()
	return nil
}

// ClearMode returns the store's clear semantics.
func (s *Store) ClearMode() ClearMode {
	return s.clearMode
}

// Tasks returns a copy of the collection, newest first.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Get returns the task with id.
func (s *Store) Get(id int64) (Task, error) {
	index := indexOf(s.tasks, id)
	if index < 0 {
		return Task{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	return s.tasks[index], nil
}

func indexOf(tasks []Task, id int64) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}
