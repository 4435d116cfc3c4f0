package task

import (
	"errors"
	"testing"
	"time"

	"github.com/amonks/tasklist/internal/storage"
)

// mockPrompter implements Prompter for testing.
type mockPrompter struct {
	response bool
	err      error
	called   bool
	message  string
}

func (m *mockPrompter) Confirm(message string) (bool, error) {
	m.called = true
	m.message = message
	return m.response, m.err
}

// testClock is a settable clock.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 10, 18, 9, 30, 15, 0, time.Local)}
}

// failingStorage fails writes on demand.
type failingStorage struct {
	*storage.Memory
	failWrites bool
}

var errWriteFailed = errors.New("disk full")

func (s *failingStorage) Set(key, value string) error {
	if s.failWrites {
		return errWriteFailed
	}
	return s.Memory.Set(key, value)
}

func newTestStore(t *testing.T) (*Store, *storage.Memory, *testClock) {
	t.Helper()
	return newTestStoreWith(t, OpenOptions{})
}

func newTestStoreWith(t *testing.T, opts OpenOptions) (*Store, *storage.Memory, *testClock) {
	t.Helper()

	mem := storage.NewMemory()
	clock := newTestClock()
	if opts.Now == nil {
		opts.Now = clock.Now
	}
	if opts.Prompter == nil {
		opts.Prompter = &mockPrompter{response: true}
	}
	store, err := Open(mem, opts)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store, mem, clock
}

func seedStore(t *testing.T, mem *storage.Memory, raw string) {
	t.Helper()
	if err := mem.Set(StorageKey, raw); err != nil {
		t.Fatalf("seed storage: %v", err)
	}
}

func mustCreate(t *testing.T, store *Store, text, datetime string) Task {
	t.Helper()
	created, err := store.Create(text, datetime)
	if err != nil {
		t.Fatalf("create %q: %v", text, err)
	}
	return *created
}

func storedTasks(t *testing.T, mem *storage.Memory) []Task {
	t.Helper()
	raw, ok, err := mem.Get(StorageKey)
	if err != nil {
		t.Fatalf("read storage: %v", err)
	}
	if !ok {
		t.Fatalf("expected %q to be stored", StorageKey)
	}
	tasks, err := decodeTasks(raw)
	if err != nil {
		t.Fatalf("decode stored tasks: %v", err)
	}
	return tasks
}

func taskIDs(tasks []Task) []int64 {
	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func newMemoryWith(t *testing.T, raw string) *storage.Memory {
	t.Helper()
	mem := storage.NewMemory()
	if raw != "" {
		seedStore(t, mem, raw)
	}
	return mem
}
