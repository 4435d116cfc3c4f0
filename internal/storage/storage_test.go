package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openBackends(t *testing.T) map[Backend]Store {
	t.Helper()

	stores := make(map[Backend]Store)
	for _, backend := range ValidBackends() {
		store, err := Open(backend, t.TempDir())
		if err != nil {
			t.Fatalf("open %s: %v", backend, err)
		}
		t.Cleanup(func() { store.Close() })
		stores[backend] = store
	}
	return stores
}

func TestBackendsRoundTrip(t *testing.T) {
	for backend, store := range openBackends(t) {
		t.Run(string(backend), func(t *testing.T) {
			if _, ok, err := store.Get("todos"); err != nil || ok {
				t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
			}

			if err := store.Set("todos", `[{"id":1}]`); err != nil {
				t.Fatalf("set: %v", err)
			}
			value, ok, err := store.Get("todos")
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if value != `[{"id":1}]` {
				t.Fatalf("expected stored value, got %q", value)
			}

			if err := store.Set("todos", "[]"); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			value, _, _ = store.Get("todos")
			if value != "[]" {
				t.Fatalf("expected overwritten value, got %q", value)
			}
		})
	}
}

func TestBackendsRejectUnsafeKeys(t *testing.T) {
	for backend, store := range openBackends(t) {
		t.Run(string(backend), func(t *testing.T) {
			for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
				if err := store.Set(key, "x"); !errors.Is(err, ErrInvalidKey) {
					t.Fatalf("set %q: expected ErrInvalidKey, got %v", key, err)
				}
				if _, _, err := store.Get(key); !errors.Is(err, ErrInvalidKey) {
					t.Fatalf("get %q: expected ErrInvalidKey, got %v", key, err)
				}
			}
		})
	}
}

func TestFileStoreLayout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFile(dir)

	if err := store.Set("todos", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "todos.json"))
	if err != nil {
		t.Fatalf("read value file: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected raw value on disk, got %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "todos.lock")); err != nil {
		t.Fatalf("expected lock file: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected only value and lock files, got %d entries", len(entries))
	}
}

func TestFileStoreSkipsIdenticalWrite(t *testing.T) {
	dir := t.TempDir()
	store := NewFile(dir)
	path := filepath.Join(dir, "todos.json")

	if err := store.Set("todos", "[]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if err := store.Set("todos", "[]"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.ModTime().Equal(past) {
		t.Fatalf("expected identical write to be skipped")
	}
}

func TestFileStoreSharedAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	if err := NewFile(dir).Set("todos", "[1]"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, ok, err := NewFile(dir).Get("todos")
	if err != nil || !ok || value != "[1]" {
		t.Fatalf("expected second instance to read value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set("todos", "[2]"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	value, ok, err := second.Get("todos")
	if err != nil || !ok || value != "[2]" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		input   string
		want    Backend
		wantErr bool
	}{
		{input: "", want: BackendFile},
		{input: "SQLite", want: BackendSQLite},
		{input: "memory", want: BackendMemory},
		{input: "redis", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseBackend(tc.input)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownBackend) {
				t.Fatalf("input %q: expected ErrUnknownBackend, got %v", tc.input, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("input %q: expected %q, got %q (%v)", tc.input, tc.want, got, err)
		}
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(Backend("redis"), t.TempDir()); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
