// Package storage provides string key-value backends for the task list.
//
// Every backend is synchronous: a Set that returns nil is durable for the
// next Get, in this process or another.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/amonks/tasklist/internal/validation"
)

// ErrInvalidKey is returned for keys that are empty or unsafe as file names.
var ErrInvalidKey = errors.New("invalid storage key")

// ErrUnknownBackend is returned when a backend name is not recognized.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend names a storage implementation.
type Backend string

const (
	// BackendFile stores each key in its own JSON file.
	BackendFile Backend = "file"

	// BackendSQLite stores keys in a sqlite database.
	BackendSQLite Backend = "sqlite"

	// BackendMemory keeps keys in process memory only.
	BackendMemory Backend = "memory"
)

// ValidBackends returns all backend names.
func ValidBackends() []Backend {
	return []Backend{BackendFile, BackendSQLite, BackendMemory}
}

// ParseBackend parses a backend name. An empty value selects BackendFile.
func ParseBackend(value string) (Backend, error) {
	backend, ok := validation.Choose(value, ValidBackends(), BackendFile)
	if !ok {
		return "", validation.FormatInvalidValueError(ErrUnknownBackend, Backend(value), ValidBackends())
	}
	return backend, nil
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Store is a key-value backend that holds resources until closed.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// SQLiteFile is the database file name used by BackendSQLite.
const SQLiteFile = "tasks.db"

// Open returns the backend rooted at dir.
func Open(backend Backend, dir string) (Store, error) {
	switch backend {
	case BackendFile, "":
		return NewFile(dir), nil
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, SQLiteFile))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
