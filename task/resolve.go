package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAmbiguousID is returned when an ID suffix matches more than one task.
var ErrAmbiguousID = errors.New("ambiguous task id")

// Resolve finds the task a user-typed reference names. A reference is a full
// ID or any trailing digits of one that match exactly one task.
func (s *Store) Resolve(ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, fmt.Errorf("%w: empty id", ErrTaskNotFound)
	}
	if _, err := strconv.ParseUint(ref, 10, 63); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrTaskNotFound, ref)
	}

	var matches []int64
	for _, t := range s.tasks {
		id := strconv.FormatInt(t.ID, 10)
		if id == ref {
			return t.ID, nil
		}
		if strings.HasSuffix(id, ref) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return 0, fmt.Errorf("%w: %s matches %d tasks", ErrAmbiguousID, ref, len(matches))
	}
}
