package task

import "time"

// idSource issues creation-time ids that never repeat or go backwards,
// even when the clock does or two tasks share a millisecond.
type idSource struct {
	last int64
}

// observe records an existing id so later ids stay above it.
func (s *idSource) observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

// next returns a fresh id for a task created at now.
func (s *idSource) next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
