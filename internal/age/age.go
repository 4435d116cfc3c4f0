// Package age derives how long a task has existed from its creation-time ID.
package age

import "time"

// CreatedAt returns the creation time encoded in a task ID.
// IDs are Unix milliseconds, so the result is at most a few milliseconds
// late when IDs were bumped to stay unique.
func CreatedAt(id int64) (time.Time, bool) {
	if id <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(id), true
}

// Since returns the age of the task with id at now. A creation time after
// now clamps to zero.
func Since(id int64, now time.Time) (time.Duration, bool) {
	created, ok := CreatedAt(id)
	if !ok {
		return 0, false
	}
	if created.After(now) {
		return 0, true
	}
	return now.Sub(created), true
}
