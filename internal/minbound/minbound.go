// Package minbound keeps the earliest acceptable reminder time current
// while a form is open.
package minbound

import (
	"context"
	"sync"
	"time"
)

// Floor returns the earliest minute a reminder may name at now.
// Reminders have minute precision, so seconds are dropped.
func Floor(now time.Time) time.Time {
	return now.Truncate(time.Minute)
}

// Refresher delivers Floor(now()) on C once per interval until stopped.
type Refresher struct {
	// C receives the current floor. It is closed after Stop.
	C <-chan time.Time

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start begins refreshing. The refresher stops when ctx is done or Stop is called.
// A nil now uses time.Now.
func Start(ctx context.Context, interval time.Duration, now func() time.Time) *Refresher {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = time.Minute
	}

	ctx, cancel := context.WithCancel(ctx)
	ch := make(chan time.Time, 1)
	r := &Refresher{
		C:      ch,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(r.done)
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				floor := Floor(now())
				// Drop a stale floor nobody read yet.
				select {
				case <-ch:
				default:
				}
				select {
				case ch <- floor:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return r
}

// Stop ends refreshing and waits for C to close. It is safe to call more than once.
func (r *Refresher) Stop() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		r.cancel()
		<-r.done
	})
}

// Done is closed once the refresher has stopped.
func (r *Refresher) Done() <-chan struct{} {
	return r.done
}
