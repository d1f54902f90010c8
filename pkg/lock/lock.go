// Package lock provides a process-wide mutex acquired with a bounded wait.
//
// The rating board has no finer-grained locking in its backing store, so
// every mutation is serialized behind one of these. Acquisition order is
// arrival order as seen by the underlying channel.
package lock

import (
	"context"
	"time"
)

// Mutex is a non-reentrant mutual-exclusion lock with timed acquisition.
// The zero value is not usable; construct with New.
type Mutex struct {
	ch chan struct{}
}

// New creates an unlocked Mutex.
func New() *Mutex {
	return &Mutex{ch: make(chan struct{}, 1)}
}

// Acquire blocks until the lock is held, the wait exceeds timeout, or ctx is
// done. It returns ErrTimeout when the bounded wait elapses first.
func (m *Mutex) Acquire(ctx context.Context, timeout time.Duration) error {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case m.ch <- struct{}{}:
		return nil
	case <-t.C:
		return ErrTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release unlocks the mutex. Calling Release on an unlocked Mutex panics,
// mirroring sync.Mutex semantics.
func (m *Mutex) Release() {
	select {
	case <-m.ch:
	default:
		panic("lock: release of unlocked mutex")
	}
}
