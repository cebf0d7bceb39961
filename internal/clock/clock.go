// Package clock is the tick source behind every simulated timer. Views
// never touch time.Ticker directly so tests can drive time by hand.
package clock

import (
	"context"
	"time"
)

// Cancel stops a scheduled callback. It is safe to call more than once.
type Cancel func()

// Scheduler runs callbacks after or at intervals of a duration.
type Scheduler interface {
	// Every calls fn every d until cancelled.
	Every(d time.Duration, fn func()) Cancel
	// After calls fn once after d unless cancelled first.
	After(d time.Duration, fn func()) Cancel
	Now() time.Time
}

// Real is a wall-clock Scheduler. Every callback stops when the parent
// context is done. Callbacks run on their own goroutines.
type Real struct {
	ctx context.Context
}

var _ Scheduler = (*Real)(nil)

func NewReal(ctx context.Context) *Real {
	return &Real{ctx: ctx}
}

func (r *Real) Now() time.Time {
	return time.Now()
}

func (r *Real) Every(d time.Duration, fn func()) Cancel {
	ctx, cancel := context.WithCancel(r.ctx)

	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// A tick racing with cancel must not run fn.
				if ctx.Err() != nil {
					return
				}
				fn()
			}
		}
	}()

	return Cancel(cancel)
}

func (r *Real) After(d time.Duration, fn func()) Cancel {
	ctx, cancel := context.WithCancel(r.ctx)

	go func() {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-ctx.Done():
		case <-timer.C:
			if ctx.Err() == nil {
				fn()
			}
		}
	}()

	return Cancel(cancel)
}
