package clock

import (
	"sync"
	"time"
)

type manualTimer struct {
	id       uint64
	due      time.Time
	period   time.Duration
	fn       func()
	canceled bool
}

// Manual is a deterministic Scheduler. Time only moves when Advance is
// called, and due callbacks run synchronously on the caller's goroutine.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	nextID uint64
	timers map[uint64]*manualTimer
}

var _ Scheduler = (*Manual)(nil)

// NewManual returns a Manual clock reading start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start, timers: make(map[uint64]*manualTimer)}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

func (m *Manual) Every(d time.Duration, fn func()) Cancel {
	if d <= 0 {
		panic("clock: non-positive interval")
	}

	return m.schedule(d, d, fn)
}

func (m *Manual) After(d time.Duration, fn func()) Cancel {
	return m.schedule(max(d, 0), 0, fn)
}

func (m *Manual) schedule(d, period time.Duration, fn func()) Cancel {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{id: m.nextID, due: m.now.Add(d), period: period, fn: fn}
	m.nextID++
	m.timers[t.id] = t

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		t.canceled = true
		delete(m.timers, t.id)
	}
}

// Pending returns the number of live timers.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.timers)
}

// Advance moves time forward by d, firing every callback that falls due in
// due-time order. Ties fire in scheduling order. Callbacks may schedule or
// cancel other timers.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	if target.After(m.now) {
		m.now = target
	}
	m.mu.Unlock()
}

func (m *Manual) popDue(target time.Time) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	var next *manualTimer
	for _, t := range m.timers {
		if t.due.After(target) {
			continue
		}
		if next == nil || t.due.Before(next.due) || (t.due.Equal(next.due) && t.id < next.id) {
			next = t
		}
	}

	if next == nil {
		return nil
	}

	m.now = next.due
	if next.period > 0 {
		next.due = next.due.Add(next.period)
	} else {
		delete(m.timers, next.id)
	}

	return next
}
