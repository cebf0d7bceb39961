package channels

import (
	"sync"
	"sync/atomic"
)

type subscriber[T any] struct {
	ch      chan T
	dropped atomic.Int32
}

func (s *subscriber[T]) send(msg T) {
	if err := SendNonBlock(s.ch, msg); err != nil {
		s.dropped.Add(1)
	}
}

// Broadcaster delivers every published message to all current subscribers.
//
// Subscribers may come and go at any time. Each subscriber owns a buffered
// channel that the Broadcaster closes on unsubscribe or Close. Sends never
// block: a message is dropped for a subscriber whose buffer is full.
//
// Delivery order per subscriber matches Publish order.
type Broadcaster[T any] struct {
	mu     sync.RWMutex
	subs   map[uint64]*subscriber[T]
	nextID uint64
	closed atomic.Bool
}

// NewBroadcaster creates an empty Broadcaster for messages of type T.
func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subs: make(map[uint64]*subscriber[T])}
}

// Subscribe registers a non-blocking subscriber with the given buffer size.
// The returned function unsubscribes and closes the channel; it is safe to
// call more than once.
func (b *Broadcaster[T]) Subscribe(buffer int) (<-chan T, func()) {
	return b.add(&subscriber[T]{ch: make(chan T, max(buffer, 0))})
}

func (b *Broadcaster[T]) add(sub *subscriber[T]) (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Load() {
		close(sub.ch)

		return sub.ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = sub

	return sub.ch, func() { b.remove(id) }
}

func (b *Broadcaster[T]) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Publish sends msg to every subscriber. Publishing after Close is a no-op.
func (b *Broadcaster[T]) Publish(msg T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed.Load() {
		return
	}

	for _, sub := range b.subs {
		sub.send(msg)
	}
}

// Close unsubscribes everyone. Later subscriptions receive a closed channel.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Swap(true) {
		return
	}

	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// Len returns the number of active subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

type SubscriberStats struct {
	Dropped int
}

// Stats returns per-subscriber delivery counters in no particular order.
func (b *Broadcaster[T]) Stats() []SubscriberStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := make([]SubscriberStats, 0, len(b.subs))
	for _, sub := range b.subs {
		stats = append(stats, SubscriberStats{Dropped: int(sub.dropped.Load())})
	}

	return stats
}
