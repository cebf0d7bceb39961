package channels_test

import (
	"sync"
	"testing"
	"time"

	"github.com/alkime/itranscript/pkg/channels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain reads ch until it is closed, idle passes without a message, or limit
// messages were read. A limit of 0 means no limit.
func drain[T any](ch <-chan T, idle time.Duration, limit int) []T {
	var out []T

	for limit == 0 || len(out) < limit {
		select {
		case msg, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, msg)
		case <-time.After(idle):
			return out
		}
	}

	return out
}

func TestBroadcaster(t *testing.T) {
	t.Run("every subscriber receives every message in order", func(t *testing.T) {
		b := channels.NewBroadcaster[int]()
		sub1, cancel1 := b.Subscribe(10)
		sub2, cancel2 := b.Subscribe(10)
		defer cancel1()
		defer cancel2()

		b.Publish(1)
		b.Publish(2)
		b.Publish(3)

		assert.Equal(t, []int{1, 2, 3}, drain(sub1, 10*time.Millisecond, 3))
		assert.Equal(t, []int{1, 2, 3}, drain(sub2, 10*time.Millisecond, 3))
	})

	t.Run("publish without subscribers is a no-op", func(t *testing.T) {
		b := channels.NewBroadcaster[string]()
		assert.NotPanics(t, func() { b.Publish("nobody listening") })
	})

	t.Run("unsubscribe closes the channel and stops delivery", func(t *testing.T) {
		b := channels.NewBroadcaster[int]()
		sub, cancel := b.Subscribe(10)
		other, cancelOther := b.Subscribe(10)
		defer cancelOther()

		cancel()
		cancel()
		require.Equal(t, 1, b.Len())

		b.Publish(7)

		_, ok := <-sub
		assert.False(t, ok, "unsubscribed channel is closed")
		assert.Equal(t, []int{7}, drain(other, 10*time.Millisecond, 1))
	})

	t.Run("full subscriber drops without blocking others", func(t *testing.T) {
		b := channels.NewBroadcaster[int]()
		slow, cancelSlow := b.Subscribe(1)
		fast, cancelFast := b.Subscribe(10)
		defer cancelSlow()
		defer cancelFast()

		for i := range 5 {
			b.Publish(i)
		}

		assert.Equal(t, []int{0}, drain(slow, 10*time.Millisecond, 0))
		assert.Equal(t, []int{0, 1, 2, 3, 4}, drain(fast, 10*time.Millisecond, 0))

		dropped := 0
		for _, s := range b.Stats() {
			dropped += s.Dropped
		}
		assert.Equal(t, 4, dropped)
	})

	t.Run("close ends all subscriptions", func(t *testing.T) {
		b := channels.NewBroadcaster[int]()
		sub, cancel := b.Subscribe(1)

		b.Close()
		b.Close()
		cancel()

		_, ok := <-sub
		assert.False(t, ok)

		late, _ := b.Subscribe(1)
		_, ok = <-late
		assert.False(t, ok, "subscribing after close yields a closed channel")

		assert.NotPanics(t, func() { b.Publish(1) })
	})

	t.Run("concurrent publish and unsubscribe", func(t *testing.T) {
		b := channels.NewBroadcaster[int]()
		wg := sync.WaitGroup{}

		for range 10 {
			_, cancel := b.Subscribe(1)
			wg.Go(func() {
				for i := range 100 {
					b.Publish(i)
				}
			})
			wg.Go(cancel)
		}

		wg.Wait()
		assert.Equal(t, 0, b.Len())
	})
}
