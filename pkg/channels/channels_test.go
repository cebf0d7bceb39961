package channels_test

import (
	"testing"

	"github.com/alkime/itranscript/pkg/channels"
	"github.com/stretchr/testify/assert"
)

func TestSendNonBlock(t *testing.T) {
	t.Run("delivers when buffer has room", func(t *testing.T) {
		ch := make(chan int, 1)
		assert.NoError(t, channels.SendNonBlock(ch, 42))
		assert.Equal(t, 42, <-ch)
	})

	t.Run("full buffer", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 1
		assert.ErrorIs(t, channels.SendNonBlock(ch, 42), channels.ErrChannelFull)
	})

	t.Run("unbuffered without receiver", func(t *testing.T) {
		assert.ErrorIs(t, channels.SendNonBlock(make(chan int), 42), channels.ErrChannelFull)
	})

	t.Run("closed channel", func(t *testing.T) {
		ch := make(chan int, 1)
		close(ch)
		assert.ErrorIs(t, channels.SendNonBlock(ch, 42), channels.ErrChannelClosed)
	})
}
