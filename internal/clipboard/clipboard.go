// Package clipboard copies plain text out of the application.
package clipboard

import (
	"errors"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

var ErrEmpty = errors.New("nothing to copy")

// Clipboard receives plain text. Formatting is never preserved.
type Clipboard interface {
	Copy(text string) error
}

// OSC52 copies through the terminal with an OSC 52 escape sequence, which
// works over SSH and inside tmux.
type OSC52 struct {
	out *termenv.Output
}

func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{out: termenv.NewOutput(w)}
}

func (c *OSC52) Copy(text string) error {
	if text == "" {
		return ErrEmpty
	}

	c.out.Copy(text)

	return nil
}

// Memory keeps copied text in memory. The HTTP server uses it to hand the
// text back to the browser, and tests use it to assert on copies.
type Memory struct {
	mu     sync.Mutex
	copies []string
}

func (m *Memory) Copy(text string) error {
	if text == "" {
		return ErrEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.copies = append(m.copies, text)

	return nil
}

// Last returns the most recent copy, or "".
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.copies) == 0 {
		return ""
	}

	return m.copies[len(m.copies)-1]
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.copies)
}
