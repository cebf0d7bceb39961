// Package idgen provides injectable identity generators.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out identifiers that are unique for its lifetime.
type Generator interface {
	Next() string
}

// UUID generates random v4 UUIDs with an optional prefix.
type UUID struct {
	Prefix string
}

// Next returns a new prefixed UUID.
func (u UUID) Next() string {
	return u.Prefix + uuid.NewString()
}

// Counter generates monotonically increasing identifiers.
// Safe for concurrent use.
type Counter struct {
	prefix string
	width  int
	n      atomic.Uint64
}

// NewCounter creates a counter whose ids look like prefix + zero padded number.
// A width of 0 disables padding.
func NewCounter(prefix string, width int) *Counter {
	return &Counter{prefix: prefix, width: width}
}

// Next returns the next identifier, starting at 1.
func (c *Counter) Next() string {
	n := c.n.Add(1)

	return fmt.Sprintf("%s%0*d", c.prefix, c.width, n)
}

// New builds a generator for the named strategy ("uuid" or "counter").
func New(strategy, prefix string) (Generator, error) {
	switch strategy {
	case "uuid":
		return UUID{Prefix: prefix}, nil
	case "counter":
		return NewCounter(prefix, 0), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
