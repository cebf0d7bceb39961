// Package uictl describes the minimal controls a view needs from the thing it
// drives, so views can be tested against fakes.
package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Knob is a simple on/off toggle control.
type Knob interface {
	Read() bool
	On()
	Off()
	Toggle()
}

// Dial is a control that can read some value.
type Dial[N Number] interface {
	Read() N
}

// CappedDial is a Dial with a maximum cap value.
type CappedDial[N Number] interface {
	Dial[N]
	Cap() (num, max N)
}

// DialFunc adapts a function to a Dial.
type DialFunc[N Number] func() N

func (f DialFunc[N]) Read() N { return f() }

// Capped wraps a Dial with a fixed cap.
func Capped[N Number](d Dial[N], limit N) CappedDial[N] {
	return cappedDial[N]{Dial: d, limit: limit}
}

type cappedDial[N Number] struct {
	Dial[N]
	limit N
}

func (c cappedDial[N]) Cap() (N, N) { return c.Read(), c.limit }
