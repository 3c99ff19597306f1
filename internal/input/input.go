package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Op is one action a recognized key requests. Keys outside the binding
// table produce no op.
type Op int

const (
	OpRaiseAmplitude Op = iota
	OpLowerAmplitude
	OpRaiseFrequency
	OpLowerFrequency
	OpRaiseSpeed
	OpLowerSpeed
	OpCycleShape
	OpReset
	OpQuit
)

// Repeats reports whether holding the bound key keeps firing the op.
// Parameter adjustments repeat; shape cycling, reset and quit fire once
// per press.
func (o Op) Repeats() bool {
	switch o {
	case OpCycleShape, OpReset, OpQuit:
		return false
	}
	return true
}

// Binding ties one key to one op.
type Binding struct {
	Key ebiten.Key
	Op  Op
}

// DefaultBindings returns the stock layout: arrows adjust amplitude and
// frequency, A/Z adjust scroll speed, W cycles the shape, R resets, and
// Q or Escape quits.
func DefaultBindings() []Binding {
	return []Binding{
		{ebiten.KeyArrowUp, OpRaiseAmplitude},
		{ebiten.KeyArrowDown, OpLowerAmplitude},
		{ebiten.KeyArrowRight, OpRaiseFrequency},
		{ebiten.KeyArrowLeft, OpLowerFrequency},
		{ebiten.KeyZ, OpRaiseSpeed},
		{ebiten.KeyA, OpLowerSpeed},
		{ebiten.KeyW, OpCycleShape},
		{ebiten.KeyR, OpReset},
		{ebiten.KeyQ, OpQuit},
		{ebiten.KeyEscape, OpQuit},
	}
}

// Held keys fire on the first tick of the press, then every interval
// once the delay has elapsed. Measured in ticks at 60 TPS.
const (
	RepeatDelayTicks    = 18
	RepeatIntervalTicks = 4
)

// Fires reports whether a repeating op triggers on the tick where its key
// has been held for d ticks.
func Fires(d int) bool {
	if d == 1 {
		return true
	}
	return d >= RepeatDelayTicks && (d-RepeatDelayTicks)%RepeatIntervalTicks == 0
}

// Mapper turns per-tick keyboard state into ops. Poll once per Update.
type Mapper struct {
	// Bindings is consulted in order; several keys may share an op.
	Bindings []Binding
	// Duration reports how many ticks a key has been held, zero while it
	// is up. Tests swap in a fake.
	Duration func(ebiten.Key) int

	ops []Op
}

func NewMapper() *Mapper {
	return &Mapper{
		Bindings: DefaultBindings(),
		Duration: inpututil.KeyPressDuration,
	}
}

// Poll returns the ops firing this tick, in binding-table order. The
// returned slice is reused across calls.
func (m *Mapper) Poll() []Op {
	m.ops = m.ops[:0]
	for _, b := range m.Bindings {
		d := m.Duration(b.Key)
		if d <= 0 {
			continue
		}
		if b.Op.Repeats() {
			if Fires(d) {
				m.ops = append(m.ops, b.Op)
			}
		} else if d == 1 {
			m.ops = append(m.ops, b.Op)
		}
	}
	return m.ops
}
