package wave

import (
	"errors"
	"math"
)

const twoPi = math.Pi * 2

// Shape selects the waveform the sampler evaluates.
type Shape int

const (
	ShapeSine Shape = iota
	ShapeTriangle
	ShapeSquare
	ShapeSaw
	shapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeTriangle:
		return "triangle"
	case ShapeSquare:
		return "square"
	case ShapeSaw:
		return "saw"
	default:
		return "sine"
	}
}

// Next returns the following shape in cycle order, wrapping back to sine.
func (s Shape) Next() Shape {
	return (s + 1) % shapeCount
}

// Value evaluates the shape at angle theta in radians and returns a level in
// [-1, 1]. Sine, triangle and saw are zero at theta zero.
func (s Shape) Value(theta float64) float64 {
	switch s {
	case ShapeTriangle:
		t := normalize(theta)
		if t < 0.25 {
			return 4 * t
		}
		if t < 0.75 {
			return 2 - 4*t
		}
		return 4*t - 4
	case ShapeSquare:
		if normalize(theta) < 0.5 {
			return 1
		}
		return -1
	case ShapeSaw:
		t := normalize(theta)
		if t < 0.5 {
			return 2 * t
		}
		return 2*t - 2
	default:
		return math.Sin(theta)
	}
}

// normalize maps an angle in radians to a cycle position in [0, 1).
func normalize(theta float64) float64 {
	t := theta / twoPi
	return t - math.Floor(t)
}

// Field identifies one keyboard-adjustable parameter.
type Field int

const (
	FieldAmplitude Field = iota
	FieldFrequency
	FieldSpeed
)

// Per-press adjustment steps applied by the loop's increment/decrement ops.
const (
	AmplitudeStep = 5.0   // pixels
	FrequencyStep = 0.005 // radians per pixel
	SpeedStep     = 0.25  // pixels per tick
)

// Params holds the adjustable wave state. It is a plain value: the update
// functions take a Params and return the modified copy, and the render loop
// owns the single live instance for the process lifetime.
type Params struct {
	Amplitude float64 // peak height in pixels
	Frequency float64 // radians per horizontal pixel
	Speed     float64 // scroll rate in pixels per tick
	Phase     float64 // horizontal scroll offset in pixels
	Shape     Shape
}

// DefaultParams returns the startup state: a sine of amplitude 50 px at
// 0.05 rad/px scrolling 2 px per tick, phase zero.
func DefaultParams() Params {
	return Params{
		Amplitude: 50,
		Frequency: 0.05,
		Speed:     2,
	}
}

// Limits bound each adjustable field. Adjust clamps into them; out-of-range
// values are never rejected with an error.
type Limits struct {
	MinAmplitude, MaxAmplitude float64
	MinFrequency, MaxFrequency float64
	MinSpeed, MaxSpeed         float64
}

// DefaultLimits keeps the amplitude 10 px inside the default 480 px-high
// surface and the shortest wavelength at about 31 px.
func DefaultLimits() Limits {
	return Limits{
		MaxAmplitude: 230,
		MaxFrequency: 0.2,
		MaxSpeed:     8,
	}
}

// Validate reports the first inverted bound pair.
func (l Limits) Validate() error {
	switch {
	case l.MinAmplitude > l.MaxAmplitude:
		return errors.New("amplitude limits inverted")
	case l.MinFrequency > l.MaxFrequency:
		return errors.New("frequency limits inverted")
	case l.MinSpeed > l.MaxSpeed:
		return errors.New("speed limits inverted")
	}
	return nil
}

// Adjust moves one field of p by delta and clamps it into lim. Deltas that
// would land outside the bounds clamp silently.
func Adjust(p Params, lim Limits, f Field, delta float64) Params {
	switch f {
	case FieldAmplitude:
		p.Amplitude = clamp(p.Amplitude+delta, lim.MinAmplitude, lim.MaxAmplitude)
	case FieldFrequency:
		p.Frequency = clamp(p.Frequency+delta, lim.MinFrequency, lim.MaxFrequency)
	case FieldSpeed:
		p.Speed = clamp(p.Speed+delta, lim.MinSpeed, lim.MaxSpeed)
	}
	return p
}

// Clamp forces every adjustable field of p into lim.
func Clamp(p Params, lim Limits) Params {
	p.Amplitude = clamp(p.Amplitude, lim.MinAmplitude, lim.MaxAmplitude)
	p.Frequency = clamp(p.Frequency, lim.MinFrequency, lim.MaxFrequency)
	p.Speed = clamp(p.Speed, lim.MinSpeed, lim.MaxSpeed)
	return p
}

// Advance scrolls p by dt ticks at the current speed. The phase wraps at the
// wave's spatial period (2*pi/Frequency, or 2*pi when Frequency is zero);
// the wrap never changes a sampled y value.
func Advance(p Params, dt float64) Params {
	p.Phase = wrapPhase(p.Phase+p.Speed*dt, p.Frequency)
	return p
}

func wrapPhase(phase, freq float64) float64 {
	period := twoPi
	if freq > 0 {
		period = twoPi / freq
	}
	phase = math.Mod(phase, period)
	if phase < 0 {
		phase += period
	}
	return phase
}

func clamp(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
