package wavegremlin

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	intinput "github.com/wavegremlin/wavegremlin/internal/input"
	intscope "github.com/wavegremlin/wavegremlin/internal/scope"
	intwave "github.com/wavegremlin/wavegremlin/internal/wave"
)

type Option func(*config)

type config struct {
	width    int
	height   int
	params   intwave.Params
	limits   intwave.Limits
	bindings []intinput.Binding
	grid     bool
	hud      bool
}

func defaultConfig() config {
	return config{
		width:  960,
		height: 480,
		params: intwave.DefaultParams(),
		limits: intwave.DefaultLimits(),
		grid:   true,
		hud:    true,
	}
}

// WithSize sets the logical surface size in pixels.
func WithSize(width, height int) Option {
	return func(cfg *config) {
		cfg.width = width
		cfg.height = height
	}
}

// WithParams sets the starting parameters, which reset also restores.
// Values outside the limits are clamped, not rejected.
func WithParams(p intwave.Params) Option {
	return func(cfg *config) {
		cfg.params = p
	}
}

// WithLimits sets the clamp bounds for the adjustable parameters.
func WithLimits(l intwave.Limits) Option {
	return func(cfg *config) {
		cfg.limits = l
	}
}

// WithBindings replaces the default key table.
func WithBindings(b []intinput.Binding) Option {
	return func(cfg *config) {
		cfg.bindings = b
	}
}

// WithGrid toggles the background grid.
func WithGrid(enabled bool) Option {
	return func(cfg *config) {
		cfg.grid = enabled
	}
}

// WithHUD toggles the parameter readout.
func WithHUD(enabled bool) Option {
	return func(cfg *config) {
		cfg.hud = enabled
	}
}

// Visualizer renders a scrolling wave and adjusts its parameters from the
// keyboard. It implements ebiten.Game; run it with ebiten.RunGame, which
// returns once quit is requested and releases the window on every exit
// path.
type Visualizer struct {
	width    int
	height   int
	limits   intwave.Limits
	defaults intwave.Params
	params   intwave.Params
	mapper   *intinput.Mapper
	scope    intscope.Scope
	grid     bool
	hud      bool
	stopped  bool
}

func New(opts ...Option) (*Visualizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("surface size %dx%d must be positive", cfg.width, cfg.height)
	}
	if err := cfg.limits.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.bindings) == 0 {
		cfg.bindings = intinput.DefaultBindings()
	}
	mapper := intinput.NewMapper()
	mapper.Bindings = cfg.bindings
	defaults := intwave.Clamp(cfg.params, cfg.limits)
	return &Visualizer{
		width:    cfg.width,
		height:   cfg.height,
		limits:   cfg.limits,
		defaults: defaults,
		params:   defaults,
		mapper:   mapper,
		grid:     cfg.grid,
		hud:      cfg.hud,
	}, nil
}

// Update runs one tick: poll the keyboard, apply the fired ops in order,
// then advance the phase by one tick of scrolling. Once quit has been
// requested it returns ebiten.Termination, on the same tick the key
// fired.
func (v *Visualizer) Update() error {
	for _, op := range v.mapper.Poll() {
		v.apply(op)
	}
	if v.stopped {
		return ebiten.Termination
	}
	v.params = intwave.Advance(v.params, 1)
	return nil
}

func (v *Visualizer) apply(op intinput.Op) {
	switch op {
	case intinput.OpRaiseAmplitude:
		v.adjust(intwave.FieldAmplitude, intwave.AmplitudeStep)
	case intinput.OpLowerAmplitude:
		v.adjust(intwave.FieldAmplitude, -intwave.AmplitudeStep)
	case intinput.OpRaiseFrequency:
		v.adjust(intwave.FieldFrequency, intwave.FrequencyStep)
	case intinput.OpLowerFrequency:
		v.adjust(intwave.FieldFrequency, -intwave.FrequencyStep)
	case intinput.OpRaiseSpeed:
		v.adjust(intwave.FieldSpeed, intwave.SpeedStep)
	case intinput.OpLowerSpeed:
		v.adjust(intwave.FieldSpeed, -intwave.SpeedStep)
	case intinput.OpCycleShape:
		v.params.Shape = v.params.Shape.Next()
	case intinput.OpReset:
		v.params = v.defaults
	case intinput.OpQuit:
		v.stopped = true
	}
}

func (v *Visualizer) adjust(f intwave.Field, delta float64) {
	v.params = intwave.Adjust(v.params, v.limits, f, delta)
}

// Draw renders the frame: background fill, grid, wave polyline, HUD.
// It never mutates the parameters.
func (v *Visualizer) Draw(screen *ebiten.Image) {
	screen.Fill(intscope.Background)
	if v.grid {
		v.scope.DrawGrid(screen)
	}
	v.scope.DrawWave(screen, v.params, v.viewport())
	if v.hud {
		v.scope.DrawHUD(screen, v.params)
	}
}

func (v *Visualizer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

func (v *Visualizer) viewport() intwave.Viewport {
	return intwave.Viewport{Width: v.width, Stride: 1, CenterY: float64(v.height) / 2}
}

// Size returns the logical surface size, for window setup.
func (v *Visualizer) Size() (int, int) {
	return v.width, v.height
}

// Params returns the current parameter values.
func (v *Visualizer) Params() intwave.Params {
	return v.params
}
