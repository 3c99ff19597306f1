package scope

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/wavegremlin/wavegremlin/internal/wave"
)

// Background is the frame clear color; the caller fills before drawing.
var Background = color.RGBA{12, 12, 16, 255}

var (
	waveColor = color.RGBA{80, 200, 255, 255}
	gridColor = color.RGBA{40, 40, 52, 255}
	axisColor = color.RGBA{60, 60, 80, 255}
)

const (
	gridStep   = 80
	hudOriginX = 16
	hudOriginY = 16
	hudLineH   = 16
)

// Scope draws one frame of the visualizer: background grid, the wave
// polyline, and the HUD readout. It keeps a point buffer that is reused
// across frames.
type Scope struct {
	pts []wave.Point
}

// DrawGrid covers dst with grid lines every 80 px plus a brighter
// horizontal axis through the vertical center.
func (s *Scope) DrawGrid(dst *ebiten.Image) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	for x := 0; x < w; x += gridStep {
		vector.StrokeLine(dst, float32(x), 0, float32(x), float32(h), 1, gridColor, false)
	}
	for y := 0; y < h; y += gridStep {
		vector.StrokeLine(dst, 0, float32(y), float32(w), float32(y), 1, gridColor, false)
	}
	mid := float32(h) / 2
	vector.StrokeLine(dst, 0, mid, float32(w), mid, 1, axisColor, false)
}

// DrawWave samples p across the viewport and strokes connected 2 px
// segments through the points.
func (s *Scope) DrawWave(dst *ebiten.Image, p wave.Params, vp wave.Viewport) {
	s.pts = wave.AppendPoints(s.pts[:0], p, vp)
	if len(s.pts) < 2 {
		return
	}
	prev := s.pts[0]
	for _, pt := range s.pts[1:] {
		vector.StrokeLine(dst, float32(prev.X), float32(prev.Y), float32(pt.X), float32(pt.Y), 2, waveColor, false)
		prev = pt
	}
}

// DrawHUD prints the parameter readouts and the key help at the top left.
func (s *Scope) DrawHUD(dst *ebiten.Image, p wave.Params) {
	for i, line := range hudLines(p) {
		ebitenutil.DebugPrintAt(dst, line, hudOriginX, hudOriginY+hudLineH*i)
	}
}

func hudLines(p wave.Params) []string {
	return []string{
		fmt.Sprintf("Amplitude: %5.1f px", p.Amplitude),
		fmt.Sprintf("Frequency: %5.3f rad/px", p.Frequency),
		fmt.Sprintf("Speed: %4.2f px/tick", p.Speed),
		fmt.Sprintf("Shape: %s", p.Shape),
		"Up/Down amp | Left/Right freq | A/Z speed | W shape | R reset | Esc/Q quit",
	}
}
