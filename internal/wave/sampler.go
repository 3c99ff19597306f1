package wave

import "iter"

// Point is one sampled position in screen space.
type Point struct {
	X, Y float64
}

// Viewport describes the pixel region sampled points map onto.
type Viewport struct {
	Width   int     // horizontal pixels covered, sampled left to right
	Stride  int     // pixels between samples; values below 1 sample every pixel
	CenterY float64 // vertical midline of the wave
}

// Columns returns how many points one sample of the viewport yields.
func (vp Viewport) Columns() int {
	if vp.Width <= 0 {
		return 0
	}
	stride := vp.Stride
	if stride < 1 {
		stride = 1
	}
	return (vp.Width + stride - 1) / stride
}

// Points samples the wave across the viewport: one point per stride column at
// y = CenterY + Amplitude*shape(Frequency*(x+Phase)). The sequence is finite
// and computed on demand; it is a pure function of its inputs, so ranging it
// again replays the identical points. Zero amplitude and zero frequency are
// both valid and draw a flat line for the default sine shape.
func Points(p Params, vp Viewport) iter.Seq[Point] {
	stride := vp.Stride
	if stride < 1 {
		stride = 1
	}
	return func(yield func(Point) bool) {
		for x := 0; x < vp.Width; x += stride {
			theta := p.Frequency * (float64(x) + p.Phase)
			pt := Point{X: float64(x), Y: vp.CenterY + p.Amplitude*p.Shape.Value(theta)}
			if !yield(pt) {
				return
			}
		}
	}
}

// AppendPoints samples the viewport eagerly, appending to dst and returning
// it. The draw path reuses dst across frames to avoid per-frame allocation.
func AppendPoints(dst []Point, p Params, vp Viewport) []Point {
	for pt := range Points(p, vp) {
		dst = append(dst, pt)
	}
	return dst
}
