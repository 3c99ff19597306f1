package scope

import (
	"strings"
	"testing"

	"github.com/wavegremlin/wavegremlin/internal/wave"
)

func TestHUDLinesDefaults(t *testing.T) {
	want := []string{
		"Amplitude:  50.0 px",
		"Frequency: 0.050 rad/px",
		"Speed: 2.00 px/tick",
		"Shape: sine",
		"Up/Down amp | Left/Right freq | A/Z speed | W shape | R reset | Esc/Q quit",
	}
	got := hudLines(wave.DefaultParams())
	if len(got) != len(want) {
		t.Fatalf("%d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHUDLinesTrackParams(t *testing.T) {
	p := wave.Params{Amplitude: 125, Frequency: 0.125, Speed: 4.25, Shape: wave.ShapeSquare}
	got := hudLines(p)
	if !strings.Contains(got[0], "125.0") {
		t.Errorf("amplitude line %q missing value", got[0])
	}
	if !strings.Contains(got[1], "0.125") {
		t.Errorf("frequency line %q missing value", got[1])
	}
	if !strings.Contains(got[2], "4.25") {
		t.Errorf("speed line %q missing value", got[2])
	}
	if !strings.Contains(got[3], "square") {
		t.Errorf("shape line %q missing shape name", got[3])
	}
}
