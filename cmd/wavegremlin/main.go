package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/wavegremlin/wavegremlin"
)

func main() {
	v, err := wavegremlin.New()
	if err != nil {
		fatal(err)
	}

	w, h := v.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Wave Gremlin")
	if err := ebiten.RunGame(v); err != nil {
		fatal(err)
	}
}

// fatal reports err in a native dialog when one can be shown (a windowed
// process may have no console attached), then exits non-zero. The dialog
// is best-effort; stderr gets the error either way.
func fatal(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("Wave Gremlin"))
	log.Fatal(err)
}
