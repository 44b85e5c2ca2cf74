package dualdial

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefreshInterval = 0.5 // seconds

// FPSWidget displays FPS, TPS and the dial's ring rotations in a small
// overlay. The text is refreshed every half second.
type FPSWidget struct {
	dial    *Dial
	img     *ebiten.Image
	elapsed float64
	text    string
}

// NewFPSWidget creates an overlay for d. d may be nil, in which case only
// frame rates are shown.
func NewFPSWidget(d *Dial) *FPSWidget {
	return &FPSWidget{dial: d, elapsed: fpsRefreshInterval}
}

// Update advances the refresh timer by dt seconds.
func (w *FPSWidget) Update(dt float64) {
	w.elapsed += dt
	if w.elapsed < fpsRefreshInterval {
		return
	}
	w.elapsed = 0
	w.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if w.dial != nil {
		w.text += fmt.Sprintf("\nouter: %7.1f\ninner: %7.1f",
			w.dial.Rotation(RingOuter), w.dial.Rotation(RingInner))
	}
}

// Text returns the most recently rendered overlay text.
func (w *FPSWidget) Text() string {
	return w.text
}

// Draw renders the overlay with its top-left corner at (x, y).
func (w *FPSWidget) Draw(screen *ebiten.Image, x, y int) {
	if w.text == "" {
		return
	}
	if w.img == nil {
		// 120x68 fits four lines of the debug font.
		w.img = ebiten.NewImage(120, 68)
	}
	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, w.text)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(w.img, op)
}
