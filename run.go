package dualdial

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Update runs one frame of dial logic: the scripted test runner, pending
// input and the pointer pulse. Call once per frame from ebiten.Game.Update.
func (d *Dial) Update() {
	var start time.Time
	if d.debug {
		start = time.Now()
	}

	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	d.input.Process()
	d.pulse.Update(float32(1.0 / float64(ebiten.TPS())))

	if d.debug {
		d.stats.updateTime = time.Since(start)
	}
}

// RunConfig holds optional settings for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background fills the screen before the dial is drawn. Zero means
	// FaceColor darkened.
	Background Color
}

// dialGame is the ebiten.Game that Run drives. It keeps the dial centred in
// the current layout.
type dialGame struct {
	dial   *Dial
	cfg    RunConfig
	fps    *FPSWidget
	width  int
	height int
}

func (g *dialGame) Update() error {
	g.dial.Update()
	if g.fps != nil {
		g.fps.Update(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (g *dialGame) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.toRGBA())
	g.dial.Draw(screen)
	if g.fps != nil {
		g.fps.Draw(screen, 8, 8)
	}
	g.dial.FlushScreenshots(screen)
	g.dial.DebugFrame()
}

func (g *dialGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dial.SetCenter(float64(outsideWidth)/2, float64(outsideHeight)/2)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and drives d until the window is closed. The dial is
// kept centred in the window.
func Run(d *Dial, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 480
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "Dual Dial"
	}
	if cfg.Background == (Color{}) {
		cfg.Background = Color{R: FaceColor.R * 0.6, G: FaceColor.G * 0.6, B: FaceColor.B * 0.6, A: 1}
	}

	g := &dialGame{dial: d, cfg: cfg}
	if cfg.ShowFPS {
		g.fps = NewFPSWidget(d)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}
