// Package app is the evaluation application: an Evaluate page with the dual
// dial and a Save button, and a History page listing saved evaluations.
package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dualdial"
	"github.com/phanxgames/dualdial/internal/config"
	"github.com/phanxgames/dualdial/internal/evaluation"
	"github.com/phanxgames/dualdial/internal/feedback"
	"github.com/phanxgames/dualdial/internal/inspect"
	"github.com/phanxgames/dualdial/internal/metrics"
	"github.com/phanxgames/dualdial/pkg/logger"
)

// Page identifies the visible screen.
type Page uint8

const (
	PageEvaluate Page = iota
	PageHistory
)

func (p Page) String() string {
	if p == PageHistory {
		return "history"
	}
	return "evaluate"
}

// Ticker plays a short sound for a ring whose category changed.
type Ticker interface {
	Tick(r dualdial.Ring) error
}

// App implements ebiten.Game.
type App struct {
	cfg      *config.Config
	dial     *dualdial.Dial
	input    *dualdial.Input
	store    *evaluation.Store
	metrics  *metrics.Manager
	dialogs  feedback.Dialogs
	notifier feedback.Notifier
	ticker   Ticker
	log      logger.Logger
	fps      *dualdial.FPSWidget

	page        Page
	width       int
	height      int
	pressHandle dualdial.CallbackHandle

	// Dialogs run off the game loop and post their outcome here.
	results chan func()
	busy    bool

	toasts []toast
	prev   dualdial.Selection

	script  *dualdial.TestRunner
	stopped atomic.Bool

	mu   sync.RWMutex
	snap inspect.Snapshot
}

var (
	_ ebiten.Game             = (*App)(nil)
	_ inspect.SelectionSource = (*App)(nil)
)

// New builds the application and its dial. Without WithDialogs native
// zenity dialogs are used.
func New(cfg *config.Config, store *evaluation.Store, opts ...Option) *App {
	a := &App{
		cfg:     cfg,
		store:   store,
		width:   cfg.Width,
		height:  cfg.Height,
		results: make(chan func(), 4),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.input == nil {
		a.input = dualdial.NewDeviceInput()
	}
	if a.dialogs == nil {
		z := feedback.NewZenity(cfg.Title)
		a.dialogs = z
		if a.notifier == nil {
			a.notifier = z
		}
	}

	// Registered ahead of the dial so tabs, buttons and the History page
	// see presses first.
	a.pressHandle = a.input.OnPress(a.handlePress)

	dc := dualdial.DialConfig{
		Geometry: dualdial.RingGeometry{
			OuterRadius:      cfg.OuterRadius,
			OuterInnerRadius: cfg.OuterRadius - cfg.RingWidth,
			InnerRadius:      cfg.InnerRadius,
			InnerInnerRadius: cfg.InnerRadius - cfg.InnerRingWidth,
			HubRadius:        dualdial.DefaultRingGeometry.HubRadius,
		},
		Input:             a.input,
		OnSelectionChange: a.onSelection,
		Logger:            a.log,
	}
	if a.metrics != nil {
		dc.Sink = a.metrics
	}
	a.dial = dualdial.NewDial(dc)
	a.dial.SetDebugMode(cfg.Debug)
	if cfg.ScreenshotDir != "" {
		a.dial.ScreenshotDir = cfg.ScreenshotDir
	}
	if cfg.ShowFPS {
		a.fps = dualdial.NewFPSWidget(a.dial)
	}
	a.layoutDial()
	a.refreshSnapshot()
	return a
}

// Dial returns the application's dial.
func (a *App) Dial() *dualdial.Dial {
	return a.dial
}

// Page returns the visible page.
func (a *App) Page() Page {
	return a.page
}

// SetPage switches pages. Leaving the Evaluate page ends any drag.
func (a *App) SetPage(p Page) {
	if p == a.page {
		return
	}
	if a.page == PageEvaluate {
		a.dial.EndDrag()
	}
	a.page = p
	a.debugLog("page", logger.String("page", p.String()))
}

// Snapshot implements inspect.SelectionSource. It is safe to call from any
// goroutine.
func (a *App) Snapshot() inspect.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// RunScript replays r through the dial's input. The game ends on the frame
// after the last step.
func (a *App) RunScript(r *dualdial.TestRunner) {
	a.script = r
	a.dial.SetTestRunner(r)
}

// Stop ends the game loop at the next Update. Safe to call from any
// goroutine.
func (a *App) Stop() {
	a.stopped.Store(true)
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.stopped.Load() || (a.script != nil && a.script.Done()) {
		return ebiten.Termination
	}
	a.drainResults()
	a.dial.Update()
	dt := 1.0 / float64(ebiten.TPS())
	a.updateToasts(dt)
	if a.fps != nil {
		a.fps.Update(dt)
	}
	a.refreshSnapshot()
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.drawTabs(screen)
	switch a.page {
	case PageEvaluate:
		a.drawEvaluate(screen)
	case PageHistory:
		a.drawHistory(screen)
	}
	a.drawToasts(screen)
	if a.fps != nil {
		a.fps.Draw(screen, 8, a.height-76)
	}
	a.dial.FlushScreenshots(screen)
	a.dial.DebugFrame()
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.layoutDial()
	}
	return outsideWidth, outsideHeight
}

// Close detaches the application from its input and stops the ticker.
func (a *App) Close() {
	a.pressHandle.Remove()
	a.dial.Close()
	if c, ok := a.ticker.(interface{ Close() }); ok {
		c.Close()
	}
}

func (a *App) layoutDial() {
	x, y := a.dialCenter()
	a.dial.SetCenter(x, y)
}

// onSelection runs on the game loop for every selection change, and once
// from NewDial before a.prev is set.
func (a *App) onSelection(outer, inner string) {
	next := dualdial.Selection{Outer: outer, Inner: inner}
	prev := a.prev
	a.prev = next
	if prev == (dualdial.Selection{}) || a.ticker == nil {
		return
	}
	ring := dualdial.RingInner
	if prev.Outer != next.Outer {
		ring = dualdial.RingOuter
	}
	if err := a.ticker.Tick(ring); err != nil {
		if a.log != nil {
			a.log.Warn(context.Background(), "tick failed, disabling sound", logger.Error(err))
		}
		a.ticker = nil
	}
}

func (a *App) refreshSnapshot() {
	sel := a.dial.Selection()
	snap := inspect.Snapshot{
		Outer:         sel.Outer,
		Inner:         sel.Inner,
		OuterRotation: a.dial.Rotation(dualdial.RingOuter),
		InnerRotation: a.dial.Rotation(dualdial.RingInner),
		ActiveRing:    a.dial.ActiveRing().String(),
	}
	a.mu.Lock()
	a.snap = snap
	a.mu.Unlock()
}

// drainResults applies every finished dialog outcome without blocking.
func (a *App) drainResults() {
	for {
		select {
		case fn := <-a.results:
			fn()
		default:
			return
		}
	}
}

func (a *App) debugLog(msg string, fields ...logger.Field) {
	if a.log == nil {
		return
	}
	a.log.Debug(context.Background(), msg, fields...)
}
