package dualdial

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	pulseScale    = 1.5
	pulseDuration = 0.35 // seconds
)

// pulse briefly enlarges the pointer mark after the selection changes.
// It never touches ring rotation.
type pulse struct {
	tween *gween.Tween
	scale float64
	done  bool
}

func newPulse() *pulse {
	return &pulse{scale: 1, done: true}
}

// trigger restarts the pulse from its peak.
func (p *pulse) trigger() {
	p.tween = gween.New(pulseScale, 1, pulseDuration, ease.OutQuad)
	p.scale = pulseScale
	p.done = false
}

// Update advances the pulse by dt seconds.
func (p *pulse) Update(dt float32) {
	if p.done || p.tween == nil {
		return
	}
	val, finished := p.tween.Update(dt)
	p.scale = float64(val)
	if finished {
		p.scale = 1
		p.done = true
	}
}

// Scale returns the current pointer scale factor (1 when idle).
func (p *pulse) Scale() float64 {
	return p.scale
}

// PointerScale returns the current scale of the pointer mark.
func (d *Dial) PointerScale() float64 {
	return d.pulse.Scale()
}
