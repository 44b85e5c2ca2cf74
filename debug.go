package dualdial

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and event counts.
// Only populated when Dial.debug is true.
type debugStats struct {
	updateTime       time.Duration
	drawTime         time.Duration
	moves            int
	selectionChanges int
}

// SetDebugMode enables per-frame timing and stderr diagnostics.
func (d *Dial) SetDebugMode(enabled bool) {
	d.debug = enabled
	d.stats = debugStats{}
}

// DebugMode reports whether debug diagnostics are enabled.
func (d *Dial) DebugMode() bool {
	return d.debug
}

// DebugFrame prints the stats gathered since the last call to stderr and
// resets them. Call once per frame after Draw; it does nothing unless debug
// mode is on.
func (d *Dial) DebugFrame() {
	if !d.debug {
		return
	}
	s := d.stats
	if s.moves > 0 || s.selectionChanges > 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[dualdial] update: %v | draw: %v | moves: %d | selection changes: %d\n",
			s.updateTime, s.drawTime, s.moves, s.selectionChanges)
	}
	d.stats = debugStats{}
}

// debugCheckGeometry warns on stderr when the ring radii overlap or the hub
// covers the inner ring.
func debugCheckGeometry(g RingGeometry) {
	if g.OuterInnerRadius >= g.OuterRadius || g.InnerInnerRadius >= g.InnerRadius {
		_, _ = fmt.Fprintf(os.Stderr, "[dualdial] warning: ring with inner edge >= outer edge (%+v)\n", g)
	}
	if g.InnerRadius > g.OuterInnerRadius {
		_, _ = fmt.Fprintf(os.Stderr, "[dualdial] warning: inner ring overlaps outer ring (%v > %v)\n",
			g.InnerRadius, g.OuterInnerRadius)
	}
	if g.HubRadius >= g.InnerRadius {
		_, _ = fmt.Fprintf(os.Stderr, "[dualdial] warning: hub radius %v hides the inner ring\n", g.HubRadius)
	}
}
