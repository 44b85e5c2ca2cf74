package dualdial

import "math"

// syntheticPointerEvent represents a single injected pointer event.
type syntheticPointerEvent struct {
	pointerID int
	x, y      float64
	phase     EventPhase
}

// injectTouchPointer is the slot used for injected touch gestures.
const injectTouchPointer = 1

// InjectPress queues a press on the mouse pointer at the given screen
// coordinates. The event is consumed on the next Process call.
func (in *Input) InjectPress(x, y float64) {
	in.inject(0, x, y, PhasePress)
}

// InjectMove queues a move of the mouse pointer with the button held down.
// Use this between InjectPress and InjectRelease to simulate a drag.
func (in *Input) InjectMove(x, y float64) {
	in.inject(0, x, y, PhaseMove)
}

// InjectRelease queues a release of the mouse pointer.
func (in *Input) InjectRelease(x, y float64) {
	in.inject(0, x, y, PhaseRelease)
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full mouse drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	in.injectDrag(0, fromX, fromY, toX, toY, frames)
}

// InjectTouchDrag is InjectDrag on a touch pointer.
func (in *Input) InjectTouchDrag(fromX, fromY, toX, toY float64, frames int) {
	in.injectDrag(injectTouchPointer, fromX, fromY, toX, toY, frames)
}

// InjectTouchMove queues a move on the touch pointer. A touch move that
// arrives while no touch is down is dropped when processed.
func (in *Input) InjectTouchMove(x, y float64) {
	in.inject(injectTouchPointer, x, y, PhaseMove)
}

// InjectArc queues a mouse drag that sweeps around (cx, cy) at the given
// radius from startDeg to endDeg. Positive sweeps turn clockwise on screen.
// Each intermediate frame advances by at most stepDeg degrees.
func (in *Input) InjectArc(cx, cy, radius, startDeg, endDeg, stepDeg float64) {
	if stepDeg <= 0 {
		stepDeg = 10
	}
	px, py := polar(cx, cy, radius, startDeg)
	in.InjectPress(px, py)

	sweep := endDeg - startDeg
	steps := int(math.Abs(sweep)/stepDeg) + 1
	for i := 1; i <= steps; i++ {
		a := startDeg + sweep*float64(i)/float64(steps)
		px, py = polar(cx, cy, radius, a)
		in.InjectMove(px, py)
	}
	in.InjectRelease(px, py)
}

// Pending returns the number of injected events not yet processed.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

func (in *Input) inject(pointerID int, x, y float64, phase EventPhase) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{
		pointerID: pointerID,
		x:         x,
		y:         y,
		phase:     phase,
	})
}

func (in *Input) injectDrag(pointerID int, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.inject(pointerID, fromX, fromY, PhasePress)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		in.inject(pointerID, x, y, PhaseMove)
	}
	in.inject(pointerID, toX, toY, PhaseRelease)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input should be skipped this frame).
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	kind := PointerInjected
	if evt.pointerID != 0 {
		kind = PointerTouch
	}

	switch evt.phase {
	case PhasePress:
		in.processPointer(evt.pointerID, evt.x, evt.y, true, kind)
	case PhaseMove:
		// No active point for this pointer: nothing to move.
		if !in.IsDown(evt.pointerID) {
			return true
		}
		in.processPointer(evt.pointerID, evt.x, evt.y, true, kind)
	case PhaseRelease:
		in.processPointer(evt.pointerID, evt.x, evt.y, false, kind)
	}
	return true
}
