package dualdial

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitShape is a hit-testable region in screen coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitRing is an annulus: the area between two concentric circles.
type HitRing struct {
	CenterX, CenterY    float64
	InnerRadius, Radius float64
}

// Contains reports whether (x, y) lies on or between the two circles.
func (r HitRing) Contains(x, y float64) bool {
	dx := x - r.CenterX
	dy := y - r.CenterY
	d2 := dx*dx + dy*dy
	return d2 >= r.InnerRadius*r.InnerRadius && d2 <= r.Radius*r.Radius
}

// --- Pointer sources ---

// PointerSample is the level state of one pointer for one frame.
type PointerSample struct {
	PointerID int
	X, Y      float64
	Pressed   bool
	Kind      PointerKind
}

// PointerSource is anything that can report pointer-like input: a position
// plus a pressed flag per pointer. Press, move and release edges are derived
// by Input, so mouse and touch share one state machine.
type PointerSource interface {
	// Poll appends this frame's samples to buf and returns it.
	Poll(buf []PointerSample) []PointerSample
}

// MouseSource reports the Ebitengine cursor as pointer 0. Any of the left,
// right or middle buttons counts as pressed.
type MouseSource struct{}

// NewMouseSource returns a PointerSource backed by the Ebitengine cursor.
func NewMouseSource() *MouseSource {
	return &MouseSource{}
}

// Poll implements PointerSource.
func (m *MouseSource) Poll(buf []PointerSample) []PointerSample {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	return append(buf, PointerSample{
		PointerID: 0,
		X:         float64(mx),
		Y:         float64(my),
		Pressed:   pressed,
		Kind:      PointerMouse,
	})
}

// TouchSource reports Ebitengine touches as pointers 1-9. A touch that
// disappears between frames is reported once more as released at its last
// known position.
type TouchSource struct {
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	lastPos   [maxPointers]Vec2
	touchIDs  []ebiten.TouchID
}

// NewTouchSource returns a PointerSource backed by Ebitengine touches.
func NewTouchSource() *TouchSource {
	return &TouchSource{}
}

// Poll implements PointerSource.
func (t *TouchSource) Poll(buf []PointerSample) []PointerSample {
	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])

	var activeSlots [maxPointers]bool
	for _, tid := range t.touchIDs {
		slot := t.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		t.lastPos[slot] = Vec2{X: float64(tx), Y: float64(ty)}
		buf = append(buf, PointerSample{
			PointerID: slot,
			X:         float64(tx),
			Y:         float64(ty),
			Pressed:   true,
			Kind:      PointerTouch,
		})
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && !activeSlots[i] {
			buf = append(buf, PointerSample{
				PointerID: i,
				X:         t.lastPos[i].X,
				Y:         t.lastPos[i].Y,
				Pressed:   false,
				Kind:      PointerTouch,
			})
			t.touchUsed[i] = false
			t.touchMap[i] = 0
		}
	}
	return buf
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (t *TouchSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && t.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !t.touchUsed[i] {
			t.touchUsed[i] = true
			t.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	kind   PointerKind
	startX float64
	startY float64
	lastX  float64
	lastY  float64
}

// PointerContext carries the data for a press, move or release.
type PointerContext struct {
	PointerID int
	Kind      PointerKind
	X, Y      float64
	// StartX/StartY is where the pointer was pressed.
	StartX, StartY float64
	// DeltaX/DeltaY is the movement since the previous event.
	DeltaX, DeltaY float64
}

// --- Handler registry ---

// EventPhase identifies which pointer edge a handler subscribes to.
type EventPhase uint8

const (
	PhasePress   EventPhase = iota // pointer went down
	PhaseMove                      // pointer moved while down
	PhaseRelease                   // pointer went up, wherever it is
)

type pressHandler struct {
	id uint32
	fn func(PointerContext) bool
}

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	press   []pressHandler
	move    []pointerHandler
	release []pointerHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	phase EventPhase
}

// Remove unregisters this callback so it no longer fires. Removing twice is
// a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.phase {
	case PhasePress:
		h.reg.press = removePressHandler(h.reg.press, h.id)
	case PhaseMove:
		h.reg.move = removePointerHandler(h.reg.move, h.id)
	case PhaseRelease:
		h.reg.release = removePointerHandler(h.reg.release, h.id)
	}
}

func removePressHandler(s []pressHandler, id uint32) []pressHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pressHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Input ---

// Input turns pointer samples into press, move and release events and
// dispatches them to registered handlers. Move and release handlers are
// global: they fire regardless of where the pointer is.
type Input struct {
	sources     []PointerSource
	handlers    handlerRegistry
	pointers    [maxPointers]pointerState
	samples     []PointerSample
	injectQueue []syntheticPointerEvent
}

// NewInput creates an Input fed by the given sources. With no sources only
// injected events are processed.
func NewInput(sources ...PointerSource) *Input {
	return &Input{sources: sources}
}

// NewDeviceInput creates an Input fed by the mouse and touch screen.
func NewDeviceInput() *Input {
	return NewInput(NewMouseSource(), NewTouchSource())
}

// OnPress registers a callback for pointer presses. Handlers run in
// registration order; returning true consumes the press so later handlers
// do not see it.
func (in *Input) OnPress(fn func(PointerContext) bool) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.press = append(in.handlers.press, pressHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &in.handlers, phase: PhasePress}
}

// OnMove registers a callback for pointer movement while a pointer is down.
func (in *Input) OnMove(fn func(PointerContext)) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.move = append(in.handlers.move, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &in.handlers, phase: PhaseMove}
}

// OnRelease registers a callback for pointer releases.
func (in *Input) OnRelease(fn func(PointerContext)) CallbackHandle {
	in.handlers.nextID++
	id := in.handlers.nextID
	in.handlers.release = append(in.handlers.release, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &in.handlers, phase: PhaseRelease}
}

// HandlerCount returns the number of registered handlers for a phase.
func (in *Input) HandlerCount(phase EventPhase) int {
	switch phase {
	case PhasePress:
		return len(in.handlers.press)
	case PhaseMove:
		return len(in.handlers.move)
	case PhaseRelease:
		return len(in.handlers.release)
	}
	return 0
}

// IsDown reports whether the given pointer is currently pressed.
func (in *Input) IsDown(pointerID int) bool {
	if pointerID < 0 || pointerID >= maxPointers {
		return false
	}
	return in.pointers[pointerID].down
}

// Process consumes one injected event (if any) and polls every source,
// dispatching the resulting edges. Call once per frame from Update.
// An injected event replaces the mouse for that frame.
func (in *Input) Process() {
	injected := in.processInjectedInput()

	in.samples = in.samples[:0]
	for _, src := range in.sources {
		in.samples = src.Poll(in.samples)
	}
	for _, smp := range in.samples {
		if injected && smp.PointerID == 0 {
			continue
		}
		in.processPointer(smp.PointerID, smp.X, smp.Y, smp.Pressed, smp.Kind)
	}
}

// processPointer runs the pointer state machine for a single pointer.
func (in *Input) processPointer(pointerID int, x, y float64, pressed bool, kind PointerKind) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &in.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.kind = kind
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		in.firePress(in.context(pointerID, ps, x, y))
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			ctx := in.context(pointerID, ps, x, y)
			ps.lastX, ps.lastY = x, y
			in.fireMove(ctx)
		}
	case !pressed && ps.down:
		ctx := in.context(pointerID, ps, x, y)
		ps.down = false
		ps.lastX, ps.lastY = x, y
		in.fireRelease(ctx)
	default:
		// Hover. Nothing subscribes to it.
		ps.lastX, ps.lastY = x, y
	}
}

func (in *Input) context(pointerID int, ps *pointerState, x, y float64) PointerContext {
	return PointerContext{
		PointerID: pointerID,
		Kind:      ps.kind,
		X:         x,
		Y:         y,
		StartX:    ps.startX,
		StartY:    ps.startY,
		DeltaX:    x - ps.lastX,
		DeltaY:    y - ps.lastY,
	}
}

// --- Event dispatch ---
//
// Handlers may add or remove registrations while being dispatched (the dial
// subscribes from inside a press and unsubscribes from inside a release), so
// each dispatch iterates over a snapshot.

func (in *Input) firePress(ctx PointerContext) {
	hs := append([]pressHandler(nil), in.handlers.press...)
	for _, h := range hs {
		if h.fn(ctx) {
			return
		}
	}
}

func (in *Input) fireMove(ctx PointerContext) {
	if len(in.handlers.move) == 0 {
		return
	}
	hs := append([]pointerHandler(nil), in.handlers.move...)
	for _, h := range hs {
		h.fn(ctx)
	}
}

func (in *Input) fireRelease(ctx PointerContext) {
	if len(in.handlers.release) == 0 {
		return
	}
	hs := append([]pointerHandler(nil), in.handlers.release...)
	for _, h := range hs {
		h.fn(ctx)
	}
}

// distance returns the Euclidean distance between two points.
func distance(x0, y0, x1, y1 float64) float64 {
	dx := x1 - x0
	dy := y1 - y0
	return math.Sqrt(dx*dx + dy*dy)
}
