package dualdial

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dualdial/pkg/logger"
)

// RingGeometry holds the radii of both annuli, in pixels.
type RingGeometry struct {
	OuterRadius      float64 // outer edge of the outer ring
	OuterInnerRadius float64 // inner edge of the outer ring
	InnerRadius      float64 // outer edge of the inner ring
	InnerInnerRadius float64 // inner edge of the inner ring
	HubRadius        float64 // centre cap drawn over both rings
}

// DefaultRingGeometry matches a 480x480 dial face.
var DefaultRingGeometry = RingGeometry{
	OuterRadius:      180,
	OuterInnerRadius: 120,
	InnerRadius:      110,
	InnerInnerRadius: 50,
	HubRadius:        45,
}

// RingState is the mutable state of one ring. Rotation is in degrees,
// unbounded, and accumulates continuously while dragging.
type RingState struct {
	Rotation float64
	Dragging bool
}

// SelectionSink receives dial events for optional external consumers
// (ECS worlds, metrics, inspectors).
type SelectionSink interface {
	EmitSelection(event SelectionEvent)
}

// SelectionEvent carries a dial event for a SelectionSink.
type SelectionEvent struct {
	Type          EventType
	Ring          Ring // ring that started or ended a drag; RingNone for selection changes
	Outer         string
	Inner         string
	OuterRotation float64
	InnerRotation float64
}

// DialConfig configures a new Dial.
type DialConfig struct {
	// Geometry defaults to DefaultRingGeometry when zero.
	Geometry RingGeometry
	// Input defaults to NewDeviceInput() when nil.
	Input *Input
	// OnSelectionChange is invoked with the outer and inner category names
	// whenever the resolved selection changes, and once from NewDial.
	OnSelectionChange func(outer, inner string)
	// Sink, if set, mirrors selection changes and drag transitions.
	Sink SelectionSink
	// Logger, if set, receives debug records for drag transitions.
	Logger logger.Logger
}

// Dial is the drag session controller for the two rings. It owns both ring
// states, decides which ring (if any) is being dragged, and turns pointer
// movement into rotation and rotation into a Selection.
//
// All methods must be called from the goroutine running the game loop.
type Dial struct {
	geom    RingGeometry
	center  Vec2
	placed  bool
	rings   [2]RingState
	active  Ring
	pointer int

	selection Selection
	onChange  func(outer, inner string)
	sink      SelectionSink
	log       logger.Logger

	input       *Input
	pressHandle CallbackHandle
	moveHandle  CallbackHandle
	upHandle    CallbackHandle
	subscribed  bool
	closed      bool

	pulse *pulse
	verts []ebiten.Vertex
	inds  []uint16

	// Scripted runs and screenshots.
	testRunner      *TestRunner
	screenshotQueue []string
	// ScreenshotDir is the directory for screenshot PNGs. Defaults to "screenshots".
	ScreenshotDir string

	debug bool
	stats debugStats
}

// NewDial creates a dial with both rings at rotation 0, registers its press
// handler on the input, and reports the initial selection to
// OnSelectionChange exactly once before returning.
func NewDial(cfg DialConfig) *Dial {
	geom := cfg.Geometry
	if geom == (RingGeometry{}) {
		geom = DefaultRingGeometry
	}
	in := cfg.Input
	if in == nil {
		in = NewDeviceInput()
	}
	d := &Dial{
		geom:          geom,
		active:        RingNone,
		pointer:       -1,
		onChange:      cfg.OnSelectionChange,
		sink:          cfg.Sink,
		log:           cfg.Logger,
		input:         in,
		pulse:         newPulse(),
		ScreenshotDir: "screenshots",
	}
	d.pressHandle = in.OnPress(d.handlePress)

	d.selection = ResolveSelection(0, 0)
	d.notify()
	return d
}

// Input returns the input the dial listens on.
func (d *Dial) Input() *Input {
	return d.input
}

// Geometry returns the ring radii.
func (d *Dial) Geometry() RingGeometry {
	return d.geom
}

// SetCenter places the dial's shared centre in screen coordinates. Until it
// is called the dial has no layout and pointer movement is ignored.
func (d *Dial) SetCenter(x, y float64) {
	d.center = Vec2{X: x, Y: y}
	d.placed = true
}

// Center returns the dial centre and whether it has been placed.
func (d *Dial) Center() (Vec2, bool) {
	return d.center, d.placed
}

// OuterBounds returns the outer ring's bounding box, which is the rotation
// reference for both rings. ok is false until the dial has been placed.
func (d *Dial) OuterBounds() (box Rect, ok bool) {
	if !d.placed {
		return Rect{}, false
	}
	r := d.geom.OuterRadius
	box = Rect{X: d.center.X - r, Y: d.center.Y - r, Width: 2 * r, Height: 2 * r}
	return box, !box.Empty()
}

// SetLogger replaces the debug logger. nil disables logging.
func (d *Dial) SetLogger(l logger.Logger) {
	d.log = l
}

// SetSelectionSink replaces the event sink. nil disables forwarding.
func (d *Dial) SetSelectionSink(sink SelectionSink) {
	d.sink = sink
}

// Rotation returns the stored rotation of ring r in degrees.
func (d *Dial) Rotation(r Ring) float64 {
	if !r.valid() {
		return 0
	}
	return d.rings[r].Rotation
}

// RingState returns a copy of ring r's state.
func (d *Dial) RingState(r Ring) RingState {
	if !r.valid() {
		return RingState{}
	}
	return d.rings[r]
}

// ActiveRing returns the ring currently being dragged, or RingNone.
func (d *Dial) ActiveRing() Ring {
	return d.active
}

// IsDragging reports whether any ring is being dragged.
func (d *Dial) IsDragging() bool {
	return d.rings[RingOuter].Dragging || d.rings[RingInner].Dragging
}

// Selection returns the categories currently under the pointer.
func (d *Dial) Selection() Selection {
	return d.selection
}

// RingAt returns the ring whose annulus contains (x, y), or RingNone.
func (d *Dial) RingAt(x, y float64) Ring {
	if !d.placed {
		return RingNone
	}
	outer := HitRing{
		CenterX: d.center.X, CenterY: d.center.Y,
		InnerRadius: d.geom.OuterInnerRadius, Radius: d.geom.OuterRadius,
	}
	inner := HitRing{
		CenterX: d.center.X, CenterY: d.center.Y,
		InnerRadius: d.geom.InnerInnerRadius, Radius: d.geom.InnerRadius,
	}
	// The hub is drawn on top and swallows presses.
	if distance(d.center.X, d.center.Y, x, y) < d.geom.HubRadius {
		return RingNone
	}
	switch {
	case outer.Contains(x, y):
		return RingOuter
	case inner.Contains(x, y):
		return RingInner
	}
	return RingNone
}

// --- State transitions ---

// BeginDrag moves ring r from Idle to Dragging and makes it the drag target.
// A ring that is already the target is left alone. Starting a drag on the
// other ring ends the current one first.
func (d *Dial) BeginDrag(r Ring) {
	if !r.valid() || d.closed || d.active == r {
		return
	}
	if d.active != RingNone {
		d.rings[d.active].Dragging = false
		d.emit(EventDragEnd, d.active)
	}
	d.rings[r].Dragging = true
	d.active = r
	d.subscribe()
	if d.debug {
		debugCheckGeometry(d.geom)
	}

	d.debugLog("drag begin", logger.String("ring", r.String()))
	d.emit(EventDragStart, r)
}

// Move feeds a pointer position into the active drag. It is a no-op when no
// ring is dragging or when the dial has no layout yet.
func (d *Dial) Move(x, y float64) {
	if d.active == RingNone {
		return
	}
	box, ok := d.OuterBounds()
	if !ok {
		return
	}
	angle := RotationFromPointer(x, y, box)

	rs := &d.rings[d.active]
	target := angle
	if d.active == RingInner {
		// Inner ring turns against the drag.
		target = -angle
	}
	rs.Rotation = unwrapDegrees(target, rs.Rotation)
	if d.debug {
		d.stats.moves++
	}
	d.refreshSelection()
}

// SetRotation sets a ring's stored rotation directly and resolves the
// selection. Intended for restoring state and for tests; ordinary
// interaction goes through BeginDrag/Move.
func (d *Dial) SetRotation(r Ring, deg float64) {
	if !r.valid() {
		return
	}
	d.rings[r].Rotation = deg
	d.refreshSelection()
}

// EndDrag returns every ring to Idle and drops the global move/release
// subscription.
func (d *Dial) EndDrag() {
	ended := d.active
	d.rings[RingOuter].Dragging = false
	d.rings[RingInner].Dragging = false
	d.active = RingNone
	d.pointer = -1
	d.unsubscribe()

	if ended != RingNone {
		d.debugLog("drag end", logger.String("ring", ended.String()),
			logger.Float64("rotation", d.rings[ended].Rotation))
		d.emit(EventDragEnd, ended)
	}
}

// Close ends any drag and removes every handler the dial registered.
// The dial ignores input afterwards.
func (d *Dial) Close() {
	if d.closed {
		return
	}
	d.EndDrag()
	d.pressHandle.Remove()
	d.closed = true
}

// refreshSelection resolves both rings and notifies if the pair changed.
func (d *Dial) refreshSelection() {
	sel := ResolveSelection(d.rings[RingOuter].Rotation, d.rings[RingInner].Rotation)
	if sel == d.selection {
		return
	}
	d.selection = sel
	if d.debug {
		d.stats.selectionChanges++
	}
	d.pulse.trigger()
	d.debugLog("selection", logger.String("outer", sel.Outer), logger.String("inner", sel.Inner))
	d.notify()
}

func (d *Dial) notify() {
	if d.onChange != nil {
		d.onChange(d.selection.Outer, d.selection.Inner)
	}
	d.emit(EventSelectionChange, RingNone)
}

func (d *Dial) emit(t EventType, r Ring) {
	if d.sink == nil {
		return
	}
	d.sink.EmitSelection(SelectionEvent{
		Type:          t,
		Ring:          r,
		Outer:         d.selection.Outer,
		Inner:         d.selection.Inner,
		OuterRotation: d.rings[RingOuter].Rotation,
		InnerRotation: d.rings[RingInner].Rotation,
	})
}

func (d *Dial) debugLog(msg string, fields ...logger.Field) {
	if d.log == nil {
		return
	}
	d.log.Debug(context.Background(), msg, fields...)
}

// --- Subscription ---

// subscribe attaches the global move and release handlers. It runs on the
// transition from "no ring dragging" to "some ring dragging" and is a no-op
// while already subscribed.
func (d *Dial) subscribe() {
	if d.subscribed {
		return
	}
	d.moveHandle = d.input.OnMove(d.handleMove)
	d.upHandle = d.input.OnRelease(d.handleRelease)
	d.subscribed = true
}

// unsubscribe detaches the handlers added by subscribe. Safe to call when
// not subscribed.
func (d *Dial) unsubscribe() {
	if !d.subscribed {
		return
	}
	d.moveHandle.Remove()
	d.upHandle.Remove()
	d.moveHandle = CallbackHandle{}
	d.upHandle = CallbackHandle{}
	d.subscribed = false
}

// Subscribed reports whether the global move/release handlers are attached.
func (d *Dial) Subscribed() bool {
	return d.subscribed
}

// --- Input handlers ---

// handlePress starts a drag when a press lands on either annulus. The press
// is consumed so nothing underneath the dial reacts to it.
func (d *Dial) handlePress(ctx PointerContext) bool {
	if d.closed || d.active != RingNone {
		return false
	}
	r := d.RingAt(ctx.X, ctx.Y)
	if r == RingNone {
		return false
	}
	d.pointer = ctx.PointerID
	d.BeginDrag(r)
	return true
}

// handleMove follows only the pointer that started the drag. A drag begun
// programmatically (no owning pointer) follows any pointer.
func (d *Dial) handleMove(ctx PointerContext) {
	if d.pointer >= 0 && ctx.PointerID != d.pointer {
		return
	}
	d.Move(ctx.X, ctx.Y)
}

// handleRelease ends the drag when the dragging pointer is released,
// wherever it is.
func (d *Dial) handleRelease(ctx PointerContext) {
	if d.pointer >= 0 && ctx.PointerID != d.pointer {
		return
	}
	d.EndDrag()
}
