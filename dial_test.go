package dualdial

import (
	"math"
	"testing"
)

const (
	testCX = 240
	testCY = 240
)

type selectionCall struct {
	outer, inner string
}

type recordingSink struct {
	events []SelectionEvent
}

func (s *recordingSink) EmitSelection(e SelectionEvent) {
	s.events = append(s.events, e)
}

func (s *recordingSink) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

// newTestDial returns a placed dial on an injection-only input plus the
// recorded OnSelectionChange calls.
func newTestDial(t *testing.T) (*Dial, *[]selectionCall) {
	t.Helper()
	calls := &[]selectionCall{}
	d := NewDial(DialConfig{
		Input: NewInput(),
		OnSelectionChange: func(outer, inner string) {
			*calls = append(*calls, selectionCall{outer, inner})
		},
	})
	d.SetCenter(testCX, testCY)
	return d, calls
}

// drain processes injected events until the queue is empty.
func drain(in *Input) {
	for in.Pending() > 0 {
		in.Process()
	}
}

// at returns the screen point at radius r and angle deg around the test centre.
func at(r, deg float64) (float64, float64) {
	return polar(testCX, testCY, r, deg)
}

func TestNewDialNotifiesOnce(t *testing.T) {
	d, calls := newTestDial(t)

	if len(*calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(*calls))
	}
	if got := (*calls)[0]; got != (selectionCall{"boring", "unpleasant"}) {
		t.Errorf("initial selection = %+v", got)
	}
	if d.Selection() != (Selection{Outer: "boring", Inner: "unpleasant"}) {
		t.Errorf("Selection() = %+v", d.Selection())
	}
	if d.IsDragging() || d.ActiveRing() != RingNone {
		t.Error("new dial should be idle")
	}
}

func TestNewDialDefaults(t *testing.T) {
	d := NewDial(DialConfig{Input: NewInput()})
	if d.Geometry() != DefaultRingGeometry {
		t.Errorf("Geometry() = %+v, want default", d.Geometry())
	}
	if _, ok := d.Center(); ok {
		t.Error("dial should start unplaced")
	}
	if _, ok := d.OuterBounds(); ok {
		t.Error("OuterBounds should not be available before SetCenter")
	}
	if d.Input().HandlerCount(PhasePress) != 1 {
		t.Errorf("press handlers = %d, want 1", d.Input().HandlerCount(PhasePress))
	}
}

func TestRingAt(t *testing.T) {
	d, _ := newTestDial(t)

	tests := []struct {
		name   string
		radius float64
		want   Ring
	}{
		{"hub", 20, RingNone},
		{"hub edge", 44, RingNone},
		{"inner ring", 80, RingInner},
		{"inner ring outer edge", 109.9, RingInner},
		{"gap between rings", 115, RingNone},
		{"outer ring", 150, RingOuter},
		{"outer ring outer edge", 179.9, RingOuter},
		{"outside dial", 200, RingNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := at(tt.radius, 30)
			if got := d.RingAt(x, y); got != tt.want {
				t.Errorf("RingAt(r=%v) = %v, want %v", tt.radius, got, tt.want)
			}
		})
	}
}

func TestDragOuterRing(t *testing.T) {
	d, calls := newTestDial(t)
	in := d.Input()

	x, y := at(150, 0)
	in.InjectPress(x, y)
	in.Process()

	if d.ActiveRing() != RingOuter || !d.RingState(RingOuter).Dragging {
		t.Fatalf("ActiveRing = %v, want outer", d.ActiveRing())
	}
	if d.RingState(RingInner).Dragging {
		t.Error("inner ring should stay idle")
	}
	if d.Rotation(RingOuter) != 0 {
		t.Errorf("press alone rotated the ring to %v", d.Rotation(RingOuter))
	}

	x, y = at(150, 90)
	in.InjectMove(x, y)
	in.Process()

	if got := d.Rotation(RingOuter); math.Abs(got-90) > 1e-9 {
		t.Errorf("outer rotation = %v, want 90", got)
	}
	if got := d.Selection().Outer; got != "stressing" {
		t.Errorf("outer = %q, want stressing", got)
	}
	if len(*calls) != 2 || (*calls)[1] != (selectionCall{"stressing", "unpleasant"}) {
		t.Errorf("calls = %+v", *calls)
	}

	in.InjectRelease(x, y)
	in.Process()

	if d.IsDragging() || d.ActiveRing() != RingNone {
		t.Error("release should end the drag")
	}
	if got := d.Rotation(RingOuter); math.Abs(got-90) > 1e-9 {
		t.Errorf("rotation after release = %v, want 90", got)
	}
}

func TestDragInnerRingTurnsAgainstDrag(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	fx, fy := at(80, 0)
	tx, ty := at(80, 90)
	in.InjectPress(fx, fy)
	in.InjectMove(tx, ty)
	in.InjectRelease(tx, ty)
	drain(in)

	if got := d.Rotation(RingInner); math.Abs(got+90) > 1e-9 {
		t.Errorf("inner stored rotation = %v, want -90", got)
	}
	if got := d.Rotation(RingOuter); got != 0 {
		t.Errorf("outer rotation = %v, want 0", got)
	}
	if got := d.Selection(); got != (Selection{Outer: "boring", Inner: "passive"}) {
		t.Errorf("Selection() = %+v", got)
	}
	if d.IsDragging() {
		t.Error("drag should have ended")
	}
}

func TestDragContinuesOutsideRing(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	x, y := at(150, 0)
	in.InjectPress(x, y)
	in.InjectMove(-1000, testCY)
	in.InjectRelease(-1000, testCY)
	drain(in)

	if got := d.Rotation(RingOuter); math.Abs(got-180) > 1e-9 {
		t.Errorf("outer rotation = %v, want 180", got)
	}
	if got := d.Selection().Outer; got != "exciting" {
		t.Errorf("outer = %q, want exciting", got)
	}
	if d.IsDragging() {
		t.Error("release outside the dial should still end the drag")
	}
}

func TestPressMissesRings(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
	}{
		{"hub", 10},
		{"gap", 115},
		{"outside", 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, calls := newTestDial(t)
			in := d.Input()

			x, y := at(tt.radius, 0)
			tx, ty := at(tt.radius, 120)
			in.InjectDrag(x, y, tx, ty, 4)
			drain(in)

			if d.Rotation(RingOuter) != 0 || d.Rotation(RingInner) != 0 {
				t.Errorf("rotations = %v/%v, want 0/0", d.Rotation(RingOuter), d.Rotation(RingInner))
			}
			if len(*calls) != 1 {
				t.Errorf("calls = %d, want 1", len(*calls))
			}
			if in.HandlerCount(PhaseMove) != 0 {
				t.Error("missed press should not subscribe")
			}
		})
	}
}

func TestMoveWhileIdleIsNoop(t *testing.T) {
	d, calls := newTestDial(t)

	d.Move(testCX, testCY+100)
	if d.Rotation(RingOuter) != 0 || d.Rotation(RingInner) != 0 {
		t.Error("idle move changed rotation")
	}

	// A mouse move with no button down is dropped before dispatch.
	d.Input().InjectMove(testCX+100, testCY)
	d.Input().Process()
	if d.Rotation(RingOuter) != 0 {
		t.Error("injected hover rotated the ring")
	}
	if len(*calls) != 1 {
		t.Errorf("calls = %d, want 1", len(*calls))
	}
}

func TestMoveWithoutLayoutIsSkipped(t *testing.T) {
	d := NewDial(DialConfig{Input: NewInput()})
	d.BeginDrag(RingOuter)
	d.Move(10, 10)

	if d.Rotation(RingOuter) != 0 {
		t.Errorf("rotation = %v, want 0 before layout", d.Rotation(RingOuter))
	}
	if !d.IsDragging() {
		t.Error("BeginDrag should still work before layout")
	}
}

func TestTouchMoveWithoutTouchIsSkipped(t *testing.T) {
	d, calls := newTestDial(t)
	d.BeginDrag(RingOuter)

	d.Input().InjectTouchMove(testCX, testCY+100)
	d.Input().Process()

	if d.Rotation(RingOuter) != 0 {
		t.Errorf("rotation = %v, want 0", d.Rotation(RingOuter))
	}
	if len(*calls) != 1 {
		t.Errorf("calls = %d, want 1", len(*calls))
	}
}

func TestTouchDrag(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	fx, fy := at(150, 0)
	tx, ty := at(150, 180)
	in.InjectTouchDrag(fx, fy, tx, ty, 2)
	in.Process()

	if d.ActiveRing() != RingOuter {
		t.Fatalf("touch press should start an outer drag")
	}
	in.Process()
	if d.IsDragging() {
		t.Error("touch release should end the drag")
	}
}

func TestDragFollowsOwningPointer(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	x, y := at(150, 0)
	in.InjectPress(x, y)
	in.Process()

	// A second pointer presses, moves and lifts while the mouse holds the drag.
	tx, ty := at(150, 90)
	in.InjectTouchDrag(tx, ty, testCX, testCY+150, 3)
	drain(in)

	if d.ActiveRing() != RingOuter {
		t.Fatal("other pointer's release ended the drag")
	}
	if d.Rotation(RingOuter) != 0 {
		t.Errorf("other pointer rotated the ring to %v", d.Rotation(RingOuter))
	}

	in.InjectRelease(x, y)
	in.Process()
	if d.IsDragging() {
		t.Error("owning pointer release should end the drag")
	}
}

func TestProgrammaticDragFollowsAnyPointer(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	d.BeginDrag(RingOuter)
	in.InjectPress(0, 0)
	in.InjectMove(testCX, testCY+100)
	drain(in)

	if got := d.Rotation(RingOuter); math.Abs(got-90) > 1e-9 {
		t.Errorf("rotation = %v, want 90", got)
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	if d.Subscribed() || in.HandlerCount(PhaseMove) != 0 || in.HandlerCount(PhaseRelease) != 0 {
		t.Fatal("idle dial should not be subscribed")
	}

	d.BeginDrag(RingOuter)
	if !d.Subscribed() || in.HandlerCount(PhaseMove) != 1 || in.HandlerCount(PhaseRelease) != 1 {
		t.Fatalf("after BeginDrag: move=%d release=%d", in.HandlerCount(PhaseMove), in.HandlerCount(PhaseRelease))
	}

	// Switching rings keeps exactly one subscription.
	d.BeginDrag(RingInner)
	if in.HandlerCount(PhaseMove) != 1 || in.HandlerCount(PhaseRelease) != 1 {
		t.Errorf("after switch: move=%d release=%d", in.HandlerCount(PhaseMove), in.HandlerCount(PhaseRelease))
	}
	if d.RingState(RingOuter).Dragging || !d.RingState(RingInner).Dragging {
		t.Error("only the inner ring should be dragging after the switch")
	}

	d.EndDrag()
	if d.Subscribed() || in.HandlerCount(PhaseMove) != 0 || in.HandlerCount(PhaseRelease) != 0 {
		t.Error("EndDrag should detach move and release handlers")
	}

	// EndDrag while idle is harmless.
	d.EndDrag()
	if in.HandlerCount(PhasePress) != 1 {
		t.Errorf("press handlers = %d, want 1", in.HandlerCount(PhasePress))
	}
}

func TestCloseRemovesHandlers(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	d.BeginDrag(RingOuter)
	d.Close()
	d.Close()

	for _, phase := range []EventPhase{PhasePress, PhaseMove, PhaseRelease} {
		if n := in.HandlerCount(phase); n != 0 {
			t.Errorf("HandlerCount(%v) = %d after Close", phase, n)
		}
	}

	x, y := at(150, 0)
	in.InjectPress(x, y)
	in.Process()
	if d.IsDragging() {
		t.Error("closed dial started a drag")
	}
	d.BeginDrag(RingInner)
	if d.IsDragging() {
		t.Error("closed dial accepted BeginDrag")
	}
}

func TestSelectionNotifiesOnlyOnChange(t *testing.T) {
	d, calls := newTestDial(t)
	in := d.Input()

	x, y := at(150, 0)
	in.InjectPress(x, y)
	for _, deg := range []float64{10, 20, 30, 40} {
		mx, my := at(150, deg)
		in.InjectMove(mx, my)
	}
	drain(in)

	if len(*calls) != 1 {
		t.Errorf("calls = %d, want 1 (still boring/unpleasant)", len(*calls))
	}

	mx, my := at(150, 50)
	in.InjectMove(mx, my)
	drain(in)
	if len(*calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(*calls))
	}
	if (*calls)[1].outer != "stressing" {
		t.Errorf("outer = %q, want stressing", (*calls)[1].outer)
	}
}

func TestDragAcrossSeamIsContinuous(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	in.InjectArc(testCX, testCY, 150, 170, 190, 4)
	drain(in)

	if got := d.Rotation(RingOuter); math.Abs(got-190) > 1e-6 {
		t.Errorf("rotation after crossing the seam = %v, want 190", got)
	}
}

func TestMultipleTurnsAccumulate(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	in.InjectArc(testCX, testCY, 150, 0, 720, 10)
	drain(in)

	if got := d.Rotation(RingOuter); math.Abs(got-720) > 1e-6 {
		t.Errorf("rotation after two turns = %v, want 720", got)
	}
	if got := d.Selection().Outer; got != "boring" {
		t.Errorf("outer = %q, want boring", got)
	}
}

func TestSetRotation(t *testing.T) {
	d, calls := newTestDial(t)

	d.SetRotation(RingOuter, 180)
	d.SetRotation(RingInner, -270)
	if got := d.Selection(); got != (Selection{Outer: "exciting", Inner: "active"}) {
		t.Errorf("Selection() = %+v", got)
	}
	if len(*calls) != 3 {
		t.Errorf("calls = %d, want 3", len(*calls))
	}
	d.SetRotation(RingNone, 90)
	if len(*calls) != 3 {
		t.Error("SetRotation(RingNone) should do nothing")
	}
}

func TestSinkReceivesDragAndSelectionEvents(t *testing.T) {
	sink := &recordingSink{}
	d := NewDial(DialConfig{Input: NewInput(), Sink: sink})
	d.SetCenter(testCX, testCY)
	in := d.Input()

	fx, fy := at(150, 0)
	tx, ty := at(150, 90)
	in.InjectPress(fx, fy)
	in.InjectMove(tx, ty)
	in.InjectRelease(tx, ty)
	drain(in)

	want := []EventType{EventSelectionChange, EventDragStart, EventSelectionChange, EventDragEnd}
	got := sink.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if sink.events[1].Ring != RingOuter || sink.events[3].Ring != RingOuter {
		t.Error("drag events should name the outer ring")
	}
	last := sink.events[3]
	if last.Outer != "stressing" || math.Abs(last.OuterRotation-90) > 1e-9 {
		t.Errorf("drag end = %+v", last)
	}
}

func TestSwitchingRingsEndsPreviousDrag(t *testing.T) {
	sink := &recordingSink{}
	d := NewDial(DialConfig{Input: NewInput(), Sink: sink})

	d.BeginDrag(RingOuter)
	d.BeginDrag(RingOuter)
	d.BeginDrag(RingInner)

	want := []EventType{EventSelectionChange, EventDragStart, EventDragEnd, EventDragStart}
	got := sink.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if sink.events[2].Ring != RingOuter || sink.events[3].Ring != RingInner {
		t.Errorf("events = %+v", sink.events)
	}
}

func TestPressDuringDragIsIgnored(t *testing.T) {
	d, _ := newTestDial(t)
	in := d.Input()

	x, y := at(150, 0)
	in.InjectPress(x, y)
	in.Process()

	ix, iy := at(80, 0)
	in.processPointer(2, ix, iy, true, PointerTouch)
	if d.ActiveRing() != RingOuter {
		t.Errorf("ActiveRing = %v, want outer", d.ActiveRing())
	}
}
