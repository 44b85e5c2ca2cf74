package dualdial

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill and vector drawing.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// --- White pixel singleton (single-threaded, like the rest of the dial) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source for untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Ring identifies one of the two concentric dial rings.
type Ring int8

const (
	RingNone  Ring = iota - 1 // no ring (pointer missed both annuli, or no drag active)
	RingOuter                 // outer ring: relaxing / exciting / stressing / boring
	RingInner                 // inner ring: active / pleasant / passive / unpleasant
)

// String returns "outer", "inner" or "none".
func (r Ring) String() string {
	switch r {
	case RingOuter:
		return "outer"
	case RingInner:
		return "inner"
	default:
		return "none"
	}
}

// valid reports whether r indexes a real ring.
func (r Ring) valid() bool {
	return r == RingOuter || r == RingInner
}

// EventType identifies a kind of dial event forwarded to a SelectionSink.
type EventType uint8

const (
	EventSelectionChange EventType = iota // resolved selection changed (also fired once at mount)
	EventDragStart                        // a ring entered the Dragging state
	EventDragEnd                          // the active ring returned to Idle
)

// String returns a short lowercase name for the event type.
func (e EventType) String() string {
	switch e {
	case EventSelectionChange:
		return "selection"
	case EventDragStart:
		return "drag_start"
	case EventDragEnd:
		return "drag_end"
	default:
		return "unknown"
	}
}

// PointerKind identifies the physical origin of a pointer sample.
type PointerKind uint8

const (
	PointerMouse    PointerKind = iota // mouse cursor, always pointer 0
	PointerTouch                       // touch contact, pointers 1-9
	PointerInjected                    // synthetic event from InjectPress and friends
)

// String returns "mouse", "touch" or "injected".
func (k PointerKind) String() string {
	switch k {
	case PointerMouse:
		return "mouse"
	case PointerTouch:
		return "touch"
	case PointerInjected:
		return "injected"
	default:
		return "unknown"
	}
}
