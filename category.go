package dualdial

import (
	"fmt"
	"math"
)

// Category is one of the four fixed segments on a ring.
type Category struct {
	Name string
	// ColorToken is an HSL triple in CSS notation, e.g. "142 71% 45%".
	ColorToken string
	// BaseAngle is the segment centre in the ring's unrotated frame, in
	// degrees (0 = right, 90 = down, 180 = left, 270 = up).
	BaseAngle float64
}

// Color converts the category's HSL token to an opaque Color.
// Malformed tokens fall back to white.
func (c Category) Color() Color {
	col, err := ParseHSL(c.ColorToken)
	if err != nil {
		return ColorWhite
	}
	return col
}

// OuterCategories lists the outer ring's segments in ring order.
// Ring order is also the tie-break order for ResolveCategory.
var OuterCategories = [4]Category{
	{Name: "relaxing", ColorToken: "142 71% 45%", BaseAngle: 0},
	{Name: "exciting", ColorToken: "45 93% 55%", BaseAngle: 90},
	{Name: "stressing", ColorToken: "0 84% 55%", BaseAngle: 180},
	{Name: "boring", ColorToken: "217 91% 60%", BaseAngle: 270},
}

// InnerCategories lists the inner ring's segments in ring order.
var InnerCategories = [4]Category{
	{Name: "active", ColorToken: "35 77% 49%", BaseAngle: 0},
	{Name: "pleasant", ColorToken: "88 50% 53%", BaseAngle: 90},
	{Name: "passive", ColorToken: "221 83% 53%", BaseAngle: 180},
	{Name: "unpleasant", ColorToken: "348 83% 47%", BaseAngle: 270},
}

// Categories returns the segments of ring r in ring order, or nil for RingNone.
// The returned slice is a copy.
func (r Ring) Categories() []Category {
	switch r {
	case RingOuter:
		cats := OuterCategories
		return cats[:]
	case RingInner:
		cats := InnerCategories
		return cats[:]
	default:
		return nil
	}
}

// ParseHSL parses an "H S% L%" token into an opaque Color.
func ParseHSL(token string) (Color, error) {
	var h, s, l float64
	if _, err := fmt.Sscanf(token, "%g %g%% %g%%", &h, &s, &l); err != nil {
		return Color{}, fmt.Errorf("parse hsl %q: %w", token, err)
	}
	return hslToColor(h, s/100, l/100), nil
}

// hslToColor converts HSL (hue: 0-360, saturation and lightness: 0-1).
func hslToColor(h, s, l float64) Color {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	s = clamp01(s)
	l = clamp01(l)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: 1}
}
