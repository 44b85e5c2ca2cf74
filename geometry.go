package dualdial

import "math"

const (
	// pointerAngle is where the fixed pointer sits in the dial frame (top).
	pointerAngle = 270.0
	// segmentSpan is the angular width of each category wedge.
	segmentSpan = 90.0
)

// NormalizeDegrees maps any finite angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(math.Mod(deg, 360)+360, 360)
	if d >= 360 {
		// -tiny + 360 rounds up to 360.
		d = 0
	}
	return d
}

// RotationFromPointer returns the screen-space angle, in degrees, of the
// pointer (px, py) around the centre of box. The result lies in (-180, 180]
// and is not normalized.
func RotationFromPointer(px, py float64, box Rect) float64 {
	cx, cy := box.Center()
	deg := math.Atan2(py-cy, px-cx) * 180 / math.Pi
	if deg == -180 {
		deg = 180
	}
	return deg
}

// angularDistance is the shorter way round between two normalized angles.
// Circular rather than a plain |a-b| so that 350 sits next to 0 and every
// category owns a 90 degree window.
func angularDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// resolveIndex returns the index of the category sitting under the pointer
// for the given ring rotation, or -1 if cats is empty. The first category in
// ring order wins exact ties on a bisector.
func resolveIndex(rotation float64, cats []Category) int {
	if len(cats) == 0 {
		return -1
	}
	original := NormalizeDegrees(pointerAngle - rotation)

	closest := 0
	best := angularDistance(original, NormalizeDegrees(cats[0].BaseAngle))
	for i := 1; i < len(cats); i++ {
		d := angularDistance(original, NormalizeDegrees(cats[i].BaseAngle))
		if d < best {
			best = d
			closest = i
		}
	}
	return closest
}

// ResolveCategory returns the category of cats that sits under the fixed
// pointer when the ring is rotated by rotation degrees. For the inner ring,
// pass the negated rotation (see EffectiveRotation).
func ResolveCategory(rotation float64, cats []Category) Category {
	i := resolveIndex(rotation, cats)
	if i < 0 {
		return Category{}
	}
	return cats[i]
}

// EffectiveRotation converts a ring's stored rotation into the rotation used
// for category resolution and drawing. The inner ring turns against the drag
// direction, so its stored value is negated.
func EffectiveRotation(r Ring, rotation float64) float64 {
	if r == RingInner {
		return -rotation
	}
	return rotation
}

// Selection is the pair of category names currently under the pointer.
type Selection struct {
	Outer string
	Inner string
}

// ResolveSelection derives the selection from both stored ring rotations.
func ResolveSelection(outerRotation, innerRotation float64) Selection {
	return Selection{
		Outer: ResolveCategory(EffectiveRotation(RingOuter, outerRotation), OuterCategories[:]).Name,
		Inner: ResolveCategory(EffectiveRotation(RingInner, innerRotation), InnerCategories[:]).Name,
	}
}

// unwrapDegrees returns the angle congruent to target (mod 360) that lies
// closest to near, so a rotation fed from atan2 never jumps at the ±180 seam.
func unwrapDegrees(target, near float64) float64 {
	return near + math.Remainder(target-near, 360)
}

// polar returns the point at angle deg (screen convention) and radius r
// around (cx, cy).
func polar(cx, cy, r, deg float64) (float64, float64) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return cx + r*cos, cy + r*sin
}
