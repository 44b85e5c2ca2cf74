package dualdial

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	wedgeSteps        = 24 // arc subdivisions per wedge
	strokeWidth       = 4
	fillAlpha         = 0.2
	selectedFillAlpha = 0.45
	pointerGap        = 6  // space between the ring edge and the pointer tip
	pointerHeight     = 22 // unscaled
	pointerHalfWidth  = 11 // unscaled
)

// Theme colors for the non-category parts of the dial face.
var (
	FaceColor        = Color{R: 0.11, G: 0.12, B: 0.15, A: 1}
	HubColor         = Color{R: 0.17, G: 0.18, B: 0.22, A: 1}
	HubBorderColor   = Color{R: 0.32, G: 0.34, B: 0.40, A: 1}
	HubDotColor      = Color{R: 0.93, G: 0.94, B: 0.96, A: 1}
	PointerColor     = Color{R: 0.94, G: 0.96, B: 0.98, A: 1}
	PointerTipColor  = Color{R: 0.94, G: 0.27, B: 0.27, A: 1}
	LabelShadowColor = Color{R: 0, G: 0, B: 0, A: 0.6}
	labelFace        = text.NewGoXFace(basicfont.Face7x13)
)

// Draw renders both rings at their current rotations, the category labels,
// the hub and the fixed pointer. Nothing is drawn until the dial has been
// placed with SetCenter.
func (d *Dial) Draw(screen *ebiten.Image) {
	if !d.placed {
		return
	}
	if d.debug {
		start := time.Now()
		defer func() { d.stats.drawTime = time.Since(start) }()
	}
	cx, cy := d.center.X, d.center.Y
	g := d.geom

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(g.OuterRadius+strokeWidth),
		FaceColor.toRGBA(), true)

	d.verts = d.verts[:0]
	d.inds = d.inds[:0]
	d.appendRing(RingOuter, g.OuterInnerRadius, g.OuterRadius)
	d.appendRing(RingInner, g.InnerInnerRadius, g.InnerRadius)
	d.appendPointer()
	screen.DrawTriangles(d.verts, d.inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})

	d.drawRingLabels(screen, RingOuter, (g.OuterInnerRadius+g.OuterRadius)/2)
	d.drawRingLabels(screen, RingInner, (g.InnerInnerRadius+g.InnerRadius)/2)

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(g.HubRadius), HubColor.toRGBA(), true)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(g.HubRadius), 3, HubBorderColor.toRGBA(), true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), 8, HubDotColor.toRGBA(), true)
}

// appendRing adds one filled wedge plus edge bands per category. The wedge
// under the pointer is filled more strongly.
func (d *Dial) appendRing(r Ring, r0, r1 float64) {
	cats := r.Categories()
	rot := EffectiveRotation(r, d.rings[r].Rotation)
	selected := resolveIndex(rot, cats)

	for i, cat := range cats {
		col := cat.Color()
		a0 := cat.BaseAngle + rot - segmentSpan/2
		a1 := a0 + segmentSpan

		alpha := fillAlpha
		if i == selected {
			alpha = selectedFillAlpha
		}
		d.appendWedge(r0, r1, a0, a1, col.WithAlpha(alpha))
		d.appendWedge(r1-strokeWidth, r1, a0, a1, col)
		d.appendWedge(r0, r0+strokeWidth, a0, a1, col)
	}
}

// appendWedge adds an annular sector as a triangle strip.
func (d *Dial) appendWedge(r0, r1, a0, a1 float64, c Color) {
	base := uint16(len(d.verts))
	for i := 0; i <= wedgeSteps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(wedgeSteps)
		ox, oy := polar(d.center.X, d.center.Y, r1, a)
		ix, iy := polar(d.center.X, d.center.Y, r0, a)
		d.verts = append(d.verts, solidVertex(ox, oy, c), solidVertex(ix, iy, c))
	}
	for i := 0; i < wedgeSteps; i++ {
		k := base + uint16(i*2)
		d.inds = append(d.inds, k, k+1, k+2, k+1, k+3, k+2)
	}
}

// appendPointer adds the fixed pointer above the top of the outer ring,
// scaled around its centre by the selection pulse.
func (d *Dial) appendPointer() {
	s := d.pulse.Scale()
	tipY := d.center.Y - d.geom.OuterRadius - pointerGap
	midY := tipY - pointerHeight/2
	h := pointerHeight * s
	w := pointerHalfWidth * s

	tip := Vec2{X: d.center.X, Y: midY + h/2}
	left := Vec2{X: d.center.X - w, Y: midY - h/2}
	right := Vec2{X: d.center.X + w, Y: midY - h/2}
	d.appendTriangle(tip, left, right, PointerColor)

	// Red inset so the pointer reads against light segments.
	inset := 0.45
	d.appendTriangle(
		tip,
		Vec2{X: d.center.X - w*inset, Y: tip.Y - h*(1-inset)},
		Vec2{X: d.center.X + w*inset, Y: tip.Y - h*(1-inset)},
		PointerTipColor,
	)
}

func (d *Dial) appendTriangle(a, b, c Vec2, col Color) {
	base := uint16(len(d.verts))
	d.verts = append(d.verts, solidVertex(a.X, a.Y, col), solidVertex(b.X, b.Y, col), solidVertex(c.X, c.Y, col))
	d.inds = append(d.inds, base, base+1, base+2)
}

// drawRingLabels writes each category name, upper-cased, centred on its wedge.
func (d *Dial) drawRingLabels(screen *ebiten.Image, r Ring, radius float64) {
	rot := EffectiveRotation(r, d.rings[r].Rotation)
	metrics := labelFace.Metrics()
	lineH := metrics.HAscent + metrics.HDescent

	for _, cat := range r.Categories() {
		label := strings.ToUpper(cat.Name)
		x, y := polar(d.center.X, d.center.Y, radius, cat.BaseAngle+rot)
		w := text.Advance(label, labelFace)

		op := &text.DrawOptions{}
		op.GeoM.Translate(x-w/2+1, y-lineH/2+1)
		op.ColorScale.ScaleWithColor(LabelShadowColor.toRGBA())
		text.Draw(screen, label, labelFace, op)

		op = &text.DrawOptions{}
		op.GeoM.Translate(x-w/2, y-lineH/2)
		op.ColorScale.ScaleWithColor(cat.Color().toRGBA())
		text.Draw(screen, label, labelFace, op)
	}
}

// solidVertex builds an untextured vertex sampling the centre of the white pixel.
func solidVertex(x, y float64, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A),
	}
}
