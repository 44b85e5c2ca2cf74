package app

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/dualdial"
	"github.com/phanxgames/dualdial/internal/evaluation"
)

const (
	tabHeight      = 44
	dialTopMargin  = 48 // room for the pointer above the outer ring
	buttonWidth    = 200
	buttonHeight   = 40
	rowHeight      = 72
	rowPadding     = 16
	deleteWidth    = 72
	deleteHeight   = 32
	toastHeight    = 44
	lineHeight     = 16
	historyHeaderH = 40
)

var (
	backgroundColor = color.RGBA{0x11, 0x12, 0x16, 0xff}
	panelColor      = color.RGBA{0x1f, 0x21, 0x28, 0xff}
	borderColor     = color.RGBA{0x3a, 0x3d, 0x48, 0xff}
	accentColor     = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	dangerColor     = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	textColor       = color.RGBA{0xee, 0xef, 0xf2, 0xff}
	mutedColor      = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	successColor    = color.RGBA{0x16, 0xa3, 0x4a, 0xf0}
	uiFace          = text.NewGoXFace(basicfont.Face7x13)
)

// --- Layout ---

func (a *App) dialCenter() (float64, float64) {
	return float64(a.width) / 2, tabHeight + dialTopMargin + a.cfg.OuterRadius
}

// TabRect returns the bounds of the tab that opens page p.
func (a *App) TabRect(p Page) dualdial.Rect {
	w := float64(a.width) / 2
	return dualdial.Rect{X: float64(p) * w, Y: 0, Width: w, Height: tabHeight}
}

// SaveButton returns the bounds of the Save button on the Evaluate page.
func (a *App) SaveButton() dualdial.Rect {
	_, cy := a.dialCenter()
	return dualdial.Rect{
		X:      float64(a.width)/2 - buttonWidth/2,
		Y:      cy + a.cfg.OuterRadius + 52,
		Width:  buttonWidth,
		Height: buttonHeight,
	}
}

func (a *App) rowTop(i int) float64 {
	return tabHeight + historyHeaderH + float64(i*rowHeight)
}

// visibleRows is the number of history rows that fit on screen.
func (a *App) visibleRows() int {
	n := int((float64(a.height) - a.rowTop(0)) / rowHeight)
	return max(n, 0)
}

// DeleteButton returns the bounds of the delete button on history row i.
// ok is false when row i is not on screen.
func (a *App) DeleteButton(i int) (r dualdial.Rect, ok bool) {
	if i < 0 || i >= a.visibleRows() {
		return dualdial.Rect{}, false
	}
	y := a.rowTop(i)
	return dualdial.Rect{
		X:      float64(a.width) - rowPadding - deleteWidth,
		Y:      y + (rowHeight-deleteHeight)/2,
		Width:  deleteWidth,
		Height: deleteHeight,
	}, true
}

// Readout is the selection line shown under the dial.
func (a *App) Readout() string {
	sel := a.dial.Selection()
	return fmt.Sprintf("Current: %s • %s", strings.ToUpper(sel.Outer), strings.ToUpper(sel.Inner))
}

// HistoryHeader is the line shown above the history list.
func (a *App) HistoryHeader() string {
	return fmt.Sprintf("Your saved space evaluations (%d total)", a.store.Count(context.Background()))
}

// --- Input ---

// handlePress routes presses on tabs and buttons. On the History page every
// press is consumed so the hidden dial never sees it.
func (a *App) handlePress(ctx dualdial.PointerContext) bool {
	for _, p := range []Page{PageEvaluate, PageHistory} {
		if a.TabRect(p).Contains(ctx.X, ctx.Y) {
			a.SetPage(p)
			return true
		}
	}

	switch a.page {
	case PageEvaluate:
		if a.SaveButton().Contains(ctx.X, ctx.Y) {
			a.Save()
			return true
		}
		return false
	default:
		list := a.store.List(context.Background())
		for i, n := 0, min(len(list), a.visibleRows()); i < n; i++ {
			if r, ok := a.DeleteButton(i); ok && r.Contains(ctx.X, ctx.Y) {
				a.Delete(list[i].ID)
				break
			}
		}
		return true
	}
}

// --- Drawing ---

func (a *App) drawTabs(screen *ebiten.Image) {
	for _, p := range []Page{PageEvaluate, PageHistory} {
		r := a.TabRect(p)
		fill := panelColor
		if p == a.page {
			fill = accentColor
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), fill, false)
		label := "Evaluate"
		if p == PageHistory {
			label = "History"
		}
		cx, cy := r.Center()
		drawCentered(screen, label, cx, cy, textColor)
	}
	vector.StrokeLine(screen, 0, tabHeight, float32(a.width), tabHeight, 1, borderColor, false)
}

func (a *App) drawEvaluate(screen *ebiten.Image) {
	a.dial.Draw(screen)

	cx, cy := a.dialCenter()
	drawCentered(screen, a.Readout(), cx, cy+a.cfg.OuterRadius+28, textColor)

	b := a.SaveButton()
	fill := accentColor
	if a.busy {
		fill = borderColor
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), fill, false)
	bx, by := b.Center()
	drawCentered(screen, "Save Evaluation", bx, by, textColor)
}

func (a *App) drawHistory(screen *ebiten.Image) {
	list := a.store.List(context.Background())
	w := float64(a.width)

	if len(list) == 0 {
		mid := float64(a.height) / 2
		drawCentered(screen, "No Evaluations Yet", w/2, mid-lineHeight, textColor)
		drawCentered(screen, "Start evaluating spaces to see your history here.", w/2, mid+lineHeight, mutedColor)
		return
	}

	drawText(screen, a.HistoryHeader(), rowPadding, tabHeight+historyHeaderH/2-lineHeight/2, mutedColor)

	n := min(len(list), a.visibleRows())
	for i := 0; i < n; i++ {
		a.drawRow(screen, list[i], i)
	}
	if hidden := len(list) - n; hidden > 0 {
		drawCentered(screen, fmt.Sprintf("and %d more", hidden), w/2, float64(a.height)-lineHeight/2, mutedColor)
	}
}

func (a *App) drawRow(screen *ebiten.Image, e evaluation.Evaluation, i int) {
	y := a.rowTop(i)
	w := float64(a.width)
	vector.DrawFilledRect(screen, rowPadding/2, float32(y+4), float32(w-rowPadding), rowHeight-8, panelColor, false)
	vector.StrokeRect(screen, rowPadding/2, float32(y+4), float32(w-rowPadding), rowHeight-8, 1, borderColor, false)

	x := float64(rowPadding)
	drawText(screen, e.PlaceName, x, y+10, textColor)
	drawText(screen, "Emotional: "+strings.ToUpper(e.OuterCharacteristic), x, y+10+lineHeight, mutedColor)
	drawText(screen, "Activity: "+strings.ToUpper(e.InnerCharacteristic), x, y+10+2*lineHeight, mutedColor)

	date := evaluation.FormatTimestamp(e.Timestamp)
	dw := text.Advance(date, uiFace)
	drawText(screen, date, w-rowPadding-deleteWidth-12-dw, y+10, mutedColor)

	if r, ok := a.DeleteButton(i); ok {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), dangerColor, false)
		bx, by := r.Center()
		drawCentered(screen, "Delete", bx, by, textColor)
	}
}

func (a *App) drawToasts(screen *ebiten.Image) {
	w := float64(a.width)
	for i, t := range a.toasts {
		y := float64(a.height) - float64(len(a.toasts)-i)*(toastHeight+8)
		fill := successColor
		if t.failure {
			fill = dangerColor
		}
		vector.DrawFilledRect(screen, rowPadding, float32(y), float32(w-2*rowPadding), toastHeight, fill, false)
		if t.description == "" {
			drawCentered(screen, t.title, w/2, y+toastHeight/2, textColor)
			continue
		}
		drawCentered(screen, t.title, w/2, y+toastHeight/2-lineHeight/2, textColor)
		drawCentered(screen, t.description, w/2, y+toastHeight/2+lineHeight/2, textColor)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, uiFace, op)
}

// drawCentered draws s centred on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, cx, cy float64, c color.Color) {
	m := uiFace.Metrics()
	w := text.Advance(s, uiFace)
	drawText(screen, s, cx-w/2, cy-(m.HAscent+m.HDescent)/2, c)
}
