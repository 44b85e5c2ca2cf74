package dualdial

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next rendered frame. The PNG is
// written to ScreenshotDir when FlushScreenshots runs at the end of Draw.
func (d *Dial) Screenshot(label string) {
	d.screenshotQueue = append(d.screenshotQueue, label)
}

// PendingScreenshots returns the number of queued captures.
func (d *Dial) PendingScreenshots() int {
	return len(d.screenshotQueue)
}

// FlushScreenshots writes one PNG of screen per queued label and clears the
// queue. Call it last in Draw so the capture includes everything on screen.
func (d *Dial) FlushScreenshots(screen *ebiten.Image) {
	if len(d.screenshotQueue) == 0 {
		return
	}
	defer func() { d.screenshotQueue = d.screenshotQueue[:0] }()

	if err := os.MkdirAll(d.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[dualdial] screenshot: mkdir %s: %v\n", d.ScreenshotDir, err)
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range d.screenshotQueue {
		path := filepath.Join(d.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[dualdial] screenshot: %v\n", err)
		}
	}
}

// unpremultiply converts premultiplied RGBA bytes to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
