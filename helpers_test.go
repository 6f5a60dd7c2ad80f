package rounded

import (
	"image"
	"image/color"
	"testing"
)

var (
	opaqueGreen = color.RGBA{G: 255, A: 255}
	opaqueBlack = color.RGBA{A: 255}
)

// solidImage returns a w x h bitmap filled with c.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// newTestDrawable returns a drawable for an opaque green w x h bitmap.
func newTestDrawable(t *testing.T, w, h int) *Drawable {
	t.Helper()
	d, err := NewDrawable(solidImage(w, h, opaqueGreen))
	if err != nil {
		t.Fatalf("NewDrawable: %v", err)
	}
	return d
}

// nopCanvas discards every call.
type nopCanvas struct{}

func (nopCanvas) DrawRect(Rect, *Paint)                               {}
func (nopCanvas) DrawRoundRect(Rect, float64, float64, *Paint)        {}
func (nopCanvas) DrawOval(Rect, *Paint)                               {}
func (nopCanvas) DrawLine(float64, float64, float64, float64, *Paint) {}

// callCanvas records the names of the calls it receives.
type callCanvas struct {
	calls []string
}

func (c *callCanvas) DrawRect(Rect, *Paint) { c.calls = append(c.calls, "rect") }
func (c *callCanvas) DrawRoundRect(Rect, float64, float64, *Paint) {
	c.calls = append(c.calls, "roundrect")
}
func (c *callCanvas) DrawOval(Rect, *Paint) { c.calls = append(c.calls, "oval") }
func (c *callCanvas) DrawLine(float64, float64, float64, float64, *Paint) {
	c.calls = append(c.calls, "line")
}
func (c *callCanvas) DrawRoundRectRadii(Rect, CornerRadii, *Paint) {
	c.calls = append(c.calls, "radii")
}

// counter counts invalidate requests.
type counter struct{ n int }

func (c *counter) inc() { c.n++ }
