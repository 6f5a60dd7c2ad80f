package rounded

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"
)

// normalizeBitmap returns img as an origin-anchored *image.RGBA.
// An *image.RGBA already at the origin is returned as is, not copied.
func normalizeBitmap(img image.Image) (*image.RGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidBitmap)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidBitmap, b.Dx(), b.Dy())
	}
	if b.Min == (image.Point{}) {
		if rgba, ok := img.(*image.RGBA); ok {
			return rgba, nil
		}
		return clone.AsRGBA(img), nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst, nil
}
