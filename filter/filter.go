package filter

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"

	"github.com/gogpu/rounded"
)

// Func adapts an image function to rounded.ColorFilter.
type Func func(src image.Image) *image.RGBA

// Filter calls f(src).
func (f Func) Filter(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	return f(src)
}

var _ rounded.ColorFilter = Func(nil)

// Chain applies filters in order. Nil entries are skipped. An empty chain
// returns a copy of its input.
func Chain(filters ...rounded.ColorFilter) rounded.ColorFilter {
	return Func(func(src image.Image) *image.RGBA {
		out := clone.AsRGBA(src)
		for _, f := range filters {
			if f == nil {
				continue
			}
			if next := f.Filter(out); next != nil {
				out = next
			}
		}
		return out
	})
}

// straight wraps op so it sees unpremultiplied colors. The pixels are
// premultiplied again afterwards.
func straight(op func(image.Image) *image.RGBA) Func {
	return func(src image.Image) *image.RGBA {
		out := op(unpremultiply(src))
		premultiply(out)
		return out
	}
}

// unpremultiply copies src into an origin-anchored RGBA whose pixels hold
// straight alpha.
func unpremultiply(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			i := dst.PixOffset(x-b.Min.X, y-b.Min.Y)
			dst.Pix[i+0] = n.R
			dst.Pix[i+1] = n.G
			dst.Pix[i+2] = n.B
			dst.Pix[i+3] = n.A
		}
	}
	return dst
}

// premultiply converts straight-alpha pixels in img to premultiplied in
// place.
func premultiply(img *image.RGBA) {
	if img == nil {
		return
	}
	pix := img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint32(pix[i+3])
		if a == 0xff {
			continue
		}
		pix[i+0] = mulDiv255(uint32(pix[i+0]), a)
		pix[i+1] = mulDiv255(uint32(pix[i+1]), a)
		pix[i+2] = mulDiv255(uint32(pix[i+2]), a)
	}
}

// mulDiv255 returns round(v*a/255).
func mulDiv255(v, a uint32) uint8 {
	t := v*a + 128
	return uint8((t + t>>8) >> 8)
}
