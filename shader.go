package rounded

import (
	"image"
	"image/color"
	"math"
)

// BitmapShader samples a bitmap as a fill pattern.
//
// The local matrix maps bitmap space into destination space. Sampling a
// destination point applies the inverse, then the per-axis tile mode,
// then nearest or bilinear filtering.
//
// Tile modes are fixed at construction: changing them means building a
// new shader. The local matrix and filtering can be changed in place.
type BitmapShader struct {
	bitmap     *image.RGBA
	tileX      TileMode
	tileY      TileMode
	local      Matrix
	inverse    Matrix // cached inverse of local
	invertible bool
	filter     bool
}

// NewBitmapShader creates a shader for bm with the given tile modes and
// an identity local matrix. bm must be anchored at the origin.
// Returns nil if bm is nil.
func NewBitmapShader(bm *image.RGBA, tileX, tileY TileMode) *BitmapShader {
	if bm == nil {
		return nil
	}
	return &BitmapShader{
		bitmap:     bm,
		tileX:      tileX,
		tileY:      tileY,
		local:      Identity(),
		inverse:    Identity(),
		invertible: true,
	}
}

// SetLocalMatrix sets the bitmap-to-destination transform.
func (s *BitmapShader) SetLocalMatrix(m Matrix) {
	s.local = m
	s.inverse, s.invertible = m.Invert()
}

// LocalMatrix returns the bitmap-to-destination transform.
func (s *BitmapShader) LocalMatrix() Matrix {
	return s.local
}

// SetFilterBitmap selects bilinear (true) or nearest (false) sampling.
func (s *BitmapShader) SetFilterBitmap(filter bool) {
	s.filter = filter
}

// FilterBitmap reports whether bilinear sampling is enabled.
func (s *BitmapShader) FilterBitmap() bool {
	return s.filter
}

// TileModes returns the horizontal and vertical tile modes.
func (s *BitmapShader) TileModes() (x, y TileMode) {
	return s.tileX, s.tileY
}

// Bitmap returns the sampled bitmap.
func (s *BitmapShader) Bitmap() *image.RGBA {
	return s.bitmap
}

// Sample returns the premultiplied color at destination point (x, y).
// A singular local matrix samples as transparent.
func (s *BitmapShader) Sample(x, y float64) color.RGBA {
	if s == nil || s.bitmap == nil || !s.invertible {
		return color.RGBA{}
	}
	u, v := s.inverse.TransformPoint(x, y)
	if s.filter {
		return s.bilinear(u, v)
	}
	return s.texel(
		tileIndex(math.Floor(u), s.bitmap.Rect.Dx(), s.tileX),
		tileIndex(math.Floor(v), s.bitmap.Rect.Dy(), s.tileY),
	)
}

// bilinear blends the four texels around (u, v), treating texel centers
// as lying at half-integer coordinates.
func (s *BitmapShader) bilinear(u, v float64) color.RGBA {
	w, h := s.bitmap.Rect.Dx(), s.bitmap.Rect.Dy()
	u -= 0.5
	v -= 0.5
	fu, fv := math.Floor(u), math.Floor(v)
	tx, ty := u-fu, v-fv

	x0 := tileIndex(fu, w, s.tileX)
	x1 := tileIndex(fu+1, w, s.tileX)
	y0 := tileIndex(fv, h, s.tileY)
	y1 := tileIndex(fv+1, h, s.tileY)

	c00 := s.texel(x0, y0)
	c10 := s.texel(x1, y0)
	c01 := s.texel(x0, y1)
	c11 := s.texel(x1, y1)

	lerp := func(a, b, c, d uint8) uint8 {
		top := float64(a) + (float64(b)-float64(a))*tx
		bot := float64(c) + (float64(d)-float64(c))*tx
		return uint8(top + (bot-top)*ty + 0.5)
	}
	return color.RGBA{
		R: lerp(c00.R, c10.R, c01.R, c11.R),
		G: lerp(c00.G, c10.G, c01.G, c11.G),
		B: lerp(c00.B, c10.B, c01.B, c11.B),
		A: lerp(c00.A, c10.A, c01.A, c11.A),
	}
}

func (s *BitmapShader) texel(x, y int) color.RGBA {
	i := y*s.bitmap.Stride + x*4
	p := s.bitmap.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// tileIndex maps an integral texel coordinate f onto [0, n) using mode.
func tileIndex(f float64, n int, mode TileMode) int {
	if math.IsNaN(f) || n <= 0 {
		return 0
	}
	if math.IsInf(f, 0) {
		if f > 0 && mode == TileClamp {
			return n - 1
		}
		return 0
	}
	fn := float64(n)
	switch mode {
	case TileRepeat:
		f = math.Mod(f, fn)
		if f < 0 {
			f += fn
		}
	case TileMirror:
		period := 2 * fn
		f = math.Mod(f, period)
		if f < 0 {
			f += period
		}
		if f >= fn {
			f = period - 1 - f
		}
	default: // TileClamp
		if f < 0 {
			f = 0
		}
		if f > fn-1 {
			f = fn - 1
		}
	}
	return int(f)
}
