package rounded

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Source is an image assigned to an [ImageView]. It is one of
// BitmapSource, ShapedSource, CompositeSource, OpaqueSource, or
// RasterSource.
type Source interface {
	isSource()
}

// BitmapSource is a decoded bitmap.
type BitmapSource struct {
	Image image.Image
}

// ShapedSource is a bitmap already wrapped in a Drawable.
type ShapedSource struct {
	Drawable *Drawable
}

// Layer is one entry of a CompositeSource. ID identifies the layer to the
// caller and is preserved by shaping.
type Layer struct {
	ID     int
	Source Source
}

// CompositeSource stacks layers bottom to top. A cross-fade between two
// images is a two layer composite whose shaped layers the caller blends
// with [Drawable.SetAlpha].
type CompositeSource struct {
	Layers []Layer
}

// OpaqueSource is a solid color. Inside a composite it marks a placeholder
// layer and is never shaped.
type OpaqueSource struct {
	Color RGBA
}

// RasterSource is anything that can draw itself into an offscreen bitmap.
type RasterSource struct {
	Rasterizable Rasterizable
}

// Rasterizable draws itself into a bitmap.
type Rasterizable interface {
	// IntrinsicSize returns the natural size in pixels. Non-positive values
	// are raised to 1.
	IntrinsicSize() (w, h int)

	// DrawTo paints into dst, which is transparent and anchored at the
	// origin.
	DrawTo(dst *image.RGBA) error
}

func (BitmapSource) isSource()    {}
func (ShapedSource) isSource()    {}
func (CompositeSource) isSource() {}
func (OpaqueSource) isSource()    {}
func (RasterSource) isSource()    {}

// Shape converts src into its shaped form:
//
//   - a bitmap is wrapped in a new Drawable; an invalid bitmap logs a
//     warning and yields nil (no image)
//   - a shaped source is returned unchanged
//   - a composite is shaped layer by layer; opaque layers stay as they are
//   - a solid color becomes a 1x1 bitmap, so backgrounds are clipped too
//   - a rasterizable is drawn offscreen and wrapped; if that fails the
//     failure is logged and src is returned unshaped
func Shape(src Source) Source {
	return shape(src, true)
}

func shape(src Source, top bool) Source {
	switch s := src.(type) {
	case nil:
		return nil

	case BitmapSource:
		d, err := NewDrawable(s.Image)
		if err != nil {
			Logger().Warn("rounded: ignoring bitmap", "err", err)
			return nil
		}
		return ShapedSource{Drawable: d}

	case ShapedSource:
		return s

	case CompositeSource:
		layers := make([]Layer, len(s.Layers))
		for i, l := range s.Layers {
			layers[i] = Layer{ID: l.ID, Source: shape(l.Source, false)}
		}
		return CompositeSource{Layers: layers}

	case OpaqueSource:
		if !top {
			return s
		}
		bm := image.NewRGBA(image.Rect(0, 0, 1, 1))
		bm.SetRGBA(0, 0, s.Color.premul(255))
		d, err := NewDrawable(bm)
		if err != nil {
			return s
		}
		return ShapedSource{Drawable: d}

	case RasterSource:
		bm, err := Rasterize(s.Rasterizable)
		if err != nil {
			Logger().Warn("rounded: leaving source unshaped", "err", err)
			return s
		}
		d, err := NewDrawable(bm)
		if err != nil {
			Logger().Warn("rounded: leaving source unshaped", "err", err)
			return s
		}
		return ShapedSource{Drawable: d}
	}
	return src
}

// Rasterize draws r into a new bitmap at its intrinsic size, raised to at
// least 1x1. A panic inside DrawTo is recovered and reported as
// ErrRasterize, as is any error DrawTo returns.
func Rasterize(r Rasterizable) (bm *image.RGBA, err error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil source", ErrRasterize)
	}
	w, h := r.IntrinsicSize()
	w, h = max(w, 1), max(h, 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	defer func() {
		if p := recover(); p != nil {
			bm, err = nil, fmt.Errorf("%w: %v", ErrRasterize, p)
		}
	}()
	if err := r.DrawTo(dst); err != nil {
		if errors.Is(err, ErrRasterize) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrRasterize, err)
	}
	return dst, nil
}

// ImageRasterizer adapts any image.Image to Rasterizable.
type ImageRasterizer struct {
	Image image.Image
}

// IntrinsicSize returns the image size.
func (r ImageRasterizer) IntrinsicSize() (w, h int) {
	if r.Image == nil {
		return 0, 0
	}
	b := r.Image.Bounds()
	return b.Dx(), b.Dy()
}

// DrawTo copies the image into dst.
func (r ImageRasterizer) DrawTo(dst *image.RGBA) error {
	if r.Image == nil {
		return errors.New("nil image")
	}
	draw.Draw(dst, dst.Bounds(), r.Image, r.Image.Bounds().Min, draw.Src)
	return nil
}

// Drawables returns every Drawable in src, depth first.
func Drawables(src Source) []*Drawable {
	var out []*Drawable
	walk(src, func(d *Drawable) { out = append(out, d) })
	return out
}

func walk(src Source, fn func(*Drawable)) {
	switch s := src.(type) {
	case ShapedSource:
		if s.Drawable != nil {
			fn(s.Drawable)
		}
	case CompositeSource:
		for _, l := range s.Layers {
			walk(l.Source, fn)
		}
	}
}

// drawSource paints src into c. Shaped drawables draw within their own
// bounds. Unshaped bitmaps are stretched over bounds and opaque colors
// fill it, both unclipped. Unshaped rasterizable sources are left for the
// host to draw.
func drawSource(c Canvas, src Source, bounds Rect) {
	switch s := src.(type) {
	case BitmapSource:
		bm, err := normalizeBitmap(s.Image)
		if err != nil {
			return
		}
		sh := NewBitmapShader(bm, TileClamp, TileClamp)
		sh.SetLocalMatrix(RectToRect(RectFromImage(bm.Rect), bounds, FitFill))
		sh.SetFilterBitmap(true)
		p := NewPaint()
		p.Shader = sh
		c.DrawRect(bounds, p)
	case ShapedSource:
		if s.Drawable != nil {
			s.Drawable.Draw(c)
		}
	case CompositeSource:
		for _, l := range s.Layers {
			drawSource(c, l.Source, bounds)
		}
	case OpaqueSource:
		p := NewPaint()
		p.Color = s.Color
		c.DrawRect(bounds, p)
	}
}
