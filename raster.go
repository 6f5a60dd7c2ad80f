package rounded

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/rounded/internal/path"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// RasterCanvas paints draw calls into an *image.RGBA with source-over
// compositing. It rounds each corner independently, so drawables never
// need the square-off correction on it.
//
// Coverage comes from a scanline rasterizer; paths that wind in opposite
// directions cancel, which is how strokes are cut out of their fill.
type RasterCanvas struct {
	dst  *image.RGBA
	mask *image.Alpha
	ras  vector.Rasterizer
}

var _ RadiiCanvas = (*RasterCanvas)(nil)

// NewRasterCanvas returns a canvas drawing into dst.
// Coordinates are dst coordinates: a dst with a non-zero Min still
// addresses pixel (x, y) as (x, y).
func NewRasterCanvas(dst *image.RGBA) *RasterCanvas {
	b := dst.Bounds()
	return &RasterCanvas{
		dst:  dst,
		mask: image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy())),
	}
}

// Image returns the destination image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

// Clear fills the whole destination with col, replacing its contents.
func (c *RasterCanvas) Clear(col RGBA) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col.premul(255)), image.Point{}, draw.Src)
}

// DrawRect fills or strokes r.
func (c *RasterCanvas) DrawRect(r Rect, p *Paint) {
	if p == nil {
		return
	}
	if p.Style == StyleStroke {
		c.paint(path.RectRing(r.MinX, r.MinY, r.MaxX, r.MaxY, p.strokeWidth()), p)
		return
	}
	if r.IsEmpty() {
		return
	}
	c.paint(path.Rect(r.MinX, r.MinY, r.MaxX, r.MaxY), p)
}

// DrawRoundRect fills or strokes r with the elliptical radius (rx, ry) on
// every corner.
func (c *RasterCanvas) DrawRoundRect(r Rect, rx, ry float64, p *Paint) {
	c.roundRect(r, path.UniformRadii(rx, ry), p)
}

// DrawRoundRectRadii fills or strokes r with per-corner circular radii.
func (c *RasterCanvas) DrawRoundRectRadii(r Rect, radii CornerRadii, p *Paint) {
	c.roundRect(r, path.CircularRadii(radii.Sanitize()), p)
}

func (c *RasterCanvas) roundRect(r Rect, radii path.Radii, p *Paint) {
	if p == nil {
		return
	}
	if p.Style == StyleStroke {
		c.paint(path.RoundRectRing(r.MinX, r.MinY, r.MaxX, r.MaxY, radii, p.strokeWidth()), p)
		return
	}
	if r.IsEmpty() {
		return
	}
	c.paint(path.RoundRect(r.MinX, r.MinY, r.MaxX, r.MaxY, radii), p)
}

// DrawOval fills or strokes the ellipse inscribed in r.
func (c *RasterCanvas) DrawOval(r Rect, p *Paint) {
	if p == nil {
		return
	}
	rx, ry := r.Width()/2, r.Height()/2
	if p.Style == StyleStroke {
		c.paint(path.EllipseRing(r.CenterX(), r.CenterY(), rx, ry, p.strokeWidth()), p)
		return
	}
	if r.IsEmpty() {
		return
	}
	c.paint(path.Ellipse(r.CenterX(), r.CenterY(), rx, ry), p)
}

// DrawLine strokes the segment with butt caps. The paint style is ignored.
func (c *RasterCanvas) DrawLine(x0, y0, x1, y1 float64, p *Paint) {
	if p == nil {
		return
	}
	c.paint(path.Line(x0, y0, x1, y1, p.strokeWidth()), p)
}

// paint rasterizes pth into the coverage mask and composites the paint
// source through it.
func (c *RasterCanvas) paint(pth *path.Path, p *Paint) {
	if pth.IsEmpty() || p.Alpha == 0 {
		return
	}
	b := c.dst.Bounds()
	if b.Empty() {
		return
	}

	clear(c.mask.Pix)
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Src
	pth.Emit(rasterSink{z: &c.ras, ox: float64(b.Min.X), oy: float64(b.Min.Y)})
	c.ras.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})

	if !p.AntiAlias {
		for i, v := range c.mask.Pix {
			if v >= 0x80 {
				c.mask.Pix[i] = 0xff
			} else {
				c.mask.Pix[i] = 0
			}
		}
	}

	draw.DrawMask(c.dst, b, c.source(p), b.Min, c.mask, image.Point{}, draw.Over)
}

// source returns the image supplying paint colors in dst coordinates.
func (c *RasterCanvas) source(p *Paint) image.Image {
	if p.Shader != nil {
		return &shaderImage{shader: p.Shader, alpha: p.Alpha}
	}
	return image.NewUniform(p.Color.premul(p.Alpha))
}

// rasterSink feeds path commands to the rasterizer, shifted so the dst
// origin lands on rasterizer pixel (0, 0).
type rasterSink struct {
	z      *vector.Rasterizer
	ox, oy float64
}

func (s rasterSink) MoveTo(x, y float64) {
	s.z.MoveTo(float32(x-s.ox), float32(y-s.oy))
}

func (s rasterSink) LineTo(x, y float64) {
	s.z.LineTo(float32(x-s.ox), float32(y-s.oy))
}

func (s rasterSink) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.z.CubeTo(
		float32(c1x-s.ox), float32(c1y-s.oy),
		float32(c2x-s.ox), float32(c2y-s.oy),
		float32(x-s.ox), float32(y-s.oy),
	)
}

func (s rasterSink) ClosePath() {
	s.z.ClosePath()
}

// shaderImage adapts a BitmapShader to image.Image, sampling at pixel
// centers.
type shaderImage struct {
	shader *BitmapShader
	alpha  uint8
}

func (s *shaderImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *shaderImage) Bounds() image.Rectangle {
	return image.Rect(math.MinInt32, math.MinInt32, math.MaxInt32, math.MaxInt32)
}

func (s *shaderImage) At(x, y int) color.Color {
	px := s.shader.Sample(float64(x)+0.5, float64(y)+0.5)
	if s.alpha == 255 {
		return px
	}
	a := uint32(s.alpha)
	return color.RGBA{
		R: uint8((uint32(px.R)*a + 127) / 255),
		G: uint8((uint32(px.G)*a + 127) / 255),
		B: uint8((uint32(px.B)*a + 127) / 255),
		A: uint8((uint32(px.A)*a + 127) / 255),
	}
}
