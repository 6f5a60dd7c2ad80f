package rounded

import "image"

// PaintStyle selects whether a shape is filled or stroked.
type PaintStyle uint8

const (
	// StyleFill fills the interior of the shape.
	StyleFill PaintStyle = iota
	// StyleStroke strokes the outline of the shape, centered on it.
	StyleStroke
)

// String returns "fill" or "stroke".
func (s PaintStyle) String() string {
	if s == StyleStroke {
		return "stroke"
	}
	return "fill"
}

// ColorFilter transforms the colors of a bitmap before it is sampled.
// Implementations live in the filter package.
type ColorFilter interface {
	Filter(src image.Image) *image.RGBA
}

// Paint represents the styling information for one draw call.
type Paint struct {
	// Style selects fill or stroke.
	Style PaintStyle

	// Color is used when Shader is nil.
	Color RGBA

	// Shader, when set, supplies the fill colors.
	Shader *BitmapShader

	// StrokeWidth is the width of strokes. Zero draws a one pixel hairline.
	StrokeWidth float64

	// Alpha multiplies the paint's coverage, 255 being opaque.
	Alpha uint8

	// AntiAlias enables coverage antialiasing on shape edges.
	AntiAlias bool
}

// NewPaint returns an opaque, antialiased fill paint.
func NewPaint() *Paint {
	return &Paint{
		Style:     StyleFill,
		Color:     Black,
		Alpha:     255,
		AntiAlias: true,
	}
}

// strokeWidth returns the effective stroke width.
func (p *Paint) strokeWidth() float64 {
	if p.StrokeWidth > 0 {
		return p.StrokeWidth
	}
	return 1
}
