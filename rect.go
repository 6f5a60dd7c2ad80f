package rounded

import (
	"fmt"
	"image"
	"math"
)

// Rect represents an axis-aligned rectangle in floating point pixels.
// Min is the top-left corner, Max the bottom-right corner.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{
		MinX: x,
		MinY: y,
		MaxX: x + width,
		MaxY: y + height,
	}
}

// RectFromImage converts an integer image rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		MinX: float64(r.Min.X),
		MinY: float64(r.Min.Y),
		MaxX: float64(r.Max.X),
		MaxY: float64(r.Max.Y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return (r.MinX + r.MaxX) * 0.5
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return (r.MinY + r.MaxY) * 0.5
}

// IsEmpty returns true if the rectangle has zero or negative area.
// NaN coordinates also count as empty.
func (r Rect) IsEmpty() bool {
	return !(r.MaxX > r.MinX) || !(r.MaxY > r.MinY)
}

// Inset shrinks the rectangle by dx on the left and right and dy on the
// top and bottom. Negative values grow it. The result may be empty.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX - dx,
		MaxY: r.MaxY - dy,
	}
}

// Offset translates the rectangle.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{
		MinX: r.MinX + dx,
		MinY: r.MinY + dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// ContainsRect returns true if other lies entirely within r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.MinX >= r.MinX && other.MaxX <= r.MaxX &&
		other.MinY >= r.MinY && other.MaxY <= r.MaxY
}

// Intersect returns the intersection of r and other.
// Returns the zero rectangle if they don't intersect.
func (r Rect) Intersect(other Rect) Rect {
	result := Rect{
		MinX: math.Max(r.MinX, other.MinX),
		MinY: math.Max(r.MinY, other.MinY),
		MaxX: math.Min(r.MaxX, other.MaxX),
		MaxY: math.Min(r.MaxY, other.MaxY),
	}
	if result.IsEmpty() {
		return Rect{}
	}
	return result
}

// ImageRect returns the smallest integer rectangle containing r.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.MinX)),
		int(math.Floor(r.MinY)),
		int(math.Ceil(r.MaxX)),
		int(math.Ceil(r.MaxY)),
	)
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g - %g, %g)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
