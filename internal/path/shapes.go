package path

import "math"

// Kappa is the control point distance factor for approximating a quarter
// circle with a cubic Bezier curve.
const Kappa = 0.5522847498307936

// Radii holds per-corner elliptical radii in the order top-left, top-right,
// bottom-right, bottom-left.
type Radii struct {
	X [4]float64
	Y [4]float64
}

// CircularRadii returns radii with rx == ry for each corner.
func CircularRadii(r [4]float64) Radii {
	return Radii{X: r, Y: r}
}

// UniformRadii returns the same elliptical radius for every corner.
func UniformRadii(rx, ry float64) Radii {
	return Radii{X: [4]float64{rx, rx, rx, rx}, Y: [4]float64{ry, ry, ry, ry}}
}

// Clamp returns the radii fitted to a w x h rectangle.
// Negative and NaN radii become zero. When the radii along any edge sum to
// more than the edge length, every radius is scaled by the same factor so
// the arcs meet without overlapping.
func (r Radii) Clamp(w, h float64) Radii {
	for i := range 4 {
		r.X[i] = nonNegative(r.X[i])
		r.Y[i] = nonNegative(r.Y[i])
		if r.X[i] == 0 || r.Y[i] == 0 {
			r.X[i], r.Y[i] = 0, 0
		}
	}
	f := 1.0
	f = limit(f, w, r.X[0]+r.X[1]) // top
	f = limit(f, w, r.X[3]+r.X[2]) // bottom
	f = limit(f, h, r.Y[0]+r.Y[3]) // left
	f = limit(f, h, r.Y[1]+r.Y[2]) // right
	if f < 1 {
		for i := range 4 {
			r.X[i] *= f
			r.Y[i] *= f
		}
	}
	return r
}

// Grow returns the radii with d added to every nonzero radius, clamping at
// zero. Square corners stay square.
func (r Radii) Grow(d float64) Radii {
	for i := range 4 {
		if r.X[i] == 0 || r.Y[i] == 0 {
			continue
		}
		r.X[i] = math.Max(r.X[i]+d, 0)
		r.Y[i] = math.Max(r.Y[i]+d, 0)
	}
	return r
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func limit(f, side, sum float64) float64 {
	if sum <= 0 || side <= 0 {
		return f
	}
	return math.Min(f, side/sum)
}

// Rect returns a closed rectangle outline.
func Rect(x0, y0, x1, y1 float64) *Path {
	p := New()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.Close()
	return p
}

// RoundRect returns a closed rectangle outline with rounded corners.
// The radii are clamped to the rectangle before use.
func RoundRect(x0, y0, x1, y1 float64, radii Radii) *Path {
	r := radii.Clamp(x1-x0, y1-y0)
	p := New()
	p.MoveTo(x0+r.X[0], y0)

	// top edge, top-right corner
	p.LineTo(x1-r.X[1], y0)
	corner(p, Point{x1 - r.X[1], y0}, Point{x1, y0}, Point{x1, y0 + r.Y[1]})

	// right edge, bottom-right corner
	p.LineTo(x1, y1-r.Y[2])
	corner(p, Point{x1, y1 - r.Y[2]}, Point{x1, y1}, Point{x1 - r.X[2], y1})

	// bottom edge, bottom-left corner
	p.LineTo(x0+r.X[3], y1)
	corner(p, Point{x0 + r.X[3], y1}, Point{x0, y1}, Point{x0, y1 - r.Y[3]})

	// left edge, top-left corner
	p.LineTo(x0, y0+r.Y[0])
	corner(p, Point{x0, y0 + r.Y[0]}, Point{x0, y0}, Point{x0 + r.X[0], y0})

	p.Close()
	return p
}

// corner appends a quarter ellipse from a to b bending toward the square
// corner k. Nothing is added when the corner has no radius.
func corner(p *Path, a, k, b Point) {
	if a == b {
		return
	}
	p.CubicTo(
		a.X+(k.X-a.X)*Kappa, a.Y+(k.Y-a.Y)*Kappa,
		b.X+(k.X-b.X)*Kappa, b.Y+(k.Y-b.Y)*Kappa,
		b.X, b.Y,
	)
}

// Ellipse returns a closed ellipse outline centered at (cx, cy).
func Ellipse(cx, cy, rx, ry float64) *Path {
	p := New()
	if rx <= 0 || ry <= 0 {
		return p
	}
	kx, ky := rx*Kappa, ry*Kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}

// RectRing returns the outline of a rectangle stroked with width w,
// centered on the rectangle edges. Outer corners are mitered.
func RectRing(x0, y0, x1, y1, w float64) *Path {
	h := w / 2
	p := Rect(x0-h, y0-h, x1+h, y1+h)
	if x1-x0 > w && y1-y0 > w {
		p.Append(Rect(x0+h, y0+h, x1-h, y1-h).Reversed())
	}
	return p
}

// RoundRectRing returns the outline of a rounded rectangle stroked with
// width w. The outer contour grows each nonzero radius by w/2 and the
// inner contour shrinks it by w/2.
func RoundRectRing(x0, y0, x1, y1 float64, radii Radii, w float64) *Path {
	h := w / 2
	r := radii.Clamp(x1-x0, y1-y0)
	p := RoundRect(x0-h, y0-h, x1+h, y1+h, r.Grow(h))
	if x1-x0 > w && y1-y0 > w {
		p.Append(RoundRect(x0+h, y0+h, x1-h, y1-h, r.Grow(-h)).Reversed())
	}
	return p
}

// EllipseRing returns the outline of an ellipse stroked with width w.
func EllipseRing(cx, cy, rx, ry, w float64) *Path {
	h := w / 2
	p := Ellipse(cx, cy, rx+h, ry+h)
	if rx > h && ry > h {
		p.Append(Ellipse(cx, cy, rx-h, ry-h).Reversed())
	}
	return p
}

// Line returns the quad covering the segment from (x0, y0) to (x1, y1)
// stroked with width w and butt caps. A zero-length segment is empty.
func Line(x0, y0, x1, y1, w float64) *Path {
	p := New()
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || w <= 0 {
		return p
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	p.MoveTo(x0+nx, y0+ny)
	p.LineTo(x1+nx, y1+ny)
	p.LineTo(x1-nx, y1-ny)
	p.LineTo(x0-nx, y0-ny)
	p.Close()
	return p
}
