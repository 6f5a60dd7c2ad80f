// Package path builds the outlines painted by the rounded raster canvas.
//
// Paths hold MoveTo, LineTo, CubicTo, and Close elements. Closed outlines
// are built clockwise in screen space (y down); a path reversed with
// Reversed winds the other way, which under the nonzero rule punches a
// hole when combined with an outer outline.
package path

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// Element is a single path command.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct{ Point Point }

func (MoveTo) isElement() {}

// LineTo draws a line to Point.
type LineTo struct{ Point Point }

func (LineTo) isElement() {}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Sink receives path commands, typically a scanline rasterizer.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// Path is a sequence of elements.
type Path struct {
	elements []Element
}

// New returns an empty path.
func New() *Path {
	return &Path{}
}

// Elements returns the path elements.
func (p *Path) Elements() []Element {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point{x, y}})
}

// LineTo adds a line segment.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point{x, y}})
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Append adds the elements of other to p.
func (p *Path) Append(other *Path) {
	p.elements = append(p.elements, other.elements...)
}

// Emit sends the elements to s.
func (p *Path) Emit(s Sink) {
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			s.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			s.LineTo(e.Point.X, e.Point.Y)
		case CubicTo:
			s.CubeTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			s.ClosePath()
		}
	}
}

// Reversed returns a copy of p with every subpath traversed backwards.
func (p *Path) Reversed() *Path {
	out := New()
	start := 0
	for i := 1; i <= len(p.elements); i++ {
		if i == len(p.elements) {
			reverseSubpath(p.elements[start:i], out)
			break
		}
		if _, ok := p.elements[i].(MoveTo); ok {
			reverseSubpath(p.elements[start:i], out)
			start = i
		}
	}
	return out
}

func reverseSubpath(els []Element, out *Path) {
	if len(els) == 0 {
		return
	}
	mt, ok := els[0].(MoveTo)
	if !ok {
		return
	}

	type segment struct {
		from Point
		el   Element
	}
	cur := mt.Point
	segs := make([]segment, 0, len(els))
	closed := false
	for _, e := range els[1:] {
		switch e := e.(type) {
		case LineTo:
			segs = append(segs, segment{cur, e})
			cur = e.Point
		case CubicTo:
			segs = append(segs, segment{cur, e})
			cur = e.Point
		case Close:
			closed = true
		}
	}

	out.MoveTo(cur.X, cur.Y)
	for i := len(segs) - 1; i >= 0; i-- {
		from := segs[i].from
		switch e := segs[i].el.(type) {
		case LineTo:
			out.LineTo(from.X, from.Y)
		case CubicTo:
			out.CubicTo(e.Control2.X, e.Control2.Y, e.Control1.X, e.Control1.Y, from.X, from.Y)
		}
	}
	if closed {
		out.Close()
	}
}
