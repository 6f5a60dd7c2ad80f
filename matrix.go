package rounded

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The shader matrix of a [Drawable] maps bitmap space to destination space.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PostTranslate returns m followed by a translation.
func (m Matrix) PostTranslate(x, y float64) Matrix {
	m.C += x
	m.F += y
	return m
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// Invert returns the inverse matrix and true, or the identity and false
// when the matrix is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 || math.IsNaN(det) {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// MapRect transforms the four corners of r and returns their bounding box.
func (m Matrix) MapRect(r Rect) Rect {
	x0, y0 := m.TransformPoint(r.MinX, r.MinY)
	x1, y1 := m.TransformPoint(r.MaxX, r.MinY)
	x2, y2 := m.TransformPoint(r.MaxX, r.MaxY)
	x3, y3 := m.TransformPoint(r.MinX, r.MaxY)
	return Rect{
		MinX: math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		MinY: math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		MaxX: math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		MaxY: math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	}
}

// ScaleX returns the horizontal scale component.
func (m Matrix) ScaleX() float64 { return m.A }

// ScaleY returns the vertical scale component.
func (m Matrix) ScaleY() float64 { return m.E }

// Translation returns the translation components of the matrix.
func (m Matrix) Translation() (x, y float64) {
	return m.C, m.F
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// String implements fmt.Stringer.
func (m Matrix) String() string {
	return fmt.Sprintf("Matrix[%g %g %g; %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}

// ScaleToFit selects how [RectToRect] fits a source rectangle into a
// destination rectangle.
type ScaleToFit uint8

const (
	// FitFill scales each axis independently so src fills dst exactly.
	FitFill ScaleToFit = iota
	// FitStart preserves aspect ratio and aligns to the top-left of dst.
	FitStart
	// FitCenter preserves aspect ratio and centers within dst.
	FitCenter
	// FitEnd preserves aspect ratio and aligns to the bottom-right of dst.
	FitEnd
)

// RectToRect returns the matrix that maps src onto dst using the given fit.
// An empty src yields the identity. An empty dst yields a degenerate
// (zero-scale) matrix, which maps everything to nothing drawable.
func RectToRect(src, dst Rect, fit ScaleToFit) Matrix {
	sw, sh := src.Width(), src.Height()
	if !(sw > 0) || !(sh > 0) {
		return Identity()
	}
	dw, dh := dst.Width(), dst.Height()
	if !(dw > 0) || !(dh > 0) {
		return Scale(0, 0)
	}

	sx := dw / sw
	sy := dh / sh
	if fit == FitFill {
		return Matrix{
			A: sx, C: dst.MinX - src.MinX*sx,
			E: sy, F: dst.MinY - src.MinY*sy,
		}
	}

	s := math.Min(sx, sy)
	tx := dst.MinX - src.MinX*s
	ty := dst.MinY - src.MinY*s
	if fit == FitCenter || fit == FitEnd {
		// Only the axis with slack moves.
		var diff float64
		xLarger := sx > sy
		if xLarger {
			diff = dw - sw*s
		} else {
			diff = dh - sh*s
		}
		if fit == FitCenter {
			diff *= 0.5
		}
		if xLarger {
			tx += diff
		} else {
			ty += diff
		}
	}
	return Matrix{A: s, C: tx, E: s, F: ty}
}
