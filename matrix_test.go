package rounded

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func matrixApprox(a, b Matrix) bool {
	return approxEqual(a.A, b.A) && approxEqual(a.B, b.B) && approxEqual(a.C, b.C) &&
		approxEqual(a.D, b.D) && approxEqual(a.E, b.E) && approxEqual(a.F, b.F)
}

func rectApprox(a, b Rect) bool {
	return approxEqual(a.MinX, b.MinX) && approxEqual(a.MinY, b.MinY) &&
		approxEqual(a.MaxX, b.MaxX) && approxEqual(a.MaxY, b.MaxY)
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate(10, 0) * Scale(2, 2) scales first, then translates.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if !approxEqual(x, 12) || !approxEqual(y, 2) {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (12, 2)", x, y)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -7)},
		{"scale", Scale(2, 0.5)},
		{"scale translate", Translate(5, 5).Multiply(Scale(4, 3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert() reported singular")
			}
			if got := tt.m.Multiply(inv); !matrixApprox(got, Identity()) {
				t.Errorf("m * inv = %v, want identity", got)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	inv, ok := Scale(0, 1).Invert()
	if ok {
		t.Error("Invert() of singular matrix reported ok")
	}
	if !inv.IsIdentity() {
		t.Errorf("Invert() of singular matrix = %v, want identity", inv)
	}
}

func TestMatrixMapRect(t *testing.T) {
	m := Translate(1, 2).Multiply(Scale(-2, 3))
	got := m.MapRect(NewRect(0, 0, 10, 10))
	want := Rect{MinX: -19, MinY: 2, MaxX: 1, MaxY: 32}
	if !rectApprox(got, want) {
		t.Errorf("MapRect = %v, want %v", got, want)
	}
}

func TestMatrixPostTranslate(t *testing.T) {
	m := Scale(2, 2).PostTranslate(5, 6)
	x, y := m.TransformPoint(1, 1)
	if !approxEqual(x, 7) || !approxEqual(y, 8) {
		t.Errorf("TransformPoint(1, 1) = (%v, %v), want (7, 8)", x, y)
	}
	if tx, ty := m.Translation(); tx != 5 || ty != 6 {
		t.Errorf("Translation() = (%v, %v), want (5, 6)", tx, ty)
	}
}

func TestRectToRect(t *testing.T) {
	src := NewRect(0, 0, 200, 100)
	dst := NewRect(0, 0, 100, 100)

	tests := []struct {
		name string
		fit  ScaleToFit
		want Rect
	}{
		{"fill", FitFill, NewRect(0, 0, 100, 100)},
		{"start", FitStart, NewRect(0, 0, 100, 50)},
		{"center", FitCenter, NewRect(0, 25, 100, 50)},
		{"end", FitEnd, NewRect(0, 50, 100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectToRect(src, dst, tt.fit).MapRect(src)
			if !rectApprox(got, tt.want) {
				t.Errorf("mapped = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectToRectTallSource(t *testing.T) {
	src := NewRect(0, 0, 50, 100)
	dst := NewRect(10, 10, 100, 100)
	got := RectToRect(src, dst, FitCenter).MapRect(src)
	want := NewRect(35, 10, 50, 100)
	if !rectApprox(got, want) {
		t.Errorf("mapped = %v, want %v", got, want)
	}
}

func TestRectToRectDegenerate(t *testing.T) {
	if m := RectToRect(Rect{}, NewRect(0, 0, 10, 10), FitFill); !m.IsIdentity() {
		t.Errorf("empty src = %v, want identity", m)
	}
	m := RectToRect(NewRect(0, 0, 10, 10), Rect{}, FitCenter)
	if m.ScaleX() != 0 || m.ScaleY() != 0 {
		t.Errorf("empty dst = %v, want zero scale", m)
	}
}

func TestMatrixString(t *testing.T) {
	if got := Translate(1, 2).String(); got != "Matrix[1 0 1; 0 1 2]" {
		t.Errorf("String() = %q", got)
	}
}
