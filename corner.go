package rounded

import (
	"fmt"
	"math"
)

// Corner identifies one corner of a rectangle.
type Corner uint8

// Corners in radii order.
const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

var cornerNames = [...]string{
	CornerTopLeft:     "top_left",
	CornerTopRight:    "top_right",
	CornerBottomRight: "bottom_right",
	CornerBottomLeft:  "bottom_left",
}

// String returns the corner name.
func (c Corner) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return "Unknown"
}

// CornerRadii holds one radius per corner in the order
// top-left, top-right, bottom-right, bottom-left.
type CornerRadii [4]float64

// UniformRadii returns radii with every corner set to r.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// Uniform reports whether every corner has the same radius, and returns it.
func (cr CornerRadii) Uniform() (float64, bool) {
	r := cr[0]
	return r, cr[1] == r && cr[2] == r && cr[3] == r
}

// Max returns the largest radius.
func (cr CornerRadii) Max() float64 {
	m := 0.0
	for _, r := range cr {
		m = math.Max(m, r)
	}
	return m
}

// IsZero reports whether every corner is square.
func (cr CornerRadii) IsZero() bool {
	return cr == CornerRadii{}
}

// IsSquare reports whether corner c has no rounding.
func (cr CornerRadii) IsSquare(c Corner) bool {
	return !(cr[c] > 0)
}

// Validate checks that every radius is finite and non-negative.
func (cr CornerRadii) Validate() error {
	for i, r := range cr {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return fmt.Errorf("%w: %s radius %v", ErrInvalidArgument, Corner(i), r)
		}
	}
	return nil
}

// Sanitize replaces NaN, infinite, and negative radii with 0.
// This is the configuration path: bad values fall back to the default.
func (cr CornerRadii) Sanitize() CornerRadii {
	for i, r := range cr {
		cr[i] = sanitizeLength(r)
	}
	return cr
}

// distinctNonzero returns the number of distinct nonzero radii.
func (cr CornerRadii) distinctNonzero() int {
	var seen [4]float64
	n := 0
outer:
	for _, r := range cr {
		if r == 0 {
			continue
		}
		for _, s := range seen[:n] {
			if s == r {
				continue outer
			}
		}
		seen[n] = r
		n++
	}
	return n
}

// String formats the radii in corner order.
func (cr CornerRadii) String() string {
	return fmt.Sprintf("[%g %g %g %g]", cr[0], cr[1], cr[2], cr[3])
}

// sanitizeLength maps invalid lengths to 0.
func sanitizeLength(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// Corners is a set of corners, used to round only some of them.
type Corners uint8

// Corner sets.
const (
	CornersTopLeft     Corners = 1 << CornerTopLeft
	CornersTopRight    Corners = 1 << CornerTopRight
	CornersBottomRight Corners = 1 << CornerBottomRight
	CornersBottomLeft  Corners = 1 << CornerBottomLeft

	CornersAll    = CornersTopLeft | CornersTopRight | CornersBottomRight | CornersBottomLeft
	CornersTop    = CornersTopLeft | CornersTopRight
	CornersBottom = CornersBottomLeft | CornersBottomRight
	CornersLeft   = CornersTopLeft | CornersBottomLeft
	CornersRight  = CornersTopRight | CornersBottomRight

	CornersOtherTopLeft     = CornersAll &^ CornersTopLeft
	CornersOtherTopRight    = CornersAll &^ CornersTopRight
	CornersOtherBottomLeft  = CornersAll &^ CornersBottomLeft
	CornersOtherBottomRight = CornersAll &^ CornersBottomRight

	CornersDiagonalFromTopLeft  = CornersTopLeft | CornersBottomRight
	CornersDiagonalFromTopRight = CornersTopRight | CornersBottomLeft
)

// Has reports whether c is in the set.
func (cs Corners) Has(c Corner) bool {
	return cs&(1<<c) != 0
}

// Apply returns radii with radius on the corners in the set and 0 elsewhere.
func (cs Corners) Apply(radius float64) CornerRadii {
	var cr CornerRadii
	for c := CornerTopLeft; c <= CornerBottomLeft; c++ {
		if cs.Has(c) {
			cr[c] = radius
		}
	}
	return cr
}
