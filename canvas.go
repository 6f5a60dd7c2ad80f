package rounded

// Canvas is the draw-call surface a [Drawable] paints into.
//
// Its rounded-rectangle primitive only supports a single radius for all
// four corners. Surfaces that can round each corner independently also
// implement [RadiiCanvas].
type Canvas interface {
	// DrawRect fills or strokes r.
	DrawRect(r Rect, p *Paint)

	// DrawRoundRect fills or strokes r with every corner rounded by the
	// elliptical radius (rx, ry).
	DrawRoundRect(r Rect, rx, ry float64, p *Paint)

	// DrawOval fills or strokes the ellipse inscribed in r.
	DrawOval(r Rect, p *Paint)

	// DrawLine strokes the segment from (x0, y0) to (x1, y1) with butt caps.
	DrawLine(x0, y0, x1, y1 float64, p *Paint)
}

// RadiiCanvas is a Canvas that can round each corner independently.
type RadiiCanvas interface {
	Canvas

	// DrawRoundRectRadii fills or strokes r with per-corner circular radii.
	DrawRoundRectRadii(r Rect, radii CornerRadii, p *Paint)
}

// UniformOnly hides any per-corner support of c, so drawables render mixed
// corners with the square-off correction instead.
func UniformOnly(c Canvas) Canvas {
	return uniformCanvas{c}
}

// uniformCanvas exposes only the Canvas methods of the wrapped value.
type uniformCanvas struct {
	Canvas
}
