package rounded

import "math"

// geometry is the result of fitting a bitmap into target bounds.
type geometry struct {
	// shader maps bitmap space to destination space.
	shader Matrix
	// border is the rectangle the border stroke is centered on.
	border Rect
	// content is the rectangle painted with the bitmap.
	content Rect
}

// snap rounds half up, matching legacy pixel snapping.
func snap(v float64) float64 {
	return math.Floor(v + 0.5)
}

// computeGeometry fits a bmW x bmH bitmap into bounds for the given scale
// type and border width b.
//
// The border rectangle is always inset by b/2 from the shape's outer edge
// so the stroke straddles it, and the content rectangle by b so the bitmap
// does not run under the stroke. imageMatrix is only used by ScaleMatrix
// and maps bitmap space into bounds-relative space.
func computeGeometry(st ScaleType, bounds Rect, bmW, bmH, b float64, imageMatrix Matrix) geometry {
	src := Rect{MaxX: bmW, MaxY: bmH}
	half := b / 2

	switch st {
	case ScaleCenter:
		content := bounds.Inset(b, b)
		dx := snap((content.Width()-bmW)*0.5) + content.MinX
		dy := snap((content.Height()-bmH)*0.5) + content.MinY
		return geometry{
			shader:  Translate(dx, dy),
			border:  bounds.Inset(half, half),
			content: content,
		}

	case ScaleCenterCrop:
		r := bounds.Inset(half, half)
		var s, dx, dy float64
		if bmW*r.Height() > r.Width()*bmH {
			s = r.Height() / bmH
			dx = (r.Width() - bmW*s) * 0.5
		} else {
			s = r.Width() / bmW
			dy = (r.Height() - bmH*s) * 0.5
		}
		return geometry{
			shader:  Translate(snap(dx)+r.MinX, snap(dy)+r.MinY).Multiply(Scale(s, s)),
			border:  r,
			content: bounds.Inset(b, b),
		}

	case ScaleCenterInside:
		s := 1.0
		if bmW > bounds.Width() || bmH > bounds.Height() {
			s = math.Min(bounds.Width()/bmW, bounds.Height()/bmH)
		}
		dx := snap((bounds.Width()-bmW*s)*0.5) + bounds.MinX
		dy := snap((bounds.Height()-bmH*s)*0.5) + bounds.MinY
		fitted := Translate(dx, dy).Multiply(Scale(s, s)).MapRect(src)
		return fittedGeometry(src, fitted, b)

	case ScaleFitXY:
		content := bounds.Inset(b, b)
		return geometry{
			shader:  RectToRect(src, content, FitFill),
			border:  bounds.Inset(half, half),
			content: content,
		}

	case ScaleMatrix:
		fitted := imageMatrix.MapRect(src).Offset(bounds.MinX, bounds.MinY)
		return fittedGeometry(src, fitted, b)

	case ScaleFitStart:
		return fittedGeometry(src, RectToRect(src, bounds, FitStart).MapRect(src), b)

	case ScaleFitEnd:
		return fittedGeometry(src, RectToRect(src, bounds, FitEnd).MapRect(src), b)

	default: // ScaleFitCenter
		return fittedGeometry(src, RectToRect(src, bounds, FitCenter).MapRect(src), b)
	}
}

// fittedGeometry insets the fitted bitmap rectangle for the border, then
// maps the bitmap straight onto the content that remains.
func fittedGeometry(src, fitted Rect, b float64) geometry {
	content := fitted.Inset(b, b)
	return geometry{
		shader:  RectToRect(src, content, FitFill),
		border:  fitted.Inset(b/2, b/2),
		content: content,
	}
}
