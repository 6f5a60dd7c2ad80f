package rounded

// Draw paints the drawable into c.
//
// Ovals and uniform corners paint the border first, then the content.
// Mixed per-corner radii paint the content first so the border's
// antialiased edge is not painted over. A canvas that cannot round each
// corner independently gets the largest radius everywhere, with square
// corners patched back to right angles.
//
// Empty bounds or an empty content rectangle draw nothing.
func (d *Drawable) Draw(c Canvas) {
	if c == nil {
		return
	}
	d.settle()
	if d.bounds.IsEmpty() || d.contentRect.IsEmpty() {
		return
	}

	content := &d.bitmapPaint
	var border *Paint
	if d.borderWidth > 0 && !d.borderRect.IsEmpty() {
		border = &d.borderPaint
	}

	switch {
	case d.oval:
		if border != nil {
			c.DrawOval(d.borderRect, border)
		}
		c.DrawOval(d.contentRect, content)

	case d.radii.IsZero():
		if border != nil {
			c.DrawRect(d.borderRect, border)
		}
		c.DrawRect(d.contentRect, content)

	default:
		if r, ok := d.radii.Uniform(); ok {
			if border != nil {
				c.DrawRoundRect(d.borderRect, r, r, border)
			}
			c.DrawRoundRect(d.contentRect, r, r, content)
			return
		}
		if rc, ok := c.(RadiiCanvas); ok {
			rc.DrawRoundRectRadii(d.contentRect, d.radii, content)
			if border != nil {
				rc.DrawRoundRectRadii(d.borderRect, d.radii, border)
			}
			return
		}
		d.drawSquaredOff(c, content, border)
	}
}

// drawSquaredOff draws mixed corners with a single radius primitive.
//
// The shape is drawn with the largest radius. The border arc at each
// square corner is then covered by a content patch, and two butt-capped
// lines redraw the border as a right angle.
func (d *Drawable) drawSquaredOff(c Canvas, content, border *Paint) {
	r := d.radii.Max()
	if d.radii.distinctNonzero() > 1 && !d.warnedLossy {
		d.warnedLossy = true
		Logger().Warn("rounded: canvas rounds all corners alike, using the largest radius",
			"radii", d.radii, "radius", r)
	}

	c.DrawRoundRect(d.contentRect, r, r, content)
	if border != nil {
		c.DrawRoundRect(d.borderRect, r, r, border)
	}

	cr := d.contentRect
	for corner := CornerTopLeft; corner <= CornerBottomLeft; corner++ {
		if !d.radii.IsSquare(corner) {
			continue
		}
		if patch := cornerSquare(cr, corner, r).Intersect(cr); !patch.IsEmpty() {
			c.DrawRect(patch, content)
		}
	}

	if border == nil {
		return
	}
	br := d.borderRect
	off := d.borderWidth / 2
	for corner := CornerTopLeft; corner <= CornerBottomLeft; corner++ {
		if !d.radii.IsSquare(corner) {
			continue
		}
		switch corner {
		case CornerTopLeft:
			c.DrawLine(br.MinX-off, br.MinY, br.MinX+r, br.MinY, border)
			c.DrawLine(br.MinX, br.MinY-off, br.MinX, br.MinY+r, border)
		case CornerTopRight:
			c.DrawLine(br.MaxX-r, br.MinY, br.MaxX+off, br.MinY, border)
			c.DrawLine(br.MaxX, br.MinY-off, br.MaxX, br.MinY+r, border)
		case CornerBottomRight:
			c.DrawLine(br.MaxX-r, br.MaxY, br.MaxX+off, br.MaxY, border)
			c.DrawLine(br.MaxX, br.MaxY-r, br.MaxX, br.MaxY+off, border)
		case CornerBottomLeft:
			c.DrawLine(br.MinX-off, br.MaxY, br.MinX+r, br.MaxY, border)
			c.DrawLine(br.MinX, br.MaxY-r, br.MinX, br.MaxY+off, border)
		}
	}
}

// cornerSquare returns the r x r square at corner c of rect.
func cornerSquare(rect Rect, c Corner, r float64) Rect {
	switch c {
	case CornerTopRight:
		return Rect{MinX: rect.MaxX - r, MinY: rect.MinY, MaxX: rect.MaxX, MaxY: rect.MinY + r}
	case CornerBottomRight:
		return Rect{MinX: rect.MaxX - r, MinY: rect.MaxY - r, MaxX: rect.MaxX, MaxY: rect.MaxY}
	case CornerBottomLeft:
		return Rect{MinX: rect.MinX, MinY: rect.MaxY - r, MaxX: rect.MinX + r, MaxY: rect.MaxY}
	default:
		return Rect{MinX: rect.MinX, MinY: rect.MinY, MaxX: rect.MinX + r, MaxY: rect.MinY + r}
	}
}
