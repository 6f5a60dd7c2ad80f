package rounded

import (
	"image"
)

// ImageView holds the view-level configuration of a rounded image and
// pushes it into the drawables it shapes from assigned sources.
//
// Every setter is a no-op when the value does not change. Otherwise it
// updates the foreground drawables, and the background ones when the
// background is mutated, then requests exactly one redraw.
//
// An ImageView is not safe for concurrent use.
type ImageView struct {
	image      Source
	background Source
	bounds     Rect

	scaleType    ScaleType
	imageMatrix  Matrix
	radii        CornerRadii
	borderWidth  float64
	borderColors *ColorStateList
	oval         bool
	tileX        TileMode
	tileY        TileMode
	colorFilter  ColorFilter
	state        States

	mutateBackground bool
	invalidator      func()
}

// NewImageView creates a view with no image.
func NewImageView(opts ...ViewOption) *ImageView {
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ImageView{
		scaleType:        o.scaleType,
		imageMatrix:      Identity(),
		radii:            o.radii,
		borderWidth:      o.borderWidth,
		borderColors:     o.borderColors,
		oval:             o.oval,
		tileX:            o.tileX,
		tileY:            o.tileY,
		mutateBackground: o.mutateBackground,
		invalidator:      o.invalidate,
	}
}

func (v *ImageView) invalidate() {
	if v.invalidator != nil {
		v.invalidator()
	}
}

// Image returns the shaped foreground source, or nil.
func (v *ImageView) Image() Source { return v.image }

// Drawable returns the foreground drawable when the image is a single
// shaped bitmap, or nil.
func (v *ImageView) Drawable() *Drawable {
	if s, ok := v.image.(ShapedSource); ok {
		return s.Drawable
	}
	return nil
}

// SetImage assigns the foreground image. The source is shaped (see
// [Shape]) and configured with the view's current geometry.
func (v *ImageView) SetImage(src Source) {
	v.image = Shape(src)
	if v.colorFilter != nil {
		walk(v.image, func(d *Drawable) { d.SetColorFilter(v.colorFilter) })
	}
	v.updateDrawableAttrs()
	v.invalidate()
}

// SetImageBitmap assigns a bitmap as the foreground image.
// A nil or empty bitmap clears the image.
func (v *ImageView) SetImageBitmap(img image.Image) {
	if img == nil {
		v.SetImage(nil)
		return
	}
	v.SetImage(BitmapSource{Image: img})
}

// Background returns the background source, shaped if the background is
// mutated.
func (v *ImageView) Background() Source { return v.background }

// SetBackground assigns the background. It is only shaped while the
// background is mutated.
func (v *ImageView) SetBackground(src Source) {
	v.background = src
	v.updateBackgroundDrawableAttrs(true)
	v.invalidate()
}

// SetBackgroundColor assigns a solid color background.
func (v *ImageView) SetBackgroundColor(c RGBA) {
	v.SetBackground(OpaqueSource{Color: c})
}

// Bounds returns the view rectangle.
func (v *ImageView) Bounds() Rect { return v.bounds }

// SetBounds sets the view rectangle, which is the bounds of every
// drawable it holds.
func (v *ImageView) SetBounds(r Rect) {
	if r == v.bounds {
		return
	}
	v.bounds = r
	v.eachDrawable(func(d *Drawable) { d.SetBounds(r) })
	v.invalidate()
}

// ScaleType returns the scale type of the foreground image.
func (v *ImageView) ScaleType() ScaleType { return v.scaleType }

// SetScaleType sets the scale type of the foreground image. The
// background always uses ScaleFitXY. Unknown values fall back to
// ScaleFitCenter.
func (v *ImageView) SetScaleType(st ScaleType) {
	if !st.IsValid() {
		st = ScaleFitCenter
	}
	if st == v.scaleType {
		return
	}
	v.scaleType = st
	v.updateAll()
}

// ImageMatrix returns the matrix used by ScaleMatrix.
func (v *ImageView) ImageMatrix() Matrix { return v.imageMatrix }

// SetImageMatrix sets the matrix used by ScaleMatrix.
func (v *ImageView) SetImageMatrix(m Matrix) {
	if m == v.imageMatrix {
		return
	}
	v.imageMatrix = m
	walk(v.image, func(d *Drawable) { d.SetImageMatrix(m) })
	if v.scaleType == ScaleMatrix {
		v.invalidate()
	}
}

// CornerRadius returns the largest corner radius.
func (v *ImageView) CornerRadius() float64 { return v.radii.Max() }

// CornerRadii returns the per-corner radii.
func (v *ImageView) CornerRadii() CornerRadii { return v.radii }

// CornerRadiusAt returns the radius of corner c.
func (v *ImageView) CornerRadiusAt(c Corner) float64 {
	if c > CornerBottomLeft {
		return 0
	}
	return v.radii[c]
}

// SetCornerRadius rounds every corner by r. Invalid values become 0.
func (v *ImageView) SetCornerRadius(r float64) {
	v.SetCornerRadii(UniformRadii(r))
}

// SetCornerRadiusAt sets the radius of one corner. Invalid values become 0.
func (v *ImageView) SetCornerRadiusAt(c Corner, r float64) {
	if c > CornerBottomLeft {
		return
	}
	radii := v.radii
	radii[c] = r
	v.SetCornerRadii(radii)
}

// SetCornerRadii sets independent corner radii. Invalid values become 0.
func (v *ImageView) SetCornerRadii(radii CornerRadii) {
	radii = radii.Sanitize()
	if radii == v.radii {
		return
	}
	v.radii = radii
	v.updateAll()
}

// BorderWidth returns the border width.
func (v *ImageView) BorderWidth() float64 { return v.borderWidth }

// SetBorderWidth sets the border width. Invalid values become 0.
func (v *ImageView) SetBorderWidth(w float64) {
	w = sanitizeLength(w)
	if w == v.borderWidth {
		return
	}
	v.borderWidth = w
	v.updateAll()
}

// BorderColor returns the default border color.
func (v *ImageView) BorderColor() RGBA { return v.borderColors.DefaultColor() }

// BorderColors returns the state-dependent border colors.
func (v *ImageView) BorderColors() *ColorStateList { return v.borderColors }

// SetBorderColor sets a single border color.
func (v *ImageView) SetBorderColor(c RGBA) {
	v.SetBorderColors(ColorStateValueOf(c))
}

// SetBorderColors sets state-dependent border colors. A nil list restores
// DefaultBorderColor. Without a border no redraw is requested.
func (v *ImageView) SetBorderColors(colors *ColorStateList) {
	if colors == nil {
		colors = ColorStateValueOf(DefaultBorderColor)
	}
	if colors.Equal(v.borderColors) {
		return
	}
	v.borderColors = colors
	v.updateDrawableAttrs()
	v.updateBackgroundDrawableAttrs(false)
	if v.borderWidth > 0 {
		v.invalidate()
	}
}

// IsOval reports whether the image is clipped to an ellipse.
func (v *ImageView) IsOval() bool { return v.oval }

// SetOval clips the image to an ellipse. Corner radii are kept.
func (v *ImageView) SetOval(oval bool) {
	if oval == v.oval {
		return
	}
	v.oval = oval
	v.updateAll()
}

// TileModeX returns the horizontal tile mode.
func (v *ImageView) TileModeX() TileMode { return v.tileX }

// TileModeY returns the vertical tile mode.
func (v *ImageView) TileModeY() TileMode { return v.tileY }

// SetTileModeX sets the horizontal tile mode.
func (v *ImageView) SetTileModeX(m TileMode) {
	if m == v.tileX {
		return
	}
	v.tileX = m
	v.updateAll()
}

// SetTileModeY sets the vertical tile mode.
func (v *ImageView) SetTileModeY(m TileMode) {
	if m == v.tileY {
		return
	}
	v.tileY = m
	v.updateAll()
}

// ColorFilter returns the foreground color filter.
func (v *ImageView) ColorFilter() ColorFilter { return v.colorFilter }

// SetColorFilter filters the foreground image colors. Pass nil to clear.
func (v *ImageView) SetColorFilter(f ColorFilter) {
	if f == nil && v.colorFilter == nil {
		return
	}
	v.colorFilter = f
	walk(v.image, func(d *Drawable) { d.SetColorFilter(f) })
	v.invalidate()
}

// State returns the interaction state.
func (v *ImageView) State() States { return v.state }

// SetState updates the interaction state of every drawable and requests a
// redraw if any border color changed.
func (v *ImageView) SetState(s States) {
	if s == v.state {
		return
	}
	v.state = s
	changed := false
	v.eachDrawable(func(d *Drawable) {
		if d.SetState(s) {
			changed = true
		}
	})
	if changed {
		v.invalidate()
	}
}

// MutatesBackground reports whether the background is shaped too.
func (v *ImageView) MutatesBackground() bool { return v.mutateBackground }

// SetMutateBackground shapes the background with the view's geometry.
//
// Turning it on shapes the current background. Turning it off keeps the
// shaped background but resets its border, corners, and oval clip, so
// toggling back and forth does not rebuild it.
func (v *ImageView) SetMutateBackground(mutate bool) {
	if mutate == v.mutateBackground {
		return
	}
	v.mutateBackground = mutate
	if mutate {
		v.updateBackgroundDrawableAttrs(true)
	} else {
		walk(v.background, func(d *Drawable) {
			d.SetBorderWidth(0)
			d.setRadii(CornerRadii{})
			d.SetOval(false)
		})
	}
	v.invalidate()
}

// Draw paints the background, then the image.
func (v *ImageView) Draw(c Canvas) {
	if c == nil || v.bounds.IsEmpty() {
		return
	}
	drawSource(c, v.background, v.bounds)
	drawSource(c, v.image, v.bounds)
}

func (v *ImageView) updateAll() {
	v.updateDrawableAttrs()
	v.updateBackgroundDrawableAttrs(false)
	v.invalidate()
}

func (v *ImageView) updateDrawableAttrs() {
	walk(v.image, func(d *Drawable) {
		v.updateAttrs(d, v.scaleType)
		d.SetImageMatrix(v.imageMatrix)
	})
}

func (v *ImageView) updateBackgroundDrawableAttrs(convert bool) {
	if !v.mutateBackground {
		return
	}
	if convert {
		v.background = Shape(v.background)
	}
	walk(v.background, func(d *Drawable) { v.updateAttrs(d, ScaleFitXY) })
}

func (v *ImageView) updateAttrs(d *Drawable, st ScaleType) {
	d.SetScaleType(st)
	d.SetBorderWidth(v.borderWidth)
	d.SetBorderColors(v.borderColors)
	d.SetOval(v.oval)
	d.SetTileModeX(v.tileX)
	d.SetTileModeY(v.tileY)
	d.setRadii(v.radii)
	d.SetBounds(v.bounds)
	d.SetState(v.state)
}

func (v *ImageView) eachDrawable(fn func(*Drawable)) {
	walk(v.image, fn)
	walk(v.background, fn)
}
