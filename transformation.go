package rounded

import (
	"fmt"
	"image"
)

// Transformation renders bitmaps into pre-shaped bitmaps, for image
// pipelines that post-process decoded images and cache the result.
// A Transformation is immutable and safe for concurrent use.
type Transformation struct {
	radii        CornerRadii
	scaleType    ScaleType
	borderWidth  float64
	borderColors *ColorStateList
	oval         bool
}

// Key returns a string derived from every geometry parameter. Equal
// configurations produce equal keys and any difference changes the key:
//
//	r:[8 8 8 8]s:fit_centerb:2c:ColorStateList{default:#000000ff}o:false
func (t *Transformation) Key() string {
	return fmt.Sprintf("r:%ss:%sb:%gc:%so:%t",
		t.radii, t.scaleType, t.borderWidth, t.borderColors, t.oval)
}

// Transform renders img through a Drawable at its intrinsic size.
func (t *Transformation) Transform(img image.Image) (*image.RGBA, error) {
	d, err := NewDrawable(img)
	if err != nil {
		return nil, err
	}
	d.SetScaleType(t.scaleType)
	if err := d.SetCornerRadii(t.radii); err != nil {
		return nil, err
	}
	d.SetBorderWidth(t.borderWidth)
	d.SetBorderColors(t.borderColors)
	d.SetOval(t.oval)
	return d.ToBitmap()
}

// TransformationBuilder configures a Transformation. Lengths are in
// pixels; the Dp variants multiply by the builder's density first.
//
//	t := rounded.NewTransformationBuilder().
//	    Density(2).
//	    CornerRadiusDp(8).
//	    BorderWidthDp(1).
//	    BorderColor(rounded.White).
//	    Build()
type TransformationBuilder struct {
	density float64
	t       Transformation
}

// NewTransformationBuilder returns a builder for square corners, no
// border, ScaleFitCenter, and density 1.
func NewTransformationBuilder() *TransformationBuilder {
	return &TransformationBuilder{
		density: 1,
		t: Transformation{
			scaleType:    ScaleFitCenter,
			borderColors: ColorStateValueOf(DefaultBorderColor),
		},
	}
}

// Density sets the pixels per dp used by the Dp variants. Non-positive
// values are ignored.
func (b *TransformationBuilder) Density(d float64) *TransformationBuilder {
	if d > 0 {
		b.density = d
	}
	return b
}

// ScaleType sets the scale type.
func (b *TransformationBuilder) ScaleType(st ScaleType) *TransformationBuilder {
	if st.IsValid() {
		b.t.scaleType = st
	}
	return b
}

// CornerRadius rounds every corner by r pixels.
func (b *TransformationBuilder) CornerRadius(r float64) *TransformationBuilder {
	b.t.radii = UniformRadii(sanitizeLength(r))
	return b
}

// CornerRadiusAt sets the radius of corner c in pixels.
func (b *TransformationBuilder) CornerRadiusAt(c Corner, r float64) *TransformationBuilder {
	if c <= CornerBottomLeft {
		b.t.radii[c] = sanitizeLength(r)
	}
	return b
}

// CornerRadiusDp rounds every corner by r dp.
func (b *TransformationBuilder) CornerRadiusDp(r float64) *TransformationBuilder {
	return b.CornerRadius(r * b.density)
}

// CornerRadiusAtDp sets the radius of corner c in dp.
func (b *TransformationBuilder) CornerRadiusAtDp(c Corner, r float64) *TransformationBuilder {
	return b.CornerRadiusAt(c, r*b.density)
}

// BorderWidth sets the border width in pixels.
func (b *TransformationBuilder) BorderWidth(w float64) *TransformationBuilder {
	b.t.borderWidth = sanitizeLength(w)
	return b
}

// BorderWidthDp sets the border width in dp.
func (b *TransformationBuilder) BorderWidthDp(w float64) *TransformationBuilder {
	return b.BorderWidth(w * b.density)
}

// BorderColor sets a single border color.
func (b *TransformationBuilder) BorderColor(c RGBA) *TransformationBuilder {
	b.t.borderColors = ColorStateValueOf(c)
	return b
}

// BorderColors sets state-dependent border colors. The rendered bitmap
// uses the color for no state.
func (b *TransformationBuilder) BorderColors(colors *ColorStateList) *TransformationBuilder {
	if colors != nil {
		b.t.borderColors = colors
	}
	return b
}

// Oval clips to an ellipse.
func (b *TransformationBuilder) Oval(oval bool) *TransformationBuilder {
	b.t.oval = oval
	return b
}

// Build returns the configured Transformation. The builder can keep being
// used without affecting it.
func (b *TransformationBuilder) Build() *Transformation {
	t := b.t
	return &t
}
