package rounded

import (
	"fmt"
	"image"
	"strings"
)

// RenderState records which derived drawing state is stale.
// The zero value RenderClean means the shader and geometry match the
// current configuration.
type RenderState uint8

const (
	// RenderClean means nothing needs recomputing.
	RenderClean RenderState = 0
	// RenderBoundsDirty means the shader matrix and the border and content
	// rectangles must be recomputed.
	RenderBoundsDirty RenderState = 1 << 0
	// RenderShaderDirty means the bitmap shader must be rebuilt.
	RenderShaderDirty RenderState = 1 << 1
)

// String returns "clean" or the dirty flags joined with "|".
func (s RenderState) String() string {
	if s == RenderClean {
		return "clean"
	}
	var parts []string
	if s&RenderBoundsDirty != 0 {
		parts = append(parts, "bounds")
	}
	if s&RenderShaderDirty != 0 {
		parts = append(parts, "shader")
	}
	return strings.Join(parts, "|")
}

// Opacity describes how a drawable covers its bounds.
type Opacity uint8

const (
	// OpacityTranslucent means some pixels in the bounds are not opaque.
	OpacityTranslucent Opacity = iota
	// OpacityOpaque means every pixel in the bounds is opaque.
	OpacityOpaque
)

// Drawable paints a bitmap clipped to a rounded rectangle or an oval, with
// an optional border, fitted into its bounds by a ScaleType.
//
// Derived state (the bitmap shader, its matrix, the border and content
// rectangles) is recomputed lazily: setters only mark it dirty and the
// next Draw or geometry query settles it.
//
// A Drawable is not safe for concurrent use. The bitmap passed to
// NewDrawable must not be mutated while the drawable draws.
type Drawable struct {
	bitmap *image.RGBA
	width  int
	height int

	bounds      Rect
	scaleType   ScaleType
	imageMatrix Matrix

	radii        CornerRadii
	oval         bool
	borderWidth  float64
	borderColors *ColorStateList
	state        States

	tileX        TileMode
	tileY        TileMode
	colorFilter  ColorFilter
	filterBitmap bool

	bitmapPaint Paint
	borderPaint Paint

	shader       *BitmapShader
	shaderMatrix Matrix
	borderRect   Rect
	contentRect  Rect
	render       RenderState

	callback    func()
	warnedLossy bool
}

// NewDrawable creates a drawable for img with square corners, no border,
// and ScaleFitCenter. It returns ErrInvalidBitmap if img is nil or has a
// non-positive width or height.
func NewDrawable(img image.Image) (*Drawable, error) {
	bm, err := normalizeBitmap(img)
	if err != nil {
		return nil, err
	}
	d := &Drawable{
		bitmap:       bm,
		width:        bm.Rect.Dx(),
		height:       bm.Rect.Dy(),
		imageMatrix:  Identity(),
		borderColors: ColorStateValueOf(DefaultBorderColor),
		filterBitmap: true,
		shaderMatrix: Identity(),
		render:       RenderBoundsDirty | RenderShaderDirty,
	}
	d.bitmapPaint = Paint{Style: StyleFill, Alpha: 255, AntiAlias: true}
	d.borderPaint = Paint{
		Style:     StyleStroke,
		Color:     d.borderColors.Resolve(d.state),
		Alpha:     255,
		AntiAlias: true,
	}
	return d, nil
}

// IntrinsicWidth returns the bitmap width.
func (d *Drawable) IntrinsicWidth() int { return d.width }

// IntrinsicHeight returns the bitmap height.
func (d *Drawable) IntrinsicHeight() int { return d.height }

// SourceBitmap returns the bitmap being drawn.
func (d *Drawable) SourceBitmap() *image.RGBA { return d.bitmap }

// RenderState returns the pending recomputation flags.
func (d *Drawable) RenderState() RenderState { return d.render }

// SetCallback sets the function called when the drawable needs redrawing.
func (d *Drawable) SetCallback(fn func()) { d.callback = fn }

func (d *Drawable) invalidateSelf() {
	if d.callback != nil {
		d.callback()
	}
}

func (d *Drawable) markDirty(s RenderState) {
	if d.render&s != s {
		Logger().Debug("rounded: render state dirty", "from", d.render, "add", s)
	}
	d.render |= s
	d.invalidateSelf()
}

// Bounds returns the target rectangle.
func (d *Drawable) Bounds() Rect { return d.bounds }

// SetBounds sets the target rectangle in destination space.
func (d *Drawable) SetBounds(r Rect) {
	if r == d.bounds {
		return
	}
	d.bounds = r
	d.markDirty(RenderBoundsDirty)
}

// ScaleType returns how the bitmap is fitted into the bounds.
func (d *Drawable) ScaleType() ScaleType { return d.scaleType }

// SetScaleType sets how the bitmap is fitted into the bounds.
// Unknown values fall back to ScaleFitCenter.
func (d *Drawable) SetScaleType(st ScaleType) {
	if !st.IsValid() {
		st = ScaleFitCenter
	}
	if st == d.scaleType {
		return
	}
	d.scaleType = st
	d.markDirty(RenderBoundsDirty)
}

// ImageMatrix returns the matrix used by ScaleMatrix.
func (d *Drawable) ImageMatrix() Matrix { return d.imageMatrix }

// SetImageMatrix sets the bitmap to bounds-relative transform used when
// the scale type is ScaleMatrix.
func (d *Drawable) SetImageMatrix(m Matrix) {
	if m == d.imageMatrix {
		return
	}
	d.imageMatrix = m
	if d.scaleType == ScaleMatrix {
		d.markDirty(RenderBoundsDirty)
	}
}

// CornerRadius returns the largest corner radius.
func (d *Drawable) CornerRadius() float64 { return d.radii.Max() }

// CornerRadii returns the per-corner radii.
func (d *Drawable) CornerRadii() CornerRadii { return d.radii }

// CornerRadiusAt returns the radius of corner c.
func (d *Drawable) CornerRadiusAt(c Corner) float64 {
	if c > CornerBottomLeft {
		return 0
	}
	return d.radii[c]
}

// SetCornerRadius rounds every corner by r.
func (d *Drawable) SetCornerRadius(r float64) error {
	return d.SetCornerRadii(UniformRadii(r))
}

// SetCornerRadii sets independent radii for the four corners.
// It returns ErrInvalidArgument if any radius is NaN, infinite, or negative.
func (d *Drawable) SetCornerRadii(radii CornerRadii) error {
	if err := radii.Validate(); err != nil {
		return err
	}
	d.setRadii(radii)
	return nil
}

// SetCornerRadiusAt sets the radius of a single corner.
func (d *Drawable) SetCornerRadiusAt(c Corner, r float64) error {
	if c > CornerBottomLeft {
		return fmt.Errorf("%w: corner %d", ErrInvalidArgument, c)
	}
	radii := d.radii
	radii[c] = r
	return d.SetCornerRadii(radii)
}

// SetUniformCornerRadii sets the radii where every rounded corner shares
// one radius and the others are square. It returns ErrInvalidArgument when
// more than one distinct nonzero radius is given.
func (d *Drawable) SetUniformCornerRadii(radii CornerRadii) error {
	if err := radii.Validate(); err != nil {
		return err
	}
	if n := radii.distinctNonzero(); n > 1 {
		return fmt.Errorf("%w: %d distinct nonzero radii %s", ErrInvalidArgument, n, radii)
	}
	d.setRadii(radii)
	return nil
}

func (d *Drawable) setRadii(radii CornerRadii) {
	if radii == d.radii {
		return
	}
	d.radii = radii
	d.warnedLossy = false
	d.markDirty(RenderBoundsDirty)
}

// IsOval reports whether the drawable clips to an ellipse.
func (d *Drawable) IsOval() bool { return d.oval }

// SetOval clips to the ellipse inscribed in the content rectangle.
// Corner radii are kept and apply again once oval is turned off.
func (d *Drawable) SetOval(oval bool) {
	if oval == d.oval {
		return
	}
	d.oval = oval
	d.markDirty(RenderBoundsDirty)
}

// BorderWidth returns the border stroke width.
func (d *Drawable) BorderWidth() float64 { return d.borderWidth }

// SetBorderWidth sets the border stroke width. Invalid widths become 0.
func (d *Drawable) SetBorderWidth(w float64) {
	w = sanitizeLength(w)
	if w == d.borderWidth {
		return
	}
	d.borderWidth = w
	d.borderPaint.StrokeWidth = w
	d.markDirty(RenderBoundsDirty)
}

// BorderColor returns the border color resolved for the current state.
func (d *Drawable) BorderColor() RGBA { return d.borderPaint.Color }

// BorderColors returns the state-dependent border colors.
func (d *Drawable) BorderColors() *ColorStateList { return d.borderColors }

// SetBorderColor sets a single border color.
func (d *Drawable) SetBorderColor(c RGBA) {
	d.SetBorderColors(ColorStateValueOf(c))
}

// SetBorderColors sets state-dependent border colors. A nil list restores
// DefaultBorderColor.
func (d *Drawable) SetBorderColors(colors *ColorStateList) {
	if colors == nil {
		colors = ColorStateValueOf(DefaultBorderColor)
	}
	if colors.Equal(d.borderColors) {
		return
	}
	d.borderColors = colors
	d.borderPaint.Color = colors.Resolve(d.state)
	d.invalidateSelf()
}

// IsStateful reports whether the border color depends on state.
func (d *Drawable) IsStateful() bool { return d.borderColors.IsStateful() }

// State returns the current interaction state.
func (d *Drawable) State() States { return d.state }

// SetState re-resolves the border color for s and reports whether the
// resolved color changed, meaning a redraw is needed.
func (d *Drawable) SetState(s States) bool {
	d.state = s
	c := d.borderColors.Resolve(s)
	if c == d.borderPaint.Color {
		return false
	}
	d.borderPaint.Color = c
	d.invalidateSelf()
	return true
}

// TileModeX returns the horizontal tile mode.
func (d *Drawable) TileModeX() TileMode { return d.tileX }

// TileModeY returns the vertical tile mode.
func (d *Drawable) TileModeY() TileMode { return d.tileY }

// SetTileModeX sets the horizontal tile mode.
func (d *Drawable) SetTileModeX(m TileMode) {
	if m == d.tileX {
		return
	}
	d.tileX = m
	d.markDirty(RenderShaderDirty)
}

// SetTileModeY sets the vertical tile mode.
func (d *Drawable) SetTileModeY(m TileMode) {
	if m == d.tileY {
		return
	}
	d.tileY = m
	d.markDirty(RenderShaderDirty)
}

// Alpha returns the content alpha.
func (d *Drawable) Alpha() uint8 { return d.bitmapPaint.Alpha }

// SetAlpha sets the content alpha. The border is not affected.
func (d *Drawable) SetAlpha(a uint8) {
	if a == d.bitmapPaint.Alpha {
		return
	}
	d.bitmapPaint.Alpha = a
	d.invalidateSelf()
}

// ColorFilter returns the content color filter.
func (d *Drawable) ColorFilter() ColorFilter { return d.colorFilter }

// SetColorFilter filters the bitmap colors. The border is not affected.
func (d *Drawable) SetColorFilter(f ColorFilter) {
	if f == nil && d.colorFilter == nil {
		return
	}
	d.colorFilter = f
	d.markDirty(RenderShaderDirty)
}

// FilterBitmap reports whether the bitmap is sampled bilinearly.
func (d *Drawable) FilterBitmap() bool { return d.filterBitmap }

// SetFilterBitmap selects bilinear (true) or nearest (false) sampling.
func (d *Drawable) SetFilterBitmap(filter bool) {
	if filter == d.filterBitmap {
		return
	}
	d.filterBitmap = filter
	d.markDirty(RenderShaderDirty)
}

// Opacity is always OpacityTranslucent: antialiased edges leave the
// bounds partially covered.
func (d *Drawable) Opacity() Opacity { return OpacityTranslucent }

// ShaderMatrix returns the bitmap to destination transform.
func (d *Drawable) ShaderMatrix() Matrix {
	d.settle()
	return d.shaderMatrix
}

// ContentRect returns the rectangle painted with the bitmap.
func (d *Drawable) ContentRect() Rect {
	d.settle()
	return d.contentRect
}

// BorderRect returns the rectangle the border stroke is centered on.
func (d *Drawable) BorderRect() Rect {
	d.settle()
	return d.borderRect
}

// settle recomputes whatever the render state marks stale.
func (d *Drawable) settle() {
	if d.render == RenderClean {
		return
	}
	if d.render&RenderShaderDirty != 0 {
		d.rebuildShader()
	}
	if d.render&RenderBoundsDirty != 0 {
		g := computeGeometry(d.scaleType, d.bounds, float64(d.width), float64(d.height), d.borderWidth, d.imageMatrix)
		d.shaderMatrix = g.shader
		d.borderRect = g.border
		d.contentRect = g.content
	}
	d.applyShaderMatrix()
	Logger().Debug("rounded: settled", "was", d.render, "bounds", d.bounds, "scale", d.scaleType)
	d.render = RenderClean
}

func (d *Drawable) rebuildShader() {
	bm := d.bitmap
	if d.colorFilter != nil {
		if filtered := d.colorFilter.Filter(bm); filtered != nil {
			if n, err := normalizeBitmap(filtered); err == nil {
				bm = n
			}
		}
	}
	d.shader = NewBitmapShader(bm, d.tileX, d.tileY)
	d.shader.SetFilterBitmap(d.filterBitmap)
	d.bitmapPaint.Shader = d.shader
	Logger().Debug("rounded: shader rebuilt", "tileX", d.tileX, "tileY", d.tileY)
}

// applyShaderMatrix installs the fitted transform under clamp tiling.
// Repeat and mirror tile at native bitmap scale from the bounds' top-left.
func (d *Drawable) applyShaderMatrix() {
	if d.tileX == TileClamp && d.tileY == TileClamp {
		d.shader.SetLocalMatrix(d.shaderMatrix)
		return
	}
	d.shader.SetLocalMatrix(Translate(d.bounds.MinX, d.bounds.MinY))
}

// ToBitmap renders the drawable at its intrinsic size. The current bounds
// are left unchanged. It returns ErrInvalidArgument if the border leaves
// no room for content at that size.
func (d *Drawable) ToBitmap() (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	saved := d.bounds
	d.bounds = NewRect(0, 0, float64(d.width), float64(d.height))
	d.render |= RenderBoundsDirty
	defer func() {
		d.bounds = saved
		d.render |= RenderBoundsDirty
	}()

	if d.ContentRect().IsEmpty() {
		return nil, fmt.Errorf("%w: border %g leaves no content in %dx%d",
			ErrInvalidArgument, d.borderWidth, d.width, d.height)
	}
	d.Draw(NewRasterCanvas(dst))
	return dst, nil
}
