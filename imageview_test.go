package rounded

import (
	"image"
	"image/color"
	"testing"
)

func newCountingView(t *testing.T, opts ...ViewOption) (*ImageView, *counter) {
	t.Helper()
	var calls counter
	v := NewImageView(append([]ViewOption{WithInvalidator(calls.inc)}, opts...)...)
	return v, &calls
}

func TestImageViewSettersInvalidateOnce(t *testing.T) {
	v, calls := newCountingView(t, WithBorder(2, Black), WithMutateBackground(true))
	v.SetImageBitmap(solidImage(8, 8, opaqueGreen))
	v.SetBackgroundColor(Blue)
	v.SetBorderColors(NewColorStateList(Black, StateColor{Required: StatePressed, Color: Red}))

	tests := []struct {
		name   string
		mutate func()
	}{
		{"bounds", func() { v.SetBounds(NewRect(0, 0, 30, 30)) }},
		{"scale type", func() { v.SetScaleType(ScaleCenterCrop) }},
		{"corner radius", func() { v.SetCornerRadius(4) }},
		{"corner radius at", func() { v.SetCornerRadiusAt(CornerTopLeft, 9) }},
		{"corner radii", func() { v.SetCornerRadii(CornerRadii{1, 2, 3, 4}) }},
		{"border width", func() { v.SetBorderWidth(3) }},
		{"border color", func() { v.SetBorderColor(White) }},
		{"oval", func() { v.SetOval(true) }},
		{"tile x", func() { v.SetTileModeX(TileRepeat) }},
		{"tile y", func() { v.SetTileModeY(TileMirror) }},
		{"mutate background", func() { v.SetMutateBackground(false) }},
		{"scale matrix", func() { v.SetScaleType(ScaleMatrix) }},
		{"image matrix", func() { v.SetImageMatrix(Scale(2, 2)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := calls.n
			tt.mutate()
			tt.mutate()
			if got := calls.n - before; got != 1 {
				t.Errorf("two identical calls invalidated %d times, want 1", got)
			}
		})
	}
}

func TestImageViewStateInvalidatesOnColorChange(t *testing.T) {
	v, calls := newCountingView(t, WithBorder(2, Black))
	v.SetBorderColors(NewColorStateList(Black, StateColor{Required: StatePressed, Color: Red}))
	v.SetImageBitmap(solidImage(4, 4, opaqueGreen))
	before := calls.n

	v.SetState(StatePressed)
	if calls.n-before != 1 {
		t.Errorf("pressing invalidated %d times, want 1", calls.n-before)
	}
	if got := v.Drawable().BorderColor(); got != Red {
		t.Errorf("border color = %v, want red", got)
	}
	v.SetState(StatePressed | StateFocused)
	if calls.n-before != 1 {
		t.Error("state change with the same resolved color should not invalidate")
	}
	if v.Drawable().State() != StatePressed|StateFocused {
		t.Error("state not propagated to the drawable")
	}
}

func TestImageViewBorderColorWithoutBorder(t *testing.T) {
	v, calls := newCountingView(t)
	v.SetImageBitmap(solidImage(4, 4, opaqueGreen))
	before := calls.n
	v.SetBorderColor(Red)
	if calls.n != before {
		t.Error("border color change without a border should not invalidate")
	}
	if v.BorderColor() != Red || v.Drawable().BorderColor() != Red {
		t.Error("border color should still be recorded and pushed")
	}
}

func TestImageViewDefaults(t *testing.T) {
	v := NewImageView()
	if v.ScaleType() != ScaleFitCenter || v.CornerRadius() != 0 || v.BorderWidth() != 0 {
		t.Error("unexpected defaults")
	}
	if v.BorderColor() != DefaultBorderColor || v.IsOval() || v.MutatesBackground() {
		t.Error("unexpected defaults")
	}
	if v.Image() != nil || v.Drawable() != nil || v.Background() != nil {
		t.Error("new view should hold no sources")
	}
	v.SetBounds(NewRect(0, 0, 10, 10))
	v.Draw(&callCanvas{})
}

func TestImageViewConfiguresNewImage(t *testing.T) {
	v := NewImageView(
		WithScaleType(ScaleCenterCrop),
		WithCornerRadius(8),
		WithBorder(2, Red),
		WithOval(true),
		WithTileMode(TileRepeat, TileMirror),
	)
	v.SetBounds(NewRect(0, 0, 50, 40))
	v.SetImageBitmap(solidImage(10, 10, opaqueGreen))

	d := v.Drawable()
	if d == nil {
		t.Fatal("bitmap not shaped")
	}
	if d.ScaleType() != ScaleCenterCrop || d.CornerRadii() != UniformRadii(8) {
		t.Errorf("scale %v radii %v", d.ScaleType(), d.CornerRadii())
	}
	if d.BorderWidth() != 2 || d.BorderColor() != Red || !d.IsOval() {
		t.Error("border or oval not applied")
	}
	if x, y := d.TileModeX(), d.TileModeY(); x != TileRepeat || y != TileMirror {
		t.Errorf("tile modes = %v, %v", x, y)
	}
	if d.Bounds() != NewRect(0, 0, 50, 40) {
		t.Errorf("bounds = %v", d.Bounds())
	}
}

func TestImageViewInvalidBitmapClearsImage(t *testing.T) {
	v, calls := newCountingView(t)
	v.SetImageBitmap(solidImage(4, 4, opaqueGreen))
	v.SetImageBitmap(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if v.Image() != nil || v.Drawable() != nil {
		t.Error("zero-size bitmap should leave no image")
	}
	v.SetImageBitmap(nil)
	if v.Image() != nil {
		t.Error("nil bitmap should leave no image")
	}
	if calls.n != 3 {
		t.Errorf("invalidated %d times, want 3", calls.n)
	}
}

func TestImageViewInvalidScaleType(t *testing.T) {
	v := NewImageView(WithScaleType(ScaleCenter))
	v.SetScaleType(ScaleType(200))
	if v.ScaleType() != ScaleFitCenter {
		t.Errorf("ScaleType() = %v, want fit_center", v.ScaleType())
	}
}

func TestImageViewSanitizesLengths(t *testing.T) {
	v := NewImageView()
	v.SetCornerRadii(CornerRadii{-1, 4, 0, 2})
	if v.CornerRadii() != (CornerRadii{0, 4, 0, 2}) {
		t.Errorf("radii = %v", v.CornerRadii())
	}
	v.SetBorderWidth(-3)
	if v.BorderWidth() != 0 {
		t.Errorf("border width = %v", v.BorderWidth())
	}
	v.SetCornerRadiusAt(Corner(7), 3)
	if v.CornerRadiusAt(Corner(7)) != 0 || v.CornerRadius() != 4 {
		t.Error("unknown corner should be ignored")
	}
}

func TestImageViewMutateBackground(t *testing.T) {
	v := NewImageView(WithMutateBackground(true), WithCornerRadius(6), WithBorder(2, Red))
	v.SetBounds(NewRect(0, 0, 20, 20))
	v.SetBackgroundColor(Blue)

	s, ok := v.Background().(ShapedSource)
	if !ok {
		t.Fatalf("background = %#v, want shaped", v.Background())
	}
	bg := s.Drawable
	if bg.ScaleType() != ScaleFitXY || bg.CornerRadii() != UniformRadii(6) || bg.BorderWidth() != 2 {
		t.Errorf("background drawable: scale %v radii %v border %v",
			bg.ScaleType(), bg.CornerRadii(), bg.BorderWidth())
	}
	if bg.Bounds() != v.Bounds() {
		t.Errorf("background bounds = %v", bg.Bounds())
	}

	v.SetScaleType(ScaleCenter)
	if bg.ScaleType() != ScaleFitXY {
		t.Error("background must keep fit_xy")
	}

	v.SetOval(true)
	v.SetMutateBackground(false)
	if s, ok := v.Background().(ShapedSource); !ok || s.Drawable != bg {
		t.Fatal("turning mutation off should keep the shaped background")
	}
	if !bg.CornerRadii().IsZero() || bg.BorderWidth() != 0 || bg.IsOval() {
		t.Error("turning mutation off should reset corners, border, and oval")
	}

	v.SetCornerRadius(10)
	if !bg.CornerRadii().IsZero() {
		t.Error("unmutated background should not follow the view")
	}

	v.SetMutateBackground(true)
	if bg.CornerRadii() != UniformRadii(10) || !bg.IsOval() {
		t.Error("turning mutation back on should reapply the view geometry")
	}
}

func TestImageViewBackgroundUnshaped(t *testing.T) {
	v := NewImageView(WithCornerRadius(6))
	v.SetBackgroundColor(Blue)
	if _, ok := v.Background().(OpaqueSource); !ok {
		t.Errorf("background = %#v, want the opaque source", v.Background())
	}
	v.SetBackground(BitmapSource{Image: solidImage(1, 1, opaqueGreen)})
	if _, ok := v.Background().(BitmapSource); !ok {
		t.Errorf("background = %#v, want the bitmap source", v.Background())
	}
}

func TestImageViewCompositeImage(t *testing.T) {
	v := NewImageView(WithCornerRadius(3))
	v.SetBounds(NewRect(0, 0, 10, 10))
	v.SetImage(CompositeSource{Layers: []Layer{
		{ID: 1, Source: OpaqueSource{Color: White}},
		{ID: 2, Source: BitmapSource{Image: solidImage(4, 4, opaqueGreen)}},
	}})

	c, ok := v.Image().(CompositeSource)
	if !ok {
		t.Fatalf("image = %#v, want composite", v.Image())
	}
	if _, ok := c.Layers[0].Source.(OpaqueSource); !ok {
		t.Error("placeholder layer should stay opaque")
	}
	if v.Drawable() != nil {
		t.Error("Drawable() should be nil for a composite")
	}
	ds := Drawables(c)
	if len(ds) != 1 || ds[0].CornerRadii() != UniformRadii(3) || ds[0].Bounds() != v.Bounds() {
		t.Error("composite layer not configured")
	}
}

func TestImageViewFailingRasterStaysUnshaped(t *testing.T) {
	v := NewImageView()
	src := RasterSource{Rasterizable: &fakeRaster{w: 2, h: 2, boom: true}}
	v.SetImage(src)
	if got, ok := v.Image().(RasterSource); !ok || got != src {
		t.Errorf("image = %#v, want the raster source unshaped", v.Image())
	}
}

func TestImageViewColorFilter(t *testing.T) {
	v, calls := newCountingView(t)
	v.SetColorFilter(invertFilter{})
	v.SetImageBitmap(solidImage(2, 2, opaqueGreen))
	if v.Drawable().ColorFilter() == nil {
		t.Fatal("filter not applied to new image")
	}

	before := calls.n
	v.SetColorFilter(nil)
	if v.Drawable().ColorFilter() != nil || calls.n-before != 1 {
		t.Error("clearing the filter should reach the drawable and invalidate once")
	}
	v.SetColorFilter(nil)
	if calls.n-before != 1 {
		t.Error("clearing an absent filter should not invalidate")
	}
}

func TestImageViewImageMatrix(t *testing.T) {
	v, calls := newCountingView(t)
	v.SetImageBitmap(solidImage(2, 2, opaqueGreen))
	before := calls.n
	v.SetImageMatrix(Translate(3, 3))
	if calls.n != before {
		t.Error("image matrix outside matrix mode should not invalidate")
	}
	if v.Drawable().ImageMatrix() != Translate(3, 3) {
		t.Error("image matrix not pushed")
	}
}

func TestImageViewDraw(t *testing.T) {
	v := NewImageView(WithScaleType(ScaleCenterInside))
	v.SetBounds(NewRect(0, 0, 10, 10))
	v.SetBackgroundColor(Blue)
	v.SetImageBitmap(solidImage(2, 2, opaqueGreen))

	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	v.Draw(NewRasterCanvas(dst))
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("background pixel = %v, want blue", got)
	}
	if got := dst.RGBAAt(5, 5); got != opaqueGreen {
		t.Errorf("image pixel = %v, want green", got)
	}

	c := &callCanvas{}
	v.SetBounds(Rect{})
	v.Draw(c)
	v.Draw(nil)
	if len(c.calls) != 0 {
		t.Errorf("empty view drew %v", c.calls)
	}
}
