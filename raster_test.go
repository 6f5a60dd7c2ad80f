package rounded

import (
	"image"
	"image/color"
	"testing"
)

var opaqueRed = color.RGBA{R: 255, A: 255}

func redPaint() *Paint {
	p := NewPaint()
	p.Color = Red
	return p
}

func TestRasterFillRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	NewRasterCanvas(dst).DrawRect(NewRect(2, 2, 4, 4), redPaint())

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{2, 2, opaqueRed},
		{5, 5, opaqueRed},
		{1, 1, color.RGBA{}},
		{6, 6, color.RGBA{}},
		{6, 3, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := dst.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterAntialias(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 1))
	NewRasterCanvas(dst).DrawRect(Rect{MaxX: 1.5, MaxY: 1}, redPaint())
	if a := dst.RGBAAt(1, 0).A; a < 120 || a > 135 {
		t.Errorf("half covered pixel alpha = %d, want about 128", a)
	}
}

func TestRasterAntialiasOff(t *testing.T) {
	tests := []struct {
		name string
		maxX float64
		want uint8
	}{
		{"mostly covered", 1.75, 255},
		{"barely covered", 1.25, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := image.NewRGBA(image.Rect(0, 0, 4, 1))
			p := redPaint()
			p.AntiAlias = false
			NewRasterCanvas(dst).DrawRect(Rect{MaxX: tt.maxX, MaxY: 1}, p)
			if a := dst.RGBAAt(1, 0).A; a != tt.want {
				t.Errorf("alpha = %d, want %d", a, tt.want)
			}
		})
	}
}

func TestRasterStrokeRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := redPaint()
	p.Style = StyleStroke
	p.StrokeWidth = 2
	NewRasterCanvas(dst).DrawRect(Rect{MinX: 2, MinY: 2, MaxX: 8, MaxY: 8}, p)

	for _, pt := range []image.Point{{1, 5}, {2, 5}, {7, 5}, {8, 5}, {5, 1}, {5, 8}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got != opaqueRed {
			t.Errorf("stroke pixel %v = %v, want red", pt, got)
		}
	}
	for _, pt := range []image.Point{{0, 5}, {5, 5}, {3, 5}, {9, 9}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got.A != 0 {
			t.Errorf("pixel %v = %v, want transparent", pt, got)
		}
	}
}

func TestRasterOffsetDestination(t *testing.T) {
	dst := image.NewRGBA(image.Rect(10, 10, 20, 20))
	NewRasterCanvas(dst).DrawRect(NewRect(12, 12, 2, 2), redPaint())
	if got := dst.RGBAAt(12, 12); got != opaqueRed {
		t.Errorf("pixel (12, 12) = %v, want red", got)
	}
	if got := dst.RGBAAt(14, 14); got.A != 0 {
		t.Errorf("pixel (14, 14) = %v, want transparent", got)
	}
	if got := dst.RGBAAt(11, 11); got.A != 0 {
		t.Errorf("pixel (11, 11) = %v, want transparent", got)
	}
}

func TestRasterRoundRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	NewRasterCanvas(dst).DrawRoundRect(NewRect(0, 0, 20, 20), 6, 6, redPaint())
	for _, pt := range []image.Point{{0, 0}, {19, 0}, {19, 19}, {0, 19}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got.A != 0 {
			t.Errorf("corner %v = %v, want transparent", pt, got)
		}
	}
	for _, pt := range []image.Point{{10, 10}, {0, 10}, {10, 0}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got != opaqueRed {
			t.Errorf("pixel %v = %v, want red", pt, got)
		}
	}
}

func TestRasterRoundRectRadii(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	NewRasterCanvas(dst).DrawRoundRectRadii(NewRect(0, 0, 20, 20), CornerRadii{8, 0, 0, 0}, redPaint())
	if got := dst.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("rounded corner = %v, want transparent", got)
	}
	for _, pt := range []image.Point{{19, 0}, {19, 19}, {0, 19}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got != opaqueRed {
			t.Errorf("square corner %v = %v, want red", pt, got)
		}
	}
}

func TestRasterOval(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 10))
	NewRasterCanvas(dst).DrawOval(NewRect(0, 0, 20, 10), redPaint())
	if got := dst.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
	if got := dst.RGBAAt(10, 5); got != opaqueRed {
		t.Errorf("center = %v, want red", got)
	}
}

func TestRasterLine(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := redPaint()
	p.StrokeWidth = 2
	NewRasterCanvas(dst).DrawLine(2, 5, 8, 5, p)

	for _, pt := range []image.Point{{2, 4}, {5, 5}, {7, 4}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got != opaqueRed {
			t.Errorf("line pixel %v = %v, want red", pt, got)
		}
	}
	// butt caps end exactly at the endpoints
	for _, pt := range []image.Point{{1, 5}, {8, 5}, {5, 3}, {5, 6}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got.A != 0 {
			t.Errorf("pixel %v = %v, want transparent", pt, got)
		}
	}
}

func TestRasterPaintAlpha(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	p := redPaint()
	p.Alpha = 128
	NewRasterCanvas(dst).DrawRect(NewRect(0, 0, 4, 4), p)
	if got := dst.RGBAAt(1, 1); got != (color.RGBA{R: 128, A: 128}) {
		t.Errorf("pixel = %v, want half red", got)
	}

	p.Alpha = 0
	c := NewRasterCanvas(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	c.DrawRect(NewRect(0, 0, 4, 4), p)
	if got := c.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("zero alpha painted %v", got)
	}
}

func TestRasterClearAndOver(t *testing.T) {
	c := NewRasterCanvas(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	c.Clear(White)
	p := NewPaint()
	p.Color = Blue
	c.DrawRect(NewRect(0, 0, 2, 4), p)

	if got := c.Image().RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("painted pixel = %v, want blue", got)
	}
	if got := c.Image().RGBAAt(3, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("cleared pixel = %v, want white", got)
	}
}

func TestRasterShaderPaint(t *testing.T) {
	sh := NewBitmapShader(solidImage(2, 2, opaqueGreen), TileClamp, TileClamp)
	sh.SetLocalMatrix(Translate(2, 2))
	p := NewPaint()
	p.Shader = sh
	p.Color = Red

	dst := image.NewRGBA(image.Rect(0, 0, 6, 6))
	NewRasterCanvas(dst).DrawRect(NewRect(2, 2, 2, 2), p)
	if got := dst.RGBAAt(3, 3); got != opaqueGreen {
		t.Errorf("shaded pixel = %v, want green from the shader", got)
	}
	if got := dst.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestRasterNilPaint(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	c := NewRasterCanvas(dst)
	c.DrawRect(NewRect(0, 0, 4, 4), nil)
	c.DrawRoundRect(NewRect(0, 0, 4, 4), 1, 1, nil)
	c.DrawOval(NewRect(0, 0, 4, 4), nil)
	c.DrawLine(0, 0, 4, 4, nil)
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("nil paint drew pixels")
		}
	}
}

// squaredOffDrawable is a green bitmap in 40x40 bounds whose bottom-right
// corner is square while the others are rounded by 12.
func squaredOffDrawable(t *testing.T, border float64) *Drawable {
	t.Helper()
	d := newTestDrawable(t, 10, 10)
	d.SetScaleType(ScaleFitXY)
	d.SetBounds(NewRect(0, 0, 40, 40))
	if err := d.SetCornerRadii(CornerRadii{12, 12, 0, 12}); err != nil {
		t.Fatal(err)
	}
	d.SetBorderWidth(border)
	return d
}

func TestSquaredOffCornerOnUniformCanvas(t *testing.T) {
	d := squaredOffDrawable(t, 4)
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	d.Draw(UniformOnly(NewRasterCanvas(dst)))

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"content under patched corner", 35, 35, opaqueGreen},
		{"border inner half at square corner", 37, 37, opaqueBlack},
		{"border outer half at square corner", 39, 39, opaqueBlack},
		{"rounded corner outside", 0, 0, color.RGBA{}},
		{"center", 20, 20, opaqueGreen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dst.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSquaredOffCornerWithoutBorder(t *testing.T) {
	for _, name := range []string{"uniform only", "per corner"} {
		t.Run(name, func(t *testing.T) {
			d := squaredOffDrawable(t, 0)
			dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
			var c Canvas = NewRasterCanvas(dst)
			if name == "uniform only" {
				c = UniformOnly(c)
			}
			d.Draw(c)
			if got := dst.RGBAAt(39, 39); got != opaqueGreen {
				t.Errorf("square corner = %v, want green", got)
			}
			if got := dst.RGBAAt(0, 0); got.A != 0 {
				t.Errorf("rounded corner = %v, want transparent", got)
			}
		})
	}
}
