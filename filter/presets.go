package filter

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/effect"

	"github.com/gogpu/rounded"
)

// Grayscale converts colors to their luminance.
func Grayscale() rounded.ColorFilter {
	return straight(effect.Grayscale)
}

// Sepia applies a sepia tone.
func Sepia() rounded.ColorFilter {
	return straight(effect.Sepia)
}

// Invert inverts the color channels. Alpha is kept.
func Invert() rounded.ColorFilter {
	return straight(effect.Invert)
}

// Brightness shifts brightness by change in [-1, 1].
func Brightness(change float64) rounded.ColorFilter {
	change = clampChange(change)
	return straight(func(img image.Image) *image.RGBA { return adjust.Brightness(img, change) })
}

// Contrast scales contrast by change in [-1, 1]; -1 is flat gray.
func Contrast(change float64) rounded.ColorFilter {
	change = clampChange(change)
	return straight(func(img image.Image) *image.RGBA { return adjust.Contrast(img, change) })
}

// Saturation scales saturation by change in [-1, 1]; -1 removes color.
func Saturation(change float64) rounded.ColorFilter {
	change = clampChange(change)
	return straight(func(img image.Image) *image.RGBA { return adjust.Saturation(img, change) })
}

// Gamma applies gamma correction. Values <= 0 are treated as 1.
func Gamma(gamma float64) rounded.ColorFilter {
	if !(gamma > 0) {
		gamma = 1
	}
	return straight(func(img image.Image) *image.RGBA { return adjust.Gamma(img, gamma) })
}

// Hue rotates hue by degrees.
func Hue(degrees int) rounded.ColorFilter {
	return straight(func(img image.Image) *image.RGBA { return adjust.Hue(img, degrees) })
}

// Blur applies a gaussian blur of the given radius. Radii <= 0 copy the
// input.
func Blur(radius float64) rounded.ColorFilter {
	return Func(func(img image.Image) *image.RGBA {
		if !(radius > 0) {
			return clone.AsRGBA(img)
		}
		// premultiplied pixels blur without dark fringes
		return blur.Gaussian(img, radius)
	})
}

// Tint replaces every color with c, keeping the source's coverage, like
// a source-in blend.
func Tint(c rounded.RGBA) rounded.ColorFilter {
	t := color.RGBAModel.Convert(c.Color()).(color.RGBA)
	return Func(func(img image.Image) *image.RGBA {
		return adjust.Apply(img, func(px color.RGBA) color.RGBA {
			a := uint32(px.A)
			return color.RGBA{
				R: mulDiv255(uint32(t.R), a),
				G: mulDiv255(uint32(t.G), a),
				B: mulDiv255(uint32(t.B), a),
				A: mulDiv255(uint32(t.A), a),
			}
		})
	})
}

// Opacity multiplies coverage by factor in [0, 1].
func Opacity(factor float64) rounded.ColorFilter {
	f := uint32(math.Round(math.Max(0, math.Min(1, factor)) * 255))
	return Func(func(img image.Image) *image.RGBA {
		return adjust.Apply(img, func(px color.RGBA) color.RGBA {
			return color.RGBA{
				R: mulDiv255(uint32(px.R), f),
				G: mulDiv255(uint32(px.G), f),
				B: mulDiv255(uint32(px.B), f),
				A: mulDiv255(uint32(px.A), f),
			}
		})
	})
}

func clampChange(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
