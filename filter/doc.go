// Package filter provides color filters for drawables.
//
// Every filter implements rounded.ColorFilter and returns a new
// *image.RGBA, leaving its input untouched:
//
//	d.SetColorFilter(filter.Grayscale())
//	view.SetColorFilter(filter.Chain(filter.Sepia(), filter.Brightness(0.1)))
//
// Adjustments built on github.com/anthonynsimon/bild operate on
// unpremultiplied colors, so translucent pixels keep their hue.
package filter
