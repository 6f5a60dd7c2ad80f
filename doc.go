// Package rounded renders bitmaps with rounded corners, oval clipping,
// per-corner radii, stroked borders, and tiled edges.
//
// # Overview
//
// rounded is the drawable engine behind a rounded image view. Given a
// bitmap, a target rectangle, a scale type, a corner configuration, a
// border, and tile modes, it computes the bitmap shader transform and the
// fill and stroke geometry, then paints the result through a [Canvas].
//
// # Quick Start
//
//	img, _ := png.Decode(f)
//
//	d, err := rounded.NewDrawable(img)
//	if err != nil {
//	    return err
//	}
//	d.SetScaleType(rounded.ScaleCenterCrop)
//	_ = d.SetCornerRadius(24)
//	d.SetBorderWidth(4)
//	d.SetBounds(rounded.NewRect(0, 0, 256, 256))
//
//	dst := image.NewRGBA(image.Rect(0, 0, 256, 256))
//	d.Draw(rounded.NewRasterCanvas(dst))
//
// # Components
//
//   - [Drawable]: owns one bitmap and its geometry, computes the shader
//     matrix for a scale type, draws rect, rounded-rect, mixed-corner, and
//     oval shapes with an optional border.
//   - [ImageView]: host-side state. Converts arbitrary [Source] values into
//     drawables and forwards every configuration change to them.
//   - [Transformation]: a cache-keyed "shape this bitmap" step for image
//     pipelines, with [Memo] for memoization.
//
// Sub-packages:
//   - recording: a [Canvas] that captures draw calls for inspection and replay.
//   - filter: color filters for the content paint.
//   - cache: sharded LRU used by [Memo].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Threading
//
// Drawable and ImageView are meant to be driven from a single UI goroutine
// and perform no locking. Transformation and Memo may be used from image
// pipeline workers.
package rounded

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
