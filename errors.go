package rounded

import "errors"

// Common errors returned by the drawable engine.
var (
	// ErrInvalidBitmap is returned when a bitmap has a non-positive width or height.
	ErrInvalidBitmap = errors.New("rounded: invalid bitmap dimensions")

	// ErrInvalidArgument is returned by the per-corner radius API for NaN,
	// infinite, or negative radii, and by the uniform-radius compatibility
	// API when more than one distinct nonzero radius is given.
	ErrInvalidArgument = errors.New("rounded: invalid argument")

	// ErrRasterize is returned when a source cannot be drawn into an
	// offscreen bitmap.
	ErrRasterize = errors.New("rounded: rasterization failed")
)
