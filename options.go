package rounded

// ViewOption configures an ImageView during creation.
//
// Example:
//
//	v := rounded.NewImageView(
//	    rounded.WithScaleType(rounded.ScaleCenterCrop),
//	    rounded.WithCornerRadius(16),
//	    rounded.WithBorder(2, rounded.White),
//	)
type ViewOption func(*viewOptions)

// viewOptions holds the initial ImageView configuration.
type viewOptions struct {
	invalidate       func()
	scaleType        ScaleType
	radii            CornerRadii
	borderWidth      float64
	borderColors     *ColorStateList
	oval             bool
	tileX, tileY     TileMode
	mutateBackground bool
}

// defaultViewOptions returns the configuration of a plain ImageView.
func defaultViewOptions() viewOptions {
	return viewOptions{
		scaleType:    ScaleFitCenter,
		borderColors: ColorStateValueOf(DefaultBorderColor),
	}
}

// WithInvalidator sets the function called whenever the view needs to be
// redrawn. The host toolkit typically schedules a Draw from it.
func WithInvalidator(fn func()) ViewOption {
	return func(o *viewOptions) {
		o.invalidate = fn
	}
}

// WithScaleType sets the initial scale type.
func WithScaleType(st ScaleType) ViewOption {
	return func(o *viewOptions) {
		if st.IsValid() {
			o.scaleType = st
		}
	}
}

// WithCornerRadius rounds every corner by r. Invalid values become 0.
func WithCornerRadius(r float64) ViewOption {
	return WithCornerRadii(UniformRadii(r))
}

// WithCornerRadii sets independent corner radii. Invalid values become 0.
func WithCornerRadii(radii CornerRadii) ViewOption {
	return func(o *viewOptions) {
		o.radii = radii.Sanitize()
	}
}

// WithBorder sets the border width and a single border color.
func WithBorder(width float64, color RGBA) ViewOption {
	return func(o *viewOptions) {
		o.borderWidth = sanitizeLength(width)
		o.borderColors = ColorStateValueOf(color)
	}
}

// WithBorderColors sets state-dependent border colors.
func WithBorderColors(colors *ColorStateList) ViewOption {
	return func(o *viewOptions) {
		if colors != nil {
			o.borderColors = colors
		}
	}
}

// WithOval clips the image to an ellipse.
func WithOval(oval bool) ViewOption {
	return func(o *viewOptions) {
		o.oval = oval
	}
}

// WithTileMode sets the horizontal and vertical tile modes.
func WithTileMode(x, y TileMode) ViewOption {
	return func(o *viewOptions) {
		o.tileX, o.tileY = x, y
	}
}

// WithMutateBackground shapes the background as well as the image.
func WithMutateBackground(mutate bool) ViewOption {
	return func(o *viewOptions) {
		o.mutateBackground = mutate
	}
}
