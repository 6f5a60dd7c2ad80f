package rounded

import (
	"fmt"
	"strings"
)

// Attributes is the typed attribute set of an ImageView, as loaded from a
// configuration file. Unset pointer fields keep their defaults. Lengths
// are in pixels.
type Attributes struct {
	ScaleType ScaleType `toml:"scale_type"`

	CornerRadius            *float64 `toml:"corner_radius"`
	CornerRadiusTopLeft     *float64 `toml:"corner_radius_top_left"`
	CornerRadiusTopRight    *float64 `toml:"corner_radius_top_right"`
	CornerRadiusBottomRight *float64 `toml:"corner_radius_bottom_right"`
	CornerRadiusBottomLeft  *float64 `toml:"corner_radius_bottom_left"`

	BorderWidth *float64 `toml:"border_width"`
	BorderColor *RGBA    `toml:"border_color"`

	// BorderColorStates adds state-dependent entries in front of
	// BorderColor, which becomes their default.
	BorderColorStates []StateColorAttribute `toml:"border_color_states"`

	Oval             bool `toml:"oval"`
	MutateBackground bool `toml:"mutate_background"`

	TileMode  *TileMode `toml:"tile_mode"`
	TileModeX *TileMode `toml:"tile_mode_x"`
	TileModeY *TileMode `toml:"tile_mode_y"`
}

// StateColorAttribute is one state-dependent border color.
// States is a "|" separated list of state names; a leading "!" excludes
// the state, as in "pressed|!disabled".
type StateColorAttribute struct {
	States string `toml:"states"`
	Color  RGBA   `toml:"color"`
}

// StateColor parses the states into a StateColor.
func (a StateColorAttribute) StateColor() (StateColor, error) {
	sc := StateColor{Color: a.Color}
	for _, name := range strings.Split(a.States, "|") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		exclude := strings.HasPrefix(name, "!")
		s, ok := ParseState(strings.TrimPrefix(name, "!"))
		if !ok {
			return StateColor{}, fmt.Errorf("%w: unknown state %q", ErrInvalidArgument, name)
		}
		if exclude {
			sc.Excluded |= s
		} else {
			sc.Required |= s
		}
	}
	return sc, nil
}

// Radii returns the configured corner radii. When any per-corner radius
// is set, those are used and unset corners are square; otherwise every
// corner takes CornerRadius. Negative values become 0.
func (a Attributes) Radii() CornerRadii {
	perCorner := [4]*float64{
		a.CornerRadiusTopLeft,
		a.CornerRadiusTopRight,
		a.CornerRadiusBottomRight,
		a.CornerRadiusBottomLeft,
	}
	var radii CornerRadii
	set := false
	for i, r := range perCorner {
		if r != nil && *r >= 0 {
			radii[i] = sanitizeLength(*r)
			set = true
		}
	}
	if set {
		return radii
	}
	if a.CornerRadius == nil {
		return CornerRadii{}
	}
	return UniformRadii(sanitizeLength(*a.CornerRadius))
}

// BorderColors returns the configured border colors.
func (a Attributes) BorderColors() (*ColorStateList, error) {
	def := DefaultBorderColor
	if a.BorderColor != nil {
		def = *a.BorderColor
	}
	if len(a.BorderColorStates) == 0 {
		return ColorStateValueOf(def), nil
	}
	entries := make([]StateColor, 0, len(a.BorderColorStates))
	for _, sa := range a.BorderColorStates {
		sc, err := sa.StateColor()
		if err != nil {
			return nil, err
		}
		entries = append(entries, sc)
	}
	return NewColorStateList(def, entries...), nil
}

// Options converts the attributes into view options. Options passed to
// the constructor after these override them.
func (a Attributes) Options() ([]ViewOption, error) {
	colors, err := a.BorderColors()
	if err != nil {
		return nil, err
	}
	width := 0.0
	if a.BorderWidth != nil {
		width = sanitizeLength(*a.BorderWidth)
	}

	tileX, tileY := TileClamp, TileClamp
	if a.TileMode != nil {
		tileX, tileY = *a.TileMode, *a.TileMode
	}
	if a.TileModeX != nil {
		tileX = *a.TileModeX
	}
	if a.TileModeY != nil {
		tileY = *a.TileModeY
	}

	return []ViewOption{
		WithScaleType(a.ScaleType),
		WithCornerRadii(a.Radii()),
		WithBorder(width, colors.DefaultColor()),
		WithBorderColors(colors),
		WithOval(a.Oval),
		WithMutateBackground(a.MutateBackground),
		WithTileMode(tileX, tileY),
	}, nil
}

// NewImageViewFromAttributes creates a view configured by a, then applies
// opts. It fails only if a state-dependent border color names an unknown
// state.
func NewImageViewFromAttributes(a Attributes, opts ...ViewOption) (*ImageView, error) {
	base, err := a.Options()
	if err != nil {
		return nil, err
	}
	return NewImageView(append(base, opts...)...), nil
}
