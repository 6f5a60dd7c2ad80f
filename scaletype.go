package rounded

import (
	"fmt"
	"strings"
)

// ScaleType is the policy for mapping the bitmap onto the target bounds.
// The zero value is ScaleFitCenter.
type ScaleType uint8

const (
	// ScaleFitCenter fits the bitmap inside the bounds preserving aspect
	// ratio, centered.
	ScaleFitCenter ScaleType = iota
	// ScaleFitStart fits preserving aspect ratio, aligned top-left.
	ScaleFitStart
	// ScaleFitEnd fits preserving aspect ratio, aligned bottom-right.
	ScaleFitEnd
	// ScaleFitXY stretches each axis independently to fill the bounds.
	ScaleFitXY
	// ScaleCenter centers the bitmap without scaling.
	ScaleCenter
	// ScaleCenterCrop scales uniformly so the bitmap covers the bounds,
	// cropping the overflowing axis.
	ScaleCenterCrop
	// ScaleCenterInside scales down uniformly so the bitmap fits, never up.
	ScaleCenterInside
	// ScaleMatrix maps the bitmap through the image matrix supplied by the host.
	ScaleMatrix
)

var scaleTypeNames = [...]string{
	ScaleFitCenter:    "fit_center",
	ScaleFitStart:     "fit_start",
	ScaleFitEnd:       "fit_end",
	ScaleFitXY:        "fit_xy",
	ScaleCenter:       "center",
	ScaleCenterCrop:   "center_crop",
	ScaleCenterInside: "center_inside",
	ScaleMatrix:       "matrix",
}

// attributeScaleTypes is the index order used by attribute sets.
var attributeScaleTypes = [...]ScaleType{
	ScaleMatrix,
	ScaleFitXY,
	ScaleFitStart,
	ScaleFitCenter,
	ScaleFitEnd,
	ScaleCenter,
	ScaleCenterCrop,
	ScaleCenterInside,
}

// String returns the attribute name of the scale type.
func (s ScaleType) String() string {
	if int(s) < len(scaleTypeNames) {
		return scaleTypeNames[s]
	}
	return "Unknown"
}

// IsValid reports whether s is a known scale type.
func (s ScaleType) IsValid() bool {
	return int(s) < len(scaleTypeNames)
}

// ParseScaleType parses an attribute name such as "center_crop".
func ParseScaleType(name string) (ScaleType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range scaleTypeNames {
		if s == n {
			return ScaleType(i), nil
		}
	}
	return ScaleFitCenter, fmt.Errorf("%w: unknown scale type %q", ErrInvalidArgument, name)
}

// ScaleTypeFromIndex maps an attribute enum index to a scale type.
// Out-of-range indexes map to the default, ScaleFitCenter.
func ScaleTypeFromIndex(i int) ScaleType {
	if i < 0 || i >= len(attributeScaleTypes) {
		return ScaleFitCenter
	}
	return attributeScaleTypes[i]
}

// MarshalText implements encoding.TextMarshaler.
func (s ScaleType) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: scale type %d", ErrInvalidArgument, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ScaleType) UnmarshalText(text []byte) error {
	v, err := ParseScaleType(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
