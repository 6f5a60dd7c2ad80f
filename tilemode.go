package rounded

import (
	"fmt"
	"strings"
)

// TileMode defines how a bitmap shader is sampled outside the bitmap.
type TileMode uint8

const (
	// TileClamp repeats the edge pixels (default).
	TileClamp TileMode = iota
	// TileRepeat tiles the bitmap.
	TileRepeat
	// TileMirror tiles the bitmap, mirroring every other copy.
	TileMirror
)

var tileModeNames = [...]string{
	TileClamp:  "clamp",
	TileRepeat: "repeat",
	TileMirror: "mirror",
}

// String returns the attribute name of the tile mode.
func (t TileMode) String() string {
	if int(t) < len(tileModeNames) {
		return tileModeNames[t]
	}
	return "Unknown"
}

// ParseTileMode parses "clamp", "repeat", or "mirror".
func ParseTileMode(name string) (TileMode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range tileModeNames {
		if s == n {
			return TileMode(i), nil
		}
	}
	return TileClamp, fmt.Errorf("%w: unknown tile mode %q", ErrInvalidArgument, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t TileMode) MarshalText() ([]byte, error) {
	if int(t) >= len(tileModeNames) {
		return nil, fmt.Errorf("%w: tile mode %d", ErrInvalidArgument, t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TileMode) UnmarshalText(text []byte) error {
	v, err := ParseTileMode(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
