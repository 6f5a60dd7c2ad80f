package rounded

import (
	"strings"
)

// StateColor is one entry of a [ColorStateList]. It matches when every
// Required state is present and no Excluded state is.
type StateColor struct {
	Required States
	Excluded States
	Color    RGBA
}

// Matches reports whether the entry applies to the given states.
func (sc StateColor) Matches(s States) bool {
	return s.Has(sc.Required) && s&sc.Excluded == 0
}

// ColorStateList is a color that depends on interaction state.
// Entries are checked in order; the first match wins, otherwise the
// default color is used. A ColorStateList is immutable once built.
type ColorStateList struct {
	entries []StateColor
	def     RGBA
}

// ColorStateValueOf returns a list that always resolves to c.
func ColorStateValueOf(c RGBA) *ColorStateList {
	return &ColorStateList{def: c}
}

// NewColorStateList builds a list from ordered entries and a default.
func NewColorStateList(def RGBA, entries ...StateColor) *ColorStateList {
	e := make([]StateColor, len(entries))
	copy(e, entries)
	return &ColorStateList{entries: e, def: def}
}

// Resolve returns the color for the given states. It has no side effects.
func (l *ColorStateList) Resolve(s States) RGBA {
	if l == nil {
		return DefaultBorderColor
	}
	for _, e := range l.entries {
		if e.Matches(s) {
			return e.Color
		}
	}
	return l.def
}

// DefaultColor returns the color used when no entry matches.
func (l *ColorStateList) DefaultColor() RGBA {
	if l == nil {
		return DefaultBorderColor
	}
	return l.def
}

// IsStateful reports whether the resolved color can differ between states.
func (l *ColorStateList) IsStateful() bool {
	if l == nil {
		return false
	}
	for _, e := range l.entries {
		if e.Color != l.def {
			return true
		}
	}
	return false
}

// Entries returns a copy of the state entries.
func (l *ColorStateList) Entries() []StateColor {
	if l == nil {
		return nil
	}
	e := make([]StateColor, len(l.entries))
	copy(e, l.entries)
	return e
}

// Equal reports whether two lists resolve identically by construction.
func (l *ColorStateList) Equal(other *ColorStateList) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	if l.def != other.def || len(l.entries) != len(other.entries) {
		return false
	}
	for i := range l.entries {
		if l.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// String returns a deterministic description, suitable for cache keys.
//
//	ColorStateList{pressed:#ff0000ff, !enabled:#80808080, default:#000000ff}
func (l *ColorStateList) String() string {
	var sb strings.Builder
	sb.WriteString("ColorStateList{")
	for _, e := range l.Entries() {
		if e.Required != 0 {
			sb.WriteString(e.Required.String())
		}
		if e.Excluded != 0 {
			sb.WriteString("!")
			sb.WriteString(e.Excluded.String())
		}
		sb.WriteString(":")
		sb.WriteString(e.Color.HexString())
		sb.WriteString(", ")
	}
	sb.WriteString("default:")
	sb.WriteString(l.DefaultColor().HexString())
	sb.WriteString("}")
	return sb.String()
}
