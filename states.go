package rounded

import "strings"

// States is a set of interaction states used to resolve a [ColorStateList].
type States uint16

const (
	// StateEnabled is set on elements that accept interaction.
	StateEnabled States = 1 << iota
	// StateDisabled is set on elements that cannot be interacted with.
	StateDisabled
	// StatePressed is set while the element is being pressed.
	StatePressed
	// StateFocused is set when the element has input focus.
	StateFocused
	// StateHovered is set while a pointer is over the element.
	StateHovered
	// StateSelected is set on selected elements.
	StateSelected
	// StateChecked is set on checked elements.
	StateChecked
	// StateActivated is set on activated elements.
	StateActivated
)

var stateNames = [...]string{
	"enabled",
	"disabled",
	"pressed",
	"focused",
	"hovered",
	"selected",
	"checked",
	"activated",
}

// Has reports whether every state in other is set in s.
func (s States) Has(other States) bool {
	return s&other == other
}

// String returns the set as "pressed|focused", or "none".
func (s States) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for i, name := range stateNames {
		if s&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseState parses a single state name.
func ParseState(name string) (States, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range stateNames {
		if s == n {
			return 1 << i, true
		}
	}
	return 0, false
}
