package layout

import (
	"fmt"
	"strings"
)

// SpacingMode identifies how a Spacing's value is interpreted.
// SpacingUnset is the zero value, so an omitted Spacing leaves the host
// engine's default in place.
type SpacingMode int

const (
	// SpacingUnset means no spacing was specified for this edge.
	SpacingUnset SpacingMode = iota
	// SpacingFixed is an exact gap in host engine units.
	SpacingFixed
	// SpacingFlexible is a minimum gap the host engine may grow to fill
	// leftover space.
	SpacingFlexible
)

// String returns a human-readable representation of the spacing mode.
func (m SpacingMode) String() string {
	switch m {
	case SpacingUnset:
		return "unset"
	case SpacingFixed:
		return "fixed"
	case SpacingFlexible:
		return "flexible"
	default:
		return fmt.Sprintf("SpacingMode(%d)", int(m))
	}
}

// Spacing is a tagged gap value. The zero Spacing is unset.
type Spacing struct {
	Mode  SpacingMode
	Value float64
}

// FixedSpacing returns an exact gap in host engine units.
func FixedSpacing(value float64) Spacing {
	return Spacing{Mode: SpacingFixed, Value: value}
}

// FlexibleSpacing returns a gap of at least value units that the host engine
// may widen to absorb leftover space.
func FlexibleSpacing(value float64) Spacing {
	return Spacing{Mode: SpacingFlexible, Value: value}
}

// IsSet returns true when the spacing has been specified.
func (s Spacing) IsSet() bool {
	return s.Mode != SpacingUnset
}

// String returns a human-readable representation of the spacing.
func (s Spacing) String() string {
	if !s.IsSet() {
		return "unset"
	}
	return fmt.Sprintf("%s(%g)", s.Mode, s.Value)
}

// EdgeSpacing carries an optional Spacing per directional edge of a box.
// Each edge is independently optional; an unset edge defers to the host
// engine's default.
type EdgeSpacing struct {
	Leading  Spacing
	Top      Spacing
	Trailing Spacing
	Bottom   Spacing
}

// IsZero returns true when no edge has spacing set.
func (e EdgeSpacing) IsZero() bool {
	return !e.Leading.IsSet() && !e.Top.IsSet() && !e.Trailing.IsSet() && !e.Bottom.IsSet()
}

// String returns a human-readable representation listing only the set edges.
func (e EdgeSpacing) String() string {
	if e.IsZero() {
		return "unset"
	}
	parts := make([]string, 0, 4)
	if e.Leading.IsSet() {
		parts = append(parts, "leading="+e.Leading.String())
	}
	if e.Top.IsSet() {
		parts = append(parts, "top="+e.Top.String())
	}
	if e.Trailing.IsSet() {
		parts = append(parts, "trailing="+e.Trailing.String())
	}
	if e.Bottom.IsSet() {
		parts = append(parts, "bottom="+e.Bottom.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
