package layout

import "fmt"

// DimensionMode identifies how a Dimension's value is interpreted.
type DimensionMode int

const (
	// DimensionFractionalWidth sizes as a proportion of the parent's width.
	DimensionFractionalWidth DimensionMode = iota
	// DimensionFractionalHeight sizes as a proportion of the parent's height.
	DimensionFractionalHeight
	// DimensionAbsolute sizes as a fixed length in host engine units.
	DimensionAbsolute
	// DimensionEstimated sizes as an initial guess; the host engine replaces
	// it with a measured length once content is available.
	DimensionEstimated
)

// String returns a human-readable representation of the dimension mode.
func (m DimensionMode) String() string {
	switch m {
	case DimensionFractionalWidth:
		return "fractionalWidth"
	case DimensionFractionalHeight:
		return "fractionalHeight"
	case DimensionAbsolute:
		return "absolute"
	case DimensionEstimated:
		return "estimated"
	default:
		return fmt.Sprintf("DimensionMode(%d)", int(m))
	}
}

// Dimension is a tagged sizing value for one axis of a box.
//
// Dimensions are immutable values; construct them with [FractionalWidth],
// [FractionalHeight], [Absolute], or [Estimated] rather than struct literals.
// The zero Dimension is fractionalWidth(0), which is a legal (if degenerate)
// size; this package performs no validation on Value.
type Dimension struct {
	Mode  DimensionMode
	Value float64
}

// FractionalWidth returns a Dimension sized as the given proportion of the
// parent's width. Proportions above 1 describe over-sized boxes and are
// passed through to the host engine unchanged.
func FractionalWidth(fraction float64) Dimension {
	return Dimension{Mode: DimensionFractionalWidth, Value: fraction}
}

// FractionalHeight returns a Dimension sized as the given proportion of the
// parent's height.
func FractionalHeight(fraction float64) Dimension {
	return Dimension{Mode: DimensionFractionalHeight, Value: fraction}
}

// Absolute returns a Dimension of a fixed length in host engine units.
func Absolute(length float64) Dimension {
	return Dimension{Mode: DimensionAbsolute, Value: length}
}

// Estimated returns a Dimension carrying an initial size estimate that the
// host engine may replace after measuring content.
func Estimated(length float64) Dimension {
	return Dimension{Mode: DimensionEstimated, Value: length}
}

// IsFractional returns true for fractional-width and fractional-height modes.
func (d Dimension) IsFractional() bool {
	return d.Mode == DimensionFractionalWidth || d.Mode == DimensionFractionalHeight
}

// String returns a human-readable representation of the dimension.
func (d Dimension) String() string {
	return fmt.Sprintf("%s(%g)", d.Mode, d.Value)
}

// Size pairs a width and height Dimension.
type Size struct {
	Width  Dimension
	Height Dimension
}

// String returns a human-readable representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%s x %s", s.Width, s.Height)
}
