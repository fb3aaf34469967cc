package layout

import "fmt"

// EdgeInsets shrink a box's content area on all four directional edges.
// Leading and trailing follow the layout direction rather than naming left
// and right explicitly. The zero EdgeInsets means no insets; negative values
// are passed through to the host engine, which owns clamping decisions.
type EdgeInsets struct {
	Top      float64
	Leading  float64
	Bottom   float64
	Trailing float64
}

// EdgeInsetsAll returns insets with the same value on every edge.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Top: value, Leading: value, Bottom: value, Trailing: value}
}

// EdgeInsetsOnly returns insets with the given per-edge values, in
// top, leading, bottom, trailing order.
func EdgeInsetsOnly(top, leading, bottom, trailing float64) EdgeInsets {
	return EdgeInsets{Top: top, Leading: leading, Bottom: bottom, Trailing: trailing}
}

// EdgeInsetsSymmetric returns insets with one value for the vertical edges
// (top/bottom) and another for the horizontal edges (leading/trailing).
func EdgeInsetsSymmetric(vertical, horizontal float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Leading: horizontal, Bottom: vertical, Trailing: horizontal}
}

// IsZero returns true when every edge is zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// String returns a human-readable representation of the insets.
func (e EdgeInsets) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", e.Top, e.Leading, e.Bottom, e.Trailing)
}
