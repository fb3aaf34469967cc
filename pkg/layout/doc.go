// Package layout provides the shared sizing and spacing vocabulary used on
// both sides of the composition boundary: the blueprint package describes
// trees in these terms, and the engine package carries them on the composed
// layout objects.
//
// # Dimensions
//
// A Dimension is a tagged sizing value. Fractional dimensions are proportions
// of the parent's corresponding axis, absolute dimensions are fixed lengths
// in the host engine's native units, and estimated dimensions are initial
// guesses the host engine may replace after measuring real content:
//
//	width := layout.FractionalWidth(0.5)  // half the parent's width
//	height := layout.Absolute(44)         // 44 units, exactly
//	row := layout.Estimated(120)          // engine refines after measurement
//
// No bounds are enforced here. Fractions above 1 describe over-sized boxes,
// which are legal; whether to clamp or reject out-of-range values is the host
// engine's decision.
//
// # Spacing and insets
//
// Spacing values are tagged fixed-or-flexible amounts applied per edge or
// between sibling items. The zero Spacing means "unset" and leaves the host
// engine's default in place. EdgeInsets shrink a box's content area on all
// four directional edges.
package layout
