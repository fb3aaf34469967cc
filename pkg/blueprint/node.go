package blueprint

import (
	"slices"

	"github.com/go-drift/mosaic/pkg/errors"
	"github.com/go-drift/mosaic/pkg/layout"
)

// Node is a blueprint tree node. Exactly three kinds exist: *Slot (leaf),
// *Group (container), and the unexported fragment carrier produced by the
// builder helpers. The interface is sealed; callers cannot add node kinds.
type Node interface {
	isNode()
}

// Slot is a leaf node describing one or more adjacent, identically
// configured cell positions.
type Slot struct {
	size        layout.Size
	insets      layout.EdgeInsets
	edgeSpacing layout.EdgeSpacing
	replicas    int
}

// NewSlot describes a single cell of the given size.
func NewSlot(width, height layout.Dimension) *Slot {
	return NewSlots(1, width, height)
}

// NewSlots describes count adjacent cells sharing one size. It is a single
// declaration expanded at composition time, not count independent
// configurations. A count below 1 panics with an invariant error.
func NewSlots(count int, width, height layout.Dimension) *Slot {
	if count < 1 {
		errors.Invariant("blueprint.NewSlots", "count = %d, need at least 1", count)
	}
	return &Slot{
		size:     layout.Size{Width: width, Height: height},
		replicas: count,
	}
}

// WithInsets sets the slot's content insets and returns the same slot.
// Configuration calls are for the build phase; a slot must not be modified
// after a group captures it.
func (s *Slot) WithInsets(insets layout.EdgeInsets) *Slot {
	s.insets = insets
	return s
}

// WithEdgeSpacing sets the slot's outer per-edge spacing and returns the
// same slot.
func (s *Slot) WithEdgeSpacing(spacing layout.EdgeSpacing) *Slot {
	s.edgeSpacing = spacing
	return s
}

// Size returns the slot's width/height sizing pair.
func (s *Slot) Size() layout.Size {
	return s.size
}

// Insets returns the slot's content insets.
func (s *Slot) Insets() layout.EdgeInsets {
	return s.insets
}

// EdgeSpacing returns the slot's outer per-edge spacing.
func (s *Slot) EdgeSpacing() layout.EdgeSpacing {
	return s.edgeSpacing
}

// Replicas returns how many adjacent cells this slot declares.
func (s *Slot) Replicas() int {
	return s.replicas
}

func (*Slot) isNode() {}

// Group is a container node laying out an ordered run of children along one
// axis.
type Group struct {
	axis        layout.Axis
	size        layout.Size
	insets      layout.EdgeInsets
	edgeSpacing layout.EdgeSpacing
	interItem   layout.Spacing
	children    []Node
}

// NewGroup builds a container of the given size laying out children along
// axis. The children are flattened immediately: any fragments produced by
// Items, If, or Collect dissolve into the stored child list in order, so a
// group only ever holds slots and groups. A nil child panics with an
// invariant error.
//
// Children are captured by the group and must not be modified afterwards.
func NewGroup(axis layout.Axis, width, height layout.Dimension, children ...Node) *Group {
	return &Group{
		axis:     axis,
		size:     layout.Size{Width: width, Height: height},
		children: flattenAll("blueprint.NewGroup", children),
	}
}

// WithInsets sets the group's content insets and returns the same group.
func (g *Group) WithInsets(insets layout.EdgeInsets) *Group {
	g.insets = insets
	return g
}

// WithEdgeSpacing sets the group's outer per-edge spacing and returns the
// same group.
func (g *Group) WithEdgeSpacing(spacing layout.EdgeSpacing) *Group {
	g.edgeSpacing = spacing
	return g
}

// WithInterItemSpacing sets the gap between adjacent children and returns
// the same group.
func (g *Group) WithInterItemSpacing(spacing layout.Spacing) *Group {
	g.interItem = spacing
	return g
}

// Axis returns the axis children are laid out along.
func (g *Group) Axis() layout.Axis {
	return g.axis
}

// Size returns the group's width/height sizing pair.
func (g *Group) Size() layout.Size {
	return g.size
}

// Insets returns the group's content insets.
func (g *Group) Insets() layout.EdgeInsets {
	return g.insets
}

// EdgeSpacing returns the group's outer per-edge spacing.
func (g *Group) EdgeSpacing() layout.EdgeSpacing {
	return g.edgeSpacing
}

// InterItemSpacing returns the gap between adjacent children.
func (g *Group) InterItemSpacing() layout.Spacing {
	return g.interItem
}

// Children returns a copy of the flattened child list.
func (g *Group) Children() []Node {
	return slices.Clone(g.children)
}

func (*Group) isNode() {}

// fragment is a transparent carrier for "zero or more nodes" returned as a
// single value by the builder helpers. It has no geometric meaning and never
// survives flattening, so it can never appear in a group's child list.
type fragment struct {
	items []Node
}

func (*fragment) isNode() {}
