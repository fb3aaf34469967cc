package engine

import (
	"slices"

	"github.com/go-drift/mosaic/pkg/errors"
	"github.com/go-drift/mosaic/pkg/layout"
)

// Element is a composed host layout element: either a *Leaf or a *Composite.
// The interface is sealed; the two implementations in this package are the
// only element kinds a composed tree can contain.
type Element interface {
	isElement()
}

// LeafSpec carries everything needed to construct a Leaf.
type LeafSpec struct {
	Size        layout.Size
	Insets      layout.EdgeInsets
	EdgeSpacing layout.EdgeSpacing
}

// Leaf is a terminal element describing one cell's sizing contract.
type Leaf struct {
	spec LeafSpec
}

// NewLeaf constructs a leaf element from its spec.
func NewLeaf(spec LeafSpec) *Leaf {
	return &Leaf{spec: spec}
}

// Size returns the leaf's width/height sizing pair.
func (l *Leaf) Size() layout.Size {
	return l.spec.Size
}

// Insets returns the content insets applied inside the leaf's bounds.
func (l *Leaf) Insets() layout.EdgeInsets {
	return l.spec.Insets
}

// EdgeSpacing returns the outer per-edge spacing around the leaf.
func (l *Leaf) EdgeSpacing() layout.EdgeSpacing {
	return l.spec.EdgeSpacing
}

// Equal reports whether two leaves carry identical sizing contracts.
// A composite whose children are all pairwise Equal renders the same
// however many distinct Leaf values back them.
func (l *Leaf) Equal(other *Leaf) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.spec == other.spec
}

func (*Leaf) isElement() {}

// CompositeSpec carries the container-level configuration for a Composite.
type CompositeSpec struct {
	Axis        layout.Axis
	Size        layout.Size
	Insets      layout.EdgeInsets
	EdgeSpacing layout.EdgeSpacing
	InterItem   layout.Spacing
}

// Composite is a container element laying out an ordered run of children
// along one axis.
type Composite struct {
	spec     CompositeSpec
	elements []Element
}

// NewComposite constructs a composite from its spec and ordered children.
// The elements slice is copied. A composite owns at least one element;
// constructing one with no children, or with a nil child, panics with an
// invariant error.
func NewComposite(spec CompositeSpec, elements []Element) *Composite {
	const op = "engine.NewComposite"
	if len(elements) == 0 {
		errors.Invariant(op, "composite requires at least one element")
	}
	for i, el := range elements {
		if el == nil {
			errors.Invariant(op, "element %d is nil", i)
		}
	}
	return &Composite{spec: spec, elements: slices.Clone(elements)}
}

// Axis returns the axis children are laid out along.
func (c *Composite) Axis() layout.Axis {
	return c.spec.Axis
}

// Size returns the composite's width/height sizing pair.
func (c *Composite) Size() layout.Size {
	return c.spec.Size
}

// Insets returns the content insets applied inside the composite's bounds.
func (c *Composite) Insets() layout.EdgeInsets {
	return c.spec.Insets
}

// EdgeSpacing returns the outer per-edge spacing around the composite.
func (c *Composite) EdgeSpacing() layout.EdgeSpacing {
	return c.spec.EdgeSpacing
}

// InterItemSpacing returns the gap applied between adjacent children.
func (c *Composite) InterItemSpacing() layout.Spacing {
	return c.spec.InterItem
}

// Len returns the number of direct children.
func (c *Composite) Len() int {
	return len(c.elements)
}

// Elements returns a copy of the ordered child list.
func (c *Composite) Elements() []Element {
	return slices.Clone(c.elements)
}

// VisitElements calls the visitor for each direct child in order.
func (c *Composite) VisitElements(visitor func(Element)) {
	for _, el := range c.elements {
		visitor(el)
	}
}

func (*Composite) isElement() {}

// Section wraps the root composite of a fully composed tree for handoff to
// the host.
type Section struct {
	root *Composite
}

// NewSection wraps a root composite. A nil root panics with an invariant
// error.
func NewSection(root *Composite) *Section {
	if root == nil {
		errors.Invariant("engine.NewSection", "root composite is nil")
	}
	return &Section{root: root}
}

// Root returns the section's root composite.
func (s *Section) Root() *Composite {
	return s.root
}
