package engine

import "github.com/go-drift/mosaic/pkg/errors"

// Factory constructs host elements on behalf of a composition pass.
// Implementations may intern, count, or otherwise instrument construction,
// but every returned element must be built from the given spec.
type Factory interface {
	// Leaf constructs a terminal element.
	Leaf(spec LeafSpec) *Leaf
	// Composite constructs a container from an ordered, non-empty child list.
	Composite(spec CompositeSpec, elements []Element) *Composite
	// Section wraps a fully composed root composite.
	Section(root *Composite) *Section
}

// RunFactory is an optional capability: factories implementing it can build
// a composite from a single leaf repeated count times, letting composition
// collapse runs of structurally identical leaves instead of materializing
// each one. The resulting composite must be indistinguishable from one built
// with the explicit list.
type RunFactory interface {
	Factory

	// CompositeRun constructs a container holding count occurrences of leaf.
	CompositeRun(spec CompositeSpec, leaf *Leaf, count int) *Composite
}

// DefaultFactory is the standard element factory. The zero value is ready to
// use. It implements RunFactory.
type DefaultFactory struct{}

// Leaf constructs a terminal element.
func (DefaultFactory) Leaf(spec LeafSpec) *Leaf {
	return NewLeaf(spec)
}

// Composite constructs a container from an ordered child list.
func (DefaultFactory) Composite(spec CompositeSpec, elements []Element) *Composite {
	return NewComposite(spec, elements)
}

// Section wraps a fully composed root composite.
func (DefaultFactory) Section(root *Composite) *Section {
	return NewSection(root)
}

// CompositeRun constructs a container holding count occurrences of leaf.
// Leaves are immutable, so the same *Leaf backs every child slot.
func (DefaultFactory) CompositeRun(spec CompositeSpec, leaf *Leaf, count int) *Composite {
	const op = "engine.DefaultFactory.CompositeRun"
	if leaf == nil {
		errors.Invariant(op, "leaf is nil")
	}
	if count < 1 {
		errors.Invariant(op, "count = %d, need at least 1", count)
	}
	elements := make([]Element, count)
	for i := range elements {
		elements[i] = leaf
	}
	return &Composite{spec: spec, elements: elements}
}
