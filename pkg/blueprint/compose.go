package blueprint

import (
	"go.uber.org/zap"

	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/errors"
)

// Compose lowers the group and everything beneath it into host elements
// constructed through f, returning the composed composite.
//
// Children are lowered in order. A slot expands into its replica count of
// identically configured leaves; a nested group recursively composes into
// one composite. Leaves and composites land in a single ordered child list,
// preserving the caller's written order exactly.
//
// When the finished child list is a run of more than one structurally
// identical leaves and f implements engine.RunFactory, the composite is
// built through CompositeRun instead of the explicit list. The collapsed
// form is never observable in the resulting geometry.
//
// Composition is deterministic and allocates fresh elements on every call.
// A group with no children panics with an invariant error: the tree was
// built from control flow that produced nothing, which the host engine has
// no sensible rendering for.
func (g *Group) Compose(f engine.Factory) *engine.Composite {
	const op = "blueprint.Group.Compose"
	if f == nil {
		errors.Invariant(op, "factory is nil")
	}
	return composeGroup(g, f)
}

func composeGroup(g *Group, f engine.Factory) *engine.Composite {
	const op = "blueprint.Group.Compose"
	if len(g.children) == 0 {
		errors.Invariant(op, "group has no children")
	}

	elements := make([]engine.Element, 0, len(g.children))
	for _, child := range g.children {
		switch child := child.(type) {
		case *Slot:
			spec := engine.LeafSpec{
				Size:        child.size,
				Insets:      child.insets,
				EdgeSpacing: child.edgeSpacing,
			}
			for i := 0; i < child.replicas; i++ {
				elements = append(elements, f.Leaf(spec))
			}
		case *Group:
			elements = append(elements, composeGroup(child, f))
		case *fragment:
			errors.Invariant(op, "fragment in composed child list; groups must be built from flattened children")
		default:
			errors.Invariant(op, "unknown node kind %T", child)
		}
	}

	spec := engine.CompositeSpec{
		Axis:        g.axis,
		Size:        g.size,
		Insets:      g.insets,
		EdgeSpacing: g.edgeSpacing,
		InterItem:   g.interItem,
	}

	if leaf, n, ok := homogeneousRun(elements); ok {
		if rf, ok := f.(engine.RunFactory); ok {
			logger.Debug("collapsing homogeneous run", zap.Int("leaves", n))
			return rf.CompositeRun(spec, leaf, n)
		}
	}
	return f.Composite(spec, elements)
}

// homogeneousRun reports whether elements is a run of more than one
// structurally identical leaves.
func homogeneousRun(elements []engine.Element) (*engine.Leaf, int, bool) {
	if len(elements) < 2 {
		return nil, 0, false
	}
	first, ok := elements[0].(*engine.Leaf)
	if !ok {
		return nil, 0, false
	}
	for _, el := range elements[1:] {
		leaf, ok := el.(*engine.Leaf)
		if !ok || !first.Equal(leaf) {
			return nil, 0, false
		}
	}
	return first, len(elements), true
}
