package testing

import (
	"fmt"

	"github.com/go-drift/mosaic/pkg/engine"
)

// LeafCount returns the number of leaves under root, root included,
// counting depth-first.
func LeafCount(root engine.Element) int {
	count := 0
	walk(root, func(el engine.Element) {
		if _, ok := el.(*engine.Leaf); ok {
			count++
		}
	})
	return count
}

// CompositeCount returns the number of composites under root, root
// included.
func CompositeCount(root engine.Element) int {
	count := 0
	walk(root, func(el engine.Element) {
		if _, ok := el.(*engine.Composite); ok {
			count++
		}
	})
	return count
}

// CollectLeaves returns every leaf under root in depth-first pre-order.
func CollectLeaves(root engine.Element) []*engine.Leaf {
	var leaves []*engine.Leaf
	walk(root, func(el engine.Element) {
		if leaf, ok := el.(*engine.Leaf); ok {
			leaves = append(leaves, leaf)
		}
	})
	return leaves
}

// ElementAt follows a child index path from root and returns the element it
// lands on. An empty path returns root itself. Panics when the path indexes
// out of range or descends through a leaf, naming the step that failed.
func ElementAt(root engine.Element, path ...int) engine.Element {
	current := root
	for step, index := range path {
		composite, ok := current.(*engine.Composite)
		if !ok {
			panic(fmt.Sprintf("ElementAt: step %d of path %v descends through a leaf", step, path))
		}
		children := composite.Elements()
		if index < 0 || index >= len(children) {
			panic(fmt.Sprintf("ElementAt: step %d of path %v is out of range (0..%d)", step, path, len(children)-1))
		}
		current = children[index]
	}
	return current
}

// CompositeAt follows a child index path from root like ElementAt and
// asserts the destination is a composite.
func CompositeAt(root engine.Element, path ...int) *engine.Composite {
	el := ElementAt(root, path...)
	composite, ok := el.(*engine.Composite)
	if !ok {
		panic(fmt.Sprintf("CompositeAt: path %v lands on %T, not a composite", path, el))
	}
	return composite
}

// LeafAt follows a child index path from root like ElementAt and asserts
// the destination is a leaf.
func LeafAt(root engine.Element, path ...int) *engine.Leaf {
	el := ElementAt(root, path...)
	leaf, ok := el.(*engine.Leaf)
	if !ok {
		panic(fmt.Sprintf("LeafAt: path %v lands on %T, not a leaf", path, el))
	}
	return leaf
}

// walk visits root and every element beneath it in depth-first pre-order.
func walk(el engine.Element, visit func(engine.Element)) {
	visit(el)
	if composite, ok := el.(*engine.Composite); ok {
		composite.VisitElements(func(child engine.Element) {
			walk(child, visit)
		})
	}
}
