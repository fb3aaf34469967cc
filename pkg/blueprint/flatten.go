package blueprint

import "github.com/go-drift/mosaic/pkg/errors"

// Flatten normalizes a node into the ordered sequence of concrete nodes it
// contributes to a parent's child list. A slot or group contributes itself;
// a fragment contributes its items, recursively flattened, in order. An
// empty fragment contributes nothing. The result never contains fragments.
//
// Flatten is pure. Group construction runs it automatically; it is exported
// for callers that assemble child lists by hand.
func Flatten(n Node) []Node {
	return appendFlattened(nil, "blueprint.Flatten", n)
}

// flattenAll flattens each node in order into one sequence.
func flattenAll(op string, nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		out = appendFlattened(out, op, n)
	}
	return out
}

func appendFlattened(dst []Node, op string, n Node) []Node {
	if n == nil {
		errors.Invariant(op, "nil node in children")
	}
	if f, ok := n.(*fragment); ok {
		for _, item := range f.items {
			dst = appendFlattened(dst, op, item)
		}
		return dst
	}
	return append(dst, n)
}
