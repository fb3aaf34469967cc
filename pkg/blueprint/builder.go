package blueprint

import "slices"

// Items composes nodes written sequentially into one value. Exactly one node
// is returned unchanged; any other count yields a transparent sequence that
// dissolves into the surrounding child list when a group captures it.
func Items(nodes ...Node) Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return &fragment{items: slices.Clone(nodes)}
}

// If returns the given nodes when cond holds and an empty sequence
// otherwise. An untaken branch contributes nothing to the enclosing group.
func If(cond bool, then ...Node) Node {
	if !cond {
		return &fragment{}
	}
	return Items(then...)
}

// IfElse returns then when cond holds and otherwise when it does not. The
// chosen branch is returned unchanged, so the composed output contains
// exactly one branch's nodes.
func IfElse(cond bool, then, otherwise Node) Node {
	if cond {
		return then
	}
	return otherwise
}

// FromNodes wraps an already-built sequence, preserving its order. The
// slice is copied.
func FromNodes(nodes []Node) Node {
	return &fragment{items: slices.Clone(nodes)}
}

// Collect builds one node per item, in iteration order, and wraps the
// results as a single value. A loop over zero items contributes nothing.
func Collect[T any](items []T, fn func(T) Node) Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		nodes = append(nodes, fn(item))
	}
	return &fragment{items: nodes}
}
