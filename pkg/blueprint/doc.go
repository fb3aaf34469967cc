// Package blueprint builds declarative layout trees and lowers them into
// host engine elements.
//
// This package defines the node model for describing hierarchical,
// two-dimensional layouts: Slot, Group, and the transparent sequence values
// returned by the builder helpers. A caller describes a layout with ordinary
// sequential, conditional, and iterative Go code, and composition compiles
// the description into the immutable element tree the host engine consumes.
//
// # Nodes
//
// Slot is a leaf declaring one or more adjacent, identically sized cell
// positions. Group is a container laying out an ordered run of children
// along one axis. Both carry their sizing as layout.Dimension pairs and take
// optional insets and per-edge spacing through chainable configuration
// calls:
//
//	cell := blueprint.NewSlot(layout.FractionalWidth(0.5), layout.FractionalHeight(1.0)).
//	    WithInsets(layout.EdgeInsetsAll(2))
//
//	row := blueprint.NewGroup(layout.AxisHorizontal,
//	    layout.FractionalWidth(1.0), layout.Absolute(120),
//	    cell, cell2)
//
// Configuration calls mutate and return the same node; they belong to the
// build phase. Once a group captures a node, the node must be left alone.
//
// # Control flow
//
// Conditionals and loops produce "zero or more nodes" as a single value.
// Items, If, IfElse, Collect, and FromNodes wrap ordinary Go control flow so
// each construct contributes one value to a group's child list:
//
//	gallery := blueprint.NewGroup(layout.AxisVertical,
//	    layout.FractionalWidth(1.0), layout.Estimated(600),
//	    blueprint.If(showHeader, header),
//	    blueprint.Collect(albums, func(a Album) blueprint.Node {
//	        return blueprint.NewSlot(layout.FractionalWidth(1.0), layout.Absolute(a.Height))
//	    }),
//	)
//
// The sequences these helpers return are transparent: group construction
// flattens them away, in order, so a group's children are always concrete
// slots and groups. An untaken branch or an empty loop contributes nothing.
//
// # Composition
//
// Compose lowers a group bottom-up through an engine.Factory, expanding
// replica counts and attaching sizing, insets, and spacing:
//
//	section := blueprint.ComposeSection(gallery, engine.DefaultFactory{})
//
// Composition is synchronous, deterministic, and pure apart from the
// factory calls. Contract breaches (a group composed with no children, a
// nil child) panic with errors.InvariantError rather than producing a
// degenerate layout.
package blueprint
