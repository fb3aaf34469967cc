// Package engine models the host layout engine that composed blueprints
// target.
//
// Blueprint composition lowers a declarative node tree into the element
// values defined here. Elements are immutable: once constructed they carry
// their sizing contract, insets, and spacing as plain data for the host to
// consume, and nothing in this package mutates them afterwards.
//
// # Elements
//
// Two element kinds exist. A Leaf is a terminal element describing a single
// cell's sizing contract. A Composite is a container holding an ordered run
// of child elements along one axis. Both implement the sealed Element
// interface; no other element kinds can appear in a composed tree.
//
// A Section wraps the root composite of a fully composed tree for handoff.
//
// # Factories
//
// Composition never constructs elements directly. It asks a Factory, which
// is the seam where hosts inject their own construction policy (interning,
// counting, instrumentation). DefaultFactory is the standard implementation
// and its zero value is ready to use:
//
//	section := blueprint.ComposeSection(group, engine.DefaultFactory{})
//
// A factory may additionally implement RunFactory to advertise that it can
// build a composite from a single repeated leaf. Factories that do not are
// always handed the explicit element list.
package engine
