package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/mosaic/pkg/blueprint"
	"github.com/go-drift/mosaic/pkg/layout"
)

// Raw document shapes. Validation that spans fields (exactly-one node form,
// required sizes, child counts) happens in the build funcs below so error
// messages can carry the node's path within the document.

type manifestDoc struct {
	Version string      `yaml:"version"`
	Section *sectionDoc `yaml:"section"`
}

// sectionDoc nests the root group under its own key, mirroring nodeDoc's
// one-form shape.
type sectionDoc struct {
	Group *groupDoc `yaml:"group"`
}

type nodeDoc struct {
	Slot   *slotDoc   `yaml:"slot"`
	Group  *groupDoc  `yaml:"group"`
	Repeat *repeatDoc `yaml:"repeat"`
}

type slotDoc struct {
	Count       *int            `yaml:"count"`
	Width       *dimensionDoc   `yaml:"width"`
	Height      *dimensionDoc   `yaml:"height"`
	Insets      *insetsDoc      `yaml:"insets"`
	EdgeSpacing *edgeSpacingDoc `yaml:"edgeSpacing"`
}

type groupDoc struct {
	Axis        string          `yaml:"axis"`
	Width       *dimensionDoc   `yaml:"width"`
	Height      *dimensionDoc   `yaml:"height"`
	Insets      *insetsDoc      `yaml:"insets"`
	EdgeSpacing *edgeSpacingDoc `yaml:"edgeSpacing"`
	InterItem   *spacingDoc     `yaml:"interItemSpacing"`
	Children    []nodeDoc       `yaml:"children"`
}

type repeatDoc struct {
	Count *int     `yaml:"count"`
	Child *nodeDoc `yaml:"child"`
}

type insetsDoc struct {
	Top      float64 `yaml:"top"`
	Leading  float64 `yaml:"leading"`
	Bottom   float64 `yaml:"bottom"`
	Trailing float64 `yaml:"trailing"`
}

type edgeSpacingDoc struct {
	Leading  *spacingDoc `yaml:"leading"`
	Top      *spacingDoc `yaml:"top"`
	Trailing *spacingDoc `yaml:"trailing"`
	Bottom   *spacingDoc `yaml:"bottom"`
}

// dimensionDoc decodes a mapping carrying exactly one dimension mode key.
type dimensionDoc struct {
	dim layout.Dimension
}

func (d *dimensionDoc) UnmarshalYAML(value *yaml.Node) error {
	key, num, err := singleNumericForm(value, "dimension",
		"fractionalWidth", "fractionalHeight", "absolute", "estimated")
	if err != nil {
		return err
	}
	switch key {
	case "fractionalWidth":
		d.dim = layout.FractionalWidth(num)
	case "fractionalHeight":
		d.dim = layout.FractionalHeight(num)
	case "absolute":
		d.dim = layout.Absolute(num)
	case "estimated":
		d.dim = layout.Estimated(num)
	}
	return nil
}

// spacingDoc decodes a mapping carrying exactly one spacing mode key.
type spacingDoc struct {
	spacing layout.Spacing
}

func (s *spacingDoc) UnmarshalYAML(value *yaml.Node) error {
	key, num, err := singleNumericForm(value, "spacing", "fixed", "flexible")
	if err != nil {
		return err
	}
	switch key {
	case "fixed":
		s.spacing = layout.FixedSpacing(num)
	case "flexible":
		s.spacing = layout.FlexibleSpacing(num)
	}
	return nil
}

// singleNumericForm decodes a one-pair mapping {mode: number} where mode is
// one of the allowed keys.
func singleNumericForm(value *yaml.Node, what string, allowed ...string) (string, float64, error) {
	oneOf := quotedList(allowed)
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return "", 0, fmt.Errorf("line %d: %s takes exactly one of %s", value.Line, what, oneOf)
	}

	var key string
	if err := value.Content[0].Decode(&key); err != nil {
		return "", 0, fmt.Errorf("line %d: %s key: %w", value.Content[0].Line, what, err)
	}
	found := false
	for _, a := range allowed {
		if key == a {
			found = true
			break
		}
	}
	if !found {
		return "", 0, fmt.Errorf("line %d: unknown %s mode %q, want one of %s",
			value.Content[0].Line, what, key, oneOf)
	}

	var num float64
	if err := value.Content[1].Decode(&num); err != nil {
		return "", 0, fmt.Errorf("line %d: %s %s: %w", value.Content[1].Line, what, key, err)
	}
	return key, num, nil
}

func quotedList(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", item)
	}
	return out
}

func buildNode(path string, n nodeDoc) (blueprint.Node, error) {
	forms := 0
	if n.Slot != nil {
		forms++
	}
	if n.Group != nil {
		forms++
	}
	if n.Repeat != nil {
		forms++
	}
	if forms != 1 {
		return nil, fmt.Errorf("%s: node requires exactly one of slot, group, repeat", path)
	}

	switch {
	case n.Slot != nil:
		return buildSlot(path+".slot", n.Slot)
	case n.Group != nil:
		return buildGroup(path+".group", n.Group)
	default:
		return buildRepeat(path+".repeat", n.Repeat)
	}
}

func buildSlot(path string, s *slotDoc) (blueprint.Node, error) {
	count := 1
	if s.Count != nil {
		count = *s.Count
	}
	if count < 1 {
		return nil, fmt.Errorf("%s: count must be at least 1, got %d", path, count)
	}
	if s.Width == nil || s.Height == nil {
		return nil, fmt.Errorf("%s: width and height are required", path)
	}

	slot := blueprint.NewSlots(count, s.Width.dim, s.Height.dim)
	if s.Insets != nil {
		slot.WithInsets(s.Insets.insets())
	}
	if s.EdgeSpacing != nil {
		slot.WithEdgeSpacing(s.EdgeSpacing.edgeSpacing())
	}
	return slot, nil
}

func buildGroup(path string, g *groupDoc) (*blueprint.Group, error) {
	var axis layout.Axis
	switch g.Axis {
	case "horizontal":
		axis = layout.AxisHorizontal
	case "vertical":
		axis = layout.AxisVertical
	case "":
		return nil, fmt.Errorf("%s: axis is required", path)
	default:
		return nil, fmt.Errorf("%s: unknown axis %q, want %q or %q", path, g.Axis, "horizontal", "vertical")
	}
	if g.Width == nil || g.Height == nil {
		return nil, fmt.Errorf("%s: width and height are required", path)
	}

	children := make([]blueprint.Node, 0, len(g.Children))
	for i, child := range g.Children {
		node, err := buildNode(fmt.Sprintf("%s.children[%d]", path, i), child)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}

	group := blueprint.NewGroup(axis, g.Width.dim, g.Height.dim, children...)
	if len(group.Children()) == 0 {
		return nil, fmt.Errorf("%s: group has no children", path)
	}

	if g.Insets != nil {
		group.WithInsets(g.Insets.insets())
	}
	if g.EdgeSpacing != nil {
		group.WithEdgeSpacing(g.EdgeSpacing.edgeSpacing())
	}
	if g.InterItem != nil {
		group.WithInterItemSpacing(g.InterItem.spacing)
	}
	return group, nil
}

// buildRepeat expands the child count times, building a fresh copy per
// expansion so no node is shared between tree positions. A zero count
// contributes nothing.
func buildRepeat(path string, r *repeatDoc) (blueprint.Node, error) {
	if r.Count == nil {
		return nil, fmt.Errorf("%s: count is required", path)
	}
	if *r.Count < 0 {
		return nil, fmt.Errorf("%s: count must not be negative, got %d", path, *r.Count)
	}
	if r.Child == nil {
		return nil, fmt.Errorf("%s: child is required", path)
	}

	nodes := make([]blueprint.Node, 0, *r.Count)
	for i := 0; i < *r.Count; i++ {
		node, err := buildNode(path+".child", *r.Child)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return blueprint.FromNodes(nodes), nil
}

func (i *insetsDoc) insets() layout.EdgeInsets {
	return layout.EdgeInsetsOnly(i.Top, i.Leading, i.Bottom, i.Trailing)
}

func (e *edgeSpacingDoc) edgeSpacing() layout.EdgeSpacing {
	var out layout.EdgeSpacing
	if e.Leading != nil {
		out.Leading = e.Leading.spacing
	}
	if e.Top != nil {
		out.Top = e.Top.spacing
	}
	if e.Trailing != nil {
		out.Trailing = e.Trailing.spacing
	}
	if e.Bottom != nil {
		out.Bottom = e.Bottom.spacing
	}
	return out
}
