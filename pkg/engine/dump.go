package engine

import (
	"fmt"
	"io"
	"strings"
)

// WriteTree writes an indented, one-line-per-element rendering of a composed
// tree to w. Unset insets and spacing are omitted from each line.
func WriteTree(w io.Writer, root Element) error {
	return writeElement(w, root, 0)
}

// TreeString renders a composed tree as WriteTree would and returns it.
func TreeString(root Element) string {
	var sb strings.Builder
	_ = writeElement(&sb, root, 0) // strings.Builder writes cannot fail
	return sb.String()
}

func writeElement(w io.Writer, el Element, depth int) error {
	indent := strings.Repeat("  ", depth)
	switch el := el.(type) {
	case *Leaf:
		_, err := fmt.Fprintf(w, "%sleaf %s\n", indent, describeLeaf(el))
		return err
	case *Composite:
		if _, err := fmt.Fprintf(w, "%scomposite %s\n", indent, describeComposite(el)); err != nil {
			return err
		}
		for _, child := range el.elements {
			if err := writeElement(w, child, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "%s%T\n", indent, el)
		return err
	}
}

func describeLeaf(l *Leaf) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size=%s", l.Size())
	if insets := l.Insets(); !insets.IsZero() {
		fmt.Fprintf(&sb, " insets=%s", insets)
	}
	if edges := l.EdgeSpacing(); !edges.IsZero() {
		fmt.Fprintf(&sb, " edges=%s", edges)
	}
	return sb.String()
}

func describeComposite(c *Composite) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "axis=%s size=%s", c.Axis(), c.Size())
	if insets := c.Insets(); !insets.IsZero() {
		fmt.Fprintf(&sb, " insets=%s", insets)
	}
	if edges := c.EdgeSpacing(); !edges.IsZero() {
		fmt.Fprintf(&sb, " edges=%s", edges)
	}
	if spacing := c.InterItemSpacing(); spacing.IsSet() {
		fmt.Fprintf(&sb, " interItem=%s", spacing)
	}
	return sb.String()
}
