package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/manifest"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	compositeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	leafStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print a manifest's composed tree",
		Long: `Print the composed element tree of a layout manifest.

The manifest is parsed and composed against the default element factory,
then the resulting tree is printed one element per line, indented by
depth. Styling is dropped automatically when stdout is not a terminal.`,
		Usage: "mosaic dump <file.yaml>",
		Run:   runDump,
	})
}

func runDump(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("dump requires exactly one manifest file")
	}
	return dump(os.Stdout, args[0])
}

func dump(w io.Writer, path string) error {
	doc, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	section := doc.Compose(engine.DefaultFactory{})
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s (version %s)", path, doc.Version())))
	dumpElement(w, section.Root(), 0)
	return nil
}

func dumpElement(w io.Writer, el engine.Element, depth int) {
	indent := strings.Repeat("  ", depth)
	switch el := el.(type) {
	case *engine.Leaf:
		fmt.Fprintf(w, "%s%s %s\n", indent, leafStyle.Render("leaf"), leafDetails(el))
	case *engine.Composite:
		fmt.Fprintf(w, "%s%s %s\n", indent, compositeStyle.Render("composite"), compositeDetails(el))
		el.VisitElements(func(child engine.Element) {
			dumpElement(w, child, depth+1)
		})
	default:
		fmt.Fprintf(w, "%s%T\n", indent, el)
	}
}

func leafDetails(l *engine.Leaf) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size=%s", l.Size())
	if insets := l.Insets(); !insets.IsZero() {
		fmt.Fprintf(&sb, " insets=%s", insets)
	}
	if edges := l.EdgeSpacing(); !edges.IsZero() {
		fmt.Fprintf(&sb, " edges=%s", edges)
	}
	return detailStyle.Render(sb.String())
}

func compositeDetails(c *engine.Composite) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "axis=%s size=%s children=%d", c.Axis(), c.Size(), c.Len())
	if insets := c.Insets(); !insets.IsZero() {
		fmt.Fprintf(&sb, " insets=%s", insets)
	}
	if edges := c.EdgeSpacing(); !edges.IsZero() {
		fmt.Fprintf(&sb, " edges=%s", edges)
	}
	if spacing := c.InterItemSpacing(); spacing.IsSet() {
		fmt.Fprintf(&sb, " interItem=%s", spacing)
	}
	return detailStyle.Render(sb.String())
}
