package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/manifest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate and compose a layout manifest",
		Long: `Validate a layout manifest file.

The manifest is parsed, validated against the supported schema version,
and composed against the default element factory. On success a one-line
summary of the composed tree is printed; on failure the structured
parse or validation error is reported and the command exits non-zero.`,
		Usage: "mosaic check <file.yaml>",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check requires exactly one manifest file")
	}
	return check(os.Stdout, args[0])
}

func check(w io.Writer, path string) error {
	doc, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	section := doc.Compose(engine.DefaultFactory{})
	root := section.Root()
	fmt.Fprintf(w, "OK: %s (version %s, %d top-level children, %d leaves)\n",
		path, doc.Version(), root.Len(), countLeaves(root))
	return nil
}

func countLeaves(el engine.Element) int {
	switch el := el.(type) {
	case *engine.Leaf:
		return 1
	case *engine.Composite:
		total := 0
		el.VisitElements(func(child engine.Element) {
			total += countLeaves(child)
		})
		return total
	default:
		return 0
	}
}
