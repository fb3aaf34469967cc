package blueprint_test

import (
	"fmt"

	"github.com/go-drift/mosaic/pkg/blueprint"
	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/layout"
)

func ExampleComposeSection() {
	row := blueprint.NewGroup(layout.AxisHorizontal,
		layout.FractionalWidth(1.0), layout.Absolute(120),
		blueprint.NewSlots(2, layout.FractionalWidth(0.5), layout.FractionalHeight(1.0)),
	)

	section := blueprint.ComposeSection(row, engine.DefaultFactory{})
	fmt.Print(engine.TreeString(section.Root()))
	// Output:
	// composite axis=horizontal size=fractionalWidth(1) x absolute(120)
	//   leaf size=fractionalWidth(0.5) x fractionalHeight(1)
	//   leaf size=fractionalWidth(0.5) x fractionalHeight(1)
}

func ExampleCollect() {
	heights := []float64{44, 60, 44}

	list := blueprint.NewGroup(layout.AxisVertical,
		layout.FractionalWidth(1.0), layout.Estimated(148),
		blueprint.Collect(heights, func(h float64) blueprint.Node {
			return blueprint.NewSlot(layout.FractionalWidth(1.0), layout.Absolute(h))
		}),
	)

	fmt.Print(engine.TreeString(list.Compose(engine.DefaultFactory{})))
	// Output:
	// composite axis=vertical size=fractionalWidth(1) x estimated(148)
	//   leaf size=fractionalWidth(1) x absolute(44)
	//   leaf size=fractionalWidth(1) x absolute(60)
	//   leaf size=fractionalWidth(1) x absolute(44)
}

func ExampleIfElse() {
	compact := true

	grid := blueprint.NewGroup(layout.AxisHorizontal,
		layout.FractionalWidth(1.0), layout.Absolute(100),
		blueprint.IfElse(compact,
			blueprint.NewSlots(4, layout.FractionalWidth(0.25), layout.FractionalHeight(1.0)),
			blueprint.NewSlots(2, layout.FractionalWidth(0.5), layout.FractionalHeight(1.0)),
		),
	)

	c := grid.Compose(engine.DefaultFactory{})
	fmt.Println(c.Len())
	// Output: 4
}
