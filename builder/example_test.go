// File: builder/example_test.go
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/campnet/builder"
	"github.com/katalvlaran/campnet/campgrid"
)

// Example demonstrates the full three-pass construction pipeline:
// assignment with household cliques, ethnicity-gated proximity wiring
// over a 2×3 camp grid, and shared-queue contacts — each pass returning
// an independent copy.
func Example() {
	grid, _ := campgrid.New(2, 3)
	caps := []int{5, 5, 5, 5, 5, 5}

	base, lists, err := builder.AssignPopulation(grid.Structures(), 24, caps,
		1, builder.LabelNeighbor, builder.WithSeed(42))
	if err != nil {
		fmt.Println("assign:", err)
		return
	}

	wired, err := builder.ConnectNeighbors(base, grid.Structures(), lists, grid,
		1, 1, builder.LabelProximity)
	if err != nil {
		fmt.Println("proximity:", err)
		return
	}

	full, err := builder.ConnectFoodQueue(wired, lists,
		1, builder.LabelFood, builder.WithSeed(42))
	if err != nil {
		fmt.Println("queue:", err)
		return
	}

	housed := 0
	for _, occupants := range lists {
		housed += len(occupants)
	}
	fmt.Println("population:", full.NodeCount())
	fmt.Println("housed:", housed)
	fmt.Println("layers never shrink:", full.EdgeCount() >= wired.EdgeCount() &&
		wired.EdgeCount() >= base.EdgeCount())

	// Output:
	// population: 24
	// housed: 24
	// layers never shrink: true
}
