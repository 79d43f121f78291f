// File: campgrid/example_test.go
package campgrid_test

import (
	"fmt"

	"github.com/katalvlaran/campnet/campgrid"
)

// ExampleGrid_Neighbors demonstrates proximity neighborhoods on a 2×2
// camp layout:
//
//	0 1
//	2 3
//
// From corner structure 0, every other structure lies within Chebyshev
// distance 1 once window coordinates are clamped to the grid.
func ExampleGrid_Neighbors() {
	g, _ := campgrid.New(2, 2)

	neighbors, _ := g.Neighbors(0, 1)
	fmt.Println("corner:", neighbors)

	none, _ := g.Neighbors(0, 0)
	fmt.Println("radius 0:", len(none))

	// Output:
	// corner: [1 2 3]
	// radius 0: 0
}

// ExampleGrid_Divide demonstrates column-block partitioning of a 2×4
// layout into two zones.
func ExampleGrid_Divide() {
	g, _ := campgrid.New(2, 4)

	blocks, _ := g.Divide(2)
	for i, b := range blocks {
		fmt.Println("zone", i, b)
	}

	// Output:
	// zone 0 [[0 1] [4 5]]
	// zone 1 [[2 3] [6 7]]
}
