package campgrid_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/campnet/campgrid"
)

// TestNeighborInvariants uses property-based testing to verify the two
// neighborhood invariants: a structure never neighbors itself, and
// growing the proximity radius never shrinks the neighbor set.
func TestNeighborInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("self never appears in its neighborhood", prop.ForAll(
		func(width, height, proximity int) bool {
			g, err := campgrid.New(width, height)
			if err != nil {
				return false
			}
			for s := 0; s < g.Structures(); s++ {
				neighbors, err := g.Neighbors(s, proximity)
				if err != nil {
					return false
				}
				for _, n := range neighbors {
					if n == s {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 6),
		gen.IntRange(0, 4),
	))

	properties.Property("neighborhoods are monotone in proximity", prop.ForAll(
		func(width, height, proximity int) bool {
			g, err := campgrid.New(width, height)
			if err != nil {
				return false
			}
			for s := 0; s < g.Structures(); s++ {
				inner, err := g.Neighbors(s, proximity)
				if err != nil {
					return false
				}
				outer, err := g.Neighbors(s, proximity+1)
				if err != nil {
					return false
				}
				set := make(map[int]struct{}, len(outer))
				for _, n := range outer {
					set[n] = struct{}{}
				}
				for _, n := range inner {
					if _, ok := set[n]; !ok {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 6),
		gen.IntRange(1, 6),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}
