package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campnet/builder"
)

func TestAssignPopulation_Validation(t *testing.T) {
	_, _, err := builder.AssignPopulation(0, 5, nil, 1, builder.LabelNeighbor, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewStructures)

	_, _, err = builder.AssignPopulation(2, -1, []int{3, 3}, 1, builder.LabelNeighbor, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrBadPopulation)

	_, _, err = builder.AssignPopulation(2, 5, []int{3}, 1, builder.LabelNeighbor, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrCapacityMismatch)

	_, _, err = builder.AssignPopulation(2, 5, []int{3, 3}, 1, builder.LabelNeighbor)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestAssignPopulation_PlacesEveryone checks the core placement
// invariant: exactly population nodes, each with one immutable location
// consistent with the returned structure lists.
func TestAssignPopulation_PlacesEveryone(t *testing.T) {
	const population = 40
	g, lists, err := builder.AssignPopulation(8, population, []int{6, 6, 6, 6, 6, 6, 6, 6},
		1, builder.LabelNeighbor, builder.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, population, g.NodeCount())
	require.Len(t, lists, 8)

	placed := 0
	for s, occupants := range lists {
		placed += len(occupants)
		for _, id := range occupants {
			n, err := g.Node(id)
			require.NoError(t, err)
			assert.Equal(t, s, n.Location)
		}
	}
	assert.Equal(t, population, placed)
}

// TestAssignPopulation_Cliques checks that the induced subgraph on every
// structure's members is complete under the assignment label.
func TestAssignPopulation_Cliques(t *testing.T) {
	g, lists, err := builder.AssignPopulation(3, 12, []int{5, 5, 5},
		2.5, builder.LabelNeighbor, builder.WithSeed(11))
	require.NoError(t, err)

	wantEdges := 0
	for _, occupants := range lists {
		wantEdges += len(occupants) * (len(occupants) - 1) / 2
		for i := 0; i < len(occupants); i++ {
			for j := i + 1; j < len(occupants); j++ {
				assert.True(t, g.HasLabeledEdge(occupants[i], occupants[j], builder.LabelNeighbor),
					"missing clique edge %d-%d", occupants[i], occupants[j])
			}
		}
	}
	assert.Equal(t, wantEdges, g.EdgeCount())
}

// TestAssignPopulation_OvershootTolerance reproduces the reference
// scenario: 2 structures with caps [3,3] and 6 individuals — every
// structure may take at most one assignment beyond its cap.
func TestAssignPopulation_OvershootTolerance(t *testing.T) {
	g, lists, err := builder.AssignPopulation(2, 6, []int{3, 3},
		1, builder.LabelNeighbor, builder.WithSeed(3))
	require.NoError(t, err)

	assert.Equal(t, 6, g.NodeCount())
	for s, occupants := range lists {
		assert.LessOrEqual(t, len(occupants), 4, "structure %d beyond overshoot tolerance", s)
	}
}

// TestAssignPopulation_ZeroCapacityOvershoot: under the default
// tolerance a zero-cap structure still takes exactly one occupant
// before leaving the pool, so total placeable is nStructures.
func TestAssignPopulation_ZeroCapacityOvershoot(t *testing.T) {
	_, lists, err := builder.AssignPopulation(2, 2, []int{0, 0},
		1, builder.LabelNeighbor, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Len(t, lists[0], 1)
	assert.Len(t, lists[1], 1)

	_, _, err = builder.AssignPopulation(2, 3, []int{0, 0},
		1, builder.LabelNeighbor, builder.WithSeed(5))
	assert.ErrorIs(t, err, builder.ErrCapacityExhausted)
}

// TestAssignPopulation_StrictCapacity: the named flag switches to exact
// caps — no overshoot, zero-cap structures never offered.
func TestAssignPopulation_StrictCapacity(t *testing.T) {
	_, lists, err := builder.AssignPopulation(2, 2, []int{1, 1},
		1, builder.LabelNeighbor, builder.WithSeed(9), builder.WithStrictCapacity())
	require.NoError(t, err)
	assert.Len(t, lists[0], 1)
	assert.Len(t, lists[1], 1)

	_, _, err = builder.AssignPopulation(2, 3, []int{1, 1},
		1, builder.LabelNeighbor, builder.WithSeed(9), builder.WithStrictCapacity())
	assert.ErrorIs(t, err, builder.ErrCapacityExhausted)

	_, _, err = builder.AssignPopulation(1, 1, []int{0},
		1, builder.LabelNeighbor, builder.WithSeed(9), builder.WithStrictCapacity())
	assert.ErrorIs(t, err, builder.ErrCapacityExhausted)
}

// TestAssignPopulation_EthnicityRange: categories stay inside the
// configured set.
func TestAssignPopulation_EthnicityRange(t *testing.T) {
	g, _, err := builder.AssignPopulation(4, 30, []int{10, 10, 10, 10},
		1, builder.LabelNeighbor, builder.WithSeed(13), builder.WithEthnicities(2))
	require.NoError(t, err)
	for _, id := range g.Nodes() {
		n, err := g.Node(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n.Ethnicity, 0)
		assert.Less(t, n.Ethnicity, 2)
	}
}

// TestAssignPopulation_SeedReproducibility: identical seeds yield
// identical graphs and structure lists.
func TestAssignPopulation_SeedReproducibility(t *testing.T) {
	caps := []int{4, 4, 4, 4, 4}
	g1, l1, err := builder.AssignPopulation(5, 18, caps, 1, builder.LabelNeighbor, builder.WithSeed(21))
	require.NoError(t, err)
	g2, l2, err := builder.AssignPopulation(5, 18, caps, 1, builder.LabelNeighbor, builder.WithSeed(21))
	require.NoError(t, err)

	assert.Equal(t, l1, l2)
	assert.Equal(t, g1.Edges(), g2.Edges())
	for _, id := range g1.Nodes() {
		n1, _ := g1.Node(id)
		n2, _ := g2.Node(id)
		assert.Equal(t, n1, n2)
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithEthnicities(0) })
}
