// Package builder: implementation of AssignPopulation.
//
// Canonical model:
//   - Each individual picks a structure uniformly at random from the
//     currently-available pool and draws a uniform ethnicity category.
//   - A structure leaves the pool after it is observed over capacity
//     (default) or upon reaching capacity (WithStrictCapacity).
//   - After placement, every structure's occupants form a full clique
//     under the given label and weight.
//
// Determinism:
//   - Stable node order: 0..population-1.
//   - Pool kept in ascending id order; removal preserves order, so the
//     RNG consumption sequence is fixed for a fixed seed.
//   - Clique emission order: structures ascending, pairs (i,j) with i<j
//     in insertion order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campnet/contact"
)

// AssignPopulation distributes population individuals into nStructures
// structures and wires the intra-structure contact cliques.
//
// Each individual 0..population-1 is placed in a structure drawn
// uniformly from the available pool, with location and a uniform
// ethnicity category attached as immutable node attributes. A structure
// is withdrawn from the pool only after its occupancy has been observed
// to exceed maxPerStruct (one-assignment overshoot tolerance; see
// WithStrictCapacity for the exact-cap variant). Once all individuals
// are placed, every pair of occupants within a structure is connected by
// an edge carrying the given weight and label.
//
// Returns the contact graph and the per-structure node lists (ordered by
// insertion), for use by the later wiring passes.
//
// Errors: ErrTooFewStructures, ErrBadPopulation, ErrCapacityMismatch,
// ErrNeedRandSource, ErrCapacityExhausted, plus wrapped contact errors.
// Complexity: O(population) placement + O(Σ occupancy²) clique wiring.
func AssignPopulation(nStructures, population int, maxPerStruct []int, weight float64, label string, opts ...Option) (*contact.Graph, [][]int, error) {
	if nStructures < 1 {
		return nil, nil, fmt.Errorf("%s: nStructures=%d: %w", methodAssign, nStructures, ErrTooFewStructures)
	}
	if population < 0 {
		return nil, nil, fmt.Errorf("%s: population=%d: %w", methodAssign, population, ErrBadPopulation)
	}
	if len(maxPerStruct) != nStructures {
		return nil, nil, fmt.Errorf("%s: len(maxPerStruct)=%d, nStructures=%d: %w",
			methodAssign, len(maxPerStruct), nStructures, ErrCapacityMismatch)
	}
	cfg := newBuildConfig(opts...)
	if cfg.rng == nil && population > 0 {
		return nil, nil, fmt.Errorf("%s: %w", methodAssign, ErrNeedRandSource)
	}

	g := contact.NewGraph()
	nodesPerStruct := make([][]int, nStructures)
	occupancy := make([]int, nStructures)

	// Available pool, ascending. Under the strict policy a zero-capacity
	// structure is never offered; under the default tolerance it still
	// takes its single overshoot assignment.
	available := make([]int, 0, nStructures)
	for s := 0; s < nStructures; s++ {
		if cfg.strictCapacity && maxPerStruct[s] < 1 {
			continue
		}
		available = append(available, s)
	}

	for node := 0; node < population; node++ {
		if len(available) == 0 {
			return nil, nil, fmt.Errorf("%s: pool empty at node %d of %d: %w",
				methodAssign, node, population, ErrCapacityExhausted)
		}
		idx := cfg.rng.Intn(len(available))
		s := available[idx]

		if err := g.AddNode(node, s, cfg.rng.Intn(cfg.ethnicities)); err != nil {
			return nil, nil, fmt.Errorf("%s: AddNode(%d): %w", methodAssign, node, err)
		}
		nodesPerStruct[s] = append(nodesPerStruct[s], node)
		occupancy[s]++

		// Withdraw the structure once over (default) or at (strict) cap.
		full := occupancy[s] > maxPerStruct[s]
		if cfg.strictCapacity {
			full = occupancy[s] >= maxPerStruct[s]
		}
		if full {
			available = append(available[:idx], available[idx+1:]...)
		}
	}

	// Connect every pair of occupants within each structure.
	for _, occupants := range nodesPerStruct {
		for i := 0; i < len(occupants); i++ {
			for j := i + 1; j < len(occupants); j++ {
				if err := g.AddEdge(occupants[i], occupants[j], weight, label); err != nil {
					return nil, nil, fmt.Errorf("%s: AddEdge(%d,%d): %w",
						methodAssign, occupants[i], occupants[j], err)
				}
			}
		}
	}

	return g, nodesPerStruct, nil
}
