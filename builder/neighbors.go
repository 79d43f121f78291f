// Package builder: implementation of ConnectNeighbors.
//
// Canonical model (attribute-gated cross-structure mixing):
//   - For every structure, compute its spatial neighbor set from the
//     camp grid within the given Chebyshev proximity.
//   - Connect every occupant pair (i in structure, j in neighbor) if and
//     only if they share the same ethnicity — same-ethnicity individuals
//     in spatially close structures are more likely to interact.
//   - Proximity neighborhoods exclude the structure itself, so this pass
//     never adds intra-structure edges.
//
// Determinism:
//   - Structures ascending; campgrid.Neighbors returns sorted ids;
//     occupant lists iterate in insertion order.
//   - A pair within range of each other twice (both directions) is
//     simply re-added under the same label: last write wins, no
//     duplicate edge is created.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campnet/campgrid"
	"github.com/katalvlaran/campnet/contact"
)

// ConnectNeighbors derives a new graph from base with proximity contacts
// added between same-ethnicity occupants of spatially close structures.
// base is never mutated; the returned graph is an independent copy.
//
// grid must address at least nStructures structures and nodesPerStruct
// must cover every structure id the grid can yield, otherwise the grid
// and the assignment were not reconciled (ErrGridMismatch, or a wrapped
// campgrid.ErrStructureIndex when the grid is too small).
//
// Errors: ErrGraphNil, ErrGridNil, ErrTooFewStructures,
// ErrStructureListMismatch, ErrGridMismatch, wrapped campgrid errors.
// Complexity: O(Σ_s Σ_{n∈N(s)} |s|·|n|) — the dominant wiring cost.
func ConnectNeighbors(base *contact.Graph, nStructures int, nodesPerStruct [][]int, grid *campgrid.Grid, proximity int, weight float64, label string) (*contact.Graph, error) {
	if base == nil {
		return nil, fmt.Errorf("%s: %w", methodNeighbors, ErrGraphNil)
	}
	if grid == nil {
		return nil, fmt.Errorf("%s: %w", methodNeighbors, ErrGridNil)
	}
	if nStructures < 1 {
		return nil, fmt.Errorf("%s: nStructures=%d: %w", methodNeighbors, nStructures, ErrTooFewStructures)
	}
	if len(nodesPerStruct) < nStructures {
		return nil, fmt.Errorf("%s: len(nodesPerStruct)=%d, nStructures=%d: %w",
			methodNeighbors, len(nodesPerStruct), nStructures, ErrStructureListMismatch)
	}

	g := base.Clone()

	for s := 0; s < nStructures; s++ {
		neighbors, err := grid.Neighbors(s, proximity)
		if err != nil {
			return nil, fmt.Errorf("%s: structure %d: %w", methodNeighbors, s, err)
		}
		for _, nb := range neighbors {
			if nb >= len(nodesPerStruct) {
				return nil, fmt.Errorf("%s: grid yields structure %d beyond node lists (%d): %w",
					methodNeighbors, nb, len(nodesPerStruct), ErrGridMismatch)
			}
			for _, i := range nodesPerStruct[s] {
				ni, err := g.Node(i)
				if err != nil {
					return nil, fmt.Errorf("%s: node %d: %w", methodNeighbors, i, err)
				}
				for _, j := range nodesPerStruct[nb] {
					nj, err := g.Node(j)
					if err != nil {
						return nil, fmt.Errorf("%s: node %d: %w", methodNeighbors, j, err)
					}
					if ni.Ethnicity != nj.Ethnicity {
						continue
					}
					if err := g.AddEdge(i, j, weight, label); err != nil {
						return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodNeighbors, i, j, err)
					}
				}
			}
		}
	}

	return g, nil
}
