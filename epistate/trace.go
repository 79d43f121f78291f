package epistate

import (
	"errors"

	"github.com/katalvlaran/campnet/contact"
)

// ErrSeedNotFound is returned by ContactTrace when the seed individual
// is not in the graph.
var ErrSeedNotFound = errors.New("epistate: seed node not found")

// ErrBadDepth is returned for a negative tracing depth.
var ErrBadDepth = errors.New("epistate: depth must be non-negative")

// TraceResult holds the outcome of a contact-tracing sweep.
type TraceResult struct {
	// Order lists traced node ids in breadth-first discovery order; the
	// seed is first. Contacts of each node are visited ascending by id,
	// so the whole order is deterministic.
	Order []int

	// Depth maps each traced node to its contact-hop distance from the
	// seed (the seed maps to 0).
	Depth map[int]int

	// Parent maps each traced node to the contact through which it was
	// first reached; the seed maps to -1.
	Parent map[int]int
}

// ContactTrace walks the contact network breadth-first from a seed
// individual, following only edges carrying one of the given labels
// (all labels when none are given), out to maxDepth contact hops.
// A maxDepth of 0 means unlimited.
//
// This is the tracing primitive behind "who shared a queue or shelter
// with a confirmed case, and who did they in turn meet": run it with
// the food label at depth 1 for direct queue contacts, or unbounded
// across all labels for the full exposure component.
//
// Errors: ErrGraphNil, ErrSeedNotFound, ErrBadDepth.
// Complexity: O(V + E) over the traced component.
func ContactTrace(g *contact.Graph, seed, maxDepth int, labels ...string) (*TraceResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 0 {
		return nil, ErrBadDepth
	}
	if !g.HasNode(seed) {
		return nil, ErrSeedNotFound
	}

	res := &TraceResult{
		Depth:  map[int]int{seed: 0},
		Parent: map[int]int{seed: -1},
	}
	queue := []int{seed}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, node)

		depth := res.Depth[node]
		if maxDepth > 0 && depth == maxDepth {
			continue
		}
		contacts, err := g.LabeledNeighborIDs(node, labels...)
		if err != nil {
			return nil, err
		}
		// LabeledNeighborIDs is sorted, so same-depth discovery order is
		// ascending by id.
		for _, other := range contacts {
			if _, seen := res.Depth[other]; seen {
				continue
			}
			res.Depth[other] = depth + 1
			res.Parent[other] = node
			queue = append(queue, other)
		}
	}

	return res, nil
}
