// Package intervene: implementation of the stochastic edge-thinning
// transform and the distancing/quarantine derivations built on it.
//
// Canonical model (per-node retention budget):
//   - For every node, collect the neighbors reachable via an edge whose
//     label is in the thinned set.
//   - Draw a retention count from an exponential distribution with the
//     given scale, raise it to the floor, then cap it at the actual
//     neighbor count.
//   - Uniformly sample that many neighbors (without replacement) to
//     retain; remove every matching-label edge to the others. Edges with
//     labels outside the set are untouched.
//
// Order dependence (kept deliberately):
//   - Removal is symmetric in an undirected graph, so the first endpoint
//     processed that decides to drop an edge removes it unilaterally;
//     there is no consensus rule. Nodes are processed in id-ascending
//     order, which pins the final edge set for a fixed seed.

package intervene

import (
	"fmt"

	"github.com/katalvlaran/campnet/builder"
	"github.com/katalvlaran/campnet/contact"
)

// Default parameters of the two intervention derivations.
const (
	// DefaultDistancingScale is the exponential scale of the distancing
	// retention draw.
	DefaultDistancingScale = 20.0
	// DefaultDistancingFloor is the minimum number of food-queue contacts
	// a node keeps under distancing.
	DefaultDistancingFloor = 8

	// DefaultQuarantineScale is the exponential scale of the quarantine
	// retention draw; tighter than distancing.
	DefaultQuarantineScale = 10.0
	// DefaultQuarantineFloor is the minimum number of thinned contacts a
	// node keeps under quarantine.
	DefaultQuarantineFloor = 4
)

// Stable method tags for error context.
const (
	methodRemoveEdges = "RemoveEdges"
	methodDistancing  = "Distancing"
	methodQuarantine  = "Quarantine"
)

// RemoveEdges derives a new graph from base by thinning, for every node
// in id-ascending order, the edges whose label is in labels down to a
// retention budget drawn from an exponential distribution with the given
// scale and clamped to [minKeep, neighbor count]. base is never mutated.
//
// With an empty label list nothing matches and the result is a plain
// clone. Degenerate numeric cases are handled by the clamp: a node never
// keeps more neighbors than it has, and retains at least minKeep of them
// at its own decision (or all, when its degree is already below the
// floor). The floor is not a final-degree bound: later-processed
// neighbors remove shared edges unilaterally and can leave a node below
// it.
//
// Errors: ErrGraphNil, ErrNeedRandSource, ErrBadScale, ErrBadFloor.
// Under well-formed input the transform itself cannot fail.
// Complexity: O(V·d) for mean thinned degree d.
func RemoveEdges(base *contact.Graph, labels []string, scale float64, minKeep int, opts ...Option) (*contact.Graph, error) {
	if base == nil {
		return nil, fmt.Errorf("%s: %w", methodRemoveEdges, ErrGraphNil)
	}
	if scale < 0 {
		return nil, fmt.Errorf("%s: scale=%g: %w", methodRemoveEdges, scale, ErrBadScale)
	}
	if minKeep < 0 {
		return nil, fmt.Errorf("%s: minKeep=%d: %w", methodRemoveEdges, minKeep, ErrBadFloor)
	}
	cfg := newThinConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRemoveEdges, ErrNeedRandSource)
	}

	g := base.Clone()
	if len(labels) == 0 {
		return g, nil
	}

	for _, node := range g.Nodes() {
		// Neighbor sets shrink as earlier nodes drop shared edges; each
		// node decides over what is still present when its turn comes.
		neighbors, err := g.LabeledNeighborIDs(node, labels...)
		if err != nil {
			return nil, fmt.Errorf("%s: node %d: %w", methodRemoveEdges, node, err)
		}
		if len(neighbors) == 0 {
			continue
		}

		// Retention budget: exponential draw, floored, then capped.
		keep := int(cfg.rng.ExpFloat64() * scale)
		if keep < minKeep {
			keep = minKeep
		}
		if keep >= len(neighbors) {
			continue // everything is retained
		}

		retain := make(map[int]struct{}, keep)
		for _, idx := range cfg.rng.Perm(len(neighbors))[:keep] {
			retain[neighbors[idx]] = struct{}{}
		}
		for _, nb := range neighbors {
			if _, ok := retain[nb]; ok {
				continue
			}
			for _, label := range labels {
				if !g.HasLabeledEdge(node, nb, label) {
					continue
				}
				if err := g.RemoveEdge(node, nb, label); err != nil {
					return nil, fmt.Errorf("%s: RemoveEdge(%d,%d,%q): %w",
						methodRemoveEdges, node, nb, label, err)
				}
			}
		}
	}

	return g, nil
}

// Distancing derives a social-distancing variant of base: food-queue
// contacts are thinned to an exponential retention budget (scale 20,
// floor 8); household and proximity layers are untouched.
func Distancing(base *contact.Graph, opts ...Option) (*contact.Graph, error) {
	g, err := RemoveEdges(base, []string{builder.LabelFood},
		DefaultDistancingScale, DefaultDistancingFloor, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistancing, err)
	}

	return g, nil
}

// Quarantine derives a quarantine variant of base: both food-queue and
// household contacts are thinned, with a tighter budget than distancing
// (scale 10, floor 4), modeling stricter movement restriction.
func Quarantine(base *contact.Graph, opts ...Option) (*contact.Graph, error) {
	g, err := RemoveEdges(base, []string{builder.LabelFood, builder.LabelNeighbor},
		DefaultQuarantineScale, DefaultQuarantineFloor, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodQuarantine, err)
	}

	return g, nil
}
