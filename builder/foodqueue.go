// Package builder: implementation of ConnectFoodQueue.
//
// Canonical model (shared-queue contact):
//   - From every structure, draw floor(occupancy/2) picks WITH
//     replacement; duplicates collapse via set semantics, so the realized
//     pool contribution is at most floor(occupancy/2).
//   - The global pool is the food queue: shuffle it, then connect each
//     member to the next queueWindow members in shuffle order, skipping a
//     pair if any edge already exists between them.
//   - The last queueWindow+1 queue members receive no forward window.
//     This boundary truncation is longstanding behavior and is kept
//     as-is; downstream degree distributions depend on it.
//
// Determinism:
//   - The deduplication set is sorted before shuffling, so the queue
//     order is a pure function of the seeded RNG, not of map iteration.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/campnet/contact"
)

// ConnectFoodQueue derives a new graph from base with queue-adjacency
// contacts: a random half of each structure's occupants joins a global
// food queue, and people within queueWindow positions of each other in
// the shuffled queue interact. base is never mutated.
//
// A pair already connected by an edge of any label is skipped, which
// makes re-applying this pass structurally idempotent: the second
// application adds no duplicate edges.
//
// Errors: ErrGraphNil, ErrNeedRandSource, plus wrapped contact errors.
// Complexity: O(P) sampling + O(P·queueWindow) wiring for pool size P.
func ConnectFoodQueue(base *contact.Graph, nodesPerStruct [][]int, weight float64, label string, opts ...Option) (*contact.Graph, error) {
	if base == nil {
		return nil, fmt.Errorf("%s: %w", methodFoodQueue, ErrGraphNil)
	}
	cfg := newBuildConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodFoodQueue, ErrNeedRandSource)
	}

	g := base.Clone()

	// Sample with replacement, dedupe into the pool set.
	pool := make(map[int]struct{})
	for _, occupants := range nodesPerStruct {
		for k := 0; k < len(occupants)/2; k++ {
			pool[occupants[cfg.rng.Intn(len(occupants))]] = struct{}{}
		}
	}

	// Sort before shuffling: queue order must depend on the RNG alone.
	queue := make([]int, 0, len(pool))
	for id := range pool {
		queue = append(queue, id)
	}
	sort.Ints(queue)
	cfg.rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	// Connect each member to the next queueWindow members that follow it.
	// The loop bound leaves the final queueWindow+1 members without a
	// forward window.
	for i := 0; i < len(queue)-(queueWindow+1); i++ {
		for j := i + 1; j <= i+queueWindow; j++ {
			if g.HasEdge(queue[i], queue[j]) {
				continue
			}
			if err := g.AddEdge(queue[i], queue[j], weight, label); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodFoodQueue, queue[i], queue[j], err)
			}
		}
	}

	return g, nil
}
