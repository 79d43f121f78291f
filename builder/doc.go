// Package builder constructs the base contact graph of a settlement:
// population assignment plus the three layered edge-wiring passes.
//
// # What
//
//   - AssignPopulation distributes individuals into structures up to
//     capacity, attaches immutable location/ethnicity attributes, and
//     wires the intra-structure contact cliques (label "neighbor").
//   - ConnectNeighbors adds ethnicity-gated contacts between occupants
//     of spatially close structures (label "proximity"), using
//     campgrid.Neighbors for the spatial neighborhoods.
//   - ConnectFoodQueue adds queue-adjacency contacts among a random half
//     of each structure's occupants (label "food").
//
// The three passes compose onto one graph:
//
//	g, lists, err := builder.AssignPopulation(n, pop, caps, 1, builder.LabelNeighbor, builder.WithSeed(7))
//	g, err = builder.ConnectNeighbors(g, n, lists, grid, 1, 1, builder.LabelProximity)
//	g, err = builder.ConnectFoodQueue(g, lists, 1, builder.LabelFood, builder.WithSeed(7))
//
// # Copy-on-write
//
// Wiring passes never mutate their input: each returns an independent
// clone with the new layer added, so a base graph can be reused to
// derive multiple intervention scenarios (see package intervene).
//
// # Randomness
//
// Every stochastic entry point requires an explicit RNG via WithSeed or
// WithRand and otherwise fails with ErrNeedRandSource. Combined with the
// sorted iteration orders of contact.Graph and campgrid, a fixed seed
// reproduces the construction exactly.
//
// # Capacity tolerance
//
// A structure leaves the assignment pool only after it has been observed
// over capacity, so each structure may take one assignment beyond its
// stated cap. Occupancy distributions downstream depend on this, so it
// is the default; WithStrictCapacity switches to exact caps.
//
// # Errors
//
// Sentinels (branch with errors.Is): ErrTooFewStructures,
// ErrBadPopulation, ErrCapacityMismatch, ErrCapacityExhausted,
// ErrNeedRandSource, ErrGraphNil, ErrGridNil, ErrGridMismatch,
// ErrStructureListMismatch. A failed pass leaves no partially-mutated
// shared state: all mutation happens on private clones.
package builder
