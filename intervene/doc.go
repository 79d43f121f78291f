// Package intervene derives intervention variants of a base contact
// graph — distancing and quarantine — by structured stochastic edge
// removal.
//
// # What
//
//   - RemoveEdges thins, per node, the edges carrying a chosen set of
//     relation labels down to a retention budget drawn from an
//     exponential distribution (clamped between a floor and the node's
//     actual neighbor count).
//   - Distancing thins "food" edges only (scale 20, floor 8).
//   - Quarantine thins "food" and "neighbor" edges with a tighter budget
//     (scale 10, floor 4).
//
// # Why
//
// Behavioral policies do not rewire a settlement; they reduce how many
// of the existing contacts survive. Thinning a label layer models a
// policy (close the shared queue, restrict household visits) while
// leaving the other layers intact — label isolation is guaranteed:
// Distancing never touches a "neighbor" edge.
//
// # Copy-on-derive
//
// Every derivation operates on a full clone of the base graph; the base
// is reusable and the derived graphs share no mutable state with it or
// each other. Deriving the distancing and quarantine variants of one
// base concurrently is safe.
//
// # Determinism
//
// Nodes are processed in id-ascending order and per-node neighbor sets
// are sorted, so a fixed seed (WithSeed) pins the derived edge set
// exactly. Removal is unilateral: the first endpoint processed that
// drops a shared edge removes it for both — a real design property of
// the model, preserved as such. A consequence: the floor bounds a
// node's retention only at its own decision; neighbors processed later
// may still remove shared edges and leave it below the floor.
//
// # Usage
//
//	quar, err := intervene.Quarantine(base, intervene.WithSeed(42))
//	if err != nil {
//		// ErrGraphNil or ErrNeedRandSource
//	}
//	dist, err := intervene.RemoveEdges(base, []string{builder.LabelFood}, 15, 6, intervene.WithSeed(42))
package intervene
