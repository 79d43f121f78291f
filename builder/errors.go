// Package builder: sentinel errors for the construction pipeline.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context by wrapping with %w and a stable
//     method tag, e.g. "AssignPopulation: pool empty at node 17: ...".
//   - Construction functions never panic; validation panics are confined
//     to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewStructures indicates a structure count below one.
// Usage: if errors.Is(err, ErrTooFewStructures) { /* fix nStructures */ }.
var ErrTooFewStructures = errors.New("builder: structure count must be at least one")

// ErrBadPopulation indicates a negative population size.
var ErrBadPopulation = errors.New("builder: population must be non-negative")

// ErrCapacityMismatch indicates the per-structure capacity list length
// does not equal the structure count.
var ErrCapacityMismatch = errors.New("builder: capacity list length mismatch")

// ErrCapacityExhausted indicates every structure was removed from the
// available pool before the whole population was placed. Total capacity
// must be validated by the caller; the pipeline never auto-expands it.
var ErrCapacityExhausted = errors.New("builder: all structures exhausted before placement finished")

// ErrNeedRandSource indicates a stochastic construction function was
// called without an RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrGraphNil indicates a nil base graph was passed to a wiring pass.
var ErrGraphNil = errors.New("builder: base graph is nil")

// ErrGridNil indicates a nil grid was passed to ConnectNeighbors.
var ErrGridNil = errors.New("builder: grid is nil")

// ErrGridMismatch indicates the grid addresses a structure id with no
// entry in the per-structure node lists: the grid and the assignment's
// structure count were not reconciled by the caller.
var ErrGridMismatch = errors.New("builder: grid structure id outside node lists")

// ErrStructureListMismatch indicates the per-structure node list count
// does not cover the requested structure count.
var ErrStructureListMismatch = errors.New("builder: structure list length mismatch")
