// Package campgrid treats the physical layout of a settlement as a
// rectangular grid of structure ids, defining the spatial adjacency the
// proximity wiring pass is built on.
//
// What:
//
//   - Grid wraps a Width×Height matrix of sequential row-major ids.
//   - Neighbors yields the structures within a square Chebyshev window
//     around a structure, clamped at the boundaries and never including
//     the structure itself.
//   - Divide partitions the grid into column blocks, numpy
//     array_split-style (as even as possible, trailing blocks may be
//     empty).
//
// Why:
//
//   - Proximity wiring: occupants of nearby structures interact.
//   - Zone planning: split a camp into sectors for staged interventions.
//
// Addressing:
//
//   - Structure s sits at row s/Height, column s%Height. Ids passed to
//     Neighbors must come from a Grid built with the same Height, or the
//     lookup is meaningless; out-of-range ids fail with
//     ErrStructureIndex.
//
// Complexity:
//
//   - New/Divide: O(W×H), Memory: O(W×H).
//   - Neighbors:  O(p²·log p) for proximity p.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions.
//   - ErrBadSliceCount: Divide with fewer than one slice.
//   - ErrStructureIndex: structure id outside the grid's range.
//   - ErrBadProximity: negative proximity radius.
package campgrid
