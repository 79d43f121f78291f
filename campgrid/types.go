// Package campgrid defines core types and sentinel errors for the
// campgrid subpackage of github.com/katalvlaran/campnet.
package campgrid

import (
	"errors"
)

// Sentinel errors for campgrid operations.
var (
	// ErrEmptyGrid indicates non-positive grid dimensions.
	ErrEmptyGrid = errors.New("campgrid: grid must have at least one row and one column")
	// ErrBadSliceCount indicates a requested slice count below one.
	ErrBadSliceCount = errors.New("campgrid: slice count must be at least one")
	// ErrStructureIndex indicates a structure id outside the grid's
	// addressing range; the caller's grid and structure list disagree.
	ErrStructureIndex = errors.New("campgrid: structure id outside grid range")
	// ErrBadProximity indicates a negative proximity radius.
	ErrBadProximity = errors.New("campgrid: proximity must be non-negative")
)

// Grid is the rectangular spatial layout of structures, used purely to
// define adjacency for proximity wiring. It is immutable once built.
//
// Cells hold sequential structure ids 0..Width*Height-1 in row-major
// order: structure s sits at row s/Height, column s%Height. Width is the
// number of rows and Height the number of columns — the convention the
// whole addressing scheme is derived from, so structure ids passed to
// Neighbors must come from a Grid built with the same Height.
type Grid struct {
	// Width is the number of rows.
	Width int
	// Height is the number of columns.
	Height int

	cells [][]int
}
