// Package campgrid treats the physical layout of a settlement as a
// rectangular grid of structure ids. It supports:
//
//   - Sequential row-major id assignment (New)
//   - Column-block partitioning in the numpy array_split style (Divide)
//   - Chebyshev-window proximity neighborhoods with boundary clamping
//     (Neighbors)
//
// Edge and corner structures get fewer neighbors, never wrapped ones.
package campgrid

import "sort"

// New constructs a Grid with width rows and height columns, filled with
// sequential structure ids 0..width*height-1 in row-major order.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int, width)
	id := 0
	for r := 0; r < width; r++ {
		cells[r] = make([]int, height)
		for c := 0; c < height; c++ {
			cells[r][c] = id
			id++
		}
	}

	return &Grid{Width: width, Height: height, cells: cells}, nil
}

// Structures returns the total number of structures in the grid.
// Complexity: O(1).
func (g *Grid) Structures() int {
	return g.Width * g.Height
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Width && col >= 0 && col < g.Height
}

// At returns the structure id stored at (row, col).
// Returns ErrStructureIndex when out of bounds.
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, ErrStructureIndex
	}

	return g.cells[row][col], nil
}

// Coordinate converts a structure id back to its (row, col) position.
// Returns ErrStructureIndex when the id is outside 0..Width*Height-1.
// Complexity: O(1).
func (g *Grid) Coordinate(structure int) (row, col int, err error) {
	if structure < 0 || structure >= g.Structures() {
		return 0, 0, ErrStructureIndex
	}

	return structure / g.Height, structure % g.Height, nil
}

// Divide splits the grid into nSlices column blocks and returns the raw
// id matrices (each block keeps full rows, a contiguous span of columns).
//
// Split policy follows numpy.array_split: blocks are as even as
// possible — the first cols%nSlices blocks receive one extra column, and
// when nSlices exceeds the column count the trailing blocks are empty.
// Returns ErrBadSliceCount if nSlices < 1.
// Complexity: O(W×H).
func (g *Grid) Divide(nSlices int) ([][][]int, error) {
	if nSlices < 1 {
		return nil, ErrBadSliceCount
	}
	base, extra := g.Height/nSlices, g.Height%nSlices
	blocks := make([][][]int, nSlices)
	start := 0
	for b := 0; b < nSlices; b++ {
		cols := base
		if b < extra {
			cols++
		}
		block := make([][]int, g.Width)
		for r := 0; r < g.Width; r++ {
			block[r] = make([]int, cols)
			copy(block[r], g.cells[r][start:start+cols])
		}
		blocks[b] = block
		start += cols
	}

	return blocks, nil
}

// Neighbors returns the ids of all structures within a square Chebyshev
// window of half-width proximity around the given structure, sorted
// ascending. Window coordinates are clamped to grid bounds, so corner
// and edge structures get fewer neighbors; the structure itself never
// appears in the result, even when clamping maps a window position onto
// it.
//
// Returns ErrStructureIndex when the id is outside the grid's addressing
// range, ErrBadProximity when proximity < 0.
// Complexity: O(proximity²·log(proximity)) per call.
func (g *Grid) Neighbors(structure, proximity int) ([]int, error) {
	if proximity < 0 {
		return nil, ErrBadProximity
	}
	row, col, err := g.Coordinate(structure)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{})
	for dr := -proximity; dr <= proximity; dr++ {
		for dc := -proximity; dc <= proximity; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := clamp(row-dr, 0, g.Width-1)
			c := clamp(col-dc, 0, g.Height-1)
			if id := g.cells[r][c]; id != structure {
				seen[id] = struct{}{}
			}
		}
	}

	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)

	return out, nil
}

// clamp bounds v to the closed interval [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
