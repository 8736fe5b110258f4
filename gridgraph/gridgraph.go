// Package gridgraph provides an immutable grid of traversal costs used as
// the terrain of a constrained shortest-path search. It supports:
//
//   - Bounds-checked cost lookups by Coord
//   - Row-major index conversion
//   - Construction from [][]int or from digit text (see ParseDigits)
//
// Every cell cost is non-negative, which keeps Dijkstra-style searches sound.
package gridgraph

import "fmt"

// NewCostGrid constructs a CostGrid from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrNegativeCost if any cell is below zero. All three wrap ErrMalformedGrid.
// Algorithmic complexity: O(W×H) time and memory.
func NewCostGrid(values [][]int) (*CostGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, w*h)
	minCost := values[0][0]
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNegativeCost, x, y, v)
			}
			if v < minCost {
				minCost = v
			}
		}
		// Copy so later mutation of values cannot leak in.
		cells = append(cells, row...)
	}

	return &CostGrid{width: w, height: h, cells: cells, minCost: minCost}, nil
}

// Width returns the number of columns.
func (g *CostGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *CostGrid) Height() int { return g.height }

// MinCost returns the smallest cost of any cell.
func (g *CostGrid) MinCost() int { return g.minCost }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGrid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CostAt returns the cost of entering cell c.
// Returns ErrOutOfBounds if c lies outside [0,W)×[0,H).
// Complexity: O(1).
func (g *CostGrid) CostAt(c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: (%s) outside %dx%d grid", ErrOutOfBounds, c, g.width, g.height)
	}

	return g.cells[g.index(c)], nil
}

// cost is the unchecked variant of CostAt for callers that already
// filtered c through InBounds.
func (g *CostGrid) cost(c Coord) int {
	return g.cells[g.index(c)]
}

// MustCostAt is CostAt for coordinates known to be in bounds.
// It panics with ErrOutOfBounds otherwise.
func (g *CostGrid) MustCostAt(c Coord) int {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: (%s)", ErrOutOfBounds, c))
	}
	return g.cost(c)
}

// Rows returns a fresh [][]int copy of the grid, indexed as rows[y][x].
func (g *CostGrid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// index maps c to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *CostGrid) index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row‑major index back to a Coord.
// Complexity: O(1).
func (g *CostGrid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}
