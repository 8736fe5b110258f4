// Package gridgraph models a rectangular grid of non-negative traversal
// costs, the terrain over which the crucible search walks.
//
// What:
//
//   - CostGrid wraps a rectangular [][]int of cell costs and is immutable once built.
//   - Coord addresses a cell by column (X) and row (Y).
//   - Heading is one of the four cardinal directions, with turn and reversal helpers.
//   - ParseDigits reads the plain digit-grid text format, one row per line.
//
// Why:
//
//   - Heat-loss and terrain maps: each cell carries the price of entering it.
//   - Searches need bounds checks and O(1) cost lookups without copying rows.
//
// Complexity:
//
//   - NewCostGrid, ParseDigits: O(W×H) time and memory.
//   - CostAt, InBounds, Width, Height: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every construction failure below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell carries a negative cost.
//   - ErrBadDigit: ParseDigits met a character that is not a decimal digit.
//   - ErrOutOfBounds: a coordinate lies outside [0,W)×[0,H).
package gridgraph
