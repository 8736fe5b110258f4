// Package crucible finds the cheapest route across a cost grid for a walker
// that cannot turn freely: it must travel at least MinRun cells in a straight
// line before turning, and at most MaxRun cells before it is forced to turn.
// It never reverses.
//
// Overview:
//
//   - The search is Dijkstra's algorithm over an expanded state space. A node
//     is a State{Pos, Heading, Run}, not a bare cell, so "arrived at (3,4)
//     heading right after 1 step" and "after 3 steps" carry independent costs.
//   - Entering a cell costs that cell's value; the start cell is free.
//   - The walker starts at Run 0 heading Right and heading Down at once.
//   - The first cell popped whose coordinate equals the goal ends the search.
//
// When to use:
//
//   - Vehicles with turning radii, carts that overheat on long straights,
//     any grid route where the legal moves depend on recent history.
//   - As a template for other "Dijkstra over (position, extra state)" problems.
//
// Key features:
//
//   - Functional options, in the style of the rest of the module:
//     WithReturnPath, WithStrictGoal, WithMaxCost, WithContext, WithOnExpand.
//   - Deterministic tie-break: among frontier entries with equal cost, the one
//     pushed first is popped first.
//   - SolveAll runs several rule sets against one grid concurrently.
//
// Performance and complexity:
//
//   - S = W×H×4×(MaxRun+1) distinct states, each with at most 3 successors.
//   - Time:  O(S log S).
//   - Space: O(S) for the best-known-cost table and the lazy heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - ErrBadRules:         MinRun < 0, MaxRun < 1 or MinRun > MaxRun.
//   - ErrOptionViolation:  an option received an invalid argument.
//   - gridgraph.ErrOutOfBounds (wrapped): start or goal lies outside the grid.
//
// Running out of frontier is not an error: Result.Found is false and the
// cost is zero. Callers must check Found rather than compare the cost.
//
// API reference:
//
//	func FindMinCost(
//	    g *gridgraph.CostGrid,
//	    start, goal gridgraph.Coord,
//	    rules Rules,
//	    opts ...Option,
//	) (Result, error)
//
//	func MinCost(g *gridgraph.CostGrid, start, goal gridgraph.Coord, minRun, maxRun int) (int64, bool, error)
//
//	func SolveAll(ctx context.Context, g *gridgraph.CostGrid, start, goal gridgraph.Coord,
//	    rules []Rules, opts ...Option) ([]Result, error)
//
// Thread safety:
//
//   - A CostGrid is immutable, so any number of searches may share one.
//   - Each call owns its frontier and table; calls never share mutable state.
package crucible
