package crucible

import (
	"fmt"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// State is a node of the search: where the walker is, which way it is
// facing, and how many cells it has moved in that heading without turning.
//
// State is comparable and used directly as a map key. Accumulated cost is
// deliberately not a field, so the best-known-cost table holds one entry
// per (Pos, Heading, Run).
type State struct {
	Pos     gridgraph.Coord
	Heading gridgraph.Heading
	Run     int
}

// StartStates returns the two states a search begins from. The start cell
// has no incoming heading, so the walker may leave it rightwards or
// downwards; both have Run 0.
func StartStates(start gridgraph.Coord) [2]State {
	return [2]State{
		{Pos: start, Heading: gridgraph.Right, Run: 0},
		{Pos: start, Heading: gridgraph.Down, Run: 0},
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("(%s %s×%d)", s.Pos, s.Heading, s.Run)
}
