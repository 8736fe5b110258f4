package crucible

import "github.com/katalvlaran/heatpath/gridgraph"

// Successors returns the legal next states from s under rules on g.
// It never allocates more than three states and has no side effects.
//
// Policy:
//
//  1. While s.Run < MinRun the walker must go straight: one successor with
//     Run+1, or none if that cell is off the grid.
//  2. Otherwise candidates are, in order, straight, turn left, turn right.
//     Reversal is never produced.
//     • Straight is legal while s.Run < MaxRun and yields Run+1.
//     • A turn is legal when a full MinRun straight in the new heading stays
//     on the grid; it yields Run 1.
//  3. Candidates off the grid are discarded.
//
// A start state has Run 0, so with MinRun > 0 its first MinRun steps are
// forced straight by rule 1.
func Successors(s State, rules Rules, g *gridgraph.CostGrid) []State {
	return appendSuccessors(make([]State, 0, 3), s, rules, g)
}

// appendSuccessors is Successors writing into dst, so the search loop can
// reuse one buffer.
func appendSuccessors(dst []State, s State, rules Rules, g *gridgraph.CostGrid) []State {
	if s.Run < rules.MinRun {
		next := s.Pos.Step(s.Heading, 1)
		if g.InBounds(next) {
			dst = append(dst, State{Pos: next, Heading: s.Heading, Run: s.Run + 1})
		}
		return dst
	}

	if s.Run < rules.MaxRun {
		next := s.Pos.Step(s.Heading, 1)
		if g.InBounds(next) {
			dst = append(dst, State{Pos: next, Heading: s.Heading, Run: s.Run + 1})
		}
	}

	reach := rules.MinRun
	if reach < 1 {
		reach = 1
	}
	for _, h := range [2]gridgraph.Heading{s.Heading.TurnLeft(), s.Heading.TurnRight()} {
		// The far end of the mandatory run must lie on the grid.
		if !g.InBounds(s.Pos.Step(h, reach)) {
			continue
		}
		dst = append(dst, State{Pos: s.Pos.Step(h, 1), Heading: h, Run: 1})
	}

	return dst
}
