// Package crucible implements Dijkstra's algorithm over (cell, heading, run)
// states of a cost grid.
//
// The search processes states in order of increasing accumulated cost using a
// min-heap, relaxing each state's successors and stopping on the first state
// popped at the goal coordinate.
//
// Notes on implementation choices:
//
//   - Rules are validated and start/goal bounds-checked before any work.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Both start states are recorded at cost 0, so the start cell's own cost is never paid.
//   - Entries above MaxCost are dropped at push time.
package crucible

import (
	"fmt"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// ctxCheckInterval is how many pops pass between context checks.
const ctxCheckInterval = 1024

// FindMinCost returns the cheapest way to walk from start to goal on g
// while obeying rules. Entering a cell costs its value; start is free.
//
// Returns:
//
//   - Result with Found == true and Cost set when the goal is reachable.
//   - Result with Found == false (and nil error) when no legal walk exists.
//   - err when inputs are invalid or the context is cancelled.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. rules must pass Rules.Validate (ErrBadRules).
//  4. start and goal must lie on g (gridgraph.ErrOutOfBounds).
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4×(MaxRun+1)
//   - Space: O(S)
func FindMinCost(g *gridgraph.CostGrid, start, goal gridgraph.Coord, rules Rules, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := rules.Validate(); err != nil {
		return Result{}, err
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("crucible: start %w: (%s)", gridgraph.ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return Result{}, fmt.Errorf("crucible: goal %w: (%s)", gridgraph.ErrOutOfBounds, goal)
	}

	// 3) Run
	r := newRunner(g, goal, rules, cfg)
	r.init(start)
	res, err := r.process()
	if err != nil {
		return Result{}, err
	}
	res.Rules = rules

	return res, nil
}

// MinCost is FindMinCost with default options, reduced to an optional cost:
// (cost, true, nil) when the goal is reachable and (0, false, nil) when not.
func MinCost(g *gridgraph.CostGrid, start, goal gridgraph.Coord, minRun, maxRun int) (int64, bool, error) {
	res, err := FindMinCost(g, start, goal, Rules{MinRun: minRun, MaxRun: maxRun})
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Found, nil
}

// record is a best-known-cost table row.
type record struct {
	cost      int64
	parent    State
	hasParent bool
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *gridgraph.CostGrid // Terrain; read-only
	goal    gridgraph.Coord     // Target cell
	rules   Rules               // Movement constraints
	options Options             // Configuration
	best    map[State]record    // State → best known cost (and parent)
	open    *frontier           // Min-heap of pending entries
	buf     []State             // Reused successor buffer
}

func newRunner(g *gridgraph.CostGrid, goal gridgraph.Coord, rules Rules, cfg Options) *runner {
	// Every cell is typically reached in a couple of headings and runs;
	// 2×W×H is a reasonable starting size that avoids early rehashing.
	n := g.Width() * g.Height()

	return &runner{
		g:       g,
		goal:    goal,
		rules:   rules,
		options: cfg,
		best:    make(map[State]record, 2*n),
		open:    newFrontier(n),
		buf:     make([]State, 0, 3),
	}
}

// init seeds the frontier with both start states at cost 0.
func (r *runner) init(start gridgraph.Coord) {
	for _, s := range StartStates(start) {
		r.best[s] = record{cost: 0}
		r.open.push(s, 0)
	}
}

// process is the core loop. It pops the cheapest entry until a goal state
// is popped (Found) or the frontier is empty (Exhausted).
func (r *runner) process() (Result, error) {
	var res Result
	pops := 0
	for r.open.len() > 0 {
		// 1) Honour cancellation on the first pop and every ctxCheckInterval after.
		if pops%ctxCheckInterval == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("crucible: search aborted: %w", err)
			}
		}
		pops++

		// 2) Pop the smallest-cost item; skip it if a cheaper push superseded it.
		e := r.open.pop()
		if rec := r.best[e.state]; e.cost > rec.cost {
			continue
		}
		res.Expanded++
		if r.options.OnExpand != nil {
			r.options.OnExpand(e.state, e.cost)
		}

		// 3) Goal test on the coordinate only, unless StrictGoal.
		if e.state.Pos == r.goal && (!r.options.StrictGoal || e.state.Run >= r.rules.MinRun) {
			res.Found = true
			res.Cost = e.cost
			res.End = e.state
			if r.options.ReturnPath {
				res.Path = r.path(e.state)
			}
			return res, nil
		}

		// 4) Relax successors.
		r.relax(e)
	}

	return res, nil
}

// relax pushes every successor of e whose tentative cost beats the table.
func (r *runner) relax(e entry) {
	r.buf = appendSuccessors(r.buf[:0], e.state, r.rules, r.g)
	for _, next := range r.buf {
		// Successors only yields in-bounds cells.
		tentative := e.cost + int64(r.g.MustCostAt(next.Pos))
		if tentative > r.options.MaxCost {
			continue
		}
		// Strictly better only: equal costs keep the first parent found.
		if rec, ok := r.best[next]; ok && tentative >= rec.cost {
			continue
		}
		r.best[next] = record{cost: tentative, parent: e.state, hasParent: true}
		r.open.push(next, tentative)
	}
}

// path walks parent links back from end to a start state.
func (r *runner) path(end State) []State {
	var rev []State
	for s := end; ; {
		rev = append(rev, s)
		rec := r.best[s]
		if !rec.hasParent {
			break
		}
		s = rec.parent
	}
	out := make([]State, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}
	return out
}
