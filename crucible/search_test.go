// Package crucible_test contains unit tests for the run-constrained search.
// These tests cover input validation, the reference scenarios, path
// reconstruction, the goal and cost-cap options, and the ordering and
// monotonicity properties of the search.
package crucible_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestFindMinCost_NilGrid(t *testing.T) {
	_, err := crucible.FindMinCost(nil, origin, origin, crucible.StandardRules)
	assert.ErrorIs(t, err, crucible.ErrNilGrid)
}

func TestFindMinCost_BadRules(t *testing.T) {
	g := uniform(t, 3, 3, 1)
	for _, r := range []crucible.Rules{
		{MinRun: -1, MaxRun: 3},
		{MinRun: 0, MaxRun: 0},
		{MinRun: 5, MaxRun: 4},
	} {
		_, err := crucible.FindMinCost(g, origin, corner(g), r)
		assert.ErrorIs(t, err, crucible.ErrBadRules, "rules %v", r)
	}
}

func TestFindMinCost_OutOfBounds(t *testing.T) {
	g := uniform(t, 3, 3, 1)
	_, err := crucible.FindMinCost(g, gridgraph.Coord{X: -1, Y: 0}, corner(g), crucible.StandardRules)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = crucible.FindMinCost(g, origin, gridgraph.Coord{X: 3, Y: 3}, crucible.StandardRules)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestFindMinCost_NegativeMaxCost(t *testing.T) {
	g := uniform(t, 3, 3, 1)
	_, err := crucible.FindMinCost(g, origin, corner(g), crucible.StandardRules, crucible.WithMaxCost(-1))
	assert.ErrorIs(t, err, crucible.ErrOptionViolation)
}

func TestFindMinCost_Cancelled(t *testing.T) {
	g := mustParse(t, heatLossSample)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := crucible.FindMinCost(g, origin, corner(g), crucible.StandardRules, crucible.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios.
// ------------------------------------------------------------------------

// TestFindMinCost_StartIsGoal: the start cell's own cost is never paid.
func TestFindMinCost_StartIsGoal(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{5}})
	require.NoError(t, err)

	for _, r := range []crucible.Rules{crucible.StandardRules, crucible.UltraRules} {
		res, err := crucible.FindMinCost(g, origin, origin, r, crucible.WithReturnPath())
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, int64(0), res.Cost)
		assert.Len(t, res.Path, 1)
		assert.Equal(t, r, res.Rules)
	}
}

// TestFindMinCost_ZigZag: with MaxRun 1 every step is a turn.
func TestFindMinCost_ZigZag(t *testing.T) {
	g := uniform(t, 3, 3, 1)
	rules := crucible.Rules{MinRun: 0, MaxRun: 1}

	res, err := crucible.FindMinCost(g, origin, corner(g), rules, crucible.WithReturnPath())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, int64(4), res.Cost)
	requireValidPath(t, g, rules, origin, corner(g), res)
	require.Len(t, res.Path, 5)
	for i := 2; i < len(res.Path); i++ {
		assert.NotEqual(t, res.Path[i-1].Heading, res.Path[i].Heading, "step %d goes straight", i)
	}

	cost, ok, err := crucible.MinCost(g, origin, corner(g), 0, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(4), cost)
}

// TestFindMinCost_LongRunNeedsRoom: MinRun 4 cannot fit in a 3×3 grid.
func TestFindMinCost_LongRunNeedsRoom(t *testing.T) {
	small := uniform(t, 3, 3, 1)
	res, err := crucible.FindMinCost(small, origin, corner(small), crucible.UltraRules)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, int64(0), res.Cost)
	assert.Nil(t, res.Path)

	cost, ok, err := crucible.MinCost(small, origin, corner(small), 4, 10)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(0), cost)

	big := uniform(t, 5, 5, 1)
	res, err = crucible.FindMinCost(big, origin, corner(big), crucible.UltraRules, crucible.WithReturnPath())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, int64(8), res.Cost)
	requireValidPath(t, big, crucible.UltraRules, origin, corner(big), res)
}

func TestFindMinCost_HeatLossSample(t *testing.T) {
	cases := []struct {
		name  string
		grid  string
		rules crucible.Rules
		want  int64
	}{
		{"Standard", heatLossSample, crucible.StandardRules, 102},
		{"Ultra", heatLossSample, crucible.UltraRules, 94},
		{"UltraLongStraight", longStraightSample, crucible.UltraRules, 71},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.grid)
			res, err := crucible.FindMinCost(g, origin, corner(g), tc.rules, crucible.WithReturnPath())
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, tc.want, res.Cost)
			requireValidPath(t, g, tc.rules, origin, corner(g), res)
			assert.GreaterOrEqual(t, res.End.Run, tc.rules.MinRun)
		})
	}
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

// TestFindMinCost_StrictGoal: a goal passed mid-run only counts without StrictGoal.
func TestFindMinCost_StrictGoal(t *testing.T) {
	g := uniform(t, 6, 1, 1)
	goal := gridgraph.Coord{X: 2, Y: 0}

	res, err := crucible.FindMinCost(g, origin, goal, crucible.UltraRules)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, int64(2), res.Cost)
	assert.Equal(t, 2, res.End.Run)

	res, err = crucible.FindMinCost(g, origin, goal, crucible.UltraRules, crucible.WithStrictGoal())
	require.NoError(t, err)
	assert.False(t, res.Found)

	// The far end is reached after a full run and counts either way.
	res, err = crucible.FindMinCost(g, origin, gridgraph.Coord{X: 5, Y: 0}, crucible.UltraRules, crucible.WithStrictGoal())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, int64(5), res.Cost)
}

func TestFindMinCost_MaxCost(t *testing.T) {
	g := mustParse(t, heatLossSample)

	res, err := crucible.FindMinCost(g, origin, corner(g), crucible.StandardRules, crucible.WithMaxCost(101))
	require.NoError(t, err)
	assert.False(t, res.Found)

	res, err = crucible.FindMinCost(g, origin, corner(g), crucible.StandardRules, crucible.WithMaxCost(102))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, int64(102), res.Cost)
}

// TestFindMinCost_OnExpand checks that states leave the frontier in
// non-decreasing cost order and that the hook sees every expansion.
func TestFindMinCost_OnExpand(t *testing.T) {
	g := mustParse(t, heatLossSample)
	var costs []int64
	seen := map[crucible.State]bool{}
	hook := func(s crucible.State, cost int64) {
		assert.False(t, seen[s], "state %v expanded twice", s)
		seen[s] = true
		costs = append(costs, cost)
	}

	res, err := crucible.FindMinCost(g, origin, corner(g), crucible.UltraRules, crucible.WithOnExpand(hook))
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, res.Expanded, len(costs))
	assert.Equal(t, res.Cost, costs[len(costs)-1])
	for i := 1; i < len(costs); i++ {
		require.LessOrEqual(t, costs[i-1], costs[i], "pop %d", i)
	}
}

// ------------------------------------------------------------------------
// 4. Properties.
// ------------------------------------------------------------------------

func TestFindMinCost_Deterministic(t *testing.T) {
	g := mustParse(t, heatLossSample)
	first, err := crucible.FindMinCost(g, origin, corner(g), crucible.StandardRules, crucible.WithReturnPath())
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := crucible.FindMinCost(g, origin, corner(g), crucible.StandardRules, crucible.WithReturnPath())
		require.NoError(t, err)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

// TestFindMinCost_MaxRunMonotone: allowing longer straights never costs more.
func TestFindMinCost_MaxRunMonotone(t *testing.T) {
	g := mustParse(t, heatLossSample)
	for _, minRun := range []int{0, 1} {
		prev := int64(-1)
		for maxRun := 1; maxRun <= 8; maxRun++ {
			if maxRun < minRun {
				continue
			}
			cost, ok, err := crucible.MinCost(g, origin, corner(g), minRun, maxRun)
			require.NoError(t, err)
			require.True(t, ok, "min=%d max=%d", minRun, maxRun)
			if prev >= 0 {
				assert.LessOrEqual(t, cost, prev, "min=%d max=%d", minRun, maxRun)
			}
			prev = cost
		}
	}
}

func TestFindMinCost_LowerBound(t *testing.T) {
	g := mustParse(t, heatLossSample)
	goals := []gridgraph.Coord{corner(g), {X: 5, Y: 7}, {X: 12, Y: 0}, {X: 0, Y: 9}}
	for _, rules := range []crucible.Rules{crucible.StandardRules, {MinRun: 1, MaxRun: 5}, crucible.UltraRules} {
		for _, goal := range goals {
			res, err := crucible.FindMinCost(g, origin, goal, rules)
			require.NoError(t, err)
			if !res.Found {
				continue
			}
			bound := int64(origin.Manhattan(goal) * g.MinCost())
			assert.GreaterOrEqual(t, res.Cost, bound, "rules %v goal %v", rules, goal)
		}
	}
}

// TestFindMinCost_GridUntouched runs searches and checks the grid is unchanged.
func TestFindMinCost_GridUntouched(t *testing.T) {
	g := mustParse(t, heatLossSample)
	before := g.Rows()
	_, err := crucible.SolveAll(context.Background(), g, origin, corner(g),
		[]crucible.Rules{crucible.StandardRules, crucible.UltraRules})
	require.NoError(t, err)
	assert.Equal(t, before, g.Rows())
}
