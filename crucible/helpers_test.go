package crucible_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/gridgraph"
)

// heatLossSample is the 13×13 reference map: 102 under StandardRules,
// 94 under UltraRules, corner to corner.
const heatLossSample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// longStraightSample punishes short runs: 71 under UltraRules.
const longStraightSample = `111111111111
999999999991
999999999991
999999999991
999999999991
`

func mustParse(t testing.TB, text string) *gridgraph.CostGrid {
	t.Helper()
	g, err := gridgraph.ParseDigits(strings.NewReader(text))
	require.NoError(t, err)
	return g
}

// uniform builds a w×h grid where every cell costs v.
func uniform(t testing.TB, w, h, v int) *gridgraph.CostGrid {
	t.Helper()
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}
	g, err := gridgraph.NewCostGrid(rows)
	require.NoError(t, err)
	return g
}

func corner(g *gridgraph.CostGrid) gridgraph.Coord {
	return gridgraph.Coord{X: g.Width() - 1, Y: g.Height() - 1}
}

var origin = gridgraph.Coord{X: 0, Y: 0}

// requireValidPath checks that res.Path is a legal walk whose cell costs
// add up to res.Cost.
func requireValidPath(t *testing.T, g *gridgraph.CostGrid, rules crucible.Rules, start, goal gridgraph.Coord, res crucible.Result) {
	t.Helper()
	require.True(t, res.Found)
	require.NotEmpty(t, res.Path)

	first := res.Path[0]
	require.Equal(t, start, first.Pos)
	require.Equal(t, 0, first.Run)
	starts := crucible.StartStates(start)
	require.Contains(t, starts[:], first)
	require.Equal(t, goal, res.Path[len(res.Path)-1].Pos)
	require.Equal(t, res.End, res.Path[len(res.Path)-1])

	var sum int64
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1], res.Path[i]
		require.Contains(t, crucible.Successors(prev, rules, g), cur, "step %d: %v -> %v", i, prev, cur)
		require.LessOrEqual(t, cur.Run, rules.MaxRun)
		c, err := g.CostAt(cur.Pos)
		require.NoError(t, err)
		sum += int64(c)
	}
	require.Equal(t, res.Cost, sum)
}
