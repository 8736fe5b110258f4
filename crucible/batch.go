package crucible

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// SolveAll runs FindMinCost once per rule set, concurrently, on the shared
// immutable grid g. results[i] belongs to rules[i].
//
// At most GOMAXPROCS searches run at once. The first error cancels the
// searches still running and is returned with a nil slice. opts apply to
// every search; a WithContext option in opts is overridden by ctx, and an
// OnExpand hook must be safe for concurrent use.
func SolveAll(ctx context.Context, g *gridgraph.CostGrid, start, goal gridgraph.Coord, rules []Rules, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(rules))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range rules {
		i, r := i, r
		eg.Go(func() error {
			searchOpts := append(append(make([]Option, 0, len(opts)+1), opts...), WithContext(egCtx))
			res, err := FindMinCost(g, start, goal, r, searchOpts...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
