// Package app wires the grid loader, the rule-set file and the search
// together for the heatpath command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/gridgraph"
	"github.com/katalvlaran/heatpath/internal/cli"
	"github.com/katalvlaran/heatpath/internal/config"
	"github.com/katalvlaran/heatpath/internal/ctxlog"
)

// Run loads the grid and rule sets named by opts, solves every rule set
// and writes one line per rule set to out:
//
//	<name>: <cost>
//	<name>: no path
//
// With opts.ShowPath a route line follows each found cost.
func Run(ctx context.Context, out io.Writer, opts *cli.Options) error {
	logger := ctxlog.FromContext(ctx)

	g, err := loadGrid(opts.GridPath)
	if err != nil {
		return err
	}
	logger.Info("Grid loaded.", "path", opts.GridPath, "width", g.Width(), "height", g.Height())

	cfg := config.Default(g.Width(), g.Height())
	if opts.ConfigPath != "" {
		if cfg, err = config.Load(ctx, opts.ConfigPath, g.Width(), g.Height()); err != nil {
			return err
		}
	}

	searchOpts := []crucible.Option{}
	if opts.ShowPath {
		searchOpts = append(searchOpts, crucible.WithReturnPath())
	}
	if cfg.StrictGoal || opts.Strict {
		searchOpts = append(searchOpts, crucible.WithStrictGoal())
	}

	logger.Debug("Solving.", "start", cfg.Start.String(), "goal", cfg.Goal.String(), "rule_sets", len(cfg.RuleSets))
	results, err := crucible.SolveAll(ctx, g, cfg.Start, cfg.Goal, cfg.Rules(), searchOpts...)
	if err != nil {
		return fmt.Errorf("solving %s: %w", opts.GridPath, err)
	}

	for i, res := range results {
		name := cfg.RuleSets[i].Name
		logger.Info("Search finished.", "rules", name, "found", res.Found, "cost", res.Cost, "expanded", res.Expanded)
		if !res.Found {
			fmt.Fprintf(out, "%s: no path\n", name)
			continue
		}
		fmt.Fprintf(out, "%s: %d\n", name, res.Cost)
		if opts.ShowPath {
			fmt.Fprintf(out, "  route: %s\n", formatRoute(res.Coords()))
		}
	}

	return nil
}

func loadGrid(path string) (*gridgraph.CostGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grid: %w", err)
	}
	defer f.Close()

	g, err := gridgraph.ParseDigits(f)
	if err != nil {
		return nil, fmt.Errorf("loading grid %s: %w", path, err)
	}
	return g, nil
}

func formatRoute(cells []gridgraph.Coord) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = "(" + c.String() + ")"
	}
	return strings.Join(parts, " ")
}
