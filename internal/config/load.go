package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/heatpath/gridgraph"
	"github.com/katalvlaran/heatpath/internal/ctxlog"
)

// EvalContext exposes the grid dimensions to file expressions.
func EvalContext(width, height int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"width":  cty.NumberIntVal(int64(width)),
			"height": cty.NumberIntVal(int64(height)),
		},
	}
}

// Load parses and decodes the rule-set file at path for a width×height grid.
func Load(ctx context.Context, path string, width, height int) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding rule-set file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	cfg, err := decode(file, width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, err)
	}

	logger.Debug("Successfully decoded rule-set file.", "path", path, "rule_sets", len(cfg.RuleSets))
	return cfg, nil
}

// Parse is Load for in-memory source; filename only labels diagnostics.
func Parse(ctx context.Context, src []byte, filename string, width, height int) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding rule-set source.", "filename", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}

	return decode(file, width, height)
}

func decode(file *hcl.File, width, height int) (*Config, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(file.Body, EvalContext(width, height), &raw); diags.HasErrors() {
		return nil, diags
	}

	cfg := Default(width, height)
	cfg.StrictGoal = raw.StrictGoal

	var err error
	if raw.Start != nil {
		if cfg.Start, err = coord("start", raw.Start); err != nil {
			return nil, err
		}
	}
	if raw.Goal != nil {
		if cfg.Goal, err = coord("goal", raw.Goal); err != nil {
			return nil, err
		}
	}

	if len(raw.Rules) == 0 {
		return cfg, nil
	}
	cfg.RuleSets = make([]NamedRules, 0, len(raw.Rules))
	seen := make(map[string]bool, len(raw.Rules))
	for _, block := range raw.Rules {
		if seen[block.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRules, block.Name)
		}
		seen[block.Name] = true
		nr := NamedRules{Name: block.Name}
		nr.Rules.MinRun, nr.Rules.MaxRun = block.MinRun, block.MaxRun
		if err := nr.Rules.Validate(); err != nil {
			return nil, fmt.Errorf("rules %q: %w", block.Name, err)
		}
		cfg.RuleSets = append(cfg.RuleSets, nr)
	}

	return cfg, nil
}

func coord(name string, v []int) (gridgraph.Coord, error) {
	if len(v) != 2 {
		return gridgraph.Coord{}, fmt.Errorf("%w: %s has %d elements", ErrBadCoordinate, name, len(v))
	}
	return gridgraph.Coord{X: v[0], Y: v[1]}, nil
}
