package config

import (
	"errors"

	"github.com/katalvlaran/heatpath/crucible"
	"github.com/katalvlaran/heatpath/gridgraph"
)

var (
	// ErrBadCoordinate indicates a start or goal list without exactly two numbers.
	ErrBadCoordinate = errors.New("config: coordinate must be a list of two integers")
	// ErrDuplicateRules indicates two rules blocks with the same label.
	ErrDuplicateRules = errors.New("config: duplicate rules block")
)

// NamedRules is one labelled rules block.
type NamedRules struct {
	Name  string
	Rules crucible.Rules
}

// Config is the decoded, validated rule-set file.
type Config struct {
	Start      gridgraph.Coord
	Goal       gridgraph.Coord
	StrictGoal bool
	RuleSets   []NamedRules
}

// Rules returns the rule sets without their names, in file order.
func (c *Config) Rules() []crucible.Rules {
	out := make([]crucible.Rules, len(c.RuleSets))
	for i, nr := range c.RuleSets {
		out[i] = nr.Rules
	}
	return out
}

// Default returns the configuration used when no file is given: corner to
// corner on a width×height grid under both rule presets.
func Default(width, height int) *Config {
	return &Config{
		Start: gridgraph.Coord{X: 0, Y: 0},
		Goal:  gridgraph.Coord{X: width - 1, Y: height - 1},
		RuleSets: []NamedRules{
			{Name: "crucible", Rules: crucible.StandardRules},
			{Name: "ultra", Rules: crucible.UltraRules},
		},
	}
}

// hclFile represents the top-level structure of a rule-set file for decoding.
type hclFile struct {
	Start      []int       `hcl:"start,optional"`
	Goal       []int       `hcl:"goal,optional"`
	StrictGoal bool        `hcl:"strict_goal,optional"`
	Rules      []*hclRules `hcl:"rules,block"`
}

// hclRules is a `rules "<name>" { ... }` block.
type hclRules struct {
	Name   string `hcl:"name,label"`
	MinRun int    `hcl:"min_run"`
	MaxRun int    `hcl:"max_run"`
}
