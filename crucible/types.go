// Package crucible defines rules, configuration options and results
// for the run-constrained grid search.
//
// Options:
//
//	– ReturnPath:  if true, Result.Path holds the states from start to goal.
//	– StrictGoal:  if true, the goal only counts once the current run is ≥ MinRun.
//	– MaxCost:     entries costlier than this are never expanded.
//	– Ctx:         cancellation for long searches.
//	– OnExpand:    hook called for every state taken off the frontier.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the provided grid pointer is nil.
//	– ErrBadRules        if the movement rules are inconsistent.
//	– ErrOptionViolation if an Option received an invalid argument.
package crucible

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/heatpath/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.CostGrid was passed in.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrBadRules indicates MinRun < 0, MaxRun < 1 or MinRun > MaxRun.
	ErrBadRules = errors.New("crucible: invalid movement rules")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("crucible: invalid option supplied")
)

// Rules bound how far the walker may travel in one heading.
//
// MinRun is the number of straight steps required before a turn is allowed.
// MaxRun is the number of straight steps after which a turn is forced.
type Rules struct {
	MinRun int
	MaxRun int
}

// Rule presets.
var (
	// StandardRules: turn whenever you like, but never go more than 3 straight.
	StandardRules = Rules{MinRun: 0, MaxRun: 3}

	// UltraRules: at least 4 straight before a turn, at most 10.
	UltraRules = Rules{MinRun: 4, MaxRun: 10}
)

// Validate reports ErrBadRules when r cannot describe a walk.
func (r Rules) Validate() error {
	switch {
	case r.MinRun < 0:
		return fmt.Errorf("%w: MinRun=%d is negative", ErrBadRules, r.MinRun)
	case r.MaxRun < 1:
		return fmt.Errorf("%w: MaxRun=%d must be at least 1", ErrBadRules, r.MaxRun)
	case r.MinRun > r.MaxRun:
		return fmt.Errorf("%w: MinRun=%d exceeds MaxRun=%d", ErrBadRules, r.MinRun, r.MaxRun)
	}
	return nil
}

// String implements fmt.Stringer.
func (r Rules) String() string {
	return fmt.Sprintf("{min=%d max=%d}", r.MinRun, r.MaxRun)
}

// Options configures a single search.
type Options struct {
	Ctx        context.Context           // Cancellation; checked every ctxCheckInterval pops
	ReturnPath bool                      // Whether to fill Result.Path
	StrictGoal bool                      // Require Run ≥ MinRun on the goal cell
	MaxCost    int64                     // Entries above this cost are not expanded
	OnExpand   func(s State, cost int64) // Called for every fresh (non-stale) pop

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with:
//   - Background context
//   - no path reconstruction
//   - coordinate-only goal test
//   - no cost cap (math.MaxInt64)
//   - no hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		ReturnPath: false,
		StrictGoal: false,
		MaxCost:    math.MaxInt64,
		OnExpand:   nil,
	}
}

// WithReturnPath enables reconstruction of the winning route in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithStrictGoal makes the goal count only when reached with Run ≥ MinRun,
// i.e. the walker must be able to stop there.
func WithStrictGoal() Option {
	return func(o *Options) {
		o.StrictGoal = true
	}
}

// WithMaxCost caps the accumulated cost explored. Entries above max are
// dropped, so a goal farther than max ends the search with Found == false.
// A negative max is recorded and surfaced as ErrOptionViolation.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost=%d must be non-negative", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand installs fn as a hook called with each state taken off the
// frontier, before the goal test. Stale entries are not reported.
func WithOnExpand(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// Result captures the outcome of a search.
type Result struct {
	// Rules the search ran with.
	Rules Rules

	// Found is false when the frontier emptied before reaching the goal.
	Found bool

	// Cost is the minimum accumulated cost to the goal. Zero when !Found.
	Cost int64

	// End is the state popped on the goal coordinate. Zero value when !Found.
	End State

	// Path lists states from a start state to End inclusive.
	// Nil unless WithReturnPath was given and Found is true.
	Path []State

	// Expanded counts the states taken off the frontier (stale entries excluded).
	Expanded int
}

// Coords returns the cell sequence of r.Path.
func (r Result) Coords() []gridgraph.Coord {
	if r.Path == nil {
		return nil
	}
	out := make([]gridgraph.Coord, len(r.Path))
	for i, s := range r.Path {
		out[i] = s.Pos
	}
	return out
}
