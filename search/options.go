package search

import (
	"context"

	"github.com/gridwave/wfc/heuristics"
	"github.com/gridwave/wfc/wfclog"
)

// Config is the driver's resolved option set; its fields are unexported,
// and Run builds it by applying every Option on top of defaultConfig.
type Config struct {
	periodic     bool
	backtracking bool
	location     heuristics.Location
	pattern      heuristics.Pattern
	hooks        Hooks
	ctx          context.Context
	logger       wfclog.Logger
}

// Option configures a Run call.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		periodic:     false,
		backtracking: false,
		location:     heuristics.Lexical,
		pattern:      heuristics.LexicalPattern,
		hooks:        Hooks{},
		ctx:          context.Background(),
		logger:       wfclog.Nop(),
	}
}

// WithPeriodic toggles toroidal boundary conditions in the propagator.
// The default is non-periodic.
func WithPeriodic(periodic bool) Option {
	return func(c *Config) { c.periodic = periodic }
}

// WithBacktracking enables recovering from a contradiction by undoing the
// most recent commit and forbidding the pattern that was tried. The
// default is disabled: a contradiction surfaces immediately.
func WithBacktracking(enabled bool) Option {
	return func(c *Config) { c.backtracking = enabled }
}

// WithLocationHeuristic overrides which unresolved cell is picked next. A
// nil heuristic leaves the default (heuristics.Lexical) in place.
func WithLocationHeuristic(l heuristics.Location) Option {
	return func(c *Config) {
		if l != nil {
			c.location = l
		}
	}
}

// WithPatternHeuristic overrides which pattern is committed at the cell
// the Location heuristic picked. A nil heuristic leaves the default
// (heuristics.LexicalPattern) in place.
func WithPatternHeuristic(p heuristics.Pattern) Option {
	return func(c *Config) {
		if p != nil {
			c.pattern = p
		}
	}
}

// WithHooks installs the observer callbacks: OnChoice, OnBacktrack, and
// CheckFeasible.
func WithHooks(h Hooks) Option {
	return func(c *Config) { c.hooks = h }
}

// WithContext makes Run check ctx.Err() at the top of every frame,
// returning ErrCancelled as soon as it is non-nil. A nil context leaves
// the default (context.Background) in place.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger installs a structured logger for propagate/choice/backtrack
// tracing. The default discards everything.
func WithLogger(l wfclog.Logger) Option {
	return func(c *Config) { c.logger = l }
}
