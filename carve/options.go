package carve

import (
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/rng"
)

// CarveHook observes generation progress. It runs after every carve step with
// a read-only view of the in-progress grid. from == to when a cell was carved
// on its own (a root, or a binary-tree visit); otherwise the connector between
// from and to and the cell to were just carved.
type CarveHook func(v grid.View, from, to grid.Point)

// Option configures a generation run by mutating Options before carving starts.
type Option func(*Options)

// Options holds the knobs shared by all carvers.
// Use DefaultOptions for the documented defaults.
type Options struct {
	// Source drives every random draw. nil means "seed from the wall clock".
	Source rng.Source
	// Seed is the seed behind Source when SeedKnown is true.
	Seed int64
	// SeedKnown reports whether Seed describes Source.
	SeedKnown bool
	// Bias is used by the binary-tree carver only.
	Bias Bias
	// OnCarve, if non-nil, is called after every carve step.
	OnCarve CarveHook
}

// DefaultOptions returns Options with no source (time-seeded at run time),
// NW bias and no hook.
func DefaultOptions() Options {
	return Options{
		Source:    nil,
		Seed:      0,
		SeedKnown: false,
		Bias:      NW,
		OnCarve:   nil,
	}
}

// WithSeed fixes the random seed so the run is reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Source = rng.New(seed)
		o.Seed = seed
		o.SeedKnown = true
	}
}

// WithSource injects a caller-owned random source.
// Panics on nil; use WithSeed for reproducible runs.
func WithSource(src rng.Source) Option {
	if src == nil {
		panic("carve: WithSource(nil)")
	}
	return func(o *Options) {
		o.Source = src
		o.Seed = 0
		o.SeedKnown = false
	}
}

// WithBias sets the binary-tree bias. Panics on a value outside NW..SE.
func WithBias(b Bias) Option {
	if !b.valid() {
		panic("carve: WithBias(invalid)")
	}
	return func(o *Options) {
		o.Bias = b
	}
}

// WithOnCarve installs a progress hook. A nil fn removes any hook.
func WithOnCarve(fn CarveHook) Option {
	return func(o *Options) {
		o.OnCarve = fn
	}
}

// newOptions applies opts in order (last wins) and resolves the random source.
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Source == nil {
		o.Source, o.Seed = rng.NewTimeSeeded()
		o.SeedKnown = true
	}
	return o
}

// emit calls the progress hook, if one is installed, with a read-only view.
func (o *Options) emit(g *grid.Grid, from, to grid.Point) {
	if o.OnCarve != nil {
		o.OnCarve(grid.ReadOnly(g), from, to)
	}
}
