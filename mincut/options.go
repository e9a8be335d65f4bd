package mincut

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/hypercut/hypergraph"
)

// Options configures Run. The zero value is not meant to be used
// directly; build one with DefaultOptions and the With* functions, the
// same functional-options shape flow.FlowOptions, dijkstra.Options, and
// prim_kruskal.MSTOptions use.
type Options struct {
	// Logger receives one debug record per phase (vertex count, the
	// vertex isolated by that phase, the phase's cut value) and one
	// info record when a phase improves the incumbent best cut. Nil is
	// treated as zap.NewNop() — logging is strictly diagnostic and
	// never influences the result.
	Logger *zap.Logger

	// StartVertex pins the seed vertex phase() adds to A first, instead
	// of the default (the smallest current VID, re-chosen fresh every
	// phase — see the seed note in phase() in mincut.go). Exists for reproducible tests
	// that assert against a specific maximum-adjacency ordering; most
	// callers should leave this nil.
	StartVertex *hypergraph.VID
}

// Option configures an Options value.
type Option func(*Options)

// WithLogger sets the *zap.Logger Run reports phase progress to.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithStartVertex pins the seed vertex for every phase to v instead of
// re-deriving it as the current smallest VID.
func WithStartVertex(v hypergraph.VID) Option {
	return func(o *Options) { o.StartVertex = &v }
}

// DefaultOptions returns an Options value with a no-op logger and no
// pinned start vertex (the recommended, reproducible-by-construction
// default: see the design note on the starting vertex in this package's
// mincut.go).
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o
}
