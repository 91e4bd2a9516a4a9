package dijkstra

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvpath/core"
)

// Unreached is the distance reported for nodes that no run has reached:
// the largest finite float64.
const Unreached = math.MaxFloat64

// Sentinel errors returned by the engine. Each one matches
// core.ErrInvalidArgument via errors.Is.
var (
	// ErrNilGraph indicates that a nil *core.WeightedGraph was passed.
	ErrNilGraph = core.NewArgumentError("dijkstra: graph is nil")

	// ErrNilNode indicates that a nil start, end or query node was passed.
	ErrNilNode = core.NewArgumentError("dijkstra: node is nil")

	// ErrNilEdge indicates that a nil edge was passed to a primitive.
	ErrNilEdge = core.NewArgumentError("dijkstra: edge is nil")

	// ErrUnknownNode indicates a node that does not belong to the graph the
	// engine is working on (or no graph has been loaded yet).
	ErrUnknownNode = core.NewArgumentError("dijkstra: node is not part of the graph")
)

// Mode tells which entry point started a run.
type Mode string

const (
	// ModeSingleTarget is used by FindShortestPath; the run stops once the
	// end node is settled.
	ModeSingleTarget Mode = "single_target"

	// ModeAllTargets is used by FindAllShortestPaths; the run stops once no
	// unvisited node is reachable.
	ModeAllTargets Mode = "all_targets"
)

// Stats summarises one run.
type Stats struct {
	Mode    Mode          // entry point that produced the run
	Nodes   int           // |V| of the graph
	Edges   int           // |E| of the graph
	Settled int           // nodes moved to the visited set
	Relaxed int           // successful relaxations (distance improvements)
	Reached int           // nodes whose distance is below Unreached
	Elapsed time.Duration // wall time of the loop
}

// Options configures an Engine.
//
// Logger   – receives Debug records at run start and finish (default: discard).
// OnSettle – called after a node is moved to the visited set.
// OnRelax  – called after a successful relaxation from → to.
// OnFinish – called once per completed run with its Stats.
//
// Hooks receive dense node indexes; use (*core.WeightedGraph).Node to map
// them back to nodes.
type Options struct {
	Logger   *slog.Logger
	OnSettle func(index int, distance float64)
	OnRelax  func(from, to int, distance float64)
	OnFinish func(stats Stats)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnSettle: func(int, float64) {},
		OnRelax:  func(int, int, float64) {},
		OnFinish: func(Stats) {},
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle registers a callback run each time a node is settled.
func WithOnSettle(fn func(index int, distance float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run each time a distance improves.
func WithOnRelax(fn func(from, to int, distance float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnFinish registers a callback run at the end of every run.
func WithOnFinish(fn func(stats Stats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}
