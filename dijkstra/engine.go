package dijkstra

import (
	"log/slog"
	"time"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/lvpath/core"
)

// noPrev marks a node without predecessor in Engine.prev.
const noPrev = -1

// Engine runs Dijkstra's algorithm over a core.WeightedGraph and answers
// distance and path queries about the most recent run.
//
// Per-run state lives in side tables indexed by the graph's dense node
// indexes; nodes and graph are never written to. Each FindShortestPath,
// FindAllShortestPaths or Reset call starts from fresh tables, so an Engine
// may be reused across runs and graphs. An Engine is not safe for concurrent
// use; independent engines may share a graph.
type Engine[T comparable] struct {
	opts Options

	graph *core.WeightedGraph[T]

	// dist[i] is the best known distance of node i (Unreached if none).
	dist []float64

	// prev[i] is the index of node i's predecessor, or noPrev.
	prev []int

	// visited holds settled node indexes in settle order.
	visited *sparsesets.Set

	// frontier holds reached, unvisited nodes keyed by (distance, index).
	frontier *frontier

	stats Stats
}

// New returns an Engine configured by opts. Call FindShortestPath,
// FindAllShortestPaths or Reset to load a graph.
func New[T comparable](opts ...Option) *Engine[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine[T]{opts: cfg}
}

// FindShortestPath computes the shortest distance and predecessor chain
// from start to end, stopping as soon as end is settled. Nodes that were not
// settled by then stay in the unvisited set.
//
// Errors (returned before any state change, all match core.ErrInvalidArgument):
//   - ErrNilGraph    if g is nil.
//   - ErrNilNode     if start or end is nil.
//   - ErrUnknownNode if start or end is not part of g.
func (e *Engine[T]) FindShortestPath(g *core.WeightedGraph[T], start, end *core.Node[T]) error {
	if g == nil {
		return ErrNilGraph
	}
	if start == nil || end == nil {
		return ErrNilNode
	}
	target, ok := g.IndexOf(end)
	if !ok {
		return ErrUnknownNode
	}
	if err := e.Reset(g, start); err != nil {
		return err
	}
	e.run(ModeSingleTarget, target)

	return nil
}

// FindAllShortestPaths computes shortest distances and predecessors from
// start to every node reachable from it.
//
// Errors are the same as FindShortestPath minus the end node checks.
func (e *Engine[T]) FindAllShortestPaths(g *core.WeightedGraph[T], start *core.Node[T]) error {
	if err := e.Reset(g, start); err != nil {
		return err
	}
	e.run(ModeAllTargets, noPrev)

	return nil
}

// Reset loads g and prepares a run from start without executing it: every
// node becomes unvisited with distance Unreached and no predecessor, then
// start gets distance 0. The primitives can then drive the run step by step.
func (e *Engine[T]) Reset(g *core.WeightedGraph[T], start *core.Node[T]) error {
	if g == nil {
		return ErrNilGraph
	}
	if start == nil {
		return ErrNilNode
	}
	s, ok := g.IndexOf(start)
	if !ok {
		return ErrUnknownNode
	}

	n := g.Len()
	e.graph = g
	e.dist = make([]float64, n)
	e.prev = make([]int, n)
	for i := range e.dist {
		e.dist[i] = Unreached
		e.prev[i] = noPrev
	}
	e.visited = sparsesets.New(n)
	e.frontier = newFrontier(e.dist)
	e.stats = Stats{Nodes: n, Edges: g.EdgeCount()}

	e.dist[s] = 0
	e.frontier.update(s)

	return nil
}

// run executes the shared relaxation loop. target is the node whose
// settlement ends a single-target run; it is ignored in ModeAllTargets.
func (e *Engine[T]) run(mode Mode, target int) {
	e.stats.Mode = mode
	log := e.opts.Logger.With(slog.String("mode", string(mode)))
	log.Debug("dijkstra: run started",
		slog.Int("nodes", e.stats.Nodes),
		slog.Int("edges", e.stats.Edges),
	)
	began := time.Now()

	for {
		u, ok := e.selectMinimum()
		if !ok {
			break // frontier exhausted: everything left is unreachable
		}
		e.settle(u)
		if mode == ModeSingleTarget && u == target {
			break
		}
		e.relax(u)
	}

	e.stats.Elapsed = time.Since(began)
	e.stats.Reached = 0
	for _, d := range e.dist {
		if d < Unreached {
			e.stats.Reached++
		}
	}
	log.Debug("dijkstra: run finished",
		slog.Int("settled", e.stats.Settled),
		slog.Int("relaxed", e.stats.Relaxed),
		slog.Int("reached", e.stats.Reached),
		slog.Duration("elapsed", e.stats.Elapsed),
	)
	e.opts.OnFinish(e.stats)
}

// selectMinimum returns the unvisited node with the smallest distance below
// Unreached. Among equal distances the lowest node index wins. The node stays
// in the frontier until it is settled.
func (e *Engine[T]) selectMinimum() (int, bool) {
	if e.frontier == nil {
		return noPrev, false
	}
	u, ok := e.frontier.min()
	if !ok || e.dist[u] >= Unreached {
		return noPrev, false
	}

	return u, true
}

// settle moves node u into the visited set.
func (e *Engine[T]) settle(u int) {
	if e.visited.Contains(u) {
		return
	}
	_ = e.visited.Insert(u) // u < Len, never out of range
	e.frontier.remove(u)
	e.stats.Settled++
	e.opts.OnSettle(u, e.dist[u])
}

// relax tries to improve every unvisited neighbour of the settled node u.
// Edges into settled nodes are skipped; their distance is final.
func (e *Engine[T]) relax(u int) {
	for _, edge := range e.graph.OutgoingEdgesAt(u) {
		v, _ := e.graph.IndexOf(edge.Destination())
		if e.visited.Contains(v) {
			continue
		}
		candidate := e.dist[u] + edge.Weight()
		if candidate >= e.dist[v] {
			continue
		}
		e.dist[v] = candidate
		e.prev[v] = u
		e.frontier.update(v)
		e.stats.Relaxed++
		e.opts.OnRelax(u, v, candidate)
	}
}
