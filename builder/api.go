// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// api.go — public entry point of the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a draft, then freezes the draft into a core.WeightedGraph.
//   • Determinism: same options, seed and constructor order ⇒ identical graphs.
//   • Constructors never panic at runtime; they return sentinel errors.
//   • Nodes are shared between constructors by label: two constructors that
//     emit label "3" talk about the same node.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Constructor adds nodes and edges to a draft using the resolved config.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft accumulates nodes and edges before the immutable graph is built.
type Draft struct {
	nodes []*core.Node[string]
	byID  map[string]*core.Node[string]
	edges []*core.Edge[string]
}

func newDraft() *Draft {
	return &Draft{byID: make(map[string]*core.Node[string])}
}

// Node returns the node labelled id, creating it on first use.
func (d *Draft) Node(id string) *core.Node[string] {
	if n, ok := d.byID[id]; ok {
		return n
	}
	n := core.NewNode(id)
	d.byID[id] = n
	d.nodes = append(d.nodes, n)

	return n
}

// Edge adds from→to with weight w (and to→from with a fresh weight when the
// config is bidirectional).
func (d *Draft) Edge(cfg builderConfig, from, to string, w float64) error {
	e, err := core.NewEdge(d.Node(from), d.Node(to), w)
	if err != nil {
		return err
	}
	d.edges = append(d.edges, e)
	if !cfg.bidirectional || from == to {
		return nil
	}
	back, err := core.NewEdge(d.Node(to), d.Node(from), cfg.weightFn(cfg.rng))
	if err != nil {
		return err
	}
	d.edges = append(d.edges, back)

	return nil
}

// BuildGraph resolves bopts, applies every constructor in order and returns
// the resulting graph. Constructor errors are wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.WeightedGraph[string], error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewWeightedGraph(d.nodes, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}
