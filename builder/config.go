// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// config.go — builder configuration and functional options.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn ("0","1","2",...)
//   • rng           = nil (constructors needing randomness fail without WithSeed)
//   • weightFn      = DefaultWeightFn (constant 1)
//   • bidirectional = false (every edge is emitted once, u→v)

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value so constructors cannot change it for each other.
type builderConfig struct {
	idFn          IDFn
	rng           *rand.Rand
	weightFn      WeightFn
	bidirectional bool
}

// BuilderOption mutates a builderConfig before construction.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed installs a deterministic RNG used by stochastic constructors and
// random weight functions.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDScheme sets the index → label function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic(fmt.Sprintf("WithIDScheme: %v", ErrConstructFailed))
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic(fmt.Sprintf("WithWeightFn: %v", ErrConstructFailed))
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithBidirectional emits every topology edge in both directions, each
// direction drawing its own weight.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = true }
}
