// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package rank runs a random-surfer (PageRank) iteration over a directed
// graph until every node is stable in the same round.
// Implements: docs/ARCHITECTURE § Rank Engine.
package rank

import (
	"errors"
	"fmt"
	"math"
)

const (
	defaultDamping   = 0.85
	defaultTolerance = 1e-4
	defaultMaxIter   = 1000
)

// Errors returned by Rank.
var (
	ErrInvalidConfig  = errors.New("invalid rank config")
	ErrNonConvergence = errors.New("rank did not converge")
)

// DanglingPolicy decides what happens to the mass held by a node with no
// outgoing weight.
type DanglingPolicy int

const (
	// DanglingUniform spreads the node's mass evenly over all nodes.
	DanglingUniform DanglingPolicy = iota
	// DanglingDrop discards it; the node contributes zero to its neighbors.
	DanglingDrop
)

// Config configures a Rank call. Unlike most configs in this module, zero
// values are not replaced: a zero tolerance is legal and means exact
// equality. Start from DefaultConfig.
type Config struct {
	Damping       float64        // Probability of following an edge, in (0,1)
	Tolerance     float64        // Per-node change that still counts as stable, >= 0
	MaxIterations int            // Round cap before ErrNonConvergence, > 0
	Dangling      DanglingPolicy // Zero out-degree handling
}

// DefaultConfig returns damping 0.85, tolerance 1e-4 and a 1000 round cap.
func DefaultConfig() Config {
	return Config{
		Damping:       defaultDamping,
		Tolerance:     defaultTolerance,
		MaxIterations: defaultMaxIter,
		Dangling:      DanglingUniform,
	}
}

// Scores is a probability vector keyed by node, in graph node order.
type Scores[K comparable] struct {
	Order []K
	Prob  map[K]float64
}

// Get returns the probability of id, or 0 for unknown nodes.
func (s *Scores[K]) Get(id K) float64 {
	return s.Prob[id]
}

// Values returns probabilities in node order.
func (s *Scores[K]) Values() []float64 {
	out := make([]float64, len(s.Order))
	for i, id := range s.Order {
		out[i] = s.Prob[id]
	}
	return out
}

// Result is a converged probability vector.
type Result[K comparable] struct {
	Scores     *Scores[K]
	Iterations int // Rounds run, including the all-stable round
}

// inEdge is one incoming contribution: the source node index and the share
// of its mass that flows along this edge.
type inEdge struct {
	from  int
	share float64
}

// Rank iterates the random-surfer update over g until every node changes by
// at most cfg.Tolerance in the same round. Probabilities start at 1/N and are
// not renormalized between rounds. Edges pointing at identifiers that are not
// nodes of g carry mass out of the graph.
func Rank[K comparable](g *Graph[K], cfg Config) (*Result[K], error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	nodes := g.Nodes()
	n := len(nodes)
	if n == 0 {
		return &Result[K]{Scores: &Scores[K]{Prob: map[K]float64{}}}, nil
	}

	idx := make(map[K]int, n)
	for i, id := range nodes {
		idx[id] = i
	}

	// Invert outgoing edges and record each node's total out-weight.
	incoming := make([][]inEdge, n)
	outWeight := make([]float64, n)
	for i, id := range nodes {
		for _, e := range g.Outgoing(id) {
			outWeight[i] += e.Weight
		}
	}
	var dangling []int
	for i, id := range nodes {
		if outWeight[i] == 0 {
			dangling = append(dangling, i)
			continue
		}
		for _, e := range g.Outgoing(id) {
			j, ok := idx[e.To]
			if !ok {
				continue
			}
			incoming[j] = append(incoming[j], inEdge{from: i, share: e.Weight / outWeight[i]})
		}
	}

	coeff := (1 - cfg.Damping) / float64(n)
	prob := make([]float64, n)
	for i := range prob {
		prob[i] = 1 / float64(n)
	}
	next := make([]float64, n)

	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		danglingMass := 0.0
		if cfg.Dangling == DanglingUniform {
			for _, i := range dangling {
				danglingMass += prob[i]
			}
			danglingMass /= float64(n)
		}

		stable := 0
		for b := 0; b < n; b++ {
			sum := danglingMass
			for _, in := range incoming[b] {
				sum += prob[in.from] * in.share
			}
			next[b] = coeff + cfg.Damping*sum
			if math.Abs(next[b]-prob[b]) <= cfg.Tolerance {
				stable++
			}
		}
		prob, next = next, prob

		if stable == n {
			scores := &Scores[K]{Order: nodes, Prob: make(map[K]float64, n)}
			for i, id := range nodes {
				scores.Prob[id] = prob[i]
			}
			return &Result[K]{Scores: scores, Iterations: iter}, nil
		}
	}

	return nil, fmt.Errorf("%w after %d iterations", ErrNonConvergence, cfg.MaxIterations)
}

// validateConfig checks parameter ranges.
func validateConfig(cfg Config) error {
	if !(cfg.Damping > 0 && cfg.Damping < 1) {
		return fmt.Errorf("damping %v outside (0,1)", cfg.Damping)
	}
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) {
		return fmt.Errorf("tolerance %v is negative", cfg.Tolerance)
	}
	if cfg.MaxIterations <= 0 {
		return fmt.Errorf("max iterations %d must be positive", cfg.MaxIterations)
	}
	if cfg.Dangling != DanglingUniform && cfg.Dangling != DanglingDrop {
		return fmt.Errorf("unknown dangling policy %d", cfg.Dangling)
	}
	return nil
}
