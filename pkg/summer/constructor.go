// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: docs/ARCHITECTURE § Strategy Contract.
package summer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/petar-djukic/summer/internal/centroid"
	"github.com/petar-djukic/summer/internal/rank"
	"github.com/petar-djukic/summer/internal/selector"
	"github.com/petar-djukic/summer/internal/similarity"
	"github.com/petar-djukic/summer/internal/textrank"
	"github.com/petar-djukic/summer/pkg/types"
)

const (
	defaultDamping       = 0.85
	defaultTolerance     = 1e-4
	defaultMaxIterations = 1000
)

// picker is implemented by every ranking strategy: it returns the indices
// of the chosen sentences, best first.
type picker interface {
	Pick(sentences []string, count int) ([]int, error)
}

// ranker is implemented by iterative strategies that report how many
// engine rounds a ranking took.
type ranker interface {
	Rank(sentences []string) (*textrank.Ranking, error)
}

// New validates the config and returns a Summarizer for the selected
// strategy.
func New(cfg Config) (Summarizer, error) {
	applyDefaults(&cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var p picker
	switch cfg.Strategy {
	case types.StrategyTextRank:
		kernel, err := similarity.KernelByName(cfg.Kernel)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		weighting := textrank.WeightDistance
		if cfg.Similarity {
			weighting = textrank.WeightSimilarity
		}
		p = textrank.New(textrank.Options{
			Kernel:    kernel,
			Weighting: weighting,
			Rank: &rank.Config{
				Damping:       cfg.Damping,
				Tolerance:     cfg.Tolerance,
				MaxIterations: cfg.MaxIterations,
				Dangling:      rank.DanglingUniform,
			},
		})
	case types.StrategyCentroid:
		var opts centroid.Options
		if cfg.KeepStopwords {
			opts.Stopwords = map[string]struct{}{}
		}
		p = centroid.New(opts)
	}

	cfg.Logger.Debug("summarizer ready",
		zap.String("strategy", string(cfg.Strategy)),
		zap.Bool("preserve_order", cfg.PreserveOrder))

	return &summarizer{cfg: cfg, picker: p}, nil
}

// summarizer adapts a picker to the public Summarizer interface.
type summarizer struct {
	cfg    Config
	picker picker
}

func (s *summarizer) Summarize(sentences []string, count int) ([]string, error) {
	considered := FilterSentences(sentences, s.cfg.SkipMinWords, s.cfg.SkipMaxWords)
	if len(considered) == 0 || count <= 0 {
		return []string{}, nil
	}

	picked, iterations, err := s.pick(considered, count)
	if err != nil {
		return nil, err
	}

	iterField := zap.Skip()
	if iterations > 0 {
		iterField = zap.Int("iterations", iterations)
	}
	s.cfg.Logger.Debug("sentences ranked",
		zap.String("strategy", string(s.cfg.Strategy)),
		zap.Int("input", len(sentences)),
		zap.Int("considered", len(considered)),
		zap.Int("requested", count),
		iterField,
		zap.Ints("picked", picked))

	return selector.Restore(considered, picked, s.cfg.PreserveOrder), nil
}

// pick runs the strategy. Iterations is zero for single-pass strategies.
func (s *summarizer) pick(sentences []string, count int) ([]int, int, error) {
	r, ok := s.picker.(ranker)
	if !ok {
		picked, err := s.picker.Pick(sentences, count)
		return picked, 0, err
	}
	ranking, err := r.Rank(sentences)
	if err != nil {
		return nil, 0, err
	}
	return selector.Select(ranking.Scores, count), ranking.Iterations, nil
}

// validateConfig checks value ranges after defaults are applied.
func validateConfig(cfg Config) error {
	if _, err := types.ParseStrategy(string(cfg.Strategy)); err != nil {
		return err
	}
	if !(cfg.Damping > 0 && cfg.Damping < 1) {
		return fmt.Errorf("damping %v outside (0,1)", cfg.Damping)
	}
	if cfg.Tolerance < 0 {
		return fmt.Errorf("tolerance %v is negative", cfg.Tolerance)
	}
	if cfg.MaxIterations < 0 {
		return fmt.Errorf("max iterations %d is negative", cfg.MaxIterations)
	}
	if cfg.SkipMinWords < 0 || cfg.SkipMaxWords < 0 {
		return fmt.Errorf("word limits must not be negative")
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Strategy == "" {
		cfg.Strategy = types.StrategyTextRank
	}
	if cfg.Damping == 0 {
		cfg.Damping = defaultDamping
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = defaultTolerance
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = defaultMaxIterations
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}
