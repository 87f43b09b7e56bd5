// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package summer defines the public interface for extractive summarization:
// pick the most representative sentences of a document with a pluggable
// ranking strategy.
// Implements: docs/ARCHITECTURE § Strategy Contract.
package summer

import (
	"errors"

	"go.uber.org/zap"

	"github.com/petar-djukic/summer/internal/rank"
	"github.com/petar-djukic/summer/pkg/types"
)

// Error types for the summer API.
var (
	ErrInvalidConfig = errors.New("invalid config")
	// ErrNonConvergence is returned when the TextRank engine hits its
	// iteration cap. No partial ranking is returned with it.
	ErrNonConvergence = rank.ErrNonConvergence
)

// Config configures a Summarizer. Zero values select defaults.
type Config struct {
	Strategy      types.StrategyKind // Ranking strategy (default textrank)
	PreserveOrder bool               // Return sentences in document order instead of rank order
	SkipMinWords  int                // Ignore sentences with this many words or fewer (0 = off)
	SkipMaxWords  int                // Ignore sentences with this many words or more (0 = off)

	// TextRank settings.
	Kernel        string  // Distance kernel: "word" (default) or "diff"
	Similarity    bool    // Weight edges by 1/(1+distance) instead of raw distance
	Damping       float64 // Default 0.85
	Tolerance     float64 // Default 1e-4
	MaxIterations int     // Default 1000

	// Centroid settings.
	KeepStopwords bool // Count stopwords toward overlap

	Logger *zap.Logger // Debug logging (default no-op)
}

// Summarizer extracts a summary from an ordered list of sentences.
type Summarizer interface {
	// Summarize returns at most count sentences drawn from sentences with
	// no repeats. An empty input or a count of zero or less yields an
	// empty result and a nil error.
	Summarize(sentences []string, count int) ([]string, error)
}
