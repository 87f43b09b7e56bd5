// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types holds the value types shared by the summarizer facade, its
// strategies and the CLI.
// Implements: docs/ARCHITECTURE § Strategy Contract.
package types

import "fmt"

// StrategyKind names a ranking strategy.
type StrategyKind string

const (
	StrategyTextRank StrategyKind = "textrank"
	StrategyCentroid StrategyKind = "centroid"
)

// ParseStrategy resolves a configuration value to a StrategyKind. The empty
// string selects TextRank.
func ParseStrategy(s string) (StrategyKind, error) {
	switch StrategyKind(s) {
	case "", StrategyTextRank:
		return StrategyTextRank, nil
	case StrategyCentroid:
		return StrategyCentroid, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

// Summary is the result of one summarization, in the shape the CLI renders.
type Summary struct {
	Strategy   StrategyKind `json:"strategy" yaml:"strategy"`
	Input      int          `json:"input_sentences" yaml:"input_sentences"`
	Considered int          `json:"considered_sentences" yaml:"considered_sentences"`
	Requested  int          `json:"requested" yaml:"requested"`
	Sentences  []string     `json:"sentences" yaml:"sentences"`
}
