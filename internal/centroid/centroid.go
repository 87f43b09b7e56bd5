// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package centroid ranks sentences by how many terms they share with the
// rest of the document. It makes a single pass with no iteration.
// Implements: docs/ARCHITECTURE § Centroid Strategy.
package centroid

import (
	"slices"
)

// Options configures a Strategy.
type Options struct {
	// Stopwords are removed before counting overlap. Nil selects
	// DefaultStopwords; an empty, non-nil map disables filtering.
	Stopwords map[string]struct{}
}

// Strategy is the lexical-overlap sentence picker.
type Strategy struct {
	stopwords map[string]struct{}
}

// Scored is one sentence's overlap score.
type Scored struct {
	Index int // Position in the input
	Score int // Sum of overlaps with every other sentence
	Terms int // Distinct terms after normalization
}

// New returns a Strategy with defaults applied.
func New(opts Options) *Strategy {
	sw := opts.Stopwords
	if sw == nil {
		sw = DefaultStopwords()
	}
	return &Strategy{stopwords: sw}
}

// Scores returns every sentence's score, best first. Equal scores are
// ordered by distinct term count, larger first, then by input position, so
// a longer sentence beats an earlier one with the same score. Plain
// first-computed-wins would instead keep the earlier sentence; a stable
// ascending sort followed by a reversal (last-computed wins) is the other
// ordering that also ranks "I like cats and dogs." above "Cats are great."
// and "Dogs are great.".
func (s *Strategy) Scores(sentences []string) []Scored {
	tok := newTokenizer(s.stopwords)
	terms := make([][]string, len(sentences))
	for i, sent := range sentences {
		terms[i] = tok.terms(sent)
	}

	scored := make([]Scored, len(sentences))
	for i := range sentences {
		total := 0
		for j := range sentences {
			if i != j {
				total += overlap(terms[i], terms[j])
			}
		}
		scored[i] = Scored{Index: i, Score: total, Terms: len(terms[i])}
	}

	slices.SortStableFunc(scored, func(a, b Scored) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return b.Terms - a.Terms
	})
	return scored
}

// Pick returns the indices of the count best sentences, best first.
func (s *Strategy) Pick(sentences []string, count int) ([]int, error) {
	if len(sentences) == 0 || count <= 0 {
		return []int{}, nil
	}
	scored := s.Scores(sentences)
	count = min(count, len(scored))

	picked := make([]int, count)
	for i := range picked {
		picked[i] = scored[i].Index
	}
	return picked, nil
}
