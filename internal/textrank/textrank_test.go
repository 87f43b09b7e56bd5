// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package textrank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/summer/internal/rank"
	"github.com/petar-djukic/summer/internal/similarity"
)

var pets = []string{
	"Cats are great.",
	"Dogs are great.",
	"I like cats and dogs.",
}

func TestStrategy_DistanceWeightingFavorsOutlier(t *testing.T) {
	s := New(Options{})

	picked, err := s.Pick(pets, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, picked)
}

func TestStrategy_SimilarityWeightingFavorsCluster(t *testing.T) {
	s := New(Options{Weighting: WeightSimilarity})

	r, err := s.Rank(pets)
	require.NoError(t, err)
	require.Len(t, r.Scores, 3)
	assert.InDelta(t, r.Scores[0], r.Scores[1], 1e-4)
	assert.Less(t, r.Scores[2], r.Scores[0])
}

func TestStrategy_ScoresFormDistribution(t *testing.T) {
	r, err := New(Options{}).Rank(pets)
	require.NoError(t, err)

	sum := 0.0
	for _, p := range r.Scores {
		assert.GreaterOrEqual(t, p, 0.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-3)
	assert.Positive(t, r.Iterations)
}

func TestStrategy_IdenticalSentencesTieInInputOrder(t *testing.T) {
	same := []string{"Same words here.", "Same words here.", "Same words here."}

	picked, err := New(Options{}).Pick(same, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, picked)
}

func TestStrategy_CountBounds(t *testing.T) {
	s := New(Options{})

	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"zero", 0, 0},
		{"negative", -1, 0},
		{"partial", 2, 2},
		{"exact", 3, 3},
		{"above length", 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			picked, err := s.Pick(pets, tt.count)
			require.NoError(t, err)
			assert.Len(t, picked, tt.want)
			seen := map[int]bool{}
			for _, i := range picked {
				assert.False(t, seen[i], "duplicate index %d", i)
				seen[i] = true
			}
		})
	}
}

func TestStrategy_EmptyInput(t *testing.T) {
	picked, err := New(Options{}).Pick(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, picked)
}

func TestStrategy_PropagatesNonConvergence(t *testing.T) {
	cfg := rank.DefaultConfig()
	cfg.Tolerance = 0
	cfg.MaxIterations = 1
	s := New(Options{Rank: &cfg})

	_, err := s.Pick(pets, 1)
	require.ErrorIs(t, err, rank.ErrNonConvergence)
}

func TestStrategy_DiffKernel(t *testing.T) {
	s := New(Options{Kernel: similarity.DiffDistance})

	picked, err := s.Pick(pets, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, picked)
}

func TestStrategy_Deterministic(t *testing.T) {
	s := New(Options{})
	first, err := s.Pick(pets, 2)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := s.Pick(pets, 2)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
