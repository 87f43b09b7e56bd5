// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package selector picks the top-K sentence indices from a score vector.
// Implements: docs/ARCHITECTURE § Sentence Selector.
package selector

import (
	"slices"
	"sort"
)

// Select returns the indices of the count highest scores, highest first.
//
// Ties resolve to the lowest index: for each of the top values, the scores
// are scanned from index 0 and the first unselected index holding that value
// is taken. count >= len(scores) selects every index; count <= 0 selects
// none.
func Select(scores []float64, count int) []int {
	if count <= 0 || len(scores) == 0 {
		return []int{}
	}
	count = min(count, len(scores))

	sorted := slices.Clone(scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	taken := make([]bool, len(scores))
	picked := make([]int, 0, count)
	for _, v := range sorted[:count] {
		for j, s := range scores {
			if !taken[j] && s == v {
				taken[j] = true
				picked = append(picked, j)
				break
			}
		}
	}
	return picked
}

// Restore maps picked indices back to sentences. With preserveOrder the
// result follows the original document order; otherwise it follows the
// order of picked. Out-of-range indices are skipped.
func Restore(sentences []string, picked []int, preserveOrder bool) []string {
	order := picked
	if preserveOrder {
		order = slices.Clone(picked)
		slices.Sort(order)
	}

	out := make([]string, 0, len(order))
	for _, i := range order {
		if i < 0 || i >= len(sentences) {
			continue
		}
		out = append(out, sentences[i])
	}
	return out
}
