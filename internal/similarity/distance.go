// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: docs/ARCHITECTURE § Similarity Graph.
package similarity

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// PruneThreshold is the diagonal cost above which WordDistance gives up.
const PruneThreshold = 4

// WordDistance returns the Levenshtein distance between two token slices,
// counting whole-token insertions, deletions and substitutions.
//
// Once a diagonal cell d[k][k] exceeds PruneThreshold the computation stops
// and len(a) is returned instead. The pruned value is an upper-bound stand-in,
// not the exact distance, and makes the function asymmetric in a and b.
func WordDistance(a, b []string) int {
	n, m := len(a), len(b)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i == j && curr[j] > PruneThreshold {
				return n
			}
		}
		prev, curr = curr, prev
	}
	return prev[m]
}

// DiffDistance returns the exact token-level Levenshtein distance, with no
// pruning. Each distinct token is mapped to a single rune; go-diff strips the
// shared prefix and suffix of the rune strings, which never changes the
// distance, and the remaining middle is solved by dynamic programming.
//
// go-diff's own DiffLevenshtein is not used: it sums max(insertions,
// deletions) over a diff that is not edit-optimal and overestimates when
// tokens are reordered.
func DiffDistance(a, b []string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	codes := make(map[string]rune)
	encode := func(tokens []string) []rune {
		out := make([]rune, len(tokens))
		for i, t := range tokens {
			r, ok := codes[t]
			if !ok {
				r = tokenRune(len(codes))
				codes[t] = r
			}
			out[i] = r
		}
		return out
	}
	ra, rb := encode(a), encode(b)

	dmp := diffmatchpatch.New()
	prefix := dmp.DiffCommonPrefix(string(ra), string(rb))
	ra, rb = ra[prefix:], rb[prefix:]
	suffix := dmp.DiffCommonSuffix(string(ra), string(rb))
	ra, rb = ra[:len(ra)-suffix], rb[:len(rb)-suffix]

	return levenshtein(ra, rb)
}

// levenshtein is the unpruned edit distance between two sequences.
func levenshtein[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// tokenRune maps a token ordinal into the Unicode private use areas, which
// keeps every code a valid single rune.
func tokenRune(i int) rune {
	const bmpPUA, bmpPUASize = 0xE000, 0x1900
	if i < bmpPUASize {
		return rune(bmpPUA + i)
	}
	return rune(0xF0000 + i - bmpPUASize)
}
