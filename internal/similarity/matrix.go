// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package similarity builds the pairwise sentence relatedness matrix that
// feeds the rank engine.
// Implements: docs/ARCHITECTURE § Similarity Graph.
package similarity

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Kernel computes a distance between two tokenized sentences.
type Kernel func(a, b []string) int

// Kernel names accepted by KernelByName.
const (
	KernelWord = "word"
	KernelDiff = "diff"
)

// KernelByName resolves a kernel from its configuration name. The empty
// name selects WordDistance.
func KernelByName(name string) (Kernel, error) {
	switch name {
	case "", KernelWord:
		return WordDistance, nil
	case KernelDiff:
		return DiffDistance, nil
	default:
		return nil, fmt.Errorf("unknown distance kernel %q", name)
	}
}

// Tokenize splits a sentence on whitespace.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}

// Build returns the N×N matrix whose (i, j) entry is kernel(tokens[i],
// tokens[j]) for every ordered pair, diagonal included. A nil kernel means
// WordDistance. Build returns nil for an empty input.
func Build(sentences []string, kernel Kernel) *mat.Dense {
	n := len(sentences)
	if n == 0 {
		return nil
	}
	if kernel == nil {
		kernel = WordDistance
	}

	tokens := make([][]string, n)
	for i, s := range sentences {
		tokens[i] = Tokenize(s)
	}

	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, float64(kernel(tokens[i], tokens[j])))
		}
	}
	return m
}
