// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: docs/ARCHITECTURE § Centroid Strategy.
package centroid

import (
	"bufio"
	_ "embed"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed stopwords.txt
var stopwordList string

// DefaultStopwords returns a fresh copy of the built-in English stopword set.
func DefaultStopwords() map[string]struct{} {
	set := make(map[string]struct{})
	scan := bufio.NewScanner(strings.NewReader(stopwordList))
	for scan.Scan() {
		if w := strings.TrimSpace(scan.Text()); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// tokenizer normalizes sentences into sorted, de-duplicated term lists.
// It holds x/text transformers, which are stateful, so each Pick call
// builds its own.
type tokenizer struct {
	lower     cases.Caser
	fold      transform.Transformer
	stopwords map[string]struct{}
}

func newTokenizer(stopwords map[string]struct{}) *tokenizer {
	return &tokenizer{
		lower:     cases.Lower(language.Und),
		fold:      transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		stopwords: stopwords,
	}
}

// terms splits on whitespace, lowercases, strips diacritics and punctuation,
// drops stopwords, then sorts and removes duplicates.
func (t *tokenizer) terms(sentence string) []string {
	fields := strings.Fields(sentence)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := t.normalize(f)
		if w == "" {
			continue
		}
		if _, stop := t.stopwords[w]; stop {
			continue
		}
		out = append(out, w)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (t *tokenizer) normalize(word string) string {
	w := t.lower.String(word)
	if folded, _, err := transform.String(t.fold, w); err == nil {
		w = folded
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, w)
}

// overlap counts the terms shared by two sorted lists with a merge walk,
// capped at the integer average of their lengths.
func overlap(a, b []string) int {
	ai, bi, n := 0, 0, 0
	for ai < len(a) && bi < len(b) {
		switch {
		case a[ai] < b[bi]:
			ai++
		case a[ai] > b[bi]:
			bi++
		default:
			n++
			ai++
			bi++
		}
	}
	return min(n, (len(a)+len(b))/2)
}
