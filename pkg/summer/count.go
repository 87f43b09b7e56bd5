// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package summer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ResolveCount turns a requested summary size into a sentence count for a
// document of n sentences. Values of 1 or more are absolute and truncated to
// an integer; values in (0,1) are a fraction of n, rounded up; anything else
// is zero.
func ResolveCount(value float64, n int) int {
	switch {
	case math.IsNaN(value) || value <= 0:
		return 0
	case value >= 1:
		if value > float64(math.MaxInt32) {
			return math.MaxInt32
		}
		return int(value)
	default:
		return int(math.Ceil(float64(n) * value))
	}
}

// ParseCount resolves a textual summary size for a document of n
// sentences. It accepts a plain number ("3", "0.25", read by ResolveCount),
// a sentence count ("3 sentences", "1 sentence") and a percentage ("50%",
// rounded up; 100% or more keeps every sentence).
func ParseCount(value string, n int) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case v == "":
		return 0, fmt.Errorf("%w: empty count", ErrInvalidConfig)
	case strings.HasSuffix(v, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(v, "%")), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: count %q: %v", ErrInvalidConfig, value, err)
		}
		if pct >= 100 {
			return n, nil
		}
		return ResolveCount(pct/100, n), nil
	case strings.Contains(v, "sentence"):
		sentences, err := strconv.Atoi(strings.Fields(v)[0])
		if err != nil {
			return 0, fmt.Errorf("%w: count %q: %v", ErrInvalidConfig, value, err)
		}
		return max(sentences, 0), nil
	default:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: count %q: %v", ErrInvalidConfig, value, err)
		}
		return ResolveCount(f, n), nil
	}
}

// FilterSentences drops sentences whose word count is at most minWords or at
// least maxWords. A zero limit is disabled. The input is not modified.
func FilterSentences(sentences []string, minWords, maxWords int) []string {
	if minWords <= 0 && maxWords <= 0 {
		return sentences
	}
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		words := len(strings.Fields(s))
		if minWords > 0 && words <= minWords {
			continue
		}
		if maxWords > 0 && words >= maxWords {
			continue
		}
		out = append(out, s)
	}
	return out
}
