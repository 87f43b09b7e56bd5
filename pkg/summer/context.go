// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package summer

import (
	"context"
)

// SummarizeContext runs s.Summarize on its own goroutine and returns early
// with ctx.Err() if the context ends first. The abandoned call runs to
// completion in the background; it shares no state with the caller.
func SummarizeContext(ctx context.Context, s Summarizer, sentences []string, count int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		out []string
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := s.Summarize(sentences, count)
		done <- result{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.out, r.err
	}
}
