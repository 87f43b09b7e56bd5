// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: docs/ARCHITECTURE § Command Line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/summer/pkg/types"
)

// renderOptions controls how a summary is written.
type renderOptions struct {
	Format    string // text, json or yaml
	List      string // none, ordered or unordered (text only)
	Separator string // between sentences (text only)
}

// render writes the summary to w.
func render(w io.Writer, opts renderOptions, sum *types.Summary) error {
	switch opts.Format {
	case "", "text":
		return renderText(w, opts, sum.Sentences)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sum); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func renderText(w io.Writer, opts renderOptions, sentences []string) error {
	items := make([]string, len(sentences))
	for i, s := range sentences {
		switch opts.List {
		case "", "none":
			items[i] = s
		case "ordered":
			items[i] = fmt.Sprintf("%d. %s", i+1, s)
		case "unordered":
			items[i] = "- " + s
		default:
			return fmt.Errorf("unknown list style %q", opts.List)
		}
	}
	if len(items) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, strings.Join(items, opts.Separator))
	return err
}
