// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package segment turns raw text into the normalized sentence list the
// summarizers consume: whitespace collapsed, no empty entries, first letter
// capitalized, terminal punctuation present.
// Implements: docs/ARCHITECTURE § Segmentation.
package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Segmenter splits raw text into sentences.
type Segmenter interface {
	Segment(text string) []string
}

// Segmenter names accepted by ByName.
const (
	NamePunkt  = "punkt"
	NameRegexp = "regexp"
)

// ByName returns the segmenter registered under name. The empty name
// selects Punkt.
func ByName(name string) (Segmenter, error) {
	switch name {
	case "", NamePunkt:
		return NewPunkt()
	case NameRegexp:
		return Regexp{}, nil
	default:
		return nil, fmt.Errorf("unknown segmenter %q", name)
	}
}

// Punkt segments English text with the pre-trained Punkt model, which knows
// common abbreviations and initials.
type Punkt struct {
	splitText func(string) []string
}

// NewPunkt loads the English Punkt model.
func NewPunkt() (*Punkt, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading punkt model: %w", err)
	}
	return &Punkt{splitText: func(text string) []string {
		parts := tok.Tokenize(text)
		out := make([]string, len(parts))
		for i, p := range parts {
			out[i] = p.Text
		}
		return out
	}}, nil
}

// Segment implements Segmenter.
func (p *Punkt) Segment(text string) []string {
	return Normalize(p.splitText(CollapseSpace(text)))
}

// Regexp splits after runs of '.', '!' or '?'. It has no abbreviation
// handling; text with no terminator becomes a single sentence.
type Regexp struct{}

var reSentence = regexp.MustCompile(`[^.!?]+[.!?]+["')\]]*`)

// Segment implements Segmenter.
func (Regexp) Segment(text string) []string {
	text = CollapseSpace(text)
	locs := reSentence.FindAllStringIndex(text, -1)
	parts := make([]string, 0, len(locs)+1)
	end := 0
	for _, loc := range locs {
		parts = append(parts, text[loc[0]:loc[1]])
		end = loc[1]
	}
	if rest := text[end:]; strings.TrimSpace(rest) != "" {
		parts = append(parts, rest)
	}
	return Normalize(parts)
}

// Normalize applies the sentence cleanup pipeline to already split text.
func Normalize(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = CollapseSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Punctuate(Capitalize(p)))
	}
	return out
}

// CollapseSpace replaces every whitespace run with one space and trims
// both ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Capitalize title-cases the first rune and leaves the rest untouched.
// Digraphs such as "ǆ" become their title form "ǅ", not the upper form.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) || unicode.IsTitle(r) {
		return s
	}
	return cases.Title(language.Und).String(s[:size]) + s[size:]
}

// Punctuate appends a period unless s already ends with punctuation or a
// closing tag bracket.
func Punctuate(s string) string {
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '!', ',', ';', '`', '\'', '"', '.', '?', '>':
		return s
	}
	return s + "."
}
