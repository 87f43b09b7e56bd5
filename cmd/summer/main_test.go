// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/summer/pkg/types"
)

const petsText = "Cats are great. Dogs are great. I like cats and dogs."

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSummarizeCmd_CentroidFromStdin(t *testing.T) {
	out, err := execute(t, petsText,
		"summarize", "--segmenter", "regexp", "--strategy", "centroid", "-n", "1")
	require.NoError(t, err)
	assert.Equal(t, "I like cats and dogs.\n", out)
}

func TestSummarizeCmd_JSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pets.txt")
	require.NoError(t, os.WriteFile(path, []byte(petsText), 0o644))

	out, err := execute(t, "",
		"summarize", path, "--segmenter", "regexp", "--strategy", "textrank", "--format", "json", "-n", "2")
	require.NoError(t, err)

	var sum types.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, types.StrategyTextRank, sum.Strategy)
	assert.Equal(t, 3, sum.Input)
	assert.Equal(t, 2, sum.Requested)
	assert.Len(t, sum.Sentences, 2)
}

func TestSummarizeCmd_FractionalCountAndYAML(t *testing.T) {
	out, err := execute(t, petsText,
		"summarize", "--segmenter", "regexp", "--strategy", "centroid", "--format", "yaml", "-n", "0.5")
	require.NoError(t, err)

	var sum types.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 2, sum.Requested)
	assert.Len(t, sum.Sentences, 2)
}

func TestSummarizeCmd_PercentAndSentenceCounts(t *testing.T) {
	tests := []struct {
		count string
		want  int
	}{
		{"34%", 2},
		{"1 sentence", 1},
		{"3 sentences", 3},
	}

	for _, tt := range tests {
		t.Run(tt.count, func(t *testing.T) {
			out, err := execute(t, petsText,
				"summarize", "--segmenter", "regexp", "--strategy", "centroid", "--format", "json", "--count", tt.count)
			require.NoError(t, err)

			var sum types.Summary
			require.NoError(t, json.Unmarshal([]byte(out), &sum))
			assert.Equal(t, tt.want, sum.Requested)
			assert.Len(t, sum.Sentences, tt.want)
		})
	}
}

func TestSummarizeCmd_CountFromEnvironment(t *testing.T) {
	t.Setenv("SUMMER_COUNT", "1")

	out, err := execute(t, petsText, "summarize", "--segmenter", "regexp", "--strategy", "centroid")
	require.NoError(t, err)
	assert.Equal(t, "I like cats and dogs.\n", out)
}

func TestSummarizeCmd_RejectsBadCount(t *testing.T) {
	_, err := execute(t, petsText, "summarize", "--segmenter", "regexp", "--count", "lots")
	assert.Error(t, err)
}

func TestSummarizeCmd_RejectsUnknownStrategy(t *testing.T) {
	_, err := execute(t, petsText, "summarize", "--segmenter", "regexp", "--strategy", "lexrank")
	assert.Error(t, err)
}

func TestSegmentCmd(t *testing.T) {
	out, err := execute(t, "first line here.  second line here", "segment", "--segmenter", "regexp")
	require.NoError(t, err)
	assert.Equal(t, "First line here.\nSecond line here.\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "summer "+version+"\n", out)
}

func TestRender_ListStyles(t *testing.T) {
	sum := &types.Summary{Sentences: []string{"One.", "Two."}}

	tests := []struct {
		name string
		opts renderOptions
		want string
	}{
		{"plain", renderOptions{Separator: "\n"}, "One.\nTwo.\n"},
		{"ordered", renderOptions{List: "ordered", Separator: "\n"}, "1. One.\n2. Two.\n"},
		{"unordered", renderOptions{List: "unordered", Separator: "\n"}, "- One.\n- Two.\n"},
		{"custom separator", renderOptions{Separator: " | "}, "One. | Two.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render(&buf, tt.opts, sum))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRender_Errors(t *testing.T) {
	sum := &types.Summary{Sentences: []string{"One."}}
	var buf bytes.Buffer

	assert.Error(t, render(&buf, renderOptions{Format: "xml"}, sum))
	assert.Error(t, render(&buf, renderOptions{List: "roman"}, sum))
}
