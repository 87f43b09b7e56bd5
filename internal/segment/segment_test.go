// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"collapses whitespace", []string{"  Hello \n\t world. "}, []string{"Hello world."}},
		{"drops empty parts", []string{"", "   ", "Kept."}, []string{"Kept."}},
		{"capitalizes", []string{"lower start."}, []string{"Lower start."}},
		{"adds period", []string{"No ending"}, []string{"No ending."}},
		{"keeps question mark", []string{"Really?"}, []string{"Really?"}},
		{"keeps closing quote", []string{`He said "go"`}, []string{`He said "go"`}},
		{"keeps closing tag", []string{"<b>bold</b>"}, []string{"<b>bold</b>"}},
		{"unicode first letter", []string{"élan vital"}, []string{"Élan vital."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "hello world", "Hello world"},
		{"already upper", "Hello", "Hello"},
		{"accented", "élan vital", "Élan vital"},
		{"digraph takes title form", "ǆemal", "ǅemal"},
		{"title digraph untouched", "ǅemal", "ǅemal"},
		{"rest untouched", "iPhone sales", "IPhone sales"},
		{"leading digit", "3 cats", "3 cats"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Capitalize(tt.in))
		})
	}
}

func TestRegexp_Segment(t *testing.T) {
	text := "First one.  second one!\nThird one? trailing words"

	got := Regexp{}.Segment(text)
	assert.Equal(t, []string{
		"First one.",
		"Second one!",
		"Third one?",
		"Trailing words.",
	}, got)
}

func TestRegexp_NoTerminator(t *testing.T) {
	assert.Equal(t, []string{"Just a fragment."}, Regexp{}.Segment("just a fragment"))
	assert.Empty(t, Regexp{}.Segment("   "))
}

func TestPunkt_Segment(t *testing.T) {
	p, err := NewPunkt()
	require.NoError(t, err)

	got := p.Segment("The meeting ran long. Everyone left at noon. Nobody complained.")
	assert.Equal(t, []string{
		"The meeting ran long.",
		"Everyone left at noon.",
		"Nobody complained.",
	}, got)
}

func TestByName(t *testing.T) {
	s, err := ByName(NameRegexp)
	require.NoError(t, err)
	assert.IsType(t, Regexp{}, s)

	s, err = ByName("")
	require.NoError(t, err)
	assert.IsType(t, &Punkt{}, s)

	_, err = ByName("spacy")
	assert.Error(t, err)
}
