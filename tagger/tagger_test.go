package tagger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/calendar"
	"tempora/grammar"
	"tempora/tagger"
	"tempora/value"
)

func node(name string, start, end int, v value.Value) grammar.Node {
	return grammar.Node{
		ByteRange: grammar.ByteRange{Start: start, End: end},
		CharRange: grammar.CharRange{Start: start, End: end},
		RuleName:  name,
		Value:     v,
		Height:    1,
		NumNodes:  1,
	}
}

func TestTagPrefersLongerOfTwoOverlappingSpans(t *testing.T) {
	ctx := tagger.ParsingContext{Reference: calendar.Of(2026, calendar.July, 31, 0, 0, 0, 0)}
	nodes := []grammar.Node{
		node("short", 0, 5, value.Integer{Val: 50}),
		node("long", 0, 10, value.Integer{Val: 5000}),
		node("disjoint", 11, 15, value.Integer{Val: 30}),
	}

	matches := tagger.Tag(nodes, nil, ctx)

	require.Len(t, matches, 2)
	assert.Equal(t, "long", matches[0].RuleName)
	assert.Equal(t, "disjoint", matches[1].RuleName)
}

func TestTagDropsNonFilterMatchingCandidates(t *testing.T) {
	ctx := tagger.ParsingContext{Reference: calendar.Of(2026, calendar.July, 31, 0, 0, 0, 0)}
	nodes := []grammar.Node{
		node("number", 0, 2, value.Integer{Val: 50}),
		node("percentage", 3, 6, value.Percentage{Val: 50}),
	}

	matches := tagger.Tag(nodes, []tagger.OutputKind{tagger.Percentage}, ctx)

	require.Len(t, matches, 1)
	assert.Equal(t, "percentage", matches[0].RuleName)
}

func TestTagOutputIsOrderedByStart(t *testing.T) {
	ctx := tagger.ParsingContext{Reference: calendar.Of(2026, calendar.July, 31, 0, 0, 0, 0)}
	nodes := []grammar.Node{
		node("second", 10, 12, value.Integer{Val: 20}),
		node("first", 0, 2, value.Integer{Val: 15}),
	}

	matches := tagger.Tag(nodes, nil, ctx)

	require.Len(t, matches, 2)
	assert.Equal(t, "first", matches[0].RuleName)
	assert.Equal(t, "second", matches[1].RuleName)
}
