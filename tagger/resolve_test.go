package tagger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/calendar"
	"tempora/constraint"
	"tempora/tagger"
	"tempora/value"
)

func TestResolveNonTimePassesThrough(t *testing.T) {
	ctx := tagger.ParsingContext{Reference: calendar.Of(2026, calendar.July, 31, 9, 0, 0, 0)}
	out, ok := ctx.Resolve(value.Integer{Val: 5}, value.DimNumber)
	require.True(t, ok)
	assert.Equal(t, value.Integer{Val: 5}, out.Raw)
	assert.Nil(t, out.Time)
}

func TestResolveTwoSidedTime(t *testing.T) {
	ctx := tagger.ParsingContext{Reference: calendar.Of(2026, calendar.July, 31, 9, 0, 0, 0)}
	v := value.Time{Constraint: constraint.DayOfWeek(calendar.Monday)}
	out, ok := ctx.Resolve(v, value.DimDate)
	require.True(t, ok)
	require.NotNil(t, out.Time)
	assert.False(t, out.Time.OneSided)
	assert.Equal(t, calendar.Of(2026, calendar.August, 3, 0, 0, 0, 0), out.Time.Start)
}

func TestResolveDirectionAfter(t *testing.T) {
	ctx := tagger.ParsingContext{Reference: calendar.Of(2026, calendar.July, 31, 9, 0, 0, 0)}
	v := value.Time{
		Constraint: constraint.DayOfWeek(calendar.Monday),
		Direction:  value.Direction{Mode: value.DirectionAfter},
	}
	out, ok := ctx.Resolve(v, value.DimDateInterval)
	require.True(t, ok)
	require.NotNil(t, out.Time)
	assert.True(t, out.Time.OneSided)
	assert.Equal(t, value.AnchorStart, out.Time.Side)
	assert.Equal(t, calendar.Of(2026, calendar.August, 3, 0, 0, 0, 0), out.Time.Start)
}

func TestResolveEmptyResolution(t *testing.T) {
	ctx := tagger.ParsingContext{Reference: calendar.Of(2026, calendar.July, 31, 9, 0, 0, 0)}
	v := value.Time{Constraint: constraint.Before(constraint.DayOfWeek(calendar.Monday), constraint.Month(13))}
	_, ok := ctx.Resolve(v, value.DimDate)
	assert.False(t, ok, "an other-constraint that never matches yields EmptyResolution")
}
