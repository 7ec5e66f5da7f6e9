package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/calendar"
	"tempora/engine"
	"tempora/tagger"
	"tempora/value"
)

func reference() calendar.DateTime {
	// 2026-07-31 is a Friday.
	return calendar.Of(2026, calendar.July, 31, 9, 0, 0, 0)
}

func TestParseBareInteger(t *testing.T) {
	matches := engine.Parse("42", reference())

	require.NotEmpty(t, matches)
	found := false
	for _, m := range matches {
		if i, ok := m.Output.Raw.(value.Integer); ok && i.Val == 42 {
			found = true
		}
	}
	assert.True(t, found, "expected a Number match resolving to 42, got %+v", matches)
}

func TestParseDollarAmount(t *testing.T) {
	matches := engine.Parse("$20.50", reference())

	require.NotEmpty(t, matches)
	found := false
	for _, m := range matches {
		if m.Dimension == value.DimAmountOfMoney {
			if money, ok := m.Output.Raw.(value.AmountOfMoney); ok {
				assert.InDelta(t, 20.5, money.Val, 0.0001)
				found = true
			}
		}
	}
	assert.True(t, found, "expected an AmountOfMoney match, got %+v", matches)
}

func TestParseFilterRestrictsOutputKinds(t *testing.T) {
	matches := engine.Parse("42 and $5", reference(), engine.WithFilter(tagger.AmountOfMoney))

	for _, m := range matches {
		assert.Equal(t, value.DimAmountOfMoney, m.Dimension)
	}
}

func TestParseEmptyTextYieldsNoMatches(t *testing.T) {
	matches := engine.Parse("", reference())
	assert.Empty(t, matches)
}

// spec scenario reference instant: 2013-02-12 04:30:00, a Tuesday.
func scenarioReference() calendar.DateTime {
	return calendar.Of(2013, calendar.February, 12, 4, 30, 0, 0)
}

func TestParseInTwoHours(t *testing.T) {
	matches := engine.Parse("in 2 hours", scenarioReference(), engine.WithFilter(tagger.Time))

	require.Len(t, matches, 1)
	res := matches[0].Output.Time
	require.NotNil(t, res)
	assert.Equal(t, calendar.Of(2013, calendar.February, 12, 6, 30, 0, 0), res.Start)
	assert.Equal(t, calendar.Of(2013, calendar.February, 12, 7, 30, 0, 0), res.End)
	assert.Equal(t, calendar.Hour, res.Grain)
}

func TestParseNextTuesdayAt9am(t *testing.T) {
	text := "next tuesday at 9am"
	matches := engine.Parse(text, scenarioReference(), engine.WithFilter(tagger.Time, tagger.DateTime))

	var res *tagger.TimeResolution
	for _, m := range matches {
		if m.ByteRange.Start == 0 && m.ByteRange.End == len(text) {
			res = m.Output.Time
		}
	}
	require.NotNil(t, res, "expected a match spanning the full input, got %+v", matches)
	assert.Equal(t, calendar.Of(2013, calendar.February, 19, 9, 0, 0, 0), res.Start)
	assert.Equal(t, calendar.Of(2013, calendar.February, 19, 10, 0, 0, 0), res.End)
}

func TestParseDollarAmountWithCents(t *testing.T) {
	matches := engine.Parse("20 dollars and 50 cents", scenarioReference(), engine.WithFilter(tagger.AmountOfMoney))

	require.NotEmpty(t, matches)
	money, ok := matches[0].Output.Raw.(value.AmountOfMoney)
	require.True(t, ok)
	assert.InDelta(t, 20.5, money.Val, 0.0001)
}
