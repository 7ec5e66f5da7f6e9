package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/calendar"
)

func TestIntervalOfGrain(t *testing.T) {
	d := calendar.Of(2024, calendar.March, 14, 15, 9, 26, 0)
	iv := calendar.OfGrain(d, calendar.Day)
	assert.Equal(t, calendar.Of(2024, calendar.March, 14, 0, 0, 0, 0), iv.Start)
	assert.Equal(t, calendar.Of(2024, calendar.March, 15, 0, 0, 0, 0), iv.End)
	assert.True(t, iv.Contains(d))
}

func TestIntervalIntersect(t *testing.T) {
	a := calendar.Interval{
		Start: calendar.Of(2024, calendar.March, 1, 0, 0, 0, 0),
		End:   calendar.Of(2024, calendar.March, 10, 0, 0, 0, 0),
		Grain: calendar.Day,
	}
	b := calendar.Interval{
		Start: calendar.Of(2024, calendar.March, 5, 0, 0, 0, 0),
		End:   calendar.Of(2024, calendar.March, 15, 0, 0, 0, 0),
		Grain: calendar.Hour,
	}

	got, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2024, calendar.March, 5, 0, 0, 0, 0), got.Start)
	assert.Equal(t, calendar.Of(2024, calendar.March, 10, 0, 0, 0, 0), got.End)
	assert.Equal(t, calendar.Hour, got.Grain, "intersect keeps the finer grain")

	disjoint := calendar.Interval{
		Start: calendar.Of(2024, calendar.April, 1, 0, 0, 0, 0),
		End:   calendar.Of(2024, calendar.April, 2, 0, 0, 0, 0),
		Grain: calendar.Day,
	}
	_, ok = a.Intersect(disjoint)
	assert.False(t, ok)
}

func TestIntervalSpanTo(t *testing.T) {
	start := calendar.OfGrain(calendar.Of(2024, calendar.March, 1, 0, 0, 0, 0), calendar.Day)
	end := calendar.OfGrain(calendar.Of(2024, calendar.March, 5, 0, 0, 0, 0), calendar.Day)

	span := start.SpanTo(end)
	assert.Equal(t, start.Start, span.Start)
	assert.Equal(t, end.End, span.End, "two day-grain operands span through the end's End")
}

func TestIntervalLastOf(t *testing.T) {
	may2024 := calendar.OfGrain(calendar.Of(2024, calendar.May, 1, 0, 0, 0, 0), calendar.Month)
	dayUnit := calendar.Interval{Grain: calendar.Day}

	last, ok := dayUnit.LastOf(may2024)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2024, calendar.May, 31, 0, 0, 0, 0), last.Start, "the last day-grain chunk of May is May 31")
}

func TestGranularityHalfPeriod(t *testing.T) {
	p, ok := calendar.Hour.HalfPeriod()
	require.True(t, ok)
	assert.Equal(t, calendar.Period{Minute: 30}, p)

	p, ok = calendar.Day.HalfPeriod()
	require.True(t, ok)
	assert.Equal(t, calendar.Period{Hour: 12}, p)

	_, ok = calendar.Second.HalfPeriod()
	assert.False(t, ok)
}

func TestFiner(t *testing.T) {
	assert.Equal(t, calendar.Hour, calendar.Finer(calendar.Hour, calendar.Day))
	assert.Equal(t, calendar.Hour, calendar.Finer(calendar.Day, calendar.Hour))
}
