package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/calendar"
	"tempora/constraint"
)

func refContext(y int, m calendar.Month, d, h, min int) constraint.Context {
	return constraint.Context{Reference: calendar.Of(y, m, d, h, min, 0, 0)}
}

func TestDayOfWeekForward(t *testing.T) {
	// 2026-07-31 is a Friday.
	ctx := refContext(2026, calendar.July, 31, 9, 0)
	iv, ok := constraint.EvaluateOne(constraint.DayOfWeek(calendar.Monday), ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2026, calendar.August, 3, 0, 0, 0, 0), iv.Start)
}

func TestDayOfWeekBackward(t *testing.T) {
	ctx := refContext(2026, calendar.July, 31, 9, 0)
	iv, ok := constraint.First(constraint.DayOfWeek(calendar.Monday).Backward(ctx))
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2026, calendar.July, 27, 0, 0, 0, 0), iv.Start)
}

func TestTodayIsImmediateOccurrence(t *testing.T) {
	ctx := refContext(2026, calendar.July, 31, 9, 0)
	iv, ok := constraint.EvaluateOne(constraint.Cycle(calendar.Day), ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2026, calendar.July, 31, 0, 0, 0, 0), iv.Start)
}

func TestMonthDayNextOccurrence(t *testing.T) {
	ctx := refContext(2026, calendar.July, 31, 9, 0)
	iv, ok := constraint.EvaluateOne(constraint.MonthDay(12, 25), ctx)
	require.True(t, ok)
	assert.Equal(t, 2026, iv.Start.Year())
	assert.Equal(t, calendar.December, iv.Start.Month())
	assert.Equal(t, 25, iv.Start.Day())
}

func TestYearMonthDay(t *testing.T) {
	ctx := refContext(2019, calendar.January, 1, 0, 0)
	iv, ok := constraint.EvaluateOne(constraint.YearMonthDay(2019, 4, 21), ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2019, calendar.April, 21, 0, 0, 0, 0), iv.Start)
}
