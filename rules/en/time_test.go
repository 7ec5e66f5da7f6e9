package en

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempora/calendar"
	"tempora/constraint"
	"tempora/grammar"
	"tempora/value"
)

func timeSpanning(t *testing.T, nodes []grammar.Node, start, end int) value.Time {
	t.Helper()
	for _, n := range nodes {
		if n.ByteRange.Start == start && n.ByteRange.End == end {
			if ti, ok := n.Value.(value.Time); ok {
				return ti
			}
		}
	}
	t.Fatalf("no time node spanning [%d,%d) among %d nodes", start, end, len(nodes))
	return value.Time{}
}

func TestTimeRulesTomorrow(t *testing.T) {
	text := "tomorrow"
	nodes := grammar.Parse(text, TimeRules())
	ti := timeSpanning(t, nodes, 0, len(text))

	ctx := constraint.Context{Reference: calendar.Of(2026, calendar.July, 31, 9, 0, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2026, calendar.August, 1, 0, 0, 0, 0), iv.Start)
}

func TestTimeRulesNamedWeekday(t *testing.T) {
	text := "monday"
	nodes := grammar.Parse(text, TimeRules())
	ti := timeSpanning(t, nodes, 0, len(text))
	assert.Equal(t, value.FormDayOfWeek, ti.Form.Kind)

	ctx := constraint.Context{Reference: calendar.Of(2026, calendar.July, 31, 9, 0, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Monday, iv.Start.Weekday())
}

func TestTimeRulesHHMM(t *testing.T) {
	text := "9:30"
	nodes := grammar.Parse(text, TimeRules())
	ti := timeSpanning(t, nodes, 0, len(text))
	assert.Equal(t, 9, ti.Form.TimeOfDay.Hour)
	assert.Equal(t, 30, ti.Form.TimeOfDay.Minute)

	ctx := constraint.Context{Reference: calendar.Of(2026, calendar.July, 31, 0, 0, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, 9, iv.Start.Hour())
	assert.Equal(t, 30, iv.Start.Minute())
}

func TestTimeRulesFivePM(t *testing.T) {
	text := "5pm"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), TimeRules()))
	ti := timeSpanning(t, nodes, 0, len(text))
	assert.False(t, ti.Form.TimeOfDay.Is12Clock)
	assert.Equal(t, 17, ti.Form.TimeOfDay.Hour)

	ctx := constraint.Context{Reference: calendar.Of(2026, calendar.July, 31, 0, 0, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, 17, iv.Start.Hour())
}

func TestTimeRulesNextWeekday(t *testing.T) {
	text := "next tuesday"
	nodes := grammar.Parse(text, TimeRules())
	ti := timeSpanning(t, nodes, 0, len(text))

	// 2013-02-12 is itself a Tuesday; "next tuesday" must skip it.
	ctx := constraint.Context{Reference: calendar.Of(2013, calendar.February, 12, 4, 30, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2013, calendar.February, 19, 0, 0, 0, 0), iv.Start)
}

func TestTimeRulesLastWeekdaySameDayGoesBackAWeek(t *testing.T) {
	text := "last tuesday"
	nodes := grammar.Parse(text, TimeRules())
	ti := timeSpanning(t, nodes, 0, len(text))

	ctx := constraint.Context{Reference: calendar.Of(2013, calendar.February, 12, 4, 30, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2013, calendar.February, 5, 0, 0, 0, 0), iv.Start)
}

func TestTimeRulesInDuration(t *testing.T) {
	text := "in 2 hours"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), DurationRules(), TimeRules()))
	ti := timeSpanning(t, nodes, 0, len(text))

	ctx := constraint.Context{Reference: calendar.Of(2013, calendar.February, 12, 4, 30, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2013, calendar.February, 12, 6, 30, 0, 0), iv.Start)
	assert.Equal(t, calendar.Of(2013, calendar.February, 12, 7, 30, 0, 0), iv.End)
	assert.Equal(t, calendar.Hour, iv.Grain)
}

func TestTimeRulesNow(t *testing.T) {
	text := "now"
	nodes := grammar.Parse(text, TimeRules())
	ti := timeSpanning(t, nodes, 0, len(text))

	ref := calendar.Of(2013, calendar.February, 12, 4, 30, 0, 0)
	ctx := constraint.Context{Reference: ref}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.True(t, iv.Contains(ref))
	assert.Equal(t, calendar.Second, iv.Grain)
}

func TestTimeRulesQuarterPastThree(t *testing.T) {
	text := "quarter past three"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), TimeRules()))
	ti := timeSpanning(t, nodes, 0, len(text))

	assert.Equal(t, 3, ti.Form.TimeOfDay.Hour)
	assert.Equal(t, 15, ti.Form.TimeOfDay.Minute)
	assert.True(t, ti.Form.TimeOfDay.Is12Clock)
}

func TestTimeRulesQuarterToOneWrapsToNoon(t *testing.T) {
	text := "quarter to one"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), TimeRules()))
	ti := timeSpanning(t, nodes, 0, len(text))

	assert.Equal(t, 12, ti.Form.TimeOfDay.Hour)
	assert.Equal(t, 45, ti.Form.TimeOfDay.Minute)
}

func TestTimeRulesFromNineToEleven(t *testing.T) {
	text := "from 9am to 11am"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), TimeRules()))
	ti := timeSpanning(t, nodes, 0, len(text))
	require.True(t, ti.IsInterval)

	ctx := constraint.Context{Reference: calendar.Of(2026, calendar.July, 31, 0, 0, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, 9, iv.Start.Hour())
	assert.Equal(t, 11, iv.End.Hour())
}

func TestTimeRulesByFivePM(t *testing.T) {
	text := "by 5pm"
	nodes := grammar.Parse(text, combinedRules(NumberRules(), TimeRules()))
	ti := timeSpanning(t, nodes, 0, len(text))
	assert.Equal(t, value.DirectionBefore, ti.Direction.Mode)
}

func TestTimeRulesThirdMondayOfMarch(t *testing.T) {
	text := "the third monday of march 2014"
	nodes := grammar.Parse(text, combinedRules(OrdinalRules(), NumberRules(), TimeRules()))
	ti := timeSpanning(t, nodes, 0, len(text))

	ctx := constraint.Context{Reference: calendar.Of(2013, calendar.February, 12, 4, 30, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.Equal(t, calendar.Of(2014, calendar.March, 17, 0, 0, 0, 0), iv.Start)
}

func TestTimeRulesNextCycleSkipsImmediate(t *testing.T) {
	text := "next week"
	nodes := grammar.Parse(text, TimeRules())
	ti := timeSpanning(t, nodes, 0, len(text))

	ctx := constraint.Context{Reference: calendar.Of(2026, calendar.July, 31, 9, 0, 0, 0)}
	iv, ok := constraint.EvaluateOne(ti.Constraint, ctx)
	require.True(t, ok)
	assert.True(t, iv.Start.After(ctx.Reference), "next week must skip the week containing the reference")
}
