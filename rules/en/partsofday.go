package en

import (
	"tempora/calendar"
	"tempora/constraint"
	"tempora/grammar"
	"tempora/value"
)

// dayPartConstraint builds a constraint matching the [startHour,
// endHour) window of every day.
func dayPartConstraint(startHour, endHour int) constraint.Constraint {
	return constraint.TranslateWith(constraint.Cycle(calendar.Day), func(iv calendar.Interval) calendar.Interval {
		start := calendar.Of(iv.Start.Year(), iv.Start.Month(), iv.Start.Day(), startHour, 0, 0, 0)
		end := calendar.Of(iv.Start.Year(), iv.Start.Month(), iv.Start.Day(), endHour, 0, 0, 0)
		return calendar.Interval{Start: start, End: end, Grain: calendar.Hour}
	})
}

func partOfDayTime(kind value.PartOfDayKind, startHour, endHour int) value.Time {
	return value.Time{
		Constraint: dayPartConstraint(startHour, endHour),
		Form:       value.Form{Kind: value.FormPartOfDay, PartOfDay: kind},
		LatentFlag: true,
	}
}

// afterLunchInterval is the 13:00-17:00 window "after lunch" resolves
// to. afterWorkInterval reuses it verbatim rather than a distinct
// 17:00-21:00 window, preserving original_source's behavior per the
// Open Question decision recorded in DESIGN.md.
var afterLunchInterval = dayPartConstraint(13, 17)
var afterWorkInterval = afterLunchInterval

// PartsOfDayRules returns the coarse part-of-day rule set. "evening"
// and "night" are kept as textually distinct lexemes (not merged),
// per the Open Question decision recorded in DESIGN.md.
func PartsOfDayRules() []grammar.Rule {
	var rules []grammar.Rule

	rules = append(rules, terminal("morning", `morning`, func([]string) (value.Value, bool) {
		return partOfDayTime(value.Morning, 6, 12), true
	}))
	rules = append(rules, terminal("afternoon", `afternoon`, func([]string) (value.Value, bool) {
		return partOfDayTime(value.Afternoon, 12, 18), true
	}))
	rules = append(rules, terminal("evening", `evening`, func([]string) (value.Value, bool) {
		return partOfDayTime(value.Evening, 18, 21), true
	}))
	rules = append(rules, terminal("night", `night`, func([]string) (value.Value, bool) {
		return partOfDayTime(value.Night, 21, 24), true
	}))

	rules = append(rules, terminal("after lunch", `after lunch`, func([]string) (value.Value, bool) {
		return value.Time{Constraint: afterLunchInterval, Form: value.Form{Kind: value.FormPartOfDay}}, true
	}))
	rules = append(rules, terminal("after work", `after work`, func([]string) (value.Value, bool) {
		return value.Time{Constraint: afterWorkInterval, Form: value.Form{Kind: value.FormPartOfDay}}, true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "in the <part-of-day>",
		Patterns: []grammar.Pattern{regexTerminal(`in the|this`), timeNonTerminal(formIs(value.FormPartOfDay))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[1].Value)
			return t.Lifted(), true
		},
	})

	return rules
}
