package en

import (
	"tempora/calendar"
	"tempora/constraint"
	"tempora/grammar"
	"tempora/value"
)

// CelebrationRules returns named-holiday rules, supplementing
// spec.md's explicit grammar with fixed and moveable feasts present in
// the original grammar (see DESIGN.md).
func CelebrationRules() []grammar.Rule {
	var rules []grammar.Rule

	rules = append(rules, terminal("christmas", `(?:xmas|christmas)(?: day)?`, func([]string) (value.Value, bool) {
		return value.Time{Constraint: constraint.MonthDay(12, 25), Form: value.Form{Kind: value.FormCelebration}}, true
	}))
	rules = append(rules, terminal("new year's day", `new year'?s(?: day)?`, func([]string) (value.Value, bool) {
		return value.Time{Constraint: constraint.MonthDay(1, 1), Form: value.Form{Kind: value.FormCelebration}}, true
	}))

	rules = append(rules, terminal("easter", `easter(?: sunday)?`, func([]string) (value.Value, bool) {
		return value.Time{
			Constraint: easterConstraint(),
			Form:       value.Form{Kind: value.FormCelebration},
		}, true
	}))

	rules = append(rules, terminal("memorial day", `memorial day`, func([]string) (value.Value, bool) {
		return value.Time{
			Constraint: constraint.LastOf(constraint.DayOfWeek(calendar.Monday), constraint.Month(5)),
			Form:       value.Form{Kind: value.FormCelebration},
		}, true
	}))
	rules = append(rules, terminal("memorial day weekend", `memorial day weekend`, func([]string) (value.Value, bool) {
		return value.Time{
			Constraint: memorialDayWeekendConstraint(),
			Form:       value.Form{Kind: value.FormCelebration},
		}, true
	}))

	return rules
}

// memorialDayWeekendConstraint computes the weekend's start (last
// Monday of May) and end (last Tuesday of May) as two independently
// evaluated constraints rather than deriving the end by adding a day
// to the start, per the Open Question decision recorded in DESIGN.md.
func memorialDayWeekendConstraint() constraint.Constraint {
	return constraint.TranslateWith(constraint.Cycle(calendar.Year), func(iv calendar.Interval) calendar.Interval {
		year := iv.Start.Year()
		start := lastWeekdayOf(year, calendar.May, calendar.Monday)
		end := lastWeekdayOf(year, calendar.May, calendar.Tuesday)
		return calendar.Interval{Start: start.Start, End: end.End, Grain: calendar.Day}
	})
}

func lastWeekdayOf(year int, month calendar.Month, w calendar.Weekday) calendar.Interval {
	daysInMonth := 31
	probe := calendar.Of(year, month, daysInMonth, 0, 0, 0, 0)
	for probe.Month() != month {
		daysInMonth--
		probe = calendar.Of(year, month, daysInMonth, 0, 0, 0, 0)
	}
	for probe.Weekday() != w {
		probe = probe.AddPeriod(calendar.PeriodOf(calendar.Day, -1))
	}
	return calendar.OfGrain(probe, calendar.Day)
}

// easterConstraint anchors Easter Sunday to each year via
// value.ComputerEaster, translating the generic yearly cycle with the
// Gauss/Butcher offset rather than a fixed calendar.Period — the same
// non-fixed-offset shape spec.md §4.3 calls out Easter for.
func easterConstraint() constraint.Constraint {
	return constraint.TranslateWith(constraint.Cycle(calendar.Year), func(iv calendar.Interval) calendar.Interval {
		y, m, d := value.ComputerEaster(iv.Start.Year())
		start := calendar.Of(y, calendar.Month(m), d, 0, 0, 0, 0)
		return calendar.OfGrain(start, calendar.Day)
	})
}
