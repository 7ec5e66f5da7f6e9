package en

import (
	"strconv"
	"strings"

	"tempora/calendar"
	"tempora/constraint"
	"tempora/grammar"
	"tempora/value"
)

func asTime(v value.Value) (value.Time, bool) {
	t, ok := v.(value.Time)
	return t, ok
}

func timeNonTerminal(pred func(value.Value) bool) grammar.NonTerminal {
	return grammar.NonTerminal{Dimension: value.DimDatetime, Predicate: pred}
}

func formIs(kind value.FormKind) func(value.Value) bool {
	return func(v value.Value) bool {
		t, ok := asTime(v)
		return ok && t.Form.Kind == kind
	}
}

func dayOfWeekTime(w calendar.Weekday) value.Time {
	return value.Time{Constraint: constraint.DayOfWeek(w), Form: value.Form{Kind: value.FormDayOfWeek}}
}

func monthTime(m int) value.Time {
	return value.Time{Constraint: constraint.Month(m), Form: value.Form{Kind: value.FormMonth, Month: m}}
}

// TimeRules returns a representative subset of the English
// calendar/clock rule set: named weekdays and months, today/tomorrow/
// yesterday, numeric clock readings, am/pm, noon/midnight, and
// next/last <cycle>.
func TimeRules() []grammar.Rule {
	var rules []grammar.Rule

	for w := calendar.Monday; w <= calendar.Sunday; w++ {
		w := w
		for _, word := range calendar.WeekdayLexemes(w) {
			rules = append(rules, terminal("named-day", regexEscapeAlt(word), func([]string) (value.Value, bool) {
				return dayOfWeekTime(w), true
			}))
		}
	}
	for m := calendar.January; m <= calendar.December; m++ {
		m := m
		for _, word := range calendar.MonthLexemes(m) {
			rules = append(rules, terminal("named-month", regexEscapeAlt(word), func([]string) (value.Value, bool) {
				return monthTime(int(m)), true
			}))
		}
	}

	rules = append(rules, terminal("now", `(?:right )?now|immediately|at this (?:time|moment)`, func([]string) (value.Value, bool) {
		return value.Time{Constraint: constraint.Now(), Form: value.Form{Kind: value.FormCycle, Cycle: calendar.Second}}, true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "in <duration>",
		Patterns: []grammar.Pattern{regexTerminal(`in`), durationNonTerminal(notPrefixed)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			d, _ := asDuration(args[1].Value)
			grain := finestGrainOf(d.Period)
			return value.Time{
				Constraint: constraint.ShiftNow(d.Period, grain),
				Form:       value.Form{Kind: value.FormCycle, Cycle: grain},
				Prec:       d.Prec,
			}, true
		},
	})

	rules = append(rules, terminal("today", `today|tonight|this day`, func([]string) (value.Value, bool) {
		return value.Time{Constraint: constraint.TakeTheNth(constraint.Cycle(calendar.Day), 0), Form: value.Form{Kind: value.FormCycle, Cycle: calendar.Day}}, true
	}))
	rules = append(rules, terminal("tomorrow", `tomorrow|tmrw?`, func([]string) (value.Value, bool) {
		return value.Time{Constraint: constraint.TakeTheNth(constraint.Cycle(calendar.Day), 1), Form: value.Form{Kind: value.FormCycle, Cycle: calendar.Day}}, true
	}))
	rules = append(rules, terminal("yesterday", `yesterday`, func([]string) (value.Value, bool) {
		return value.Time{Constraint: constraint.TakeTheNth(constraint.Cycle(calendar.Day), -1), Form: value.Form{Kind: value.FormCycle, Cycle: calendar.Day}}, true
	}))

	rules = append(rules, terminal("year", `\d{4}`, func(g []string) (value.Value, bool) {
		y, err := strconv.Atoi(g[0])
		if err != nil {
			return nil, false
		}
		return value.Time{Constraint: constraint.Year(y), Form: value.Form{Kind: value.FormYear, Year: y}}, true
	}))

	rules = append(rules, terminal("hh:mm", `((?:[01]?\d)|(?:2[0-3]))[:.]([0-5]\d)`, func(g []string) (value.Value, bool) {
		h, _ := strconv.Atoi(g[1])
		m, _ := strconv.Atoi(g[2])
		return timeOfDay(h, m, 0, value.PrecisionHourMinute, true, true), true
	}))
	rules = append(rules, terminal("hh:mm:ss", `((?:[01]?\d)|(?:2[0-3]))[:.]([0-5]\d)[:.]([0-5]\d)`, func(g []string) (value.Value, bool) {
		h, _ := strconv.Atoi(g[1])
		m, _ := strconv.Atoi(g[2])
		s, _ := strconv.Atoi(g[3])
		return timeOfDay(h, m, s, value.PrecisionHourMinuteSecond, true, true), true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "time-of-day (latent)",
		Patterns: []grammar.Pattern{numberNonTerminal(intInRange(0, 23))},
		Prior:    -3,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			i, _ := asInteger(args[0].Value)
			return timeOfDay(int(i.Val), 0, 0, value.PrecisionHour, i.Val <= 12, true), true
		},
	})

	rules = append(rules, terminal("noon", `noon|midday`, func([]string) (value.Value, bool) {
		return timeOfDay(12, 0, 0, value.PrecisionHour, false, false), true
	}))
	rules = append(rules, terminal("midnight", `midni(?:ght|te)|(?:the )?(?:eod|end of (?:the )?day)`, func([]string) (value.Value, bool) {
		return timeOfDay(0, 0, 0, value.PrecisionHour, false, false), true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "at <time-of-day>",
		Patterns: []grammar.Pattern{regexTerminal(`at|@`), timeNonTerminal(formIs(value.FormTimeOfDay))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[1].Value)
			return t.Lifted(), true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "<time-of-day> o'clock",
		Patterns: []grammar.Pattern{timeNonTerminal(formIs(value.FormTimeOfDay)), regexTerminal(`o.?clock`)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[0].Value)
			return t.Lifted(), true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "<time-of-day> am|pm",
		Patterns: []grammar.Pattern{timeNonTerminal(formIs(value.FormTimeOfDay)), regexTerminal(`(?:in the )?([ap])\.?m?\.?`)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[0].Value)
			isAM := strings.EqualFold(args[1].Groups[1], "a")
			hour24 := resolve12ClockHour(t.Form.TimeOfDay.Hour, isAM)
			form := t.Form
			form.TimeOfDay.Hour = hour24
			form.TimeOfDay.Is12Clock = false
			return timeOfDayFromForm(form).Lifted(), true
		},
	})

	for word, g := range map[string]calendar.Granularity{
		"second": calendar.Second, "minute": calendar.Minute, "hour": calendar.Hour,
		"day": calendar.Day, "week": calendar.Week, "month": calendar.Month,
		"quarter": calendar.Quarter, "year": calendar.Year,
	} {
		g := g
		rules = append(rules, terminal(word+" (cycle)", word+"s?", func([]string) (value.Value, bool) {
			return value.Time{Constraint: constraint.Cycle(g), Form: value.Form{Kind: value.FormCycle, Cycle: g}}, true
		}))
	}

	rules = append(rules, grammar.Rule{
		Name:     "next <cycle>",
		Patterns: []grammar.Pattern{regexTerminal(`next`), timeNonTerminal(formIs(value.FormCycle))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[1].Value)
			return value.Time{Constraint: constraint.TakeTheNthNotImmediate(t.Constraint, 0), Form: t.Form}, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "last <cycle>",
		Patterns: []grammar.Pattern{regexTerminal(`last|previous`), timeNonTerminal(formIs(value.FormCycle))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[1].Value)
			return value.Time{Constraint: constraint.TakeTheNth(t.Constraint, -1), Form: t.Form}, true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "next <weekday>",
		Patterns: []grammar.Pattern{regexTerminal(`next`), timeNonTerminal(formIs(value.FormDayOfWeek))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[1].Value)
			return value.Time{Constraint: constraint.TakeTheNthNotImmediate(t.Constraint, 0), Form: t.Form}, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "last <weekday>",
		Patterns: []grammar.Pattern{regexTerminal(`last|previous`), timeNonTerminal(formIs(value.FormDayOfWeek))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[1].Value)
			return value.Time{Constraint: constraint.TakeTheNth(t.Constraint, -1), Form: t.Form}, true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "in <named-month>",
		Patterns: []grammar.Pattern{regexTerminal(`in|during`), timeNonTerminal(formIs(value.FormMonth))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			return args[1].Value, true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "<day-of-month>(ordinal) <named-month>",
		Patterns: []grammar.Pattern{ordinalNonTerminal(ordinalInRange(1, 31)), timeNonTerminal(formIs(value.FormMonth))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			o, _ := asOrdinal(args[0].Value)
			m, _ := asTime(args[1].Value)
			day := int(o.Val)
			return value.Time{
				Constraint: constraint.Intersect(m.Constraint, constraint.DayOfMonth(day)),
				Form:       value.Form{Kind: value.FormMonthDay, Month: m.Form.Month, Day: day},
			}, true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "<time> <time> (intersect)",
		Patterns: []grammar.Pattern{timeNonTerminal(nil), timeNonTerminal(nil)},
		Prior:    -4,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asTime(args[0].Value)
			b, _ := asTime(args[1].Value)
			if a.Constraint == nil || b.Constraint == nil {
				return nil, false
			}
			form := a.Form
			if b.Form.Kind == value.FormTimeOfDay {
				form = b.Form
			}
			return value.Time{Constraint: constraint.Intersect(a.Constraint, b.Constraint), Form: form, Prec: value.Combine(a.Prec, b.Prec)}, true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "from/between <time-of-day> to/and <time-of-day>",
		Patterns: []grammar.Pattern{regexTerminal(`from|between`), timeNonTerminal(formIs(value.FormTimeOfDay)), regexTerminal(`to|and|until`), timeNonTerminal(formIs(value.FormTimeOfDay))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			from, _ := asTime(args[1].Value)
			to, _ := asTime(args[3].Value)
			return value.Time{
				Constraint: constraint.Span(from.Constraint, to.Constraint, false),
				Form:       value.Form{Kind: value.FormTimeOfDay},
				IsInterval: true,
			}, true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "until/by <time-of-day>",
		Patterns: []grammar.Pattern{regexTerminal(`until|by`), timeNonTerminal(formIs(value.FormTimeOfDay))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTime(args[1].Value)
			return t.WithDirection(value.Direction{Mode: value.DirectionBefore}).Lifted(), true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "quarter/half past|to <hour>",
		Patterns: []grammar.Pattern{regexTerminal(`(quarter|half)\s+(past|to)`), numberNonTerminal(intInRange(1, 12))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			unit := strings.ToLower(args[0].Groups[1])
			dir := strings.ToLower(args[0].Groups[2])
			h, _ := asInteger(args[1].Value)

			offset := 15
			if unit == "half" {
				offset = 30
			}
			if dir == "to" {
				offset = -offset
			}
			hour, minute := value.HourRelativeMinute(int(h.Val), offset, true)
			return timeOfDay(hour, minute, 0, value.PrecisionHourMinute, true, false), true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "the <ordinal> <weekday> of <named-month>",
		Patterns: []grammar.Pattern{regexTerminal(`the`), ordinalNonTerminal(ordinalInRange(1, 5)), timeNonTerminal(formIs(value.FormDayOfWeek)), regexTerminal(`of`), timeNonTerminal(formIs(value.FormMonth))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			o, _ := asOrdinal(args[1].Value)
			weekday, _ := asTime(args[2].Value)
			month, _ := asTime(args[4].Value)
			n := int(o.Val) - 1
			if n < 0 {
				return nil, false
			}
			return value.Time{
				Constraint: constraint.NthOf(weekday.Constraint, month.Constraint, n),
				Form:       value.Form{Kind: value.FormDayOfWeek},
			}, true
		},
	})

	return rules
}

func timeOfDay(hour, minute, second int, prec value.TimeOfDayPrecision, is12Clock, latent bool) value.Time {
	c := constraint.Intersect(constraint.Hour(hour), constraint.Intersect(constraint.Minute(minute), constraint.Second(second)))
	if prec == value.PrecisionHour {
		c = constraint.Hour(hour)
	}
	return value.Time{
		Constraint: c,
		Form: value.Form{
			Kind:      value.FormTimeOfDay,
			TimeOfDay: value.TimeOfDayForm{Hour: hour, Minute: minute, Second: second, Precision: prec, Is12Clock: is12Clock},
		},
		LatentFlag: latent,
	}
}

// resolve12ClockHour turns a 12-clock hour reading (1..12, or the
// latent 0..23 terminal's raw hour) into its 24-hour equivalent given
// an am/pm marker.
func resolve12ClockHour(hour int, isAM bool) int {
	hour = hour % 12
	if !isAM {
		hour += 12
	}
	return hour
}

func timeOfDayFromForm(f value.Form) value.Time {
	return timeOfDay(f.TimeOfDay.Hour, f.TimeOfDay.Minute, f.TimeOfDay.Second, f.TimeOfDay.Precision, f.TimeOfDay.Is12Clock, false)
}

func regexEscapeAlt(word string) string {
	return word
}

// finestGrainOf returns the finest granularity with a non-zero
// component in p, used to size the grain-wide interval ShiftNow
// produces for a relative duration like "in 2 hours and 30 minutes".
func finestGrainOf(p calendar.Period) calendar.Granularity {
	for _, g := range []calendar.Granularity{
		calendar.Second, calendar.Minute, calendar.Hour, calendar.Day,
		calendar.Week, calendar.Month, calendar.Quarter, calendar.Year,
	} {
		if p.Get(g) != 0 {
			return g
		}
	}
	return calendar.Second
}
