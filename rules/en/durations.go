package en

import (
	"regexp"
	"strings"

	"tempora/calendar"
	"tempora/grammar"
	"tempora/value"
)

var durationUnitWords = map[string]calendar.Granularity{
	"sec": calendar.Second, "second": calendar.Second, "seconds": calendar.Second, "secs": calendar.Second,
	"min": calendar.Minute, "minute": calendar.Minute, "minutes": calendar.Minute, "mins": calendar.Minute,
	"h": calendar.Hour, "hr": calendar.Hour, "hrs": calendar.Hour, "hour": calendar.Hour, "hours": calendar.Hour,
	"day": calendar.Day, "days": calendar.Day,
	"week": calendar.Week, "weeks": calendar.Week,
	"month": calendar.Month, "months": calendar.Month,
	"year": calendar.Year, "years": calendar.Year,
}

func asDuration(v value.Value) (value.Duration, bool) {
	d, ok := v.(value.Duration)
	return d, ok
}

func durationNonTerminal(pred func(value.Value) bool) grammar.NonTerminal {
	return grammar.NonTerminal{Dimension: value.DimDuration, Predicate: pred}
}

func notSuffixed(v value.Value) bool { d, ok := asDuration(v); return ok && !d.Suffixed }
func notPrefixed(v value.Value) bool { d, ok := asDuration(v); return ok && !d.Prefixed }

// DurationRules returns the duration rule set. Unlike the original,
// which builds a separate unit-of-duration dimension and composes it
// with a number via a two-pattern rule, here "<integer> <unit>"
// collapses into a single terminal, since this repo's Value union has
// no dedicated dimension for a bare unit word.
func DurationRules() []grammar.Rule {
	var rules []grammar.Rule

	unitAlt := `sec(?:ond)?s?|min(?:ute)?s?|h(?:(?:ou)?rs?|r)?|days?|weeks?|months?|years?`

	rules = append(rules, terminal("<integer> <unit-of-duration>", `(\d+)\s*(`+unitAlt+`)`, func(g []string) (value.Value, bool) {
		n, ok := parseIntGroup(g[1])
		if !ok {
			return nil, false
		}
		grain, ok := durationUnitWords[normalizeUnit(g[2])]
		if !ok {
			return nil, false
		}
		return value.Duration{Period: calendar.PeriodOf(grain, int(n))}, true
	}))

	rules = append(rules, terminal("quarter of an hour", `1/4\s?h(?:our)?|(?:a\s)?quarter(?: of an |-)hour`, func([]string) (value.Value, bool) {
		return value.Duration{Period: calendar.PeriodOf(calendar.Minute, 15)}, true
	}))
	rules = append(rules, terminal("half an hour", `1/2\s?h(?:our)?|half an? hour|an? half hour`, func([]string) (value.Value, bool) {
		return value.Duration{Period: calendar.PeriodOf(calendar.Minute, 30)}, true
	}))
	rules = append(rules, terminal("three-quarters of an hour", `3/4\s?h(?:our)?|three(?:\s|-)quarters of an hour`, func([]string) (value.Value, bool) {
		return value.Duration{Period: calendar.PeriodOf(calendar.Minute, 45)}, true
	}))
	rules = append(rules, terminal("fortnight", `(?:a|one)? ?fortnight`, func([]string) (value.Value, bool) {
		return value.Duration{Period: calendar.PeriodOf(calendar.Day, 14)}, true
	}))

	rules = append(rules, terminal("number.number hours", `(\d+)\.(\d+)\s*hours?`, func(g []string) (value.Value, bool) {
		minutes, err := value.DecimalHourInMinute(g[1], g[2])
		if err != nil {
			return nil, false
		}
		return value.Duration{Period: calendar.PeriodOf(calendar.Minute, int(minutes))}, true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "<duration> and <duration>",
		Patterns: []grammar.Pattern{durationNonTerminal(notSuffixed), regexTerminal(`and`), durationNonTerminal(notPrefixed)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asDuration(args[0].Value)
			b, _ := asDuration(args[2].Value)
			return a.Add(b), true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "<duration> <duration>",
		Patterns: []grammar.Pattern{durationNonTerminal(notSuffixed), durationNonTerminal(notPrefixed)},
		Prior:    -2,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asDuration(args[0].Value)
			b, _ := asDuration(args[1].Value)
			return a.Add(b), true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "for <duration>",
		Patterns: []grammar.Pattern{regexTerminal(`for`), durationNonTerminal(nil)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			d, _ := asDuration(args[1].Value)
			d.Prefixed = true
			return d, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "during <duration>",
		Patterns: []grammar.Pattern{regexTerminal(`during`), durationNonTerminal(nil)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			d, _ := asDuration(args[1].Value)
			d.Prefixed = true
			return d, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "<duration> ago",
		Patterns: []grammar.Pattern{durationNonTerminal(nil), regexTerminal(`ago`)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			d, _ := asDuration(args[0].Value)
			d.Suffixed = true
			d.Period = d.Period.Negate()
			return d, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "<duration> hence",
		Patterns: []grammar.Pattern{durationNonTerminal(nil), regexTerminal(`hence|from now`)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			d, _ := asDuration(args[0].Value)
			d.Suffixed = true
			return d, true
		},
	})

	return rules
}

func parseIntGroup(s string) (int64, bool) {
	var n int64
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	return n, true
}

func normalizeUnit(s string) string { return strings.ToLower(s) }

func regexTerminal(pattern string) grammar.Terminal {
	return grammar.Terminal{
		Regex: regexp.MustCompile("(?i)" + pattern),
		Build: func([]string) (value.Value, bool) { return value.Integer{}, true },
	}
}
