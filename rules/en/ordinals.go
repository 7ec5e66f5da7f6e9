package en

import (
	"regexp"
	"strconv"
	"strings"

	"tempora/grammar"
	"tempora/value"
)

var ordinalWords = map[string]int64{
	"zeroth": 0, "first": 1, "second": 2, "third": 3, "fourth": 4,
	"fifth": 5, "sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9,
	"tenth": 10, "eleventh": 11, "twelfth": 12, "thirteenth": 13,
	"fourteenth": 14, "fifteenth": 15, "sixteenth": 16, "seventeenth": 17,
	"eighteenth": 18, "nineteenth": 19,
}

var ordinalTensWords = map[string]int64{
	"twen": 20, "thir": 30, "for": 40, "fif": 50, "six": 60, "seven": 70,
	"eigh": 80, "nine": 90,
}

func asOrdinal(v value.Value) (value.Ordinal, bool) {
	o, ok := v.(value.Ordinal)
	return o, ok
}

func ordinalNonTerminal(pred func(value.Value) bool) grammar.NonTerminal {
	return grammar.NonTerminal{Dimension: value.DimOrdinal, Predicate: pred}
}

func ordinalInRange(lo, hi int64) func(value.Value) bool {
	return func(v value.Value) bool {
		o, ok := asOrdinal(v)
		return ok && o.Val >= lo && o.Val <= hi
	}
}

// OrdinalRules returns the ordinal-number rule set.
func OrdinalRules() []grammar.Rule {
	var rules []grammar.Rule

	pattern := "(zeroth|first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth|eleventh|twelfth|thirteenth|fourteenth|fifteenth|sixteenth|seventeenth|eighteenth|nineteenth)"
	rules = append(rules, terminal("ordinals (first..19th)", pattern, func(g []string) (value.Value, bool) {
		n, ok := ordinalWords[strings.ToLower(g[1])]
		if !ok {
			return nil, false
		}
		return value.Ordinal{Val: n}, true
	}))

	rules = append(rules, terminal("ordinals (20th...90th)", `(twen|thir|for|fif|six|seven|eigh|nine)tieth`, func(g []string) (value.Value, bool) {
		n, ok := ordinalTensWords[strings.ToLower(g[1])]
		if !ok {
			return nil, false
		}
		return value.Ordinal{Val: n}, true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "21th..99th",
		Patterns: []grammar.Pattern{numberNonTerminal(intMultipleOfTen(10, 90)), ordinalNonTerminal(ordinalInRange(1, 9))},
		Prior:    -2,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asInteger(args[0].Value)
			b, _ := asOrdinal(args[1].Value)
			return value.Ordinal{Val: a.Val + b.Val}, true
		},
	})

	multiplierOrdinalPattern := "(hundred|thousand|million|billion)th"
	rules = append(rules, terminal("ordinal (100, 1_000, 1_000_000)", multiplierOrdinalPattern, func(g []string) (value.Value, bool) {
		m, ok := multiplierWords[strings.ToLower(g[1])]
		if !ok {
			return nil, false
		}
		return value.Ordinal{Val: m.val}, true
	}))
	rules = append(rules, grammar.Rule{
		Name: "ordinal (200..900, 2_000..9_000, 2_000_000..9_000_000_000)",
		Patterns: []grammar.Pattern{
			numberNonTerminal(intInRange(1, 999)),
			grammar.Terminal{Regex: regexp.MustCompile("(?i)" + multiplierOrdinalPattern), Build: func([]string) (value.Value, bool) { return value.Integer{}, true }},
		},
		Prior: -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asInteger(args[0].Value)
			word := strings.ToLower(strings.TrimSuffix(args[1].Groups[1], "th"))
			m, ok := multiplierWords[word]
			if !ok {
				return nil, false
			}
			return value.Ordinal{Val: a.Val * m.val}, true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "ordinal (101...9_999_999)",
		Patterns: []grammar.Pattern{numberNonTerminal(func(v value.Value) bool { i, ok := asInteger(v); return ok && (i.Val >= 100 || i.Val%100 == 0) }), ordinalNonTerminal(ordinalInRange(1, 99))},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asInteger(args[0].Value)
			b, _ := asOrdinal(args[1].Value)
			return value.Ordinal{Val: a.Val + b.Val}, true
		},
	})

	rules = append(rules, terminal("ordinal (digits)", `0*(\d+) ?(?:st|nd|rd|th)`, func(g []string) (value.Value, bool) {
		n, err := strconv.ParseInt(g[1], 10, 64)
		if err != nil {
			return nil, false
		}
		return value.Ordinal{Val: n}, true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "the <ordinal>",
		Patterns: []grammar.Pattern{grammar.Terminal{Regex: regexp.MustCompile(`(?i)^the\b`), Build: func([]string) (value.Value, bool) { return value.Integer{}, true }}, ordinalNonTerminal(nil)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			o, _ := asOrdinal(args[1].Value)
			o.Prefixed = true
			return o, true
		},
	})

	return rules
}
