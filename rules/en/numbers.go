// Package en is the English rule set of spec.md §4.6: a representative
// (not exhaustive) collection of number, ordinal, duration, time and
// finance/temperature/percentage rules, grounded on
// original_source/grammar/en/src/rules.rs.
package en

import (
	"regexp"
	"strconv"
	"strings"

	"tempora/grammar"
	"tempora/value"
)

func terminal(name string, pattern string, build func([]string) (value.Value, bool)) grammar.Rule {
	return grammar.Rule{
		Name:     name,
		Patterns: []grammar.Pattern{grammar.Terminal{Regex: regexp.MustCompile("(?i)" + pattern), Build: build}},
		Prior:    -1,
		Produce:  func(args []grammar.MatchArg) (value.Value, bool) { return args[0].Value, true },
	}
}

func numberNonTerminal(pred func(value.Value) bool) grammar.NonTerminal {
	return grammar.NonTerminal{Dimension: value.DimNumber, Predicate: pred}
}

func asInteger(v value.Value) (value.Integer, bool) {
	i, ok := v.(value.Integer)
	return i, ok
}

func intInRange(lo, hi int64) func(value.Value) bool {
	return func(v value.Value) bool {
		i, ok := asInteger(v)
		return ok && i.Val >= lo && i.Val <= hi
	}
}

func intMultipleOfTen(lo, hi int64) func(value.Value) bool {
	return func(v value.Value) bool {
		i, ok := asInteger(v)
		return ok && i.Val >= lo && i.Val <= hi && i.Val%10 == 0
	}
}

func isGroup(v value.Value) bool {
	i, ok := asInteger(v)
	return ok && i.Group
}

func grainAbove(n int) func(value.Value) bool {
	return func(v value.Value) bool {
		i, ok := asInteger(v)
		return ok && i.HasGrain && i.Grain > n
	}
}

var onesWords = map[string]int64{
	"none": 0, "zilch": 0, "naught": 0, "nought": 0, "nil": 0, "zero": 0,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
	"thirteen": 13, "fourteen": 14, "fifteen": 15, "sixteen": 16,
	"seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tensWords = map[string]int64{
	"twenty": 20, "thirty": 30, "forty": 40, "fourty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var multiplierWords = map[string]struct {
	val   int64
	grain int
}{
	"hundred":  {100, 2},
	"thousand": {1000, 3},
	"million":  {1000000, 6},
	"billion":  {1000000000, 9},
}

// NumberRules returns the cardinal-number rule set.
func NumberRules() []grammar.Rule {
	var rules []grammar.Rule

	onesPattern := "(none|zilch|naught|nought|nil|zero|one|two|three|fourteen|four|five|sixteen|six|seventeen|seven|eighteen|eight|nineteen|nine|eleven|twelve|thirteen|fifteen|ten)"
	rules = append(rules, terminal("integer (0..19)", onesPattern, func(g []string) (value.Value, bool) {
		n, ok := onesWords[strings.ToLower(g[1])]
		if !ok {
			return nil, false
		}
		return value.Integer{Val: n, Grain: 1, HasGrain: true}, true
	}))

	tensPattern := "(twenty|thirty|fou?rty|fifty|sixty|seventy|eighty|ninety)"
	rules = append(rules, terminal("integer (20..90)", tensPattern, func(g []string) (value.Value, bool) {
		n, ok := tensWords[strings.ToLower(g[1])]
		if !ok {
			return nil, false
		}
		return value.Integer{Val: n, Grain: 1, HasGrain: true}, true
	}))

	rules = append(rules, terminal("single", "single", func([]string) (value.Value, bool) {
		return value.Integer{Val: 1, Grain: 1, HasGrain: true}, true
	}))
	rules = append(rules, terminal("a pair", "a pair(?: of)?", func([]string) (value.Value, bool) {
		return value.Integer{Val: 2, Grain: 1, HasGrain: true}, true
	}))
	rules = append(rules, terminal("couple", "(?:a )?couple(?: of)?", func([]string) (value.Value, bool) {
		return value.Integer{Val: 2, Grain: 1, HasGrain: true}, true
	}))
	rules = append(rules, terminal("few", "(?:a )?few", func([]string) (value.Value, bool) {
		return value.Integer{Val: 3, Grain: 1, HasGrain: true, Prec: value.Approximate}, true
	}))
	rules = append(rules, terminal("dozen", "dozen", func([]string) (value.Value, bool) {
		return value.Integer{Val: 12, Grain: 1, HasGrain: true, Group: true}, true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "integer 21..99",
		Patterns: []grammar.Pattern{numberNonTerminal(intMultipleOfTen(10, 90)), numberNonTerminal(intInRange(1, 9))},
		Prior:    -2,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asInteger(args[0].Value)
			b, _ := asInteger(args[1].Value)
			return value.Integer{Val: a.Val + b.Val}, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name: "integer 21..99 (hyphenated)",
		Patterns: []grammar.Pattern{
			numberNonTerminal(intMultipleOfTen(10, 90)),
			grammar.Terminal{Regex: regexp.MustCompile(`^-`), Build: func([]string) (value.Value, bool) { return value.Integer{}, true }},
			numberNonTerminal(intInRange(1, 9)),
		},
		Prior: -2,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asInteger(args[0].Value)
			b, _ := asInteger(args[2].Value)
			return value.Integer{Val: a.Val + b.Val}, true
		},
	})

	rules = append(rules, terminal("integer (numeric)", `\d{1,18}`, func(g []string) (value.Value, bool) {
		n, err := strconv.ParseInt(g[0], 10, 64)
		if err != nil {
			return nil, false
		}
		return value.Integer{Val: n}, true
	}))
	rules = append(rules, terminal("integer with thousands separator ,", `\d{1,3}(,\d\d\d){1,5}`, func(g []string) (value.Value, bool) {
		n, err := strconv.ParseInt(strings.ReplaceAll(g[0], ",", ""), 10, 64)
		if err != nil {
			return nil, false
		}
		return value.Integer{Val: n}, true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "special composition for missing hundreds like in one twenty two",
		Patterns: []grammar.Pattern{numberNonTerminal(intInRange(1, 9)), numberNonTerminal(intInRange(10, 99))},
		Prior:    -3,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asInteger(args[0].Value)
			b, _ := asInteger(args[1].Value)
			return value.Integer{Val: a.Val*100 + b.Val, Grain: 1, HasGrain: true}, true
		},
	})

	multiplierPattern := "(hundred|thousand|million|billion)s?"
	rules = append(rules, terminal("100, 1_000, 1_000_000, 1_000_000_000", multiplierPattern, func(g []string) (value.Value, bool) {
		m, ok := multiplierWords[strings.ToLower(g[1])]
		if !ok {
			return nil, false
		}
		return value.Integer{Val: m.val, Grain: m.grain, HasGrain: true}, true
	}))
	rules = append(rules, grammar.Rule{
		Name:     "200..900, 2_000..9_000, 2_000_000..9_000_000_000",
		Patterns: []grammar.Pattern{numberNonTerminal(intInRange(1, 999)), grammar.Terminal{Regex: regexp.MustCompile("(?i)" + multiplierPattern), Build: func([]string) (value.Value, bool) { return value.Integer{}, true }}},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asInteger(args[0].Value)
			m, ok := multiplierWords[strings.ToLower(strings.TrimSuffix(args[1].Groups[1], "s"))]
			if !ok {
				return nil, false
			}
			return value.Integer{Val: a.Val * m.val, Grain: m.grain, HasGrain: true}, true
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "number dozen",
		Patterns: []grammar.Pattern{numberNonTerminal(intInRange(1, 99)), numberNonTerminal(isGroup)},
		Prior:    -2,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asInteger(args[0].Value)
			b, _ := asInteger(args[1].Value)
			return value.Integer{Val: a.Val * b.Val, Grain: b.Grain, HasGrain: b.HasGrain, Group: true}, true
		},
	})

	rules = append(rules, terminal("decimal number", `\d*\.\d+`, func(g []string) (value.Value, bool) {
		n, err := strconv.ParseFloat(g[0], 64)
		if err != nil {
			return nil, false
		}
		return value.Float{Val: n}, true
	}))

	rules = append(rules, grammar.Rule{
		Name:     "intersect (with and)",
		Patterns: []grammar.Pattern{numberNonTerminal(grainAbove(1)), grammar.Terminal{Regex: regexp.MustCompile(`(?i)^and\b`), Build: func([]string) (value.Value, bool) { return value.Integer{}, true }}, numberNonTerminal(nil)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			v, err := value.ComposeNumbers(args[0].Value, args[2].Value)
			return v, err == nil
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "intersect",
		Patterns: []grammar.Pattern{numberNonTerminal(grainAbove(1)), numberNonTerminal(nil)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			v, err := value.ComposeNumbers(args[0].Value, args[1].Value)
			return v, err == nil
		},
	})

	return rules
}
