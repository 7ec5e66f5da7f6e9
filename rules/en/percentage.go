package en

import (
	"tempora/grammar"
	"tempora/value"
)

// PercentageRules returns the percentage rule set.
func PercentageRules() []grammar.Rule {
	return []grammar.Rule{
		{
			Name:     "<number> per cent",
			Patterns: []grammar.Pattern{numberNonTerminal(nil), regexTerminal(`%|p\.c\.|per ?cents?`)},
			Prior:    -1,
			Produce: func(args []grammar.MatchArg) (value.Value, bool) {
				n, _, _, _, _, ok := numValExported(args[0].Value)
				if !ok {
					return nil, false
				}
				return value.Percentage{Val: n}, true
			},
		},
	}
}
