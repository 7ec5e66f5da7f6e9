package en

import (
	"tempora/grammar"
	"tempora/value"
)

func asMoney(v value.Value) (value.AmountOfMoney, bool) {
	m, ok := v.(value.AmountOfMoney)
	return m, ok
}

func moneyNonTerminal(pred func(value.Value) bool) grammar.NonTerminal {
	return grammar.NonTerminal{Dimension: value.DimAmountOfMoney, Predicate: pred}
}

func isCent(v value.Value) bool { m, ok := asMoney(v); return ok && m.Unit == "cent" }

var currencyUnitWords = map[string]string{
	`\$`: "$", `dollars?`: "$",
	`us[d\$]`: "USD", `(?:us|american) dollars?`: "USD", `bucks?`: "USD",
	`€`: "EUR", `[e€]uros?`: "EUR",
	`£`: "£", `pounds?`: "£",
	`gbp`: "GBP", `(?:sterling|british) pounds?`: "GBP", `quids?`: "GBP",
	`chf`: "CHF", `swiss francs?`: "CHF",
	`jpy`: "JPY", `yens?`: "JPY",
	`cny|cnh|rmb|yuans?`: "CNY",
	`inr|rs\.?|(?:indian )?rupees?`: "INR",
	`cents?|penn(?:y|ies)|¢`: "cent",
}

// FinanceRules returns the amount-of-money rule set.
func FinanceRules() []grammar.Rule {
	var rules []grammar.Rule

	for pattern, unit := range currencyUnitWords {
		unit := unit
		rules = append(rules, grammar.Rule{
			Name:     "<amount> <unit>",
			Patterns: []grammar.Pattern{numberNonTerminal(nil), regexTerminal(pattern)},
			Prior:    -1,
			Produce: func(args []grammar.MatchArg) (value.Value, bool) {
				n, _, _, _, _, ok := numValExported(args[0].Value)
				if !ok {
					return nil, false
				}
				return value.AmountOfMoney{Val: n, Unit: unit}, true
			},
		})
		rules = append(rules, grammar.Rule{
			Name:     "<unit> <amount>",
			Patterns: []grammar.Pattern{regexTerminal(pattern), numberNonTerminal(nil)},
			Prior:    -1,
			Produce: func(args []grammar.MatchArg) (value.Value, bool) {
				n, _, _, _, _, ok := numValExported(args[1].Value)
				if !ok {
					return nil, false
				}
				return value.AmountOfMoney{Val: n, Unit: unit}, true
			},
		})
	}

	rules = append(rules, grammar.Rule{
		Name:     "intersect (X cents)",
		Patterns: []grammar.Pattern{moneyNonTerminal(nil), moneyNonTerminal(isCent)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asMoney(args[0].Value)
			b, _ := asMoney(args[1].Value)
			return value.ComposeMoney(a, b), true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "intersect (and X cents)",
		Patterns: []grammar.Pattern{moneyNonTerminal(nil), regexTerminal(`and`), moneyNonTerminal(isCent)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asMoney(args[0].Value)
			b, _ := asMoney(args[2].Value)
			return value.ComposeMoney(a, b), true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "intersect (and number)",
		Patterns: []grammar.Pattern{moneyNonTerminal(nil), regexTerminal(`and`), numberNonTerminal(nil)},
		Prior:    -2,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			a, _ := asMoney(args[0].Value)
			m, err := value.ComposeMoneyNumber(a, args[2].Value)
			return m, err == nil
		},
	})

	rules = append(rules, grammar.Rule{
		Name:     "about <amount-of-money>",
		Patterns: []grammar.Pattern{regexTerminal(`about|approx(?:\.|imately)?|close to|around|almost`), moneyNonTerminal(nil)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			m, _ := asMoney(args[1].Value)
			m.Prec = value.Approximate
			return m, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "exactly <amount-of-money>",
		Patterns: []grammar.Pattern{regexTerminal(`exactly|precisely`), moneyNonTerminal(nil)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			m, _ := asMoney(args[1].Value)
			m.Prec = value.Exact
			return m, true
		},
	})

	return rules
}

// numValExported mirrors value.numVal, which is unexported; finance
// rules only need the float magnitude of a number candidate.
func numValExported(v value.Value) (val float64, grain int, hasGrain bool, isInt bool, intVal int64, ok bool) {
	switch n := v.(type) {
	case value.Integer:
		return float64(n.Val), n.Grain, n.HasGrain, true, n.Val, true
	case value.Float:
		return n.Val, 0, false, false, 0, true
	default:
		return 0, 0, false, false, 0, false
	}
}
