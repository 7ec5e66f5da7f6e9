package en

import (
	"tempora/grammar"
	"tempora/value"
)

func asTemperature(v value.Value) (value.Temperature, bool) {
	t, ok := v.(value.Temperature)
	return t, ok
}

func temperatureNonTerminal(pred func(value.Value) bool) grammar.NonTerminal {
	return grammar.NonTerminal{Dimension: value.DimTemperature, Predicate: pred}
}

func isLatentTemp(v value.Value) bool { t, ok := asTemperature(v); return ok && t.LatentFlag }

// TemperatureRules returns the temperature rule set.
func TemperatureRules() []grammar.Rule {
	var rules []grammar.Rule

	rules = append(rules, grammar.Rule{
		Name:     "number as temp",
		Patterns: []grammar.Pattern{numberNonTerminal(nil)},
		Prior:    -3,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			n, _, _, _, _, ok := numValExported(args[0].Value)
			if !ok {
				return nil, false
			}
			return value.Temperature{Val: n, LatentFlag: true}, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "<latent temp> degrees",
		Patterns: []grammar.Pattern{temperatureNonTerminal(isLatentTemp), regexTerminal(`(?:deg(?:ree?)?s?\.?)|°`)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTemperature(args[0].Value)
			t.Unit = "degree"
			return t, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "<temp> Celsius",
		Patterns: []grammar.Pattern{temperatureNonTerminal(isLatentTemp), regexTerminal(`c(?:el[cs]?(?:ius)?)?\.?`)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTemperature(args[0].Value)
			t.Unit = "Celsius"
			t.LatentFlag = false
			return t, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "<temp> Fahrenheit",
		Patterns: []grammar.Pattern{temperatureNonTerminal(isLatentTemp), regexTerminal(`f(?:ah?rh?eh?n(?:h?eit)?)?\.?`)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTemperature(args[0].Value)
			t.Unit = "Fahrenheit"
			t.LatentFlag = false
			return t, true
		},
	})
	rules = append(rules, grammar.Rule{
		Name:     "<temp> Kelvin",
		Patterns: []grammar.Pattern{temperatureNonTerminal(nil), regexTerminal(`k(?:elvin)?\.?`)},
		Prior:    -1,
		Produce: func(args []grammar.MatchArg) (value.Value, bool) {
			t, _ := asTemperature(args[0].Value)
			t.Unit = "Kelvin"
			t.LatentFlag = false
			return t, true
		},
	})

	return rules
}
