package en

import "tempora/grammar"

// All returns the full English rule set: numbers, ordinals, durations,
// calendar/clock time, finance, temperature and percentage. This is a
// representative subset of spec.md §4.6's rule catalogue, not an
// exhaustive port of every rule in the original grammar.
func All() []grammar.Rule {
	var rules []grammar.Rule
	rules = append(rules, NumberRules()...)
	rules = append(rules, OrdinalRules()...)
	rules = append(rules, DurationRules()...)
	rules = append(rules, TimeRules()...)
	rules = append(rules, FinanceRules()...)
	rules = append(rules, TemperatureRules()...)
	rules = append(rules, PercentageRules()...)
	rules = append(rules, CelebrationRules()...)
	rules = append(rules, PartsOfDayRules()...)
	return rules
}
