package grammar

import (
	"regexp"

	"tempora/value"
)

// Pattern is one position of a Rule: either a regex terminal, or a
// typed non-terminal constrained by an optional predicate (spec.md
// §4.4's "rule shape").
type Pattern interface {
	isPattern()
}

// Terminal matches literal text via a regular expression. Build turns
// the regex's submatches into a Value; it may return ok=false to
// reject the match (e.g. a numeral that overflows a domain, spec.md
// §7's InvalidLiteral).
//
// Leading whitespace/punctuation between the previous pattern's end
// and this terminal's match is skipped by the chart before the regex
// is tried — terminal authors never need to account for it themselves,
// per spec.md §4.4's note that elision is a terminal-level
// responsibility handled uniformly, not per-rule.
type Terminal struct {
	Regex *regexp.Regexp
	Build func(groups []string) (value.Value, bool)
	// NegativeLookahead, if set, is tried immediately after Regex
	// matches; if it also matches at the same position the terminal
	// is rejected (spec.md §4.4's "optionally with a negative
	// look-ahead").
	NegativeLookahead *regexp.Regexp
}

func (Terminal) isPattern() {}

// NonTerminal matches an already-resolved chart Node whose Value has
// the given Dimension, additionally filtered by Predicate if non-nil.
// Predicate rejects children before the rule's Producer ever runs
// (spec.md §4.4 step 3).
type NonTerminal struct {
	Dimension value.Dimension
	Predicate func(value.Value) bool
}

func (NonTerminal) isPattern() {}

func (n NonTerminal) matches(v value.Value) bool {
	if v.Dimension() != n.Dimension {
		return false
	}
	if n.Predicate != nil {
		return n.Predicate(v)
	}
	return true
}
