package grammar

import "tempora/value"

// MatchArg is what a Rule's Producer receives for one matched pattern
// position: either the regex submatches of a Terminal, or the
// resolved Value of a NonTerminal.
type MatchArg struct {
	IsTerminal bool
	Groups     []string
	Value      value.Value
}

// Rule is a named production: a sequence of 1..5 Patterns and a
// Producer that assembles a Value from the matched children, or
// rejects the match (spec.md §4.4). Prior is the rule's log-prior
// contribution to a parse's probalog score.
type Rule struct {
	Name     string
	Patterns []Pattern
	Prior    float64
	Produce  func(args []MatchArg) (value.Value, bool)
}

// Arity returns the number of patterns in r, always in 1..5 for a
// well-formed rule.
func (r Rule) Arity() int { return len(r.Patterns) }
