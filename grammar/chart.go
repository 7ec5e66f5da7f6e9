// Package grammar implements the bottom-up chart parser of spec.md
// §4.4: typed production rules, regex terminals and predicate-filtered
// non-terminals, run to a fixpoint over a sentence to produce every
// plausible scored parse.
package grammar

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// maxIterations bounds the fixpoint loop; termination is guaranteed by
// spec.md §4.4 since every rule strictly consumes at least one token,
// but this caps pathological rule sets from looping forever.
const maxIterations = 64

// gapChars are skipped between pattern positions — whitespace and the
// light connective punctuation ("," in "Monday, March 3rd") that
// shouldn't force a rule author to hand-write `[\s,]*` into every
// terminal. This is the chart-level whitespace/punctuation elision
// spec.md §4.4 calls a terminal-level (i.e. uniform, not per-rule)
// responsibility.
const gapChars = " \t\n,"

// chart is the working set of parse nodes, indexed by span.
type chart struct {
	text         string
	nodesByStart map[int][]*Node
	all          []*Node
	seen         map[string]bool
}

func newChart(text string) *chart {
	return &chart{
		text:         text,
		nodesByStart: make(map[int][]*Node),
		seen:         make(map[string]bool),
	}
}

func (c *chart) add(n *Node) bool {
	key := fmt.Sprintf("%s|%d|%d|%s", n.RuleName, n.ByteRange.Start, n.ByteRange.End, n.childKey)
	if c.seen[key] {
		return false
	}
	c.seen[key] = true
	n.ID = uuid.New()
	n.CharRange = byteRangeToCharRange(c.text, n.ByteRange)
	c.all = append(c.all, n)
	c.nodesByStart[n.ByteRange.Start] = append(c.nodesByStart[n.ByteRange.Start], n)
	return true
}

func byteRangeToCharRange(text string, r ByteRange) CharRange {
	start := len([]rune(text[:r.Start]))
	end := len([]rune(text[:r.End]))
	return CharRange{Start: start, End: end}
}

func skipGap(text string, pos int) int {
	for pos < len(text) && strings.ContainsRune(gapChars, rune(text[pos])) {
		pos++
	}
	return pos
}

// completion is one way of matching a rule's patterns starting at a
// given byte offset.
type completion struct {
	end      int // byte offset just past the last consumed pattern
	args     []MatchArg
	height   int
	numNodes int
	probalog float64
	latent   bool
	childKey string
}

// matchPatterns recursively matches patterns[idx:] starting at byte
// offset pos, yielding every valid completion.
func (c *chart) matchPatterns(patterns []Pattern, idx, pos int, acc completion) []completion {
	if idx == len(patterns) {
		return []completion{acc}
	}

	pos = skipGap(c.text, pos)

	switch p := patterns[idx].(type) {
	case Terminal:
		return c.matchTerminal(p, patterns, idx, pos, acc)
	case NonTerminal:
		return c.matchNonTerminal(p, patterns, idx, pos, acc)
	default:
		return nil
	}
}

func (c *chart) matchTerminal(p Terminal, patterns []Pattern, idx, pos int, acc completion) []completion {
	if pos > len(c.text) {
		return nil
	}
	rest := c.text[pos:]
	loc := p.Regex.FindStringSubmatchIndex(rest)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	matchEnd := pos + loc[1]

	if p.NegativeLookahead != nil {
		after := c.text[matchEnd:]
		nloc := p.NegativeLookahead.FindStringSubmatchIndex(after)
		if nloc != nil && nloc[0] == 0 {
			return nil
		}
	}

	groups := make([]string, len(loc)/2)
	for i := range groups {
		gs, ge := loc[2*i], loc[2*i+1]
		if gs < 0 {
			continue
		}
		groups[i] = rest[gs:ge]
	}

	val, ok := p.Build(groups)
	if !ok {
		return nil
	}

	next := acc
	next.args = append(append([]MatchArg{}, acc.args...), MatchArg{IsTerminal: true, Groups: groups, Value: val})
	next.childKey = acc.childKey + "|T:" + c.text[pos:matchEnd]
	next.end = matchEnd

	return c.matchPatterns(patterns, idx+1, matchEnd, next)
}

func (c *chart) matchNonTerminal(p NonTerminal, patterns []Pattern, idx, pos int, acc completion) []completion {
	var out []completion
	for _, node := range c.nodesByStart[pos] {
		if !p.matches(node.Value) {
			continue
		}
		next := acc
		next.args = append(append([]MatchArg{}, acc.args...), MatchArg{Value: node.Value})
		next.height = maxInt(next.height, node.Height)
		next.numNodes += node.NumNodes
		next.probalog += node.Probalog
		next.latent = next.latent || node.Latent
		next.childKey = acc.childKey + "|N:" + node.ID.String()
		next.end = node.ByteRange.End

		out = append(out, c.matchPatterns(patterns, idx+1, node.ByteRange.End, next)...)
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// applyRule tries rule at every byte offset in the sentence, returning
// every resulting Node.
func (c *chart) applyRule(rule Rule) []*Node {
	var out []*Node
	for start := 0; start <= len(c.text); start++ {
		completions := c.matchPatterns(rule.Patterns, 0, start, completion{})
		for _, comp := range completions {
			val, ok := rule.Produce(comp.args)
			if !ok {
				continue
			}
			out = append(out, &Node{
				ByteRange: ByteRange{Start: start, End: comp.end},
				Value:     val,
				RuleName:  rule.Name,
				Height:    1 + comp.height,
				NumNodes:  1 + comp.numNodes,
				Probalog:  comp.probalog + rule.Prior,
				Latent:    val.Latent(),
				childKey:  comp.childKey,
			})
		}
	}
	return out
}
