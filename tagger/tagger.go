package tagger

import (
	"sort"

	"tempora/grammar"
	"tempora/value"
)

// Match is a single tagged, resolved candidate returned to the caller
// (spec.md §6).
type Match struct {
	ByteRange grammar.ByteRange
	CharRange grammar.CharRange
	RuleName  string
	Dimension value.Dimension
	Output    Output
	Latent    bool
	Probalog  float64
}

type candidate struct {
	node      grammar.Node
	dim       value.Dimension
	filterPos int
	output    Output
}

// Tag implements the candidate tagger of spec.md §4.5: it drops every
// too-ambiguous node outright, dimension-maps the rest, drops those
// outside the caller's output-kind filter (an empty filter admits
// everything), resolves the survivors through ctx, sorts by the
// tagger's priority key, and greedily selects a maximum non-overlapping
// set by walking that order back to front — the same direction the
// original tagger walks its sorted candidate list.
func Tag(nodes []grammar.Node, filter []OutputKind, ctx ParsingContext) []Match {
	candidates := make([]candidate, 0, len(nodes))
	for _, n := range nodes {
		if n.Value.TooAmbiguous() {
			continue
		}

		dim := MapDimension(n.Value, filter)

		filterPos := 0
		if len(filter) > 0 {
			pos, ok := positionOf(dim, filter)
			if !ok {
				continue
			}
			filterPos = pos
		}

		out, ok := ctx.Resolve(n.Value, dim)
		if !ok {
			continue // EmptyResolution: never tagged
		}

		candidates = append(candidates, candidate{node: n, dim: dim, filterPos: filterPos, output: out})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if la, lb := a.node.ByteRange.Len(), b.node.ByteRange.Len(); la != lb {
			return la < lb
		}
		if a.node.ByteRange.Start != b.node.ByteRange.Start {
			return a.node.ByteRange.Start < b.node.ByteRange.Start
		}
		if a.filterPos != b.filterPos {
			return -a.filterPos < -b.filterPos
		}
		if a.dim == b.dim && a.node.Probalog != b.node.Probalog {
			return a.node.Probalog < b.node.Probalog
		}
		if a.node.Height != b.node.Height {
			return -a.node.Height < -b.node.Height
		}
		return -a.node.NumNodes < -b.node.NumNodes
	})

	var selected []grammar.ByteRange
	var out []Match
	for i := len(candidates) - 1; i >= 0; i-- {
		c := candidates[i]
		if overlapsAny(c.node.ByteRange, selected) {
			continue
		}
		selected = append(selected, c.node.ByteRange)
		out = append(out, Match{
			ByteRange: c.node.ByteRange,
			CharRange: c.node.CharRange,
			RuleName:  c.node.RuleName,
			Dimension: c.dim,
			Output:    c.output,
			Latent:    c.node.Latent,
			Probalog:  c.node.Probalog,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ByteRange.Start < out[j].ByteRange.Start })
	return out
}

func positionOf(dim value.Dimension, filter []OutputKind) (int, bool) {
	for i, k := range filter {
		if k.MatchDim(dim) {
			return i, true
		}
	}
	return 0, false
}

func overlapsAny(r grammar.ByteRange, existing []grammar.ByteRange) bool {
	for _, e := range existing {
		if !r.IsDisjoint(e) {
			return true
		}
	}
	return false
}
