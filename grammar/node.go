package grammar

import (
	"github.com/google/uuid"

	"tempora/value"
)

// ByteRange is a half-open [Start, End) byte offset range into the
// original sentence.
type ByteRange struct {
	Start, End int
}

// Len returns the length in bytes of r.
func (r ByteRange) Len() int { return r.End - r.Start }

// IsDisjoint reports whether r and r2 share no byte.
func (r ByteRange) IsDisjoint(r2 ByteRange) bool {
	return r.End <= r2.Start || r2.End <= r.Start
}

// CharRange is the same span expressed in runes, for callers that need
// character rather than byte offsets.
type CharRange struct {
	Start, End int
}

// Node is a single entry in the chart: a parsed span, its resolved
// Value, and the bookkeeping the tagger's sort needs (spec.md §4.4).
type Node struct {
	ID uuid.UUID

	ByteRange ByteRange
	CharRange CharRange

	Value value.Value

	// RuleName identifies the rule that produced this node, used for
	// dedup-by-(rule, range, child-identity).
	RuleName string

	// Height is 1 for a leaf, 1+max(children) otherwise.
	Height int
	// NumNodes is 1 for a leaf, 1+sum(children) otherwise.
	NumNodes int

	// Probalog is the accumulated log-probability of this parse.
	Probalog float64

	Latent bool

	// childKey identifies the exact children this node was built
	// from, for dedup (spec.md §4.4 step 4).
	childKey string
}
