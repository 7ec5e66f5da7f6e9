package value

import "tempora/constraint"

// DirectionMode records whether a before/after/since/until modifier
// applied to a Time value, per spec.md §4.1's BoundedDirection.
type DirectionMode int

const (
	DirectionNone DirectionMode = iota
	DirectionBefore
	DirectionAfter
)

// AnchorPoint records whether a DirectionMode refers to the start or
// end of the referenced interval.
type AnchorPoint int

const (
	AnchorStart AnchorPoint = iota
	AnchorEnd
)

// Direction is the BoundedDirection flag of spec.md §4.1: it doesn't
// change the constraint itself, only how the resolver turns the
// resolved interval into a (possibly one-sided) output.
type Direction struct {
	Mode   DirectionMode
	Anchor AnchorPoint
}

// Time is a resolved-or-resolvable point or interval in time: the
// constraint that produces it, the syntactic Form it carries, any
// directional modifier, and precision/latency decorations.
type Time struct {
	Constraint constraint.Constraint
	Form       Form
	Direction  Direction
	Prec       Precision
	LatentFlag bool
	// IsInterval marks a Time built by spanning two others ("from 9am to
	// 11am", "between monday and friday"): unlike Direction, which keeps
	// the value one-sided, a spanned Time resolves to a full two-sided
	// interval but must still be dimension-mapped as an interval rather
	// than a point (tagger.MapDimension).
	IsInterval bool
}

func (Time) Dimension() Dimension { return DimDatetime }

// TooAmbiguous reports true only for a bare, unqualified Time built
// from a too-ambiguous Form (e.g. a number form with no day/month/year
// disambiguation) — the common case is handled upstream by the
// producing rule rejecting the match outright, so this predicate only
// needs to catch forms that slipped through with no information at
// all.
func (t Time) TooAmbiguous() bool {
	return t.Form.Kind == FormEmpty && t.Constraint == nil
}

func (t Time) Latent() bool { return t.LatentFlag }

// WithForm returns a copy of t carrying f.
func (t Time) WithForm(f Form) Time {
	t.Form = f
	return t
}

// WithDirection returns a copy of t carrying d.
func (t Time) WithDirection(d Direction) Time {
	t.Direction = d
	return t
}

// Lifted returns a copy of t with its latent flag cleared, the effect
// of an explicit textual marker like "at" or "on" (spec.md §3).
func (t Time) Lifted() Time {
	t.LatentFlag = false
	return t
}
