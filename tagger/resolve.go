package tagger

import (
	"tempora/calendar"
	"tempora/constraint"
	"tempora/value"
)

// TimeResolution is the concrete result of resolving a value.Time:
// either a two-sided [Start, End) interval, or — when a direction
// modifier like "after"/"before" applied — a one-sided range anchored
// at Start or at End (spec.md §4.1's BoundedDirection).
type TimeResolution struct {
	Start, End calendar.DateTime
	Grain      calendar.Granularity
	Inclusive  bool
	OneSided   bool
	Side       value.AnchorPoint
}

// Output is the resolved form of a candidate: its final dimension tag,
// and either the original non-Time value, or a TimeResolution.
type Output struct {
	Dimension value.Dimension
	Raw       value.Value
	Time      *TimeResolution
}

// ParsingContext resolves a dimension-mapped Value into an Output,
// evaluating any Time's constraint against the reference instant.
// EmptyResolution (spec.md §7) is reported via the boolean return.
type ParsingContext struct {
	Reference calendar.DateTime
}

// Resolve implements the resolver named throughout spec.md §4.5/§7.
func (p ParsingContext) Resolve(v value.Value, dim value.Dimension) (Output, bool) {
	t, ok := v.(value.Time)
	if !ok {
		return Output{Dimension: dim, Raw: v}, true
	}

	iv, ok := constraint.EvaluateOne(t.Constraint, constraint.Context{Reference: p.Reference})
	if !ok {
		return Output{}, false // EmptyResolution
	}

	switch t.Direction.Mode {
	case value.DirectionAfter:
		anchor := iv.Start
		if t.Direction.Anchor == value.AnchorEnd {
			anchor = iv.End
		}
		return Output{Dimension: dim, Time: &TimeResolution{Start: anchor, Grain: iv.Grain, OneSided: true, Side: value.AnchorStart}}, true
	case value.DirectionBefore:
		anchor := iv.Start
		if t.Direction.Anchor == value.AnchorEnd {
			anchor = iv.End
		}
		return Output{Dimension: dim, Time: &TimeResolution{End: anchor, Grain: iv.Grain, OneSided: true, Side: value.AnchorEnd}}, true
	default:
		return Output{Dimension: dim, Time: &TimeResolution{Start: iv.Start, End: iv.End, Grain: iv.Grain, Inclusive: iv.Inclusive}}, true
	}
}
