package constraint

import "tempora/calendar"

// EvaluateOne returns the single interval produced by the first
// forward occurrence of c from ctx.Reference, used wherever "the"
// semantics apply (spec.md §3) — e.g. resolving "the third Monday of
// March" to one concrete day. EmptyResolution (spec.md §7) is
// represented by the boolean return.
func EvaluateOne(c Constraint, ctx Context) (calendar.Interval, bool) {
	return First(c.Forward(ctx))
}
