package calendar

// Interval is a half-open [Start, End) pair of local datetimes, plus
// the granularity it was produced at.
type Interval struct {
	Start    DateTime
	End      DateTime
	Grain    Granularity
	// Inclusive marks an interval whose End is the last instant
	// included rather than the exclusive bound. Contains and TranslateBy
	// honour it; nothing in this module sets it (SpanInclusiveTo yields
	// a half-open interval ending at the other interval's End).
	Inclusive bool
}

// OfGrain builds the Interval of granularity g that contains d, i.e.
// [Truncate(g), Truncate(g)+1 unit of g).
func OfGrain(d DateTime, g Granularity) Interval {
	start := d.Truncate(g)
	return Interval{Start: start, End: start.AddPeriod(unitOf(g)), Grain: g}
}

func unitOf(g Granularity) Period {
	return PeriodOf(g, 1)
}

// Contains reports whether d falls within i, respecting the half-open
// (or, if Inclusive, closed) convention.
func (i Interval) Contains(d DateTime) bool {
	if d.Before(i.Start) {
		return false
	}
	if i.Inclusive {
		return !d.After(i.End)
	}
	return d.Before(i.End)
}

// Intersect returns the intersection of i and i2, true if non-empty.
// The result's grain is the finer of the two operands' grains, per
// spec.md's grain rule for intersect.
func (i Interval) Intersect(i2 Interval) (Interval, bool) {
	start := i.Start
	if i2.Start.After(start) {
		start = i2.Start
	}
	end := i.End
	if i2.End.Before(end) {
		end = i2.End
	}
	if !start.Before(end) {
		return Interval{}, false
	}
	return Interval{Start: start, End: end, Grain: Finer(i.Grain, i2.Grain)}, true
}

// SpanTo returns the exclusive convex hull [i.Start, end.Start), unless
// both operands are Day grain, in which case the hull runs through
// end.End (the same behavior SpanInclusiveTo always produces).
func (i Interval) SpanTo(end Interval) Interval {
	if i.Grain == Day && end.Grain == Day {
		return i.SpanInclusiveTo(end)
	}
	return Interval{Start: i.Start, End: end.Start, Grain: Finer(i.Grain, end.Grain)}
}

// SpanInclusiveTo returns the convex hull [i.Start, end.End).
func (i Interval) SpanInclusiveTo(end Interval) Interval {
	return Interval{Start: i.Start, End: end.End, Grain: Finer(i.Grain, end.Grain)}
}

// TranslateBy returns a copy of i shifted by p.
func (i Interval) TranslateBy(p Period) Interval {
	return Interval{Start: i.Start.AddPeriod(p), End: i.End.AddPeriod(p), Grain: i.Grain, Inclusive: i.Inclusive}
}

// LastOf returns the last i-granularity sub-interval of i that is
// contained within other, and true if one exists.
func (i Interval) LastOf(other Interval) (Interval, bool) {
	cur := OfGrain(other.End.AddPeriod(unitOf(i.Grain).Negate()), i.Grain)
	for iter := 0; iter < maxScanSteps; iter++ {
		if !cur.Start.Before(other.Start) && !cur.End.After(other.End) {
			return cur, true
		}
		if cur.Start.Before(other.Start) {
			return Interval{}, false
		}
		cur = Interval{Start: cur.Start.AddPeriod(unitOf(i.Grain).Negate()), End: cur.Start, Grain: i.Grain}
	}
	return Interval{}, false
}

// maxScanSteps bounds the work done per interval produced by a
// combinator, per spec.md §4.1's "bounded state per step" requirement.
const maxScanSteps = 10000
