package constraint

import "tempora/calendar"

// maxSearchSteps bounds how far a single Next() call walks looking for
// the next interval matching a predicate, satisfying spec.md §4.1's
// "no unbounded work per interval yielded" requirement. Every periodic
// atomic predicate in this package matches at least once within this
// many steps (worst case is a 4-year leap-day cycle); Year and
// YearMonthDay match at most once, so their walk can end unmatched.
const maxSearchSteps = 4 * 366

// genericAtomic is the shared implementation behind every atomic
// constraint: an infinite periodic sequence, walked one grain unit at
// a time, filtered by a field predicate.
type genericAtomic struct {
	grain calendar.Granularity
	match func(calendar.DateTime) bool
}

func (g genericAtomic) Grain() calendar.Granularity { return g.grain }

func (g genericAtomic) Forward(ctx Context) Stream {
	unit := calendar.PeriodOf(g.grain, 1)
	cur := calendar.OfGrain(ctx.Reference, g.grain)
	return streamFunc(func() (calendar.Interval, bool) {
		for steps := 0; steps < maxSearchSteps; steps++ {
			if g.match(cur.Start) {
				out := cur
				cur = cur.TranslateBy(unit)
				return out, true
			}
			cur = cur.TranslateBy(unit)
		}
		return calendar.Interval{}, false
	})
}

func (g genericAtomic) Backward(ctx Context) Stream {
	unit := calendar.PeriodOf(g.grain, 1)
	cur := calendar.OfGrain(ctx.Reference, g.grain).TranslateBy(unit.Negate())
	return streamFunc(func() (calendar.Interval, bool) {
		for steps := 0; steps < maxSearchSteps; steps++ {
			if g.match(cur.Start) {
				out := cur
				cur = cur.TranslateBy(unit.Negate())
				return out, true
			}
			cur = cur.TranslateBy(unit.Negate())
		}
		return calendar.Interval{}, false
	})
}

// Year matches the single calendar year y.
func Year(y int) Constraint {
	return genericAtomic{grain: calendar.Year, match: func(d calendar.DateTime) bool { return d.Year() == y }}
}

// Month matches the given month of every year, 1..=12.
func Month(m int) Constraint {
	return genericAtomic{grain: calendar.Month, match: func(d calendar.DateTime) bool { return int(d.Month()) == m }}
}

// DayOfMonth matches the given day of every month, 1..=31. Months
// shorter than the target day simply never match that month, which
// the generic walker tolerates since it only advances by whole days.
func DayOfMonth(day int) Constraint {
	return genericAtomic{grain: calendar.Day, match: func(d calendar.DateTime) bool { return d.Day() == day }}
}

// DayOfWeek matches the given weekday of every week.
func DayOfWeek(w calendar.Weekday) Constraint {
	return genericAtomic{grain: calendar.Day, match: func(d calendar.DateTime) bool { return d.Weekday() == w }}
}

// Hour matches the given hour of every day, 0..=23.
func Hour(h int) Constraint {
	return genericAtomic{grain: calendar.Hour, match: func(d calendar.DateTime) bool { return d.Hour() == h }}
}

// Minute matches the given minute of every hour, 0..=59.
func Minute(m int) Constraint {
	return genericAtomic{grain: calendar.Minute, match: func(d calendar.DateTime) bool { return d.Minute() == m }}
}

// Second matches the given second of every minute, 0..=59.
func Second(s int) Constraint {
	return genericAtomic{grain: calendar.Second, match: func(d calendar.DateTime) bool { return d.Second() == s }}
}

// MonthDay matches the given month and day of every year (e.g. a fixed
// holiday like "March 17th").
func MonthDay(month, day int) Constraint {
	return genericAtomic{grain: calendar.Day, match: func(d calendar.DateTime) bool {
		return int(d.Month()) == month && d.Day() == day
	}}
}

// YearMonthDay matches a single, non-repeating calendar date.
func YearMonthDay(year, month, day int) Constraint {
	return genericAtomic{grain: calendar.Day, match: func(d calendar.DateTime) bool {
		return d.Year() == year && int(d.Month()) == month && d.Day() == day
	}}
}

// Cycle is a repeating calendar unit at the given granularity, anchored
// to the reference instant: every interval of that grain matches.
func Cycle(g calendar.Granularity) Constraint {
	return genericAtomic{grain: g, match: func(calendar.DateTime) bool { return true }}
}

// Now matches the reference instant itself: both directions yield the
// single Second-grain interval containing it. Used to resolve bare
// "now" and as the anchor for ShiftNow.
func Now() Constraint {
	return funcConstraint{
		grain: calendar.Second,
		forward: func(ctx Context) Stream {
			return onceStream(calendar.OfGrain(ctx.Reference, calendar.Second), true)
		},
		backward: func(ctx Context) Stream {
			return onceStream(calendar.OfGrain(ctx.Reference, calendar.Second), true)
		},
	}
}

// ShiftNow returns the single grain-wide interval starting exactly at
// the reference instant shifted by p — used for untruncated relative
// durations ("in 2 hours", "2 hours ago"), unlike ShiftBy/Cycle which
// walk whole calendar-grain-aligned units.
func ShiftNow(p calendar.Period, grain calendar.Granularity) Constraint {
	at := func(ctx Context) Stream {
		start := ctx.Reference.AddPeriod(p)
		iv := calendar.Interval{Start: start, End: start.AddPeriod(calendar.PeriodOf(grain, 1)), Grain: grain}
		return onceStream(iv, true)
	}
	return funcConstraint{grain: grain, forward: at, backward: at}
}
