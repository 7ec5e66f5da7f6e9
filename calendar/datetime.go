package calendar

import "time"

// DateTime is a local, zone-less point in time. Values are always
// compared and combined as wall-clock fields; no time-zone conversion
// ever happens inside this package.
type DateTime struct {
	t time.Time
}

// Of builds a DateTime from the given wall-clock fields.
func Of(year int, month Month, day, hour, min, sec, nsec int) DateTime {
	return DateTime{t: time.Date(year, time.Month(month), day, hour, min, sec, nsec, time.UTC)}
}

// FromStdlib wraps a standard library time.Time, discarding its
// location (the wall-clock fields are kept as-is).
func FromStdlib(t time.Time) DateTime {
	y, m, d := t.Date()
	return Of(y, Month(m), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// Year returns the calendar year.
func (d DateTime) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d DateTime) Month() Month { return Month(d.t.Month()) }

// Day returns the day of the month.
func (d DateTime) Day() int { return d.t.Day() }

// Hour returns the hour of the day, 0..23.
func (d DateTime) Hour() int { return d.t.Hour() }

// Minute returns the minute of the hour, 0..59.
func (d DateTime) Minute() int { return d.t.Minute() }

// Second returns the second of the minute, 0..59.
func (d DateTime) Second() int { return d.t.Second() }

// Weekday returns the day of the week.
func (d DateTime) Weekday() Weekday { return WeekdayFromStdlib(int(d.t.Weekday())) }

// Quarter returns the calendar quarter, 1..4.
func (d DateTime) Quarter() int { return (int(d.Month())-1)/3 + 1 }

// Before reports whether d is strictly before d2.
func (d DateTime) Before(d2 DateTime) bool { return d.t.Before(d2.t) }

// After reports whether d is strictly after d2.
func (d DateTime) After(d2 DateTime) bool { return d.t.After(d2.t) }

// Equal reports whether d and d2 represent the same wall-clock instant.
func (d DateTime) Equal(d2 DateTime) bool { return d.t.Equal(d2.t) }

// Compare returns -1, 0 or 1 as d is before, equal to, or after d2.
func (d DateTime) Compare(d2 DateTime) int {
	switch {
	case d.Before(d2):
		return -1
	case d.After(d2):
		return 1
	default:
		return 0
	}
}

// AddPeriod returns d shifted by every component of p.
func (d DateTime) AddPeriod(p Period) DateTime {
	months := p.Month + 3*p.Quarter + 12*p.Year
	days := p.Day + 7*p.Week
	out := d.t.AddDate(0, months, days)
	dur := time.Duration(p.Hour)*time.Hour + time.Duration(p.Minute)*time.Minute + time.Duration(p.Second)*time.Second
	return FromStdlib(out.Add(dur))
}

// Sub returns the Period{Second: n} elapsed from d2 to d, truncated to
// whole seconds; fractional-second differences are discarded since the
// value model never needs finer than Second grain.
func (d DateTime) Sub(d2 DateTime) Period {
	secs := int(d.t.Sub(d2.t) / time.Second)
	return Period{Second: secs}
}

// Truncate returns d with every field finer than g reset, and the
// grain-appropriate start of the period containing d (e.g. Truncate(Week)
// returns the Monday 00:00:00 of d's week).
func (d DateTime) Truncate(g Granularity) DateTime {
	y, m, day, h, min, s := d.Year(), int(d.Month()), d.Day(), d.Hour(), d.Minute(), d.Second()
	switch g {
	case Second:
		return Of(y, Month(m), day, h, min, s, 0)
	case Minute:
		return Of(y, Month(m), day, h, min, 0, 0)
	case Hour:
		return Of(y, Month(m), day, h, 0, 0, 0)
	case Day:
		return Of(y, Month(m), day, 0, 0, 0, 0)
	case Week:
		start := Of(y, Month(m), day, 0, 0, 0, 0)
		return start.AddPeriod(Period{Day: -int(start.Weekday())})
	case Month:
		return Of(y, Month(m), 1, 0, 0, 0, 0)
	case Quarter:
		qm := (m-1)/3*3 + 1
		return Of(y, Month(qm), 1, 0, 0, 0, 0)
	case Year:
		return Of(y, January, 1, 0, 0, 0, 0)
	default:
		return d
	}
}

func (d DateTime) String() string {
	return d.t.Format("2006-01-02T15:04:05")
}
