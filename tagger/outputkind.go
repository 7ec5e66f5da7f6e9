// Package tagger implements the candidate tagger of spec.md §4.5: it
// dimension-maps, filters, sorts and greedily selects a maximum
// non-overlapping set of parsed candidates, resolving each through a
// parsing context.
package tagger

import "tempora/value"

// OutputKind is a caller-specified tag naming a desired result
// category, per spec.md §6. The caller supplies an ordered slice of
// these as its output-kind filter; order is the caller's preference,
// most-preferred first.
//
// spec.md §6 lists "Time" twice in its OutputKind enumeration — once
// bare, once annotated "(time-of-day)". Read literally that's two
// kinds; this repo takes it as one clarified entry, since the
// enumeration is otherwise exhaustive and non-repeating and nothing
// elsewhere in the spec distinguishes two flavors of a bare Time
// request.
type OutputKind int

const (
	Number OutputKind = iota
	Ordinal
	Percentage
	Temperature
	Duration
	AmountOfMoney
	Time
	Date
	DatePeriod
	TimePeriod
	DateTime
	DateTimePeriod
)

// MatchDim reports whether a (possibly already dimension-refined)
// value.Dimension satisfies k.
func (k OutputKind) MatchDim(dim value.Dimension) bool {
	switch k {
	case Number:
		return dim == value.DimNumber
	case Ordinal:
		return dim == value.DimOrdinal
	case Percentage:
		return dim == value.DimPercentage
	case Temperature:
		return dim == value.DimTemperature
	case Duration:
		return dim == value.DimDuration
	case AmountOfMoney:
		return dim == value.DimAmountOfMoney
	case Time:
		return dim == value.DimTimeOfDay
	case Date:
		return dim == value.DimDate
	case DatePeriod:
		return dim == value.DimDateInterval
	case TimePeriod:
		return dim == value.DimTimeInterval
	case DateTime:
		return dim == value.DimDateTime
	case DateTimePeriod:
		return dim == value.DimDateTimePeriod
	default:
		return false
	}
}
