// Package value implements the discriminated union of domain values
// (§3 of the specification) produced by resolving a parsed candidate:
// Number, Ordinal, Duration, Time, AmountOfMoney, Temperature and
// Percentage, each with its own attributes and forms.
package value

// Dimension tags the kind of Value a candidate resolves to. Time
// candidates are produced carrying the generic Datetime dimension;
// the tagger's dimension mapper (tagger.MapDimension) refines that
// into one of DimDate/DimTimeOfDay/DimDateInterval/DimTimeInterval/
// DimDateTime/DimDateTimePeriod according to the caller's OutputKind
// filter, per spec.md §4.5.
type Dimension int

const (
	DimNumber Dimension = iota
	DimOrdinal
	DimDuration
	DimAmountOfMoney
	DimTemperature
	DimPercentage

	// DimDatetime is the dimension every Time value starts with,
	// before dimension mapping refines it.
	DimDatetime
	DimDate
	DimTimeOfDay
	DimDateInterval
	DimTimeInterval
	DimDateTime
	DimDateTimePeriod
)

func (d Dimension) String() string {
	switch d {
	case DimNumber:
		return "Number"
	case DimOrdinal:
		return "Ordinal"
	case DimDuration:
		return "Duration"
	case DimAmountOfMoney:
		return "AmountOfMoney"
	case DimTemperature:
		return "Temperature"
	case DimPercentage:
		return "Percentage"
	case DimDatetime:
		return "Datetime"
	case DimDate:
		return "Date"
	case DimTimeOfDay:
		return "Time"
	case DimDateInterval:
		return "DateInterval"
	case DimTimeInterval:
		return "TimeInterval"
	case DimDateTime:
		return "DateTime"
	case DimDateTimePeriod:
		return "DateTimePeriod"
	default:
		return "Unknown"
	}
}

// Value is the discriminated union described in spec.md §3. Concrete
// variants are Integer, Float, Ordinal, Duration, Time, AmountOfMoney,
// Temperature and Percentage.
type Value interface {
	Dimension() Dimension
	// TooAmbiguous reports whether this value carries contradictory
	// forms and must be dropped by the tagger before selection
	// (spec.md §4.4's "too-ambiguous guard").
	TooAmbiguous() bool
	// Latent reports whether this value must not be reported unless
	// an explicit textual marker has lifted it (spec.md §3).
	Latent() bool
}
