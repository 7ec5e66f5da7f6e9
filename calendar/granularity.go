package calendar

// Granularity is an ordered calendar unit, finest to coarsest.
type Granularity int

// The supported granularities, ordered from finest to coarsest.
const (
	Second Granularity = iota
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

func (g Granularity) String() string {
	if g < Second || g > Year {
		return "Unknown"
	}
	return granularityNames[g]
}

var granularityNames = [...]string{
	Second:  "Second",
	Minute:  "Minute",
	Hour:    "Hour",
	Day:     "Day",
	Week:    "Week",
	Month:   "Month",
	Quarter: "Quarter",
	Year:    "Year",
}

// Finer returns the finer (smaller) of g and g2.
func Finer(g, g2 Granularity) Granularity {
	if g < g2 {
		return g
	}
	return g2
}

// HalfPeriod returns the period representing half of one unit of g, and
// true if g supports halving. Only Hour (-> 30 minutes) and Day
// (-> 12 hours) are defined; every other granularity, including the
// finest (Second), returns false.
func (g Granularity) HalfPeriod() (Period, bool) {
	switch g {
	case Hour:
		return Period{Minute: 30}, true
	case Day:
		return Period{Hour: 12}, true
	default:
		return Period{}, false
	}
}
