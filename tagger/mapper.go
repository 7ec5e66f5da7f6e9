package tagger

import (
	"tempora/calendar"
	"tempora/value"
)

// MapDimension refines a Value's dimension, splitting the generic
// Datetime dimension every value.Time carries into one of Date/Time
// (time-of-day)/DateInterval/TimeInterval/DateTime/DateTimePeriod.
// Non-Time values pass through unchanged. This is explicitly a thin,
// external-collaborator contract per spec.md §1 ("the dimension mapper
// ... we do not respecify"): candidateDimensions below is a reasonable
// but not exhaustively specified guess at the real mapper's subtype
// catalogue, picking whichever candidate the caller's filter actually
// asked for.
func MapDimension(v value.Value, filter []OutputKind) value.Dimension {
	t, ok := v.(value.Time)
	if !ok {
		return v.Dimension()
	}

	candidates := candidateDimensions(t)
	for _, want := range filter {
		for _, c := range candidates {
			if want.MatchDim(c) {
				return c
			}
		}
	}
	return candidates[0]
}

func candidateDimensions(t value.Time) []value.Dimension {
	if t.Constraint == nil {
		return []value.Dimension{value.DimDateTime}
	}

	grain := t.Constraint.Grain()
	subDay := grain == calendar.Hour || grain == calendar.Minute || grain == calendar.Second
	spanning := t.Direction.Mode != value.DirectionNone || t.IsInterval

	switch {
	case subDay && t.Form.Kind == value.FormTimeOfDay:
		if spanning {
			return []value.Dimension{value.DimTimeInterval, value.DimDateTime}
		}
		return []value.Dimension{value.DimTimeOfDay, value.DimDateTime}
	case subDay:
		if spanning {
			return []value.Dimension{value.DimTimeInterval, value.DimDateTimePeriod}
		}
		return []value.Dimension{value.DimDateTime, value.DimTimeOfDay}
	case grain == calendar.Day:
		if spanning {
			return []value.Dimension{value.DimDateInterval, value.DimDateTimePeriod}
		}
		return []value.Dimension{value.DimDate, value.DimDateTime}
	default: // Week, Month, Quarter, Year
		if spanning {
			return []value.Dimension{value.DimDateTimePeriod, value.DimDateInterval}
		}
		return []value.Dimension{value.DimDateTimePeriod, value.DimDate}
	}
}
