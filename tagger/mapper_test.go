package tagger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tempora/constraint"
	"tempora/tagger"
	"tempora/value"
)

func TestMapDimensionNonTime(t *testing.T) {
	assert.Equal(t, value.DimNumber, tagger.MapDimension(value.Integer{Val: 5}, nil))
}

func TestMapDimensionTimeOfDay(t *testing.T) {
	ti := value.Time{
		Constraint: constraint.Hour(9),
		Form:       value.Form{Kind: value.FormTimeOfDay},
	}
	assert.Equal(t, value.DimTimeOfDay, tagger.MapDimension(ti, nil))
}

func TestMapDimensionDate(t *testing.T) {
	ti := value.Time{Constraint: constraint.DayOfWeek(0)}
	assert.Equal(t, value.DimDate, tagger.MapDimension(ti, nil))
}

func TestMapDimensionPrefersFilterOrder(t *testing.T) {
	ti := value.Time{Constraint: constraint.DayOfWeek(0)}
	// DimDate is the zero-filter default; asking for DateTime first
	// should steer the mapper to the DateTime candidate instead.
	got := tagger.MapDimension(ti, []tagger.OutputKind{tagger.DateTime, tagger.Date})
	assert.Equal(t, value.DimDateTime, got)
}

func TestMapDimensionNilConstraint(t *testing.T) {
	ti := value.Time{}
	assert.Equal(t, value.DimDateTime, tagger.MapDimension(ti, nil))
}
