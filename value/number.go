package value

import "tempora/calendar"

// Integer is a whole-number value, optionally carrying a grain (e.g.
// "two hundred" has grain 2, for 10^2), whether it was parsed as a
// dozen group ("dozen", "3 dozen"), and prefix/suffix/precision
// decorations.
type Integer struct {
	Val      int64
	Grain    int
	HasGrain bool
	Group    bool
	Prefixed bool
	Suffixed bool
	Prec     Precision
}

func (Integer) Dimension() Dimension { return DimNumber }

// TooAmbiguous reports true for a bare 1..12 integer with no grain
// marker and no grouping — exactly the "could be year, day-of-month,
// or hour" case spec.md §4.4 calls out.
func (i Integer) TooAmbiguous() bool {
	return !i.HasGrain && !i.Group && i.Val >= 1 && i.Val <= 12
}

func (Integer) Latent() bool { return false }

// Float is a non-integral number value.
type Float struct {
	Val      float64
	Prefixed bool
	Suffixed bool
	Prec     Precision
}

func (Float) Dimension() Dimension  { return DimNumber }
func (Float) TooAmbiguous() bool    { return false }
func (Float) Latent() bool          { return false }

// Ordinal is a rank value ("the third", "21st").
type Ordinal struct {
	Val      int64
	Grain    calendar.Granularity
	HasGrain bool
	Prefixed bool
}

func (Ordinal) Dimension() Dimension { return DimOrdinal }
func (Ordinal) TooAmbiguous() bool   { return false }
func (Ordinal) Latent() bool         { return false }
