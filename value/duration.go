package value

import "tempora/calendar"

// Duration is a span of time expressed as a calendar.Period ("3 days",
// "2 hours and 30 minutes").
type Duration struct {
	Period   calendar.Period
	Prec     Precision
	Prefixed bool // "for"/"during 3 days"
	Suffixed bool // "3 days ago"/"hence"/"from now"
}

func (Duration) Dimension() Dimension { return DimDuration }
func (Duration) TooAmbiguous() bool   { return false }
func (Duration) Latent() bool         { return false }

// Add composes two durations of (possibly) different grains, preserving
// every component, per spec.md §3's invariant.
func (d Duration) Add(d2 Duration) Duration {
	return Duration{
		Period: d.Period.Add(d2.Period),
		Prec:   Combine(d.Prec, d2.Prec),
	}
}
