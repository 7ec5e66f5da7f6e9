package constraint

import "tempora/calendar"

// funcConstraint lets every combinator below build a Constraint from
// two closures without declaring a dedicated type per combinator.
type funcConstraint struct {
	grain    calendar.Granularity
	forward  func(ctx Context) Stream
	backward func(ctx Context) Stream
}

func (f funcConstraint) Grain() calendar.Granularity { return f.grain }
func (f funcConstraint) Forward(ctx Context) Stream   { return f.forward(ctx) }
func (f funcConstraint) Backward(ctx Context) Stream  { return f.backward(ctx) }

const maxMergeSteps = 10000

// Intersect returns all intervals contained in both a matching
// a-interval and a matching b-interval; its grain is the finer of the
// two operands', per spec.md's grain rule.
func Intersect(a, b Constraint) Constraint {
	grain := calendar.Finer(a.Grain(), b.Grain())
	return funcConstraint{
		grain: grain,
		forward: func(ctx Context) Stream {
			return mergeIntersect(a.Forward(ctx), b.Forward(ctx), grain, false)
		},
		backward: func(ctx Context) Stream {
			return mergeIntersect(a.Backward(ctx), b.Backward(ctx), grain, true)
		},
	}
}

// mergeIntersect walks two streams, both sorted in the same direction,
// emitting their pairwise intersections in order.
func mergeIntersect(a, b Stream, grain calendar.Granularity, backward bool) Stream {
	aCur, aOK := a.Next()
	bCur, bOK := b.Next()
	return streamFunc(func() (calendar.Interval, bool) {
		for steps := 0; steps < maxMergeSteps; steps++ {
			if !aOK || !bOK {
				return calendar.Interval{}, false
			}
			if iv, ok := aCur.Intersect(bCur); ok {
				iv.Grain = grain
				advanceA := !endsAfter(aCur, bCur, backward)
				advanceB := !endsAfter(bCur, aCur, backward)
				if advanceA {
					aCur, aOK = a.Next()
				}
				if advanceB {
					bCur, bOK = b.Next()
				}
				return iv, true
			}
			if endsAfter(bCur, aCur, backward) {
				aCur, aOK = a.Next()
			} else {
				bCur, bOK = b.Next()
			}
		}
		return calendar.Interval{}, false
	})
}

// endsAfter reports whether x extends at least as far in the walk
// direction as y (used to decide which cursor to advance).
func endsAfter(x, y calendar.Interval, backward bool) bool {
	if backward {
		return !x.Start.After(y.Start)
	}
	return !x.End.Before(y.End)
}

// ShiftBy translates every interval of c by p.
func ShiftBy(c Constraint, p calendar.Period) Constraint {
	return funcConstraint{
		grain: c.Grain(),
		forward: func(ctx Context) Stream {
			return mapStream(c.Forward(ctx), func(iv calendar.Interval) calendar.Interval { return iv.TranslateBy(p) })
		},
		backward: func(ctx Context) Stream {
			return mapStream(c.Backward(ctx), func(iv calendar.Interval) calendar.Interval { return iv.TranslateBy(p) })
		},
	}
}

// TranslateWith replaces each interval of c via fn — used e.g. for
// Easter, where the offset from a cycle anchor isn't a fixed Period.
func TranslateWith(c Constraint, fn func(calendar.Interval) calendar.Interval) Constraint {
	return funcConstraint{
		grain: c.Grain(),
		forward: func(ctx Context) Stream {
			return mapStream(c.Forward(ctx), fn)
		},
		backward: func(ctx Context) Stream {
			return mapStream(c.Backward(ctx), fn)
		},
	}
}

func mapStream(s Stream, fn func(calendar.Interval) calendar.Interval) Stream {
	return streamFunc(func() (calendar.Interval, bool) {
		iv, ok := s.Next()
		if !ok {
			return calendar.Interval{}, false
		}
		return fn(iv), true
	})
}

// TakeTheNth selects the n-th occurrence of c from the anchor (the
// interval containing ctx.Reference): n>=0 indexes the forward stream
// (0 is the occurrence containing or immediately following now), n<0
// indexes the backward stream (-1 is the most recent strictly-past
// occurrence).
func TakeTheNth(c Constraint, n int) Constraint {
	return takeTheNth(c, n, false)
}

// TakeTheNthNotImmediate is like TakeTheNth, but for n==0, if the
// anchor occurrence contains ctx.Reference, it is skipped in favor of
// the next one forward.
func TakeTheNthNotImmediate(c Constraint, n int) Constraint {
	return takeTheNth(c, n, true)
}

func takeTheNth(c Constraint, n int, notImmediate bool) Constraint {
	return funcConstraint{
		grain: c.Grain(),
		forward: func(ctx Context) Stream {
			iv, ok := nthOccurrence(c, ctx, n, notImmediate)
			return onceStream(iv, ok)
		},
		backward: func(ctx Context) Stream {
			iv, ok := nthOccurrence(c, ctx, n, notImmediate)
			return onceStream(iv, ok)
		},
	}
}

func nthOccurrence(c Constraint, ctx Context, n int, notImmediate bool) (calendar.Interval, bool) {
	if n >= 0 {
		s := c.Forward(ctx)
		idx := n
		var iv calendar.Interval
		var ok bool
		for i := 0; i <= idx; i++ {
			iv, ok = s.Next()
			if !ok {
				return calendar.Interval{}, false
			}
			if i == 0 && notImmediate && iv.Contains(ctx.Reference) {
				idx++ // skip the immediate occurrence, pull one more
			}
		}
		return iv, true
	}

	s := c.Backward(ctx)
	idx := -n - 1
	var iv calendar.Interval
	var ok bool
	for i := 0; i <= idx; i++ {
		iv, ok = s.Next()
		if !ok {
			return calendar.Interval{}, false
		}
	}
	return iv, true
}

func onceStream(iv calendar.Interval, ok bool) Stream {
	done := false
	return streamFunc(func() (calendar.Interval, bool) {
		if done || !ok {
			return calendar.Interval{}, false
		}
		done = true
		return iv, true
	})
}

// TakeSeq returns the first n intervals of c in the forward direction
// from the anchor, as a single Constraint (used for e.g. "the next 3
// days").
func TakeSeq(c Constraint, n int) Constraint {
	return takeSeqImpl(c, n, false)
}

// TakeSeqNotImmediate is like TakeSeq, skipping the occurrence
// containing ctx.Reference if it is first.
func TakeSeqNotImmediate(c Constraint, n int) Constraint {
	return takeSeqImpl(c, n, true)
}

func takeSeqImpl(c Constraint, n int, notImmediate bool) Constraint {
	return funcConstraint{
		grain: c.Grain(),
		forward: func(ctx Context) Stream {
			s := c.Forward(ctx)
			first := true
			count := 0
			return streamFunc(func() (calendar.Interval, bool) {
				if count >= n {
					return calendar.Interval{}, false
				}
				iv, ok := s.Next()
				if !ok {
					return calendar.Interval{}, false
				}
				if first && notImmediate && iv.Contains(ctx.Reference) {
					first = false
					iv, ok = s.Next()
					if !ok {
						return calendar.Interval{}, false
					}
				}
				first = false
				count++
				return iv, true
			})
		},
		backward: func(ctx Context) Stream { return c.Backward(ctx) },
	}
}

// After returns, for each occurrence of other (forward from the
// reference), the first self-interval strictly after its end.
func After(self, other Constraint) Constraint {
	return afterImpl(self, other, false)
}

// AfterNotImmediate is like After, but if self would return the
// interval containing other's end, it is skipped in favor of the next.
func AfterNotImmediate(self, other Constraint) Constraint {
	return afterImpl(self, other, true)
}

func afterImpl(self, other Constraint, notImmediate bool) Constraint {
	return funcConstraint{
		grain: self.Grain(),
		forward: func(ctx Context) Stream {
			otherStream := other.Forward(ctx)
			return streamFunc(func() (calendar.Interval, bool) {
				otherIv, ok := otherStream.Next()
				if !ok {
					return calendar.Interval{}, false
				}
				selfStream := self.Forward(Context{Reference: otherIv.End})
				for steps := 0; steps < maxSearchSteps; steps++ {
					iv, ok := selfStream.Next()
					if !ok {
						return calendar.Interval{}, false
					}
					if iv.Start.Before(otherIv.End) {
						continue
					}
					if notImmediate && iv.Contains(otherIv.End) {
						continue
					}
					return iv, true
				}
				return calendar.Interval{}, false
			})
		},
		backward: func(ctx Context) Stream { return emptyStream },
	}
}

// Before is the mirror of After: for each occurrence of other
// (backward from the reference), the first self-interval strictly
// before its start.
func Before(self, other Constraint) Constraint {
	return funcConstraint{
		grain: self.Grain(),
		forward: func(ctx Context) Stream { return emptyStream },
		backward: func(ctx Context) Stream {
			otherStream := other.Backward(ctx)
			return streamFunc(func() (calendar.Interval, bool) {
				otherIv, ok := otherStream.Next()
				if !ok {
					return calendar.Interval{}, false
				}
				selfStream := self.Backward(Context{Reference: otherIv.Start})
				for steps := 0; steps < maxSearchSteps; steps++ {
					iv, ok := selfStream.Next()
					if !ok {
						return calendar.Interval{}, false
					}
					if iv.End.After(otherIv.Start) {
						continue
					}
					return iv, true
				}
				return calendar.Interval{}, false
			})
		},
	}
}

// NthAfter returns the n-th self-interval (0-indexed) after each
// occurrence of other.
func NthAfter(self, other Constraint, n int) Constraint {
	return funcConstraint{
		grain: self.Grain(),
		forward: func(ctx Context) Stream {
			otherStream := other.Forward(ctx)
			return streamFunc(func() (calendar.Interval, bool) {
				otherIv, ok := otherStream.Next()
				if !ok {
					return calendar.Interval{}, false
				}
				selfStream := self.Forward(Context{Reference: otherIv.End})
				var iv calendar.Interval
				for i := 0; i <= n; i++ {
					iv, ok = selfStream.Next()
					if !ok {
						return calendar.Interval{}, false
					}
					if iv.Start.Before(otherIv.End) {
						i--
						continue
					}
				}
				return iv, true
			})
		},
		backward: func(ctx Context) Stream { return emptyStream },
	}
}

// Span combines each forward occurrence of a with the next occurrence of
// b starting no earlier than a starts, into the single convex interval
// a.SpanTo(b) (or a.SpanInclusiveTo(b) if inclusive) — e.g. "from 9am to
// 11am", "between monday and friday".
func Span(a, b Constraint, inclusive bool) Constraint {
	grain := calendar.Finer(a.Grain(), b.Grain())
	return funcConstraint{
		grain: grain,
		forward: func(ctx Context) Stream {
			aStream := a.Forward(ctx)
			return streamFunc(func() (calendar.Interval, bool) {
				aIv, ok := aStream.Next()
				if !ok {
					return calendar.Interval{}, false
				}
				bStream := b.Forward(Context{Reference: aIv.Start})
				for steps := 0; steps < maxSearchSteps; steps++ {
					bIv, ok := bStream.Next()
					if !ok {
						return calendar.Interval{}, false
					}
					if bIv.Start.Before(aIv.Start) {
						continue
					}
					var span calendar.Interval
					if inclusive {
						span = aIv.SpanInclusiveTo(bIv)
					} else {
						span = aIv.SpanTo(bIv)
					}
					span.Grain = grain
					return span, true
				}
				return calendar.Interval{}, false
			})
		},
		backward: func(ctx Context) Stream { return emptyStream },
	}
}

// NthOf returns the n-th (0-indexed) self-occurrence fully contained in
// each occurrence of other, counted forward from other's start — e.g.
// the third Monday of a month (self=DayOfWeek(Monday), other=Month(...),
// n=2). Unlike LastOf, which always takes the last contained occurrence
// searching backward from other's end, NthOf counts forward and can
// select any position.
func NthOf(self, other Constraint, n int) Constraint {
	return funcConstraint{
		grain: self.Grain(),
		forward: func(ctx Context) Stream {
			otherStream := other.Forward(ctx)
			return streamFunc(func() (calendar.Interval, bool) {
				otherIv, ok := otherStream.Next()
				if !ok {
					return calendar.Interval{}, false
				}
				selfStream := self.Forward(Context{Reference: otherIv.Start})
				count := 0
				for steps := 0; steps < maxSearchSteps; steps++ {
					iv, ok := selfStream.Next()
					if !ok {
						return calendar.Interval{}, false
					}
					if iv.Start.Before(otherIv.Start) {
						continue
					}
					if iv.End.After(otherIv.End) {
						return calendar.Interval{}, false
					}
					if count == n {
						return iv, true
					}
					count++
				}
				return calendar.Interval{}, false
			})
		},
		backward: func(ctx Context) Stream { return emptyStream },
	}
}

// LastOf returns the last self-occurrence contained in each occurrence
// of other.
func LastOf(self, other Constraint) Constraint {
	return funcConstraint{
		grain: self.Grain(),
		forward: func(ctx Context) Stream {
			otherStream := other.Forward(ctx)
			return streamFunc(func() (calendar.Interval, bool) {
				otherIv, ok := otherStream.Next()
				if !ok {
					return calendar.Interval{}, false
				}
				selfStream := self.Backward(Context{Reference: otherIv.End})
				for steps := 0; steps < maxSearchSteps; steps++ {
					iv, ok := selfStream.Next()
					if !ok {
						return calendar.Interval{}, false
					}
					if iv.End.After(otherIv.End) {
						continue
					}
					if iv.Start.Before(otherIv.Start) {
						return calendar.Interval{}, false
					}
					return iv, true
				}
				return calendar.Interval{}, false
			})
		},
		backward: func(ctx Context) Stream { return emptyStream },
	}
}
