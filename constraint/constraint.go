// Package constraint implements the lazy constraint algebra of
// spec.md §3/§4.1: a declarative language for (possibly infinite)
// sequences of calendar intervals, closed under intersection,
// translation, before/after, span-to, last-of and duration arithmetic,
// evaluated lazily against a reference instant.
package constraint

import "tempora/calendar"

// Context carries the reference instant every constraint is evaluated
// against. It has no other state: a Constraint is a pure function of
// (Context, direction) to a Stream.
type Context struct {
	Reference calendar.DateTime
}

// Stream is a lazy, restartable sequence of intervals. Calling Next
// past exhaustion keeps returning (zero, false); streams never panic on
// over-iteration. Streams are not safe for concurrent use — each is
// owned by a single evaluation, per spec.md §5.
type Stream interface {
	Next() (calendar.Interval, bool)
}

// funcStream adapts a plain closure into a Stream. Atomic constraints
// and every combinator build their streams this way: a small captured
// cursor plus a step closure, so advancing never does unbounded work
// and the whole stream can be recreated cheaply by calling Forward/
// Backward again.
type funcStream struct {
	next func() (calendar.Interval, bool)
}

func (f *funcStream) Next() (calendar.Interval, bool) { return f.next() }

func streamFunc(next func() (calendar.Interval, bool)) Stream {
	return &funcStream{next: next}
}

// emptyStream never yields anything; combinators return it for the
// direction they do not walk (e.g. the backward stream of After, Span
// and LastOf, the forward stream of Before).
var emptyStream = streamFunc(func() (calendar.Interval, bool) { return calendar.Interval{}, false })

// Constraint describes a family of calendar intervals. Grain reports
// the granularity of the intervals it produces; Forward/Backward
// produce the lazy sequence of such intervals walking away from
// ctx.Reference in the given direction.
type Constraint interface {
	Grain() calendar.Granularity
	Forward(ctx Context) Stream
	Backward(ctx Context) Stream
}

// Drain pulls up to n intervals from s.
func Drain(s Stream, n int) []calendar.Interval {
	out := make([]calendar.Interval, 0, n)
	for i := 0; i < n; i++ {
		iv, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, iv)
	}
	return out
}

// First returns the first interval produced by s, if any.
func First(s Stream) (calendar.Interval, bool) {
	return s.Next()
}
