// Package engine wires the chart parser, the English rule set and the
// candidate tagger into the single entry point described in spec.md
// §6: Parse takes raw text and a reference instant and returns the
// tagged, resolved matches found in it.
package engine

import (
	"github.com/sirupsen/logrus"

	"tempora/calendar"
	"tempora/grammar"
	"tempora/rules/en"
	"tempora/tagger"
)

// discardLogger is the default used when no caller-supplied logger is
// configured, keeping the engine silent for library callers (spec.md
// §5: parsing is a pure function with no side effects).
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(nopWriter{})
	return l
}()

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// Option configures a Parse call.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
	filter []tagger.OutputKind
}

// WithLogger injects a structured logger; Parse logs one debug entry
// after the chart parse and one after tagging. Omit to keep Parse silent.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

// WithFilter restricts results to the given, caller-preference-ordered
// output kinds (spec.md §6). Omit to admit every dimension.
func WithFilter(kinds ...tagger.OutputKind) Option {
	return func(o *options) { o.filter = kinds }
}

// Parse runs the full pipeline — chart parse, dimension mapping,
// filtering, sorting and greedy non-overlap selection, resolution
// against reference — over text, returning every tagged Match.
func Parse(text string, reference calendar.DateTime, opts ...Option) []tagger.Match {
	o := &options{logger: discardLogger}
	for _, opt := range opts {
		opt(o)
	}

	nodes := grammar.Parse(text, en.All())
	o.logger.WithFields(logrus.Fields{"text": text, "nodes": len(nodes)}).Debug("chart parse complete")

	ctx := tagger.ParsingContext{Reference: reference}
	matches := tagger.Tag(nodes, o.filter, ctx)
	o.logger.WithField("matches", len(matches)).Debug("tagging complete")

	return matches
}
