// Command temporaparse is a thin CLI over the engine package: it parses
// free text for numbers, durations and calendar/clock expressions and
// prints the tagged matches as a table.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tempora/calendar"
	"tempora/engine"
	"tempora/tagger"
	"tempora/value"
)

var (
	referenceFlag string
	kindsFlag     []string
	verboseFlag   bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "temporaparse <text>",
		Short: "Extract numbers, durations and datetime expressions from text",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}
	root.Flags().StringVar(&referenceFlag, "reference", "", "reference instant, RFC3339 (default: now)")
	root.Flags().StringSliceVar(&kindsFlag, "kind", nil, "restrict output to these kinds, in preference order")
	root.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	return root
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	if verboseFlag {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	reference, err := parseReference(referenceFlag)
	if err != nil {
		return err
	}

	filter, err := parseKinds(kindsFlag)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	opts := []engine.Option{engine.WithLogger(logger)}
	if len(filter) > 0 {
		opts = append(opts, engine.WithFilter(filter...))
	}

	matches := engine.Parse(text, reference, opts...)
	printMatches(cmd, text, matches)
	return nil
}

func parseReference(s string) (calendar.DateTime, error) {
	if s == "" {
		return calendar.FromStdlib(time.Now()), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return calendar.DateTime{}, fmt.Errorf("invalid --reference %q: %w", s, err)
	}
	return calendar.FromStdlib(t), nil
}

var kindNames = map[string]tagger.OutputKind{
	"number": tagger.Number, "ordinal": tagger.Ordinal, "percentage": tagger.Percentage,
	"temperature": tagger.Temperature, "duration": tagger.Duration, "money": tagger.AmountOfMoney,
	"time": tagger.Time, "date": tagger.Date, "dateperiod": tagger.DatePeriod,
	"timeperiod": tagger.TimePeriod, "datetime": tagger.DateTime, "datetimeperiod": tagger.DateTimePeriod,
}

func parseKinds(names []string) ([]tagger.OutputKind, error) {
	var kinds []tagger.OutputKind
	for _, n := range names {
		k, ok := kindNames[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown --kind %q", n)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func printMatches(cmd *cobra.Command, text string, matches []tagger.Match) {
	out := cmd.OutOrStdout()

	if len(matches) == 0 {
		fmt.Fprintln(out, color.YellowString("no matches"))
		return
	}

	table := tablewriter.NewTable(out,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"span", "dimension", "value", "latent"})

	for _, m := range matches {
		span := text[m.ByteRange.Start:m.ByteRange.End]
		dim := m.Dimension.String()
		latent := "no"
		if m.Latent {
			latent = color.RedString("yes")
		} else {
			dim = color.GreenString(dim)
		}
		table.Append([]string{span, dim, formatOutput(m.Output), latent})
	}

	table.Render()
}

func formatOutput(o tagger.Output) string {
	if o.Time != nil {
		if o.Time.OneSided {
			anchor := o.Time.Start
			if o.Time.Side == value.AnchorEnd {
				anchor = o.Time.End
			}
			return fmt.Sprintf("%s (one-sided, %s)", anchor, o.Time.Grain)
		}
		return fmt.Sprintf("%s -> %s", o.Time.Start, o.Time.End)
	}
	return fmt.Sprintf("%v", o.Raw)
}
