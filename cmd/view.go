package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/etnz/finance/plot"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	start  string
	end    string
	period string
	by     string
	chart  bool
	xlsx   string
}

func (*viewCmd) Name() string { return "view" }
func (*viewCmd) Synopsis() string {
	return "display the transactions and summary within a date range"
}
func (*viewCmd) Usage() string {
	return `fin view [-s <start>] [-e <end>] [-p <period>] [-by <period>] [-chart] [-xlsx <file>]

  Displays the transactions within a date range, both ends included, with the
  total income, total expense and net savings of the range.

  Without -s, -e or -p the range covers the whole ledger. With -p the range is
  the period (day, week, month, quarter, year) containing the end date.

Usage Examples:
$ fin view -s 01-01-2025 -e 31-03-2025 -by month
$ fin view -p month -chart
$ fin view -s -1y -xlsx chart.xlsx
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the range (dd-mm-yyyy).")
	f.StringVar(&c.end, "e", "", "End date of the range (dd-mm-yyyy), today by default.")
	f.StringVar(&c.period, "p", "", "Predefined period of the range (day, week, month, quarter, year). Ignored with -s.")
	f.StringVar(&c.by, "by", "", "Break the summary down per period (day, week, month, quarter, year).")
	f.BoolVar(&c.chart, "chart", false, "Draw the daily income and expense in the terminal.")
	f.StringVar(&c.xlsx, "xlsx", "", "Write the daily income and expense, with a chart, to this spreadsheet file.")
}

// dateRange resolves the range of the report from the flags.
func (c *viewCmd) dateRange(ledger *finance.Ledger) (finance.Range, error) {
	if c.start == "" && c.end == "" && c.period == "" {
		if span, ok := ledger.Span(); ok {
			return span, nil
		}
		today := finance.Today()
		return finance.NewRange(today, today), nil
	}

	end := finance.Today()
	if c.end != "" {
		d, err := finance.ParseDate(c.end)
		if err != nil {
			return finance.Range{}, fmt.Errorf("invalid end date: %w", err)
		}
		end = d
	}

	switch {
	case c.start != "":
		start, err := finance.ParseDate(c.start)
		if err != nil {
			return finance.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
		return finance.NewRange(start, end), nil
	case c.period != "":
		p, err := finance.ParsePeriod(c.period)
		if err != nil {
			return finance.Range{}, fmt.Errorf("invalid -p: %w", err)
		}
		return p.Range(end), nil
	default:
		start := end
		if span, ok := ledger.Span(); ok {
			start = span.From
		}
		return finance.NewRange(start, end), nil
	}
}

// report renders the query and its breakdown.
func (c *viewCmd) report(ledger *finance.Ledger, r finance.Range, currency string) (*finance.QueryResult, string, error) {
	q := ledger.Query(r)
	if c.by == "" {
		return q, renderer.QueryMarkdown(q, currency), nil
	}
	p, err := finance.ParsePeriod(c.by)
	if err != nil {
		return nil, "", fmt.Errorf("invalid -by: %w", err)
	}
	logf("breakdown by %s", p.Name())
	rows := finance.Breakdown(q.Transactions, r, p)
	return q, renderer.ViewMarkdown(q, rows, currency), nil
}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	ledger, err := LoadLedger(store)
	if err != nil {
		return fail(err)
	}
	r, err := c.dateRange(ledger)
	if err != nil {
		return fail(err)
	}
	logf("viewing %s", r)

	q, md, err := c.report(ledger, r, store.Config().Currency)
	if err != nil {
		return fail(err)
	}
	printMarkdown(md)

	var plotters []plot.Plotter
	if c.chart {
		plotters = append(plotters, plot.Terminal{
			Out:   os.Stdout,
			Width: terminalWidth(os.Stdout, 80),
			Color: isTerminal(os.Stdout),
		})
	}
	if c.xlsx != "" {
		plotters = append(plotters, plot.XLSX{Path: c.xlsx})
	}
	income, expense := q.Series()
	for _, p := range plotters {
		if err := p.Plot(income, expense); err != nil {
			return fail(err)
		}
	}
	if c.xlsx != "" {
		logf("chart written to %q", c.xlsx)
	}
	return subcommands.ExitSuccess
}
