package cmd

import (
	"context"
	"flag"

	"github.com/anantk/nivesh"
	"github.com/anantk/nivesh/renderer"
	"github.com/google/subcommands"
)

// summaryCmd prints the portfolio-wide summary.
type summaryCmd struct {
	filterFlags
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `nivesh summary [-d <date>] [-t <type>] [-b <bucket>] [-from <date>] [-to <date>] [-q <text>]

  Values every buy trade at the present price and reports totals, asset
  allocation and the top and bottom performers. Filters narrow the
  summary to a slice of the portfolio.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.date, "d", "0d", "Valuation date; trades after it are ignored")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := nivesh.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	filters, err := c.filters()
	if err != nil {
		return fail(err)
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	valued := nivesh.ValueTrades(ledger, PriceLookup(ctx, ledger), asOf, filters...)
	s := nivesh.ComposeSummary(valued, asOf)
	printMarkdown(renderer.SummaryMarkdown(&s))
	return subcommands.ExitSuccess
}
