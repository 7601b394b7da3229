package cmd

import (
	"context"
	"flag"

	"github.com/anantk/nivesh"
	"github.com/anantk/nivesh/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd prints the current open positions.
type holdingsCmd struct {
	date string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show current open positions" }
func (*holdingsCmd) Usage() string {
	return `nivesh holdings [-d <date>]

  Computes open positions from the ledger: sells consume the oldest buy
  lots first, and whatever remains is valued at the live quote, or at
  the average buy price when no quote is available.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Valuation date; trades after it are ignored")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := nivesh.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	holdings := nivesh.ComputeHoldings(ledger, PriceLookup(ctx, ledger), asOf)
	printMarkdown(renderer.HoldingsMarkdown(holdings, asOf))
	return subcommands.ExitSuccess
}
