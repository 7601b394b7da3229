package cmd

import (
	"context"
	"flag"

	"github.com/anantk/nivesh"
	"github.com/anantk/nivesh/renderer"
	"github.com/google/subcommands"
)

// bucketsCmd prints goal progress per savings bucket.
type bucketsCmd struct {
	date string
}

func (*bucketsCmd) Name() string     { return "buckets" }
func (*bucketsCmd) Synopsis() string { return "show savings bucket goal progress" }
func (*bucketsCmd) Usage() string {
	return `nivesh buckets [-d <date>]

  Aggregates holdings into their savings buckets and reports progress
  against each bucket's target. Every configured bucket is listed, even
  when nothing is allocated to it yet.
`
}

func (c *bucketsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Valuation date; trades after it are ignored")
}

func (c *bucketsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := nivesh.ParseDate(c.date)
	if err != nil {
		return fail(err)
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	cfg, err := DecodeBucketsFile()
	if err != nil {
		return fail(err)
	}
	holdings := nivesh.ComputeHoldings(ledger, PriceLookup(ctx, ledger), asOf)
	summaries := nivesh.SummarizeBuckets(holdings, cfg)
	printMarkdown(renderer.BucketsMarkdown(summaries))
	return subcommands.ExitSuccess
}
