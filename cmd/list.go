package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/anantk/nivesh"
	"github.com/anantk/nivesh/renderer"
	"github.com/google/subcommands"
)

// filterFlags are the trade-view filters shared by list and summary.
type filterFlags struct {
	typ    string
	bucket string
	side   string
	from   string
	to     string
	search string
}

func (c *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "", "Filter by investment type")
	f.StringVar(&c.bucket, "b", "", "Filter by bucket")
	f.StringVar(&c.side, "side", "", "Filter by side (buy, sell)")
	f.StringVar(&c.from, "from", "", "Start of the date range")
	f.StringVar(&c.to, "to", "", "End of the date range")
	f.StringVar(&c.search, "q", "", "Free-text search over name, ISIN and broker")
}

// filters compiles the flags into ledger predicates.
func (c *filterFlags) filters() ([]func(nivesh.Trade) bool, error) {
	var out []func(nivesh.Trade) bool
	if c.typ != "" {
		t, err := nivesh.ParseInvestmentType(c.typ)
		if err != nil {
			return nil, err
		}
		out = append(out, nivesh.ByType(t))
	}
	if c.bucket != "" {
		b, err := nivesh.ParseBucket(c.bucket)
		if err != nil {
			return nil, err
		}
		out = append(out, nivesh.ByBucket(b))
	}
	if c.side != "" {
		s, err := nivesh.ParseTradeSide(c.side)
		if err != nil {
			return nil, err
		}
		out = append(out, nivesh.BySide(s))
	}
	if c.from != "" || c.to != "" {
		var from, to nivesh.Date
		var err error
		if c.from != "" {
			if from, err = nivesh.ParseDate(c.from); err != nil {
				return nil, err
			}
		}
		if c.to != "" {
			if to, err = nivesh.ParseDate(c.to); err != nil {
				return nil, err
			}
		}
		out = append(out, nivesh.ByRange(from, to))
	}
	if c.search != "" {
		out = append(out, nivesh.BySearch(c.search))
	}
	return out, nil
}

// listCmd prints the filtered trade listing.
type listCmd struct {
	filterFlags
	ids bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list recorded trades" }
func (*listCmd) Usage() string {
	return `nivesh list [-t <type>] [-b <bucket>] [-side buy|sell] [-from <date>] [-to <date>] [-q <text>] [-ids]

  Lists trades in chronological order, optionally filtered.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.BoolVar(&c.ids, "ids", false, "Also print trade ids, for edit/delete")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	filters, err := c.filters()
	if err != nil {
		return fail(err)
	}
	var trades []nivesh.Trade
	for _, t := range ledger.Trades(filters...) {
		trades = append(trades, t)
	}
	printMarkdown(renderer.TradesMarkdown(trades))
	if c.ids {
		for _, t := range trades {
			fmt.Printf("%s  %s %s %s\n", t.ID, t.Date, t.Side, t.Name)
		}
	}
	return subcommands.ExitSuccess
}
