package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/anantk/nivesh"
	"github.com/google/subcommands"
)

// addCmd records a buy trade.
type addCmd struct {
	date     string
	typ      string
	name     string
	isin     string
	quantity float64
	rate     float64
	broker   string
	bucket   string
	interest float64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a buy trade" }
func (*addCmd) Usage() string {
	return `nivesh add -n <name> -t <type> -q <quantity> -r <rate> [-d <date>] [-isin <isin>] [-broker <broker>] [-b <bucket>] [-i <interest>]

  Records a purchase. The trade amount is derived from quantity × rate.

Usage Examples:
# 50 RELIANCE shares at ₹2400, allocated to bucket1a.
$ nivesh add -n RELIANCE -t stock -q 50 -r 2400 -b bucket1a
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Trade date (defaults to today)")
	f.StringVar(&c.typ, "t", "stock", "Investment type (stock, mutual_fund, bond, fixed_deposit, gold, silver, nps, etf)")
	f.StringVar(&c.name, "n", "", "Instrument name; groups trades into one holding")
	f.StringVar(&c.isin, "isin", "", "ISIN (required for mutual funds)")
	f.Float64Var(&c.quantity, "q", 0, "Quantity bought")
	f.Float64Var(&c.rate, "r", 0, "Unit price at purchase")
	f.StringVar(&c.broker, "broker", "", "Broker or bank")
	f.StringVar(&c.bucket, "b", "", "Savings bucket allocation")
	f.Float64Var(&c.interest, "i", 0, "Interest rate, for fixed-income types")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := c.trade(nivesh.SideBuy)
	if err != nil {
		return fail(err)
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	t, err = ledger.Add(t)
	if err != nil {
		return fail(err)
	}
	if err := AppendTrade(t); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s %s at %s (%s)\n", t.Side, t.Quantity, t.Name, t.Rate, t.Amount)
	return subcommands.ExitSuccess
}

// trade assembles the trade from the flags; validation happens in the ledger.
func (c *addCmd) trade(side nivesh.TradeSide) (nivesh.Trade, error) {
	day, err := nivesh.ParseDate(c.date)
	if err != nil {
		return nivesh.Trade{}, err
	}
	bucket, err := nivesh.ParseBucket(c.bucket)
	if err != nil {
		return nivesh.Trade{}, err
	}
	return nivesh.Trade{
		Date:         day,
		Type:         nivesh.InvestmentType(c.typ),
		Name:         c.name,
		ISIN:         c.isin,
		Side:         side,
		Quantity:     nivesh.Q(c.quantity),
		Rate:         nivesh.M(c.rate),
		Broker:       c.broker,
		Bucket:       bucket,
		InterestRate: c.interest,
	}, nil
}

// sellCmd records a sell trade.
type sellCmd struct {
	addCmd
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell trade" }
func (*sellCmd) Usage() string {
	return `nivesh sell -n <name> -t <type> -q <quantity> -r <rate> [-d <date>]

  Records a sale. Sells consume the oldest open buy lots first (FIFO).
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := c.trade(nivesh.SideSell)
	if err != nil {
		return fail(err)
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	t, err = ledger.Add(t)
	if err != nil {
		return fail(err)
	}
	if err := AppendTrade(t); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded %s of %s %s at %s (%s)\n", t.Side, t.Quantity, t.Name, t.Rate, t.Amount)
	return subcommands.ExitSuccess
}
