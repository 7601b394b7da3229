package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/anantk/nivesh"
	"github.com/google/subcommands"
)

// editCmd changes fields of an existing trade. Only the flags actually
// set on the command line override the stored record; the amount is
// rederived either way.
type editCmd struct {
	id       string
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

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing trade" }
func (*editCmd) Usage() string {
	return `nivesh edit -id <id> [-d <date>] [-t <type>] [-n <name>] [-q <quantity>] [-r <rate>] [-b <bucket>] ...

  Edits a recorded trade. Holdings, buckets and the summary are derived
  fresh from the ledger, so editing out of chronological order is safe.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Trade id (see 'nivesh list')")
	f.StringVar(&c.date, "d", "", "Trade date")
	f.StringVar(&c.typ, "t", "", "Investment type")
	f.StringVar(&c.name, "n", "", "Instrument name")
	f.StringVar(&c.isin, "isin", "", "ISIN")
	f.Float64Var(&c.quantity, "q", 0, "Quantity")
	f.Float64Var(&c.rate, "r", 0, "Unit price")
	f.StringVar(&c.broker, "broker", "", "Broker or bank")
	f.StringVar(&c.bucket, "b", "", "Savings bucket allocation")
	f.Float64Var(&c.interest, "i", 0, "Interest rate")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("-id is required"))
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	t, ok := ledger.Get(c.id)
	if !ok {
		return fail(fmt.Errorf("trade %s not found", c.id))
	}

	// Visit runs in lexical flag order; keep the first error so a bad
	// flag is not masked by a later one that parses fine.
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		var err error
		switch fl.Name {
		case "d":
			t.Date, err = nivesh.ParseDate(c.date)
		case "t":
			t.Type = nivesh.InvestmentType(c.typ)
		case "n":
			t.Name = c.name
		case "isin":
			t.ISIN = c.isin
		case "q":
			t.Quantity = nivesh.Q(c.quantity)
		case "r":
			t.Rate = nivesh.M(c.rate)
		case "broker":
			t.Broker = c.broker
		case "b":
			t.Bucket, err = nivesh.ParseBucket(c.bucket)
		case "i":
			t.InterestRate = c.interest
		}
		if err != nil && flagErr == nil {
			flagErr = err
		}
	})
	if flagErr != nil {
		return fail(flagErr)
	}

	if _, err := ledger.Update(t); err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated trade %s\n", c.id)
	return subcommands.ExitSuccess
}

// deleteCmd removes a trade from the ledger.
type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a trade" }
func (*deleteCmd) Usage() string {
	return `nivesh delete -id <id>

  Deletes a recorded trade.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Trade id (see 'nivesh list')")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("-id is required"))
	}
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	if err := ledger.Delete(c.id); err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted trade %s\n", c.id)
	return subcommands.ExitSuccess
}
