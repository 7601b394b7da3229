package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/anantk/nivesh"
	"github.com/anantk/nivesh/quotes"
	"github.com/google/subcommands"
)

// updateCmd refreshes live quotes for every instrument in the ledger.
type updateCmd struct {
	batch int
	pause time.Duration
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refresh live quotes for all instruments" }
func (*updateCmd) Usage() string {
	return `nivesh update [-batch <n>] [-pause <duration>]

  Fetches a fresh quote for every instrument in the ledger, in small
  throttled batches so the upstream sources are not hammered.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.batch, "batch", 5, "Instruments fetched per batch")
	f.DurationVar(&c.pause, "pause", time.Second, "Pause between batches")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return fail(err)
	}
	instruments := ledger.Instruments()
	if len(instruments) == 0 {
		fmt.Println("Nothing to update.")
		return subcommands.ExitSuccess
	}
	cache := nivesh.NewQuoteCache(quotes.NewClient())
	n := cache.Refresh(ctx, instruments, c.batch, c.pause)
	fmt.Printf("Updated %d of %d instruments\n", n, len(instruments))
	return subcommands.ExitSuccess
}
