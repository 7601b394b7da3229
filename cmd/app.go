// Package cmd implements the CLI application to manage the portfolio.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/anantk/nivesh"
	"github.com/anantk/nivesh/quotes"
	"github.com/google/subcommands"
)

// Commands lists every subcommand; a main package registers them and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&sellCmd{},
	&editCmd{},
	&deleteCmd{},
	&listCmd{},
	&holdingsCmd{},
	&bucketsCmd{},
	&summaryCmd{},
	&targetCmd{},
	&purposeCmd{},
	&updateCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "trades.jsonl", "Path to the trades file (JSONL format)")
var bucketsFile = flag.String("buckets-file", "buckets.json", "Path to the bucket goals file")
var offline = flag.Bool("offline", false, "Do not fetch live prices; positions value at average buy price")

// DecodeLedgerFile loads the trade ledger from the app ledger file.
func DecodeLedgerFile() (*nivesh.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, %s does not exist, starting with an empty ledger", *ledgerFile)
		return nivesh.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return nivesh.DecodeLedger(f)
}

// SaveLedger writes the whole ledger back to the app ledger file.
func SaveLedger(l *nivesh.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return nivesh.EncodeLedger(f, l)
}

// AppendTrade appends a single trade line to the app ledger file.
func AppendTrade(t nivesh.Trade) error {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	return nivesh.EncodeTrade(f, t)
}

// DecodeBucketsFile loads the bucket goal configuration.
func DecodeBucketsFile() (*nivesh.BucketConfig, error) {
	f, err := os.Open(*bucketsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nivesh.NewBucketConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return nivesh.DecodeBucketConfig(f)
}

// SaveBuckets writes the bucket goal configuration.
func SaveBuckets(cfg *nivesh.BucketConfig) error {
	f, err := os.Create(*bucketsFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return nivesh.EncodeBucketConfig(f, cfg)
}

// PriceLookup builds the price lookup for a ledger: a cached live
// oracle, or no prices at all in offline mode.
func PriceLookup(ctx context.Context, l *nivesh.Ledger) nivesh.PriceLookup {
	if *offline {
		return nivesh.NoPrices
	}
	return nivesh.NewQuoteCache(quotes.NewClient()).Lookup(ctx, l)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
