package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/anantk/nivesh"
	"github.com/anantk/nivesh/agent"
	"github.com/anantk/nivesh/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd starts the conversational portfolio advisor.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the portfolio advisor" }
func (*assistCmd) Usage() string {
	return `nivesh assist [question ...]

  Starts an interactive advisor grounded in your holdings, bucket goals
  and summary. Requires GEMINI_API_KEY in the environment. Questions
  passed as arguments are answered first, then the prompt is yours.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(err)
	}
	a := agent.New(os.Stdout, os.Stdin, agent.NewAdvisor(&appReports{ctx: ctx}))
	if err := a.Run(ctx, client, f.Args()...); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// appReports computes the advisor's reports fresh from the app files on
// every tool call, so the model always sees the current ledger.
type appReports struct {
	ctx context.Context
}

func (r *appReports) load() (*nivesh.Ledger, nivesh.PriceLookup, error) {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		return nil, nil, err
	}
	return ledger, PriceLookup(r.ctx, ledger), nil
}

func (r *appReports) HoldingsReport() (string, error) {
	ledger, lookup, err := r.load()
	if err != nil {
		return "", err
	}
	asOf := nivesh.Today()
	return renderer.HoldingsMarkdown(nivesh.ComputeHoldings(ledger, lookup, asOf), asOf), nil
}

func (r *appReports) BucketsReport() (string, error) {
	ledger, lookup, err := r.load()
	if err != nil {
		return "", err
	}
	cfg, err := DecodeBucketsFile()
	if err != nil {
		return "", err
	}
	holdings := nivesh.ComputeHoldings(ledger, lookup, nivesh.Today())
	return renderer.BucketsMarkdown(nivesh.SummarizeBuckets(holdings, cfg)), nil
}

func (r *appReports) SummaryReport() (string, error) {
	ledger, lookup, err := r.load()
	if err != nil {
		return "", err
	}
	asOf := nivesh.Today()
	s := nivesh.ComposeSummary(nivesh.ValueTrades(ledger, lookup, asOf), asOf)
	return renderer.SummaryMarkdown(&s), nil
}
