package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/anantk/nivesh"
	"github.com/google/subcommands"
)

// targetCmd sets the target amount of a savings bucket.
type targetCmd struct {
	bucket string
	amount float64
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "set a bucket's target amount" }
func (*targetCmd) Usage() string {
	return `nivesh target -b <bucket> -a <amount>

  Sets the goal amount for a savings bucket. Progress and shortfall in
  'nivesh buckets' are computed against this target.
`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bucket, "b", "", "Bucket (bucket1a..bucket1e, bucket2, bucket3)")
	f.Float64Var(&c.amount, "a", 0, "Target amount")
}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := nivesh.ParseBucket(c.bucket)
	if err != nil {
		return fail(err)
	}
	cfg, err := DecodeBucketsFile()
	if err != nil {
		return fail(err)
	}
	if err := cfg.SetTarget(b, nivesh.M(c.amount)); err != nil {
		return fail(err)
	}
	if err := SaveBuckets(cfg); err != nil {
		return fail(err)
	}
	fmt.Printf("Target of %s set to %s\n", b, cfg.Target(b))
	return subcommands.ExitSuccess
}

// purposeCmd labels a savings bucket with what it is for.
type purposeCmd struct {
	bucket  string
	purpose string
}

func (*purposeCmd) Name() string     { return "purpose" }
func (*purposeCmd) Synopsis() string { return "set a bucket's purpose" }
func (*purposeCmd) Usage() string {
	return `nivesh purpose -b <bucket> -p <text>

  Labels a savings bucket, e.g. "House down payment". The purposes of
  bucket2 (emergency fund) and bucket3 (retirement corpus) are fixed.
`
}

func (c *purposeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bucket, "b", "", "Bucket (bucket1a..bucket1e)")
	f.StringVar(&c.purpose, "p", "", "Purpose of the bucket")
}

func (c *purposeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := nivesh.ParseBucket(c.bucket)
	if err != nil {
		return fail(err)
	}
	cfg, err := DecodeBucketsFile()
	if err != nil {
		return fail(err)
	}
	if err := cfg.SetPurpose(b, c.purpose); err != nil {
		return fail(err)
	}
	if err := SaveBuckets(cfg); err != nil {
		return fail(err)
	}
	fmt.Printf("Purpose of %s set to %q\n", b, cfg.Purpose(b))
	return subcommands.ExitSuccess
}
