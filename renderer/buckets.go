package renderer

import (
	"bytes"

	"github.com/anantk/nivesh"
	md "github.com/nao1215/markdown"
)

// BucketsMarkdown renders the goal-progress report, one row per
// configured bucket.
func BucketsMarkdown(summaries []nivesh.BucketSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings Buckets")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Bucket", "Purpose", "Target", "Current", "Progress", "Shortfall", "Holdings", "Yield", "XIRR",
		},
	}
	for _, s := range summaries {
		table.Rows = append(table.Rows, []string{
			string(s.Bucket),
			s.Purpose,
			s.TargetAmount.String(),
			s.CurrentValue.String(),
			s.ProgressPercent.String(),
			s.ShortfallAmount.String(),
			itoa(s.HoldingsCount),
			s.AnnualYield.SignedString(),
			s.XIRR.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}
