// Package renderer builds markdown reports out of the engine's
// view-models, ready to print on a terminal or paste anywhere markdown
// is understood.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/anantk/nivesh"
	md "github.com/nao1215/markdown"
)

// HoldingsMarkdown renders the holdings report.
func HoldingsMarkdown(holdings []nivesh.Holding, asOf nivesh.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Holdings as of %s", asOf))

	if len(holdings) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

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
			"Instrument", "Type", "Qty", "Avg. Buy", "Price", "Value", "Gain / Loss", "Yield", "XIRR",
		},
	}
	var invested, current nivesh.Money
	for _, h := range holdings {
		price := h.CurrentPrice.Price.String()
		if h.CurrentPrice.Fallback {
			price += " *"
		}
		table.Rows = append(table.Rows, []string{
			h.Name,
			string(h.Type),
			h.NetQuantity.String(),
			h.AverageBuyPrice.String(),
			price,
			h.CurrentValue.String(),
			h.GainLossAmount.SignedString() + " " + h.GainLossPercent.SignedString(),
			h.AnnualYield.SignedString(),
			h.XIRR.SignedString(),
		})
		invested = invested.Add(h.InvestedAmount)
		current = current.Add(h.CurrentValue)
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Invested"), md.Bold(invested.String())},
		Rows: [][]string{
			{"Current Value", current.String()},
			{"Gain / Loss", current.Sub(invested).SignedString()},
		},
	})

	if anyFallback(holdings) {
		doc.PlainText("`*` no live quote; average buy price used.")
	}
	return doc.String()
}

func anyFallback(holdings []nivesh.Holding) bool {
	for _, h := range holdings {
		if h.CurrentPrice.Fallback {
			return true
		}
	}
	return false
}
