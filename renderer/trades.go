package renderer

import (
	"bytes"
	"fmt"

	"github.com/anantk/nivesh"
	md "github.com/nao1215/markdown"
)

// TradesMarkdown renders a filtered trade listing.
func TradesMarkdown(trades []nivesh.Trade) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Trades (%d)", len(trades)))

	if len(trades) == 0 {
		doc.PlainText("No trades match.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "Side", "Instrument", "Type", "Qty", "Rate", "Amount", "Bucket"},
	}
	for _, t := range trades {
		table.Rows = append(table.Rows, []string{
			t.Date.String(),
			string(t.Side),
			t.Name,
			string(t.Type),
			t.Quantity.String(),
			t.Rate.String(),
			t.Amount.String(),
			string(t.Bucket),
		})
	}
	doc.Table(table)
	return doc.String()
}
