package renderer

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/anantk/nivesh"
	md "github.com/nao1215/markdown"
)

func itoa(n int) string { return strconv.Itoa(n) }

// SummaryMarkdown renders the portfolio summary report.
func SummaryMarkdown(s *nivesh.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Investment"), md.Bold(s.TotalInvestment.String())},
		Rows: [][]string{
			{"Current Value", s.CurrentValue.String()},
			{"Total Profit", s.TotalProfit.SignedString() + " " + s.TotalProfitPercent.SignedString()},
			{"Annualized Return", s.TotalAnnualizedReturn.SignedString()},
			{"XIRR", s.XIRR.SignedString()},
		},
	})

	if len(s.AssetAllocation) > 0 {
		doc.H2("Asset Allocation")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Type", "Value"},
		}
		types := make([]nivesh.InvestmentType, 0, len(s.AssetAllocation))
		for t := range s.AssetAllocation {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
		for _, t := range types {
			table.Rows = append(table.Rows, []string{string(t), s.AssetAllocation[t].String()})
		}
		doc.Table(table)
	}

	if len(s.TopPerformers) > 0 {
		doc.H2("Top Performers")
		doc.Table(performersTable(s.TopPerformers))
	}
	if len(s.BottomPerformers) > 0 {
		doc.H2("Bottom Performers")
		doc.Table(performersTable(s.BottomPerformers))
	}
	return doc.String()
}

func performersTable(trades []nivesh.ValuedTrade) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Instrument", "Date", "Invested", "Present", "Profit"},
	}
	for _, v := range trades {
		table.Rows = append(table.Rows, []string{
			v.Name,
			v.Date.String(),
			v.Amount.String(),
			v.PresentAmount.String(),
			v.ProfitPercent.SignedString(),
		})
	}
	return table
}
