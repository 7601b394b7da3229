package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/anantk/nivesh"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parse parses the generated markdown with the GFM table extension and
// returns the heading texts and the number of tables. Reports that do
// not parse back are broken reports.
func parse(t *testing.T, source string) (headings []string, tables int) {
	t.Helper()
	content := []byte(source)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(content))

	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			var sb strings.Builder
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(content))
				}
			}
			headings = append(headings, sb.String())
		case *east.Table:
			tables++
		}
		return ast.WalkContinue, nil
	})
	return headings, tables
}

func testHoldings() []nivesh.Holding {
	return []nivesh.Holding{
		{
			Name:            "RELIANCE",
			Type:            nivesh.Stock,
			Bucket:          nivesh.Bucket1A,
			NetQuantity:     nivesh.Q(40),
			AverageBuyPrice: nivesh.M(2475),
			InvestedAmount:  nivesh.M(99000),
			FirstBuy:        nivesh.NewDate(2024, time.January, 15),
			CurrentPrice:    nivesh.PricedValue{Price: nivesh.M(2600)},
			CurrentValue:    nivesh.M(104000),
			GainLossAmount:  nivesh.M(5000),
			GainLossPercent: 5.05,
		},
		{
			Name:            "SGB 2031",
			Type:            nivesh.Gold,
			NetQuantity:     nivesh.Q(10),
			AverageBuyPrice: nivesh.M(6000),
			InvestedAmount:  nivesh.M(60000),
			CurrentPrice:    nivesh.PricedValue{Price: nivesh.M(6000), Fallback: true},
			CurrentValue:    nivesh.M(60000),
		},
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	asOf := nivesh.NewDate(2024, time.June, 1)
	out := HoldingsMarkdown(testHoldings(), asOf)

	headings, tables := parse(t, out)
	if len(headings) != 1 || !strings.Contains(headings[0], "2024-06-01") {
		t.Errorf("headings = %v, want one heading carrying the date", headings)
	}
	if tables != 2 {
		t.Errorf("tables = %d, want holdings table and totals table", tables)
	}
	if !strings.Contains(out, "RELIANCE") {
		t.Error("output misses the instrument name")
	}
	// The fallback price is starred and explained.
	if !strings.Contains(out, "*") || !strings.Contains(out, "average buy price") {
		t.Error("output misses the fallback price footnote")
	}
}

func TestHoldingsMarkdownEmpty(t *testing.T) {
	out := HoldingsMarkdown(nil, nivesh.NewDate(2024, time.June, 1))
	if !strings.Contains(out, "No open positions.") {
		t.Errorf("empty output = %q, want the no-positions notice", out)
	}
}

func TestBucketsMarkdown(t *testing.T) {
	cfg := nivesh.NewBucketConfig()
	if err := cfg.SetTarget(nivesh.Bucket1A, nivesh.M(100000)); err != nil {
		t.Fatalf("SetTarget() error = %v", err)
	}
	summaries := nivesh.SummarizeBuckets(testHoldings(), cfg)
	out := BucketsMarkdown(summaries)

	headings, tables := parse(t, out)
	if len(headings) != 1 || headings[0] != "Savings Buckets" {
		t.Errorf("headings = %v, want [Savings Buckets]", headings)
	}
	if tables != 1 {
		t.Errorf("tables = %d, want 1", tables)
	}
	// Every configured bucket is a row, even the empty ones.
	for _, b := range nivesh.Buckets() {
		if !strings.Contains(out, string(b)) {
			t.Errorf("output misses bucket %s", b)
		}
	}
	if !strings.Contains(out, "Emergency fund") {
		t.Error("output misses the fixed bucket2 purpose")
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := nivesh.Summary{
		Date:               nivesh.NewDate(2024, time.June, 1),
		TotalInvestment:    nivesh.M(3000),
		CurrentValue:       nivesh.M(3600),
		TotalProfit:        nivesh.M(600),
		TotalProfitPercent: 20,
		AssetAllocation: map[nivesh.InvestmentType]nivesh.Money{
			nivesh.Stock: nivesh.M(1500),
			nivesh.Gold:  nivesh.M(2100),
		},
		TopPerformers: []nivesh.ValuedTrade{{
			Trade:         nivesh.Trade{Name: "WINNER", Date: nivesh.NewDate(2024, time.January, 1), Amount: nivesh.M(1000)},
			PresentAmount: nivesh.M(1500),
			ProfitPercent: 50,
		}},
		BottomPerformers: []nivesh.ValuedTrade{{
			Trade:         nivesh.Trade{Name: "LOSER", Date: nivesh.NewDate(2024, time.January, 1), Amount: nivesh.M(1000)},
			PresentAmount: nivesh.M(900),
			ProfitPercent: -10,
		}},
	}

	out := SummaryMarkdown(&s)
	headings, tables := parse(t, out)

	want := []string{"Portfolio Summary", "Asset Allocation", "Top Performers", "Bottom Performers"}
	if len(headings) != len(want) {
		t.Fatalf("headings = %v, want %v", headings, want)
	}
	for i := range want {
		if headings[i] != want[i] {
			t.Errorf("headings[%d] = %q, want %q", i, headings[i], want[i])
		}
	}
	if tables != 4 {
		t.Errorf("tables = %d, want 4", tables)
	}
	if !strings.Contains(out, "WINNER") || !strings.Contains(out, "LOSER") {
		t.Error("output misses the performers")
	}
}

func TestTradesMarkdown(t *testing.T) {
	trades := []nivesh.Trade{
		{
			Date:     nivesh.NewDate(2024, time.January, 15),
			Type:     nivesh.Stock,
			Name:     "RELIANCE",
			Side:     nivesh.SideBuy,
			Quantity: nivesh.Q(50),
			Rate:     nivesh.M(2400),
			Amount:   nivesh.M(120000),
			Bucket:   nivesh.Bucket1A,
		},
	}
	out := TradesMarkdown(trades)

	headings, tables := parse(t, out)
	if len(headings) != 1 || headings[0] != "Trades (1)" {
		t.Errorf("headings = %v, want [Trades (1)]", headings)
	}
	if tables != 1 {
		t.Errorf("tables = %d, want 1", tables)
	}
	if !strings.Contains(out, "2024-01-15") || !strings.Contains(out, "bucket1a") {
		t.Error("output misses trade fields")
	}

	if empty := TradesMarkdown(nil); !strings.Contains(empty, "No trades match.") {
		t.Errorf("empty output = %q, want the no-trades notice", empty)
	}
}
