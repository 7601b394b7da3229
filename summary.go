package nivesh

import "sort"

// ValuedTrade is a buy trade enriched with its present valuation, the
// raw material of the portfolio summary.
type ValuedTrade struct {
	Trade

	PresentRate      Money
	PresentAmount    Money
	ProfitAmount     Money
	ProfitPercent    Percent
	AnnualizedReturn Percent
	PriceFallback    bool
}

// ValueTrades runs the real-time valuation pass over the filtered view
// of the ledger: every clean buy trade gets its present rate (falling
// back to its own buy rate when no quote resolves), present amount,
// profit and annualized return, as of the given date.
func ValueTrades(l *Ledger, lookup PriceLookup, asOf Date, filters ...func(Trade) bool) []ValuedTrade {
	var out []ValuedTrade
	for _, t := range l.Trades(filters...) {
		if t.dirty() || t.Side != SideBuy || t.Date.After(asOf) {
			continue
		}
		v := ValuedTrade{Trade: t}
		if price, ok := lookup(t.Name, t.Type); ok && price.IsPositive() {
			v.PresentRate = price
		} else {
			v.PresentRate = t.Rate
			v.PriceFallback = true
		}
		v.PresentAmount = v.PresentRate.Mul(t.Quantity)
		v.ProfitAmount = v.PresentAmount.Sub(t.Amount)
		v.ProfitPercent = asPercent(v.ProfitAmount.AsFloat() / t.Amount.AsFloat())
		v.AnnualizedReturn = AnnualizedReturn(t.Rate.AsFloat(), v.PresentRate.AsFloat(), t.Date, asOf)
		out = append(out, v)
	}
	return out
}

// Summary is the portfolio-wide view over a filtered trade set.
type Summary struct {
	Date Date

	TotalInvestment    Money
	CurrentValue       Money
	TotalProfit        Money
	TotalProfitPercent Percent

	// TotalAnnualizedReturn is the simple average of the per-trade
	// annualized returns; XIRR is a single money-weighted rate over all
	// the buy flows plus one terminal valuation flow.
	TotalAnnualizedReturn Percent
	XIRR                  Percent

	AssetAllocation map[InvestmentType]Money

	TopPerformers    []ValuedTrade // 5 trades, best profit percent first
	BottomPerformers []ValuedTrade // 5 trades, worst profit percent first
}

const performersCount = 5

// ComposeSummary combines valued trades into the portfolio summary as
// of the given date. An empty view yields a zero summary; every ratio
// is guarded so NaN never appears in the result.
func ComposeSummary(valued []ValuedTrade, asOf Date) Summary {
	s := Summary{
		Date:            asOf,
		AssetAllocation: make(map[InvestmentType]Money),
	}

	flows := make([]CashFlow, 0, len(valued)+1)
	var annualizedSum float64
	for _, v := range valued {
		s.TotalInvestment = s.TotalInvestment.Add(v.Amount)
		s.CurrentValue = s.CurrentValue.Add(v.PresentAmount)
		s.AssetAllocation[v.Type] = s.AssetAllocation[v.Type].Add(v.PresentAmount)
		annualizedSum += float64(v.AnnualizedReturn)
		flows = append(flows, CashFlow{Date: v.Date, Amount: -v.Amount.AsFloat()})
	}
	s.TotalProfit = s.CurrentValue.Sub(s.TotalInvestment)
	if s.TotalInvestment.IsPositive() {
		s.TotalProfitPercent = asPercent(s.TotalProfit.AsFloat() / s.TotalInvestment.AsFloat())
	}
	if len(valued) > 0 {
		s.TotalAnnualizedReturn = clampPercent(annualizedSum / float64(len(valued)))
		flows = append(flows, CashFlow{Date: asOf, Amount: s.CurrentValue.AsFloat()})
		s.XIRR = XIRR(flows)
	}

	// Rank by profit percent, best first. The sort is stable so
	// same-profit trades keep their ledger order.
	ranked := make([]ValuedTrade, len(valued))
	copy(ranked, valued)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ProfitPercent > ranked[j].ProfitPercent
	})

	n := performersCount
	if n > len(ranked) {
		n = len(ranked)
	}
	s.TopPerformers = append([]ValuedTrade(nil), ranked[:n]...)
	// Bottom performers are the tail reversed: BottomPerformers[0] is
	// the single worst trade, not the 5th-worst.
	for i := len(ranked) - 1; i >= len(ranked)-n; i-- {
		s.BottomPerformers = append(s.BottomPerformers, ranked[i])
	}
	return s
}
