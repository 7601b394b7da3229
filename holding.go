package nivesh

import "sort"

// Holding is the net, currently-open position in one instrument,
// derived from all its trades. Holdings are recomputed in full from the
// ledger and a price lookup on every read; they are never mutated
// incrementally.
type Holding struct {
	Name   string
	Type   InvestmentType
	Bucket Bucket

	NetQuantity     Quantity
	AverageBuyPrice Money
	InvestedAmount  Money // cost basis of currently-open lots only
	FirstBuy        Date

	CurrentPrice PricedValue
	CurrentValue Money

	GainLossAmount  Money
	GainLossPercent Percent
	AnnualYield     Percent // CAGR since first buy
	XIRR            Percent // money-weighted, buy flows + terminal valuation
}

// ComputeHoldings turns the ledger into per-instrument holdings using
// FIFO lot matching, valued with the given price lookup as of the given
// date.
//
// Trades with a blank name or non-positive quantity/rate are excluded.
// A sell consumes open lots oldest-first, reducing the invested amount
// by the consumed lots' cost; a sell with no remaining lots still
// reduces the net quantity (oversell is tolerated, not rejected; the
// resulting non-positive position simply is not emitted). A holding is
// emitted only when both net quantity and invested amount are positive.
// The result is sorted by current value, descending.
func ComputeHoldings(l *Ledger, lookup PriceLookup, asOf Date) []Holding {
	type position struct {
		inst     Instrument
		lots     lotQueue
		net      Quantity
		invested Money
		firstBuy Date
		buys     []CashFlow
	}

	var order []string
	byName := make(map[string]*position)

	for _, t := range l.Trades() {
		if t.dirty() || t.Date.After(asOf) {
			continue
		}
		p, ok := byName[t.Name]
		if !ok {
			p = &position{inst: Instrument{Name: t.Name, Type: t.Type, ISIN: t.ISIN}}
			byName[t.Name] = p
			order = append(order, t.Name)
		}
		switch t.Side {
		case SideBuy:
			p.lots = p.lots.push(t.Date, t.Quantity, t.Rate)
			p.net = p.net.Add(t.Quantity)
			p.invested = p.invested.Add(t.Amount)
			if p.firstBuy.IsZero() || t.Date.Before(p.firstBuy) {
				p.firstBuy = t.Date
			}
			p.buys = append(p.buys, CashFlow{Date: t.Date, Amount: -t.Amount.AsFloat()})
		case SideSell:
			var cost Money
			p.lots, cost = p.lots.consume(t.Quantity)
			p.invested = p.invested.Sub(cost)
			p.net = p.net.Sub(t.Quantity)
		}
	}

	holdings := make([]Holding, 0, len(order))
	for _, name := range order {
		p := byName[name]
		if !p.net.IsPositive() || !p.invested.IsPositive() {
			continue
		}

		h := Holding{
			Name:            name,
			Type:            p.inst.Type,
			Bucket:          l.BucketFor(name),
			NetQuantity:     p.net,
			InvestedAmount:  p.invested,
			AverageBuyPrice: p.invested.Div(p.net),
			FirstBuy:        p.firstBuy,
		}

		if price, ok := lookup(name, p.inst.Type); ok && price.IsPositive() {
			h.CurrentPrice = PricedValue{Price: price}
		} else {
			h.CurrentPrice = PricedValue{Price: h.AverageBuyPrice, Fallback: true}
		}
		h.CurrentValue = h.CurrentPrice.Price.Mul(p.net)
		h.GainLossAmount = h.CurrentValue.Sub(p.invested)
		h.GainLossPercent = asPercent(h.GainLossAmount.AsFloat() / p.invested.AsFloat())
		h.AnnualYield = AnnualizedReturn(h.AverageBuyPrice.AsFloat(), h.CurrentPrice.Price.AsFloat(), p.firstBuy, asOf)
		h.XIRR = XIRR(append(p.buys, CashFlow{Date: asOf, Amount: h.CurrentValue.AsFloat()}))

		holdings = append(holdings, h)
	}

	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].CurrentValue.GreaterThan(holdings[j].CurrentValue)
	})
	return holdings
}
