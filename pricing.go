package nivesh

import (
	"context"
	"log"
	"sync"
	"time"
)

// Instrument identifies one priceable position: the display name used
// as grouping key, plus what the oracle needs to find a quote.
type Instrument struct {
	Name string
	Type InvestmentType
	ISIN string
}

// PricedValue is a resolved price with an explicit provenance flag, so
// callers can tell a real quote from an average-cost fallback instead
// of relying on incidental zero checks.
type PricedValue struct {
	Price    Money
	Fallback bool
}

// PriceLookup resolves the current unit price of an instrument. The
// second return value is false when no quote could be resolved; the
// engine then falls back to the position's average buy price.
//
// Lookups must never block a computation and never fail it: returning
// (zero, false) is the worst they can do.
type PriceLookup func(name string, typ InvestmentType) (Money, bool)

// NoPrices is a PriceLookup that resolves nothing; every position falls
// back to its average buy price.
func NoPrices(string, InvestmentType) (Money, bool) { return Money{}, false }

// FixedPrices returns a PriceLookup backed by a static map, keyed by
// instrument name. Used in tests and offline runs.
func FixedPrices(prices map[string]Money) PriceLookup {
	return func(name string, _ InvestmentType) (Money, bool) {
		m, ok := prices[name]
		return m, ok && m.IsPositive()
	}
}

// Quoter is the external price oracle. Implementations fetch from
// vendor APIs and may be slow; the engine only ever talks to one
// through a QuoteCache.
type Quoter interface {
	Quote(ctx context.Context, inst Instrument) (float64, error)
}

// Indian market hours, used for the cache expiry policy.
var istZone = time.FixedZone("IST", 5*3600+30*60)

const (
	marketOpenMinute  = 9*60 + 15  // 09:15 IST
	marketCloseMinute = 15*60 + 30 // 15:30 IST
	openMarketTTL     = 5 * time.Minute
)

// marketOpen reports whether the exchange is trading at time t
// (Mon-Fri, 09:15-15:30 IST). Exchange holidays are not modelled.
func marketOpen(t time.Time) bool {
	t = t.In(istZone)
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	return minute >= marketOpenMinute && minute < marketCloseMinute
}

// quoteDeadline returns when a quote fetched at t expires: 5 minutes
// during market hours, otherwise at the next business day's open.
func quoteDeadline(t time.Time) time.Time {
	if marketOpen(t) {
		return t.Add(openMarketTTL)
	}
	next := t.In(istZone)
	for {
		next = time.Date(next.Year(), next.Month(), next.Day()+1, 9, 15, 0, 0, istZone)
		if next.Weekday() != time.Saturday && next.Weekday() != time.Sunday {
			break
		}
	}
	return next
}

type quoteEntry struct {
	price   float64
	expires time.Time
}

// QuoteCache wraps a Quoter with a TTL cache. A quote fetched during
// market hours is fresh for five minutes; a quote fetched off-hours
// holds until the next business day. When a fetch fails, the last
// cached value is served even if expired: a stale price beats no price.
type QuoteCache struct {
	quoter Quoter
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]quoteEntry
}

// NewQuoteCache creates a cache in front of a Quoter.
func NewQuoteCache(q Quoter) *QuoteCache {
	return &QuoteCache{
		quoter:  q,
		now:     time.Now,
		entries: make(map[string]quoteEntry),
	}
}

// Price returns the current price of an instrument, from cache when
// fresh, fetching otherwise. The boolean is false when no price at all
// could be resolved.
func (c *QuoteCache) Price(ctx context.Context, inst Instrument) (float64, bool) {
	now := c.now()

	c.mu.Lock()
	entry, cached := c.entries[inst.Name]
	c.mu.Unlock()

	if cached && now.Before(entry.expires) {
		return entry.price, true
	}

	price, err := c.quoter.Quote(ctx, inst)
	if err != nil || price <= 0 {
		if err != nil {
			log.Printf("quote %s: %v", inst.Name, err)
		}
		if cached {
			// serve the stale value rather than nothing
			return entry.price, true
		}
		return 0, false
	}

	c.mu.Lock()
	c.entries[inst.Name] = quoteEntry{price: price, expires: quoteDeadline(now)}
	c.mu.Unlock()
	return price, true
}

// Refresh walks the instruments in fixed-size batches with a pause
// between batches, warming the cache while respecting upstream rate
// limits. It returns the number of instruments that resolved a price.
func (c *QuoteCache) Refresh(ctx context.Context, instruments []Instrument, batchSize int, pause time.Duration) int {
	if batchSize <= 0 {
		batchSize = 5
	}
	resolved := 0
	for i, inst := range instruments {
		if i > 0 && i%batchSize == 0 {
			select {
			case <-ctx.Done():
				return resolved
			case <-time.After(pause):
			}
		}
		if _, ok := c.Price(ctx, inst); ok {
			resolved++
		}
	}
	return resolved
}

// Lookup adapts the cache to the engine's PriceLookup contract,
// resolving each name's ISIN from the ledger's instrument table.
func (c *QuoteCache) Lookup(ctx context.Context, l *Ledger) PriceLookup {
	byName := make(map[string]Instrument)
	for _, inst := range l.Instruments() {
		byName[inst.Name] = inst
	}
	return func(name string, typ InvestmentType) (Money, bool) {
		inst, ok := byName[name]
		if !ok {
			inst = Instrument{Name: name, Type: typ}
		}
		price, ok := c.Price(ctx, inst)
		if !ok || price <= 0 {
			return Money{}, false
		}
		return M(price), true
	}
}
