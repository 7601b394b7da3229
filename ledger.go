package nivesh

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// Ledger represents the ordered list of recorded trades.
//
// Trades are kept in chronological order; trades on the same day keep
// their insertion order. That tie-break matters: FIFO lot matching is
// order-sensitive.
type Ledger struct {
	trades []Trade
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{trades: make([]Trade, 0)}
}

// Len returns the number of trades in the ledger.
func (l *Ledger) Len() int { return len(l.trades) }

// Get returns the trade with the given id.
func (l *Ledger) Get(id string) (Trade, bool) {
	for _, t := range l.trades {
		if t.ID == id {
			return t, true
		}
	}
	return Trade{}, false
}

// Add validates a trade, rederives its amount, and appends it to the
// ledger, maintaining chronological order.
func (l *Ledger) Add(t Trade) (Trade, error) {
	t, err := t.Validate()
	if err != nil {
		return t, fmt.Errorf("invalid %s trade on %v: %w", t.Side, t.Date, err)
	}
	if _, exists := l.Get(t.ID); exists {
		return t, fmt.Errorf("trade %s already exists", t.ID)
	}
	l.trades = append(l.trades, t)
	l.stableSort()
	return t, nil
}

// Update replaces the trade with the same id after validating it and
// rederiving its amount.
func (l *Ledger) Update(t Trade) (Trade, error) {
	if t.ID == "" {
		return t, fmt.Errorf("cannot update a trade without an id")
	}
	t, err := t.Validate()
	if err != nil {
		return t, fmt.Errorf("invalid %s trade on %v: %w", t.Side, t.Date, err)
	}
	for i, existing := range l.trades {
		if existing.ID == t.ID {
			l.trades[i] = t
			l.stableSort()
			return t, nil
		}
	}
	return t, fmt.Errorf("trade %s not found", t.ID)
}

// Delete removes the trade with the given id.
func (l *Ledger) Delete(id string) error {
	for i, existing := range l.trades {
		if existing.ID == id {
			l.trades = append(l.trades[:i], l.trades[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("trade %s not found", id)
}

// append adds trades without validation. It is used when decoding a
// persisted ledger: historical data may be dirty, and dirty rows are
// tolerated (they are excluded from analytics instead).
func (l *Ledger) append(txs ...Trade) {
	l.trades = append(l.trades, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by trade date. The sort is stable, so
// trades on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.trades, func(i, j int) bool {
		return l.trades[i].Date.Before(l.trades[j].Date)
	})
}

// Trades returns an iterator over trades, in ledger order. Filters
// compose as a conjunction; with no filters every trade is yielded.
func (l *Ledger) Trades(filters ...func(Trade) bool) iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range l.trades {
			accept := true
			for _, filter := range filters {
				if !filter(t) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// OldestTradeDate returns the date of the earliest trade in the ledger,
// or the zero date when the ledger is empty.
func (l *Ledger) OldestTradeDate() Date {
	if len(l.trades) == 0 {
		return Date{}
	}
	return l.trades[0].Date
}

// BucketFor resolves the bucket of an instrument: the tag of the first
// trade in ledger order for that name that carries one. Later trades
// for the same instrument may carry a different or empty tag; they do
// not win.
func (l *Ledger) BucketFor(name string) Bucket {
	for _, t := range l.trades {
		if t.Name == name && t.Bucket != NoBucket {
			return t.Bucket
		}
	}
	return NoBucket
}

// Instruments returns one entry per distinct instrument name, in first-
// appearance ledger order, carrying the type and ISIN of the first
// trade that declared it.
func (l *Ledger) Instruments() []Instrument {
	var out []Instrument
	seen := make(map[string]struct{})
	for _, t := range l.trades {
		if t.dirty() {
			continue
		}
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		out = append(out, Instrument{Name: t.Name, Type: t.Type, ISIN: t.ISIN})
	}
	return out
}

// ByType returns a predicate that filters trades by investment type.
func ByType(t InvestmentType) func(Trade) bool {
	return func(tr Trade) bool { return tr.Type == t }
}

// ByBucket returns a predicate that filters trades by bucket tag.
func ByBucket(b Bucket) func(Trade) bool {
	return func(tr Trade) bool { return tr.Bucket == b }
}

// BySide returns a predicate that filters trades by buy/sell side.
func BySide(s TradeSide) func(Trade) bool {
	return func(tr Trade) bool { return tr.Side == s }
}

// ByRange returns a predicate that keeps trades dated within [from, to]
// inclusive. A zero bound is open.
func ByRange(from, to Date) func(Trade) bool {
	return func(tr Trade) bool {
		if !from.IsZero() && tr.Date.Before(from) {
			return false
		}
		if !to.IsZero() && tr.Date.After(to) {
			return false
		}
		return true
	}
}

// BySearch returns a predicate that keeps trades whose name, ISIN or
// broker contains the query, case-insensitively.
func BySearch(query string) func(Trade) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(tr Trade) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(tr.Name), q) ||
			strings.Contains(strings.ToLower(tr.ISIN), q) ||
			strings.Contains(strings.ToLower(tr.Broker), q)
	}
}
