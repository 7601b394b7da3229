// Package quotes fetches current prices for Indian market instruments:
// NSE-listed stocks and ETFs from the Yahoo chart endpoint, mutual fund
// NAVs from the daily AMFI dump, and gold/silver spot prices. It
// implements the engine's price-oracle contract; asset classes with no
// public quote (bonds, fixed deposits, NPS) report ErrNoQuote and the
// engine falls back to average cost.
package quotes

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/anantk/nivesh"
)

// ErrNoQuote is returned for asset classes that have no public quote.
var ErrNoQuote = errors.New("no public quote for this instrument")

// Client resolves quotes from public endpoints. The mutual fund NAV
// dump is disk-cached per day; intraday endpoints use a plain client.
type Client struct {
	intraday *http.Client
	dump     *http.Client
}

// NewClient creates a quote client.
func NewClient() *Client {
	return &Client{intraday: new(http.Client), dump: daily()}
}

// Quote implements nivesh.Quoter.
func (c *Client) Quote(ctx context.Context, inst nivesh.Instrument) (float64, error) {
	switch inst.Type {
	case nivesh.Stock, nivesh.ETF:
		return c.yahooLatest(ctx, inst.Name)
	case nivesh.MutualFund:
		return c.amfiNAV(ctx, inst.ISIN)
	case nivesh.Gold:
		return c.metalSpot(ctx, "XAU")
	case nivesh.Silver:
		return c.metalSpot(ctx, "XAG")
	default:
		return math.NaN(), fmt.Errorf("%s: %w", inst.Name, ErrNoQuote)
	}
}

// yahooSymbol maps an instrument name to a Yahoo chart symbol: spaces
// stripped, NSE suffix appended unless the name already carries one.
func yahooSymbol(name string) string {
	sym := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if !strings.Contains(sym, ".") {
		sym += ".NS"
	}
	return sym
}

// yahooLatest returns the regular market price from the Yahoo chart
// endpoint.
func (c *Client) yahooLatest(ctx context.Context, name string) (float64, error) {
	addr := "https://query1.finance.yahoo.com/v8/finance/chart/" + yahooSymbol(name) + "?interval=1d&range=1d"
	var jobj any
	if err := jwget(ctx, c.intraday, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", name, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", name, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok || val <= 0 {
		return math.NaN(), fmt.Errorf("no usable price for %q: %v", name, jval)
	}
	return val, nil
}

// metalSpot returns the spot price of a metal (XAU or XAG) from the
// gold-api endpoint.
func (c *Client) metalSpot(ctx context.Context, symbol string) (float64, error) {
	var out struct {
		Price float64 `json:"price"`
	}
	if err := jwget(ctx, c.intraday, "https://api.gold-api.com/price/"+symbol, &out); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %s spot: %w", symbol, err)
	}
	if out.Price <= 0 {
		return math.NaN(), fmt.Errorf("empty spot price for %s", symbol)
	}
	return out.Price, nil
}
