// Package nivesh provides the analytics engine for a personal
// investment-portfolio dashboard. Users record buy/sell trades; the
// engine groups them into holdings using FIFO lot matching, computes
// money-weighted returns (XIRR) and annualized returns, and tracks
// progress against savings buckets (goal buckets with target amounts).
//
// The core functionalities include:
//   - Trade Ledger: an ordered record of buy/sell trades with derived
//     amounts recomputed on every mutation.
//   - Lot Matching: converting the ledger into per-instrument holdings
//     by matching sells against the oldest open buy lots first.
//   - Return Calculation: CAGR and XIRR over irregularly dated cash
//     flows, solved by Newton-Raphson iteration.
//   - Bucket Aggregation: mapping holdings to goal buckets and
//     computing progress, shortfall and value-weighted returns.
//   - Summary Composition: portfolio-wide totals, asset allocation and
//     top/bottom performers over a filtered trade view.
//
// Every computation is a pure function of (trades, prices,
// configuration) and is recomputed in full on demand, in O(trades) per
// call. Nothing is updated incrementally: editing or deleting a trade
// out of chronological order can never leave stale derived state
// behind. Prices come from an injected lookup; a missing price degrades
// to the position's average buy price, never to an error.
//
// This package serves as the foundational logic for the `nivesh`
// command-line tool.
package nivesh
