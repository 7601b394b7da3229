package nivesh

import (
	"testing"
	"time"
)

func TestValueTrades(t *testing.T) {
	l := NewLedger()
	jan := NewDate(2024, time.January, 1)
	if _, err := l.Add(buy(jan, "RELIANCE", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := l.Add(sell(NewDate(2024, time.February, 1), "RELIANCE", 5, 140)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := l.Add(buy(NewDate(2024, time.July, 1), "RELIANCE", 10, 120)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	asOf := NewDate(2024, time.June, 1)
	lookup := FixedPrices(map[string]Money{"RELIANCE": M(150)})
	valued := ValueTrades(l, lookup, asOf)

	// The sell and the post-asOf buy are excluded.
	if len(valued) != 1 {
		t.Fatalf("len(valued) = %d, want 1", len(valued))
	}
	v := valued[0]
	if !v.PresentRate.Equal(M(150)) {
		t.Errorf("PresentRate = %v, want 150", v.PresentRate)
	}
	if !v.PresentAmount.Equal(M(1500)) {
		t.Errorf("PresentAmount = %v, want 1500", v.PresentAmount)
	}
	if !v.ProfitAmount.Equal(M(500)) {
		t.Errorf("ProfitAmount = %v, want 500", v.ProfitAmount)
	}
	if !v.ProfitPercent.Equal(50) {
		t.Errorf("ProfitPercent = %v, want 50", v.ProfitPercent)
	}
	if v.PriceFallback {
		t.Error("PriceFallback = true, want live quote")
	}
}

func TestValueTradesFallback(t *testing.T) {
	l := NewLedger()
	if _, err := l.Add(buy(NewDate(2024, time.January, 1), "UNLISTED", 10, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	valued := ValueTrades(l, NoPrices, NewDate(2024, time.June, 1))
	if len(valued) != 1 {
		t.Fatalf("len(valued) = %d, want 1", len(valued))
	}
	v := valued[0]
	if !v.PriceFallback {
		t.Error("PriceFallback = false, want fallback")
	}
	if !v.PresentRate.Equal(M(100)) {
		t.Errorf("PresentRate = %v, want own buy rate 100", v.PresentRate)
	}
	if !v.ProfitPercent.Equal(0) {
		t.Errorf("ProfitPercent = %v, want 0", v.ProfitPercent)
	}
}

func TestComposeSummary(t *testing.T) {
	l := NewLedger()
	jan := NewDate(2024, time.January, 1)

	winner := buy(jan, "WINNER", 10, 100)
	steady := buy(jan, "STEADY", 10, 100)
	steady.Type = Gold
	loser := buy(jan, "LOSER", 10, 100)
	loser.Type = ETF
	for _, tr := range []Trade{winner, steady, loser} {
		if _, err := l.Add(tr); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	asOf := NewDate(2024, time.June, 1)
	lookup := FixedPrices(map[string]Money{
		"WINNER": M(150), // +50%
		"STEADY": M(120), // +20%
		"LOSER":  M(90),  // -10%
	})
	s := ComposeSummary(ValueTrades(l, lookup, asOf), asOf)

	if !s.TotalInvestment.Equal(M(3000)) {
		t.Errorf("TotalInvestment = %v, want 3000", s.TotalInvestment)
	}
	if !s.CurrentValue.Equal(M(3600)) {
		t.Errorf("CurrentValue = %v, want 3600", s.CurrentValue)
	}
	if !s.TotalProfit.Equal(M(600)) {
		t.Errorf("TotalProfit = %v, want 600", s.TotalProfit)
	}
	if !s.TotalProfitPercent.Equal(20) {
		t.Errorf("TotalProfitPercent = %v, want 20", s.TotalProfitPercent)
	}

	if !s.AssetAllocation[Stock].Equal(M(1500)) {
		t.Errorf("AssetAllocation[stock] = %v, want 1500", s.AssetAllocation[Stock])
	}
	if !s.AssetAllocation[Gold].Equal(M(1200)) {
		t.Errorf("AssetAllocation[gold] = %v, want 1200", s.AssetAllocation[Gold])
	}
	if !s.AssetAllocation[ETF].Equal(M(900)) {
		t.Errorf("AssetAllocation[etf] = %v, want 900", s.AssetAllocation[ETF])
	}

	if len(s.TopPerformers) != 3 {
		t.Fatalf("len(TopPerformers) = %d, want 3", len(s.TopPerformers))
	}
	if s.TopPerformers[0].Name != "WINNER" {
		t.Errorf("TopPerformers[0] = %q, want WINNER", s.TopPerformers[0].Name)
	}
	// The single worst trade leads the bottom list.
	if s.BottomPerformers[0].Name != "LOSER" {
		t.Errorf("BottomPerformers[0] = %q, want LOSER", s.BottomPerformers[0].Name)
	}
	if s.BottomPerformers[2].Name != "WINNER" {
		t.Errorf("BottomPerformers[2] = %q, want WINNER", s.BottomPerformers[2].Name)
	}
}

func TestComposeSummaryPerformersCap(t *testing.T) {
	l := NewLedger()
	jan := NewDate(2024, time.January, 1)
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	prices := make(map[string]Money, len(names))
	for i, name := range names {
		if _, err := l.Add(buy(jan, name, 1, 100)); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		prices[name] = M(float64(100 + 10*i)) // A flat, G best
	}

	asOf := NewDate(2024, time.June, 1)
	s := ComposeSummary(ValueTrades(l, FixedPrices(prices), asOf), asOf)

	if len(s.TopPerformers) != 5 {
		t.Errorf("len(TopPerformers) = %d, want 5", len(s.TopPerformers))
	}
	if len(s.BottomPerformers) != 5 {
		t.Errorf("len(BottomPerformers) = %d, want 5", len(s.BottomPerformers))
	}
	if s.TopPerformers[0].Name != "G" {
		t.Errorf("TopPerformers[0] = %q, want G", s.TopPerformers[0].Name)
	}
	if s.BottomPerformers[0].Name != "A" {
		t.Errorf("BottomPerformers[0] = %q, want A", s.BottomPerformers[0].Name)
	}
}

func TestComposeSummaryEmpty(t *testing.T) {
	asOf := NewDate(2024, time.June, 1)
	s := ComposeSummary(nil, asOf)

	if !s.TotalInvestment.IsZero() || !s.CurrentValue.IsZero() || !s.TotalProfit.IsZero() {
		t.Errorf("empty summary totals = %v/%v/%v, want zeros", s.TotalInvestment, s.CurrentValue, s.TotalProfit)
	}
	if !s.TotalProfitPercent.Equal(0) || !s.XIRR.Equal(0) || !s.TotalAnnualizedReturn.Equal(0) {
		t.Errorf("empty summary rates = %v/%v/%v, want zeros", s.TotalProfitPercent, s.XIRR, s.TotalAnnualizedReturn)
	}
	if len(s.TopPerformers) != 0 || len(s.BottomPerformers) != 0 {
		t.Errorf("empty summary performers = %d/%d, want none", len(s.TopPerformers), len(s.BottomPerformers))
	}
}

func TestComposeSummaryXIRR(t *testing.T) {
	l := NewLedger()
	if _, err := l.Add(buy(NewDate(2024, time.January, 1), "NIFTYBEES", 100, 100)); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	asOf := NewDate(2024, time.December, 31)
	lookup := FixedPrices(map[string]Money{"NIFTYBEES": M(110)})
	s := ComposeSummary(ValueTrades(l, lookup, asOf), asOf)

	if want := Percent(10); !s.XIRR.Equal(want) {
		t.Errorf("XIRR = %v, want %v", s.XIRR, want)
	}
}
