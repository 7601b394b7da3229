package nivesh

// buy builds a minimal valid buy trade.
func buy(day Date, name string, quantity, rate float64) Trade {
	return Trade{
		Date:     day,
		Type:     Stock,
		Name:     name,
		Side:     SideBuy,
		Quantity: Q(quantity),
		Rate:     M(rate),
	}
}

// sell builds a minimal valid sell trade.
func sell(day Date, name string, quantity, rate float64) Trade {
	t := buy(day, name, quantity, rate)
	t.Side = SideSell
	return t
}
