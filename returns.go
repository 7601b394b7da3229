package nivesh

import "math"

// Return computations use a flat 365-day year. Precise day-count
// conventions are out of scope.
const daysPerYear = 365.0

// minYears floors the elapsed time at one day so a same-day valuation
// never divides by zero.
const minYears = 1.0 / daysPerYear

// AnnualizedReturn computes the compound annual growth rate, as a
// percentage, of a unit price moving from buyRate to presentRate
// between since and asOf. A non-positive buy rate is undefined and
// yields 0 rather than a division by zero.
func AnnualizedReturn(buyRate, presentRate float64, since, asOf Date) Percent {
	if buyRate <= 0 || presentRate <= 0 {
		return 0
	}
	years := float64(since.DaysUntil(asOf)) / daysPerYear
	if years < minYears {
		years = minYears
	}
	return asPercent(math.Pow(presentRate/buyRate, 1/years) - 1)
}

// CashFlow is one dated, signed cash flow: negative for outflows
// (buys), positive for inflows (the terminal valuation).
type CashFlow struct {
	Date   Date
	Amount float64
}

// xirr solver budget and tolerances.
const (
	xirrGuess      = 0.1
	xirrIterations = 100
	xirrTolerance  = 1e-6
)

// XIRR solves for the annualized money-weighted rate of return, as a
// percentage, of a series of irregularly dated cash flows: the rate r
// such that Σ amountᵢ/(1+r)^yearsᵢ = 0, with yearsᵢ measured from the
// earliest flow.
//
// The solver is Newton-Raphson with a fixed iteration budget. When the
// derivative flattens out before |NPV| converges, the last estimate
// reached is returned rather than looping to completion and falsely
// reporting convergence. Degenerate inputs (fewer than two flows, no
// invested amount, zero elapsed time) short-circuit to 0, and a
// non-finite result is clamped to 0: NaN never reaches a caller.
func XIRR(flows []CashFlow) Percent {
	if len(flows) < 2 {
		return 0
	}
	var invested float64
	base := flows[0].Date
	span := 0
	for _, f := range flows {
		if f.Amount < 0 {
			invested -= f.Amount
		}
		if f.Date.Before(base) {
			base = f.Date
		}
	}
	for _, f := range flows {
		if d := base.DaysUntil(f.Date); d > span {
			span = d
		}
	}
	if invested == 0 || span == 0 {
		return 0
	}

	years := make([]float64, len(flows))
	for i, f := range flows {
		years[i] = float64(base.DaysUntil(f.Date)) / daysPerYear
	}

	npv := func(r float64) (value, derivative float64) {
		for i, f := range flows {
			value += f.Amount * math.Pow(1+r, -years[i])
			derivative -= f.Amount * years[i] * math.Pow(1+r, -years[i]-1)
		}
		return value, derivative
	}

	r := xirrGuess
	for i := 0; i < xirrIterations; i++ {
		value, derivative := npv(r)
		if math.Abs(value) < xirrTolerance {
			break
		}
		if math.Abs(derivative) < xirrTolerance {
			// Flat derivative: treat as non-convergence and keep the
			// best estimate reached.
			break
		}
		next := r - value/derivative
		if next <= -1 {
			// keep the discount factor positive
			next = (r - 1) / 2
		}
		r = next
	}
	return asPercent(r)
}
