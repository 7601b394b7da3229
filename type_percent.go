package nivesh

import (
	"fmt"
	"math"
)

// Percent is a percentage value, e.g. 5.0 for 5%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := float64(p - q)
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// asPercent converts a ratio to a Percent, clamping NaN and infinities
// to zero so a numeric edge case never reaches a result object.
func asPercent(ratio float64) Percent {
	return clampPercent(ratio * 100)
}

// clampPercent guards an already-scaled percentage value the same way.
func clampPercent(v float64) Percent {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Percent(v)
}
