package nivesh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// InvestmentType is the asset class of a trade's instrument.
type InvestmentType string

const (
	Stock        InvestmentType = "stock"
	MutualFund   InvestmentType = "mutual_fund"
	Bond         InvestmentType = "bond"
	FixedDeposit InvestmentType = "fixed_deposit"
	Gold         InvestmentType = "gold"
	Silver       InvestmentType = "silver"
	NPS          InvestmentType = "nps"
	ETF          InvestmentType = "etf"
)

// InvestmentTypes lists all supported asset classes, in display order.
func InvestmentTypes() []InvestmentType {
	return []InvestmentType{Stock, MutualFund, Bond, FixedDeposit, Gold, Silver, NPS, ETF}
}

// ParseInvestmentType parses a string into an InvestmentType.
func ParseInvestmentType(s string) (InvestmentType, error) {
	t := InvestmentType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range InvestmentTypes() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown investment type: %q", s)
}

func (t InvestmentType) String() string { return string(t) }

// TradeSide tells whether a trade is a purchase or a sale.
type TradeSide string

const (
	SideBuy  TradeSide = "buy"
	SideSell TradeSide = "sell"
)

// ParseTradeSide parses a string into a TradeSide.
func ParseTradeSide(s string) (TradeSide, error) {
	switch TradeSide(strings.ToLower(strings.TrimSpace(s))) {
	case SideBuy:
		return SideBuy, nil
	case SideSell:
		return SideSell, nil
	default:
		return "", fmt.Errorf("unknown trade side: %q", s)
	}
}

// Trade is a single buy/sell event recorded in the ledger.
//
// Name doubles as the grouping key for FIFO matching, so it must be
// stable and unique per distinct instrument. Amount is always derived
// from Quantity and Rate; a caller-supplied value is never trusted.
type Trade struct {
	ID           string         `json:"id"`
	Date         Date           `json:"date"`
	Type         InvestmentType `json:"type"`
	Name         string         `json:"name"`
	ISIN         string         `json:"isin,omitempty"`
	Side         TradeSide      `json:"side"`
	Quantity     Quantity       `json:"quantity"`
	Rate         Money          `json:"rate"`   // unit price at transaction
	Amount       Money          `json:"amount"` // derived: Quantity × Rate
	Broker       string         `json:"broker,omitempty"`
	Bucket       Bucket         `json:"bucket,omitempty"`
	InterestRate float64        `json:"interestRate,omitempty"` // fixed-income types only
}

// deriveAmount recomputes the derived amount from quantity and rate.
func (t *Trade) deriveAmount() { t.Amount = t.Rate.Mul(t.Quantity) }

// dirty reports whether the record is unusable for analytics. Dirty
// historical rows are excluded from computation, never rejected.
func (t Trade) dirty() bool {
	return strings.TrimSpace(t.Name) == "" || !t.Quantity.IsPositive() || !t.Rate.IsPositive()
}

// Validate checks a trade for correctness and applies quick fixes where
// applicable (a missing date becomes today, a missing ID is generated,
// the amount is rederived). It returns the validated (and potentially
// modified) trade or an error detailing the validation failure.
func (t Trade) Validate() (Trade, error) {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return t, errors.New("instrument name is missing")
	}
	if _, err := ParseInvestmentType(string(t.Type)); err != nil {
		return t, err
	}
	if _, err := ParseTradeSide(string(t.Side)); err != nil {
		return t, err
	}
	if !t.Quantity.IsPositive() {
		return t, fmt.Errorf("quantity must be positive, got %s", t.Quantity)
	}
	if !t.Rate.IsPositive() {
		return t, fmt.Errorf("rate must be positive, got %s", t.Rate)
	}
	t.ISIN = strings.ToUpper(strings.TrimSpace(t.ISIN))
	if t.Type == MutualFund {
		if t.ISIN == "" {
			return t, errors.New("ISIN is required for mutual funds")
		}
		if err := ValidateISIN(t.ISIN); err != nil {
			return t, err
		}
	}
	if t.InterestRate < 0 {
		return t, fmt.Errorf("interest rate cannot be negative, got %v", t.InterestRate)
	}
	t.deriveAmount()
	return t, nil
}

// ValidateISIN checks the structure and check digit of an ISIN
// (ISO 6166): 2 letters, 9 alphanumerics, 1 Luhn check digit.
func ValidateISIN(isin string) error {
	if len(isin) != 12 {
		return fmt.Errorf("ISIN %q must be 12 characters", isin)
	}
	for i := 0; i < 2; i++ {
		if isin[i] < 'A' || isin[i] > 'Z' {
			return fmt.Errorf("ISIN %q must start with a two-letter country code", isin)
		}
	}
	// Expand letters to digits (A=10 … Z=35), then Luhn over the digit string.
	var digits []int
	for _, r := range isin {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r >= 'A' && r <= 'Z':
			v := int(r-'A') + 10
			digits = append(digits, v/10, v%10)
		default:
			return fmt.Errorf("ISIN %q contains an invalid character %q", isin, r)
		}
	}
	sum, double := 0, true
	for i := len(digits) - 2; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	check := (10 - sum%10) % 10
	if check != digits[len(digits)-1] {
		return fmt.Errorf("ISIN %q has an invalid check digit", isin)
	}
	return nil
}
