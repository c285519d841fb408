package discount

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidPercent = errors.New("percentage must be greater than 0 and at most 100")
	ErrInvalidAmount  = errors.New("amount must be greater than 0")
	ErrNegativePrice  = errors.New("price cannot be negative")
)

// Money is an amount in cents. Prices display with two decimals and
// nothing finer, so cents keep the arithmetic exact.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) String() string {
	return fmt.Sprintf("$%.2f", m.Dollars())
}

// Global is the deal-wide default discount. At most one of the two forms
// is set; the zero value means no discount.
type Global struct {
	percentOff     *float64
	amountOffCents *int64
}

func NewGlobalPercentage(percentOff float64) (Global, error) {
	if percentOff <= 0 || percentOff > 100 {
		return Global{}, ErrInvalidPercent
	}
	return Global{percentOff: &percentOff}, nil
}

func NewGlobalAmount(amountOffCents int64) (Global, error) {
	if amountOffCents <= 0 {
		return Global{}, ErrInvalidAmount
	}
	return Global{amountOffCents: &amountOffCents}, nil
}

// ReconstructGlobal rebuilds a persisted config. Both fields nil means no
// discount; both set is rejected, the two forms are mutually exclusive.
func ReconstructGlobal(percentOff *float64, amountOffCents *int64) (Global, error) {
	switch {
	case percentOff != nil && amountOffCents != nil:
		return Global{}, errors.New("global discount cannot be both percentage and amount")
	case percentOff != nil:
		return NewGlobalPercentage(*percentOff)
	case amountOffCents != nil:
		return NewGlobalAmount(*amountOffCents)
	}
	return Global{}, nil
}

func (g Global) IsSet() bool {
	return g.percentOff != nil || g.amountOffCents != nil
}

func (g Global) HasPercent() bool {
	return g.percentOff != nil
}

func (g Global) HasAmount() bool {
	return g.amountOffCents != nil
}

func (g Global) PercentOff() *float64 {
	return g.percentOff
}

func (g Global) AmountOffCents() *int64 {
	return g.amountOffCents
}

// formatPercent renders 50 as "50" and 12.5 as "12.5".
func formatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}
