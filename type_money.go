package finance

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a ledger does not say otherwise.
const DefaultCurrency = "USD"

// Money represents a monetary value, for display purposes.
//
// The ledger itself stores plain decimal amounts, the currency is a property
// of the whole ledger (see [Config]).
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the Money value for a decimal amount in a currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// IsKnownCurrency reports whether code is an ISO 4217 currency code known to the formatter.
func IsKnownCurrency(code string) bool { return money.GetCurrency(code) != nil }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	if c := money.GetCurrency(m.cur); c != nil {
		return *c
	}
	return *money.GetCurrency(DefaultCurrency)
}

// String returns the string representation of the money value, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
