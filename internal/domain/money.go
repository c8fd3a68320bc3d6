package domain

import "github.com/shopspring/decimal"

// Currency is an ISO 4217 code for one of the currencies customers trade in.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// ReportingCurrency is the single currency every aggregate is normalized into.
const ReportingCurrency = CurrencyINR

// Currencies lists every currency the system accepts.
func Currencies() []Currency {
	return []Currency{CurrencyINR, CurrencyUSD, CurrencyEUR}
}

// Valid reports whether c is one of the known currency codes.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyINR, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Money is an immutable amount in a specific currency. Amounts in different
// currencies must never be added directly; they go through the currency
// converter first.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney creates a Money value.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency Currency) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}
