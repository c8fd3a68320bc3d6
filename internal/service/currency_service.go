package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ConfigurationError reports a rate table that cannot safely be used. A table
// missing a currency, or carrying a nonpositive rate, would silently corrupt
// every aggregate built on it, so it is rejected at construction time.
type ConfigurationError struct {
	Codes  []string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("currency configuration error: %s: %s", e.Reason, strings.Join(e.Codes, ", "))
}

// DefaultRates returns the built-in exchange-rate table, expressed as
// multipliers into the reporting currency.
func DefaultRates() map[domain.Currency]decimal.Decimal {
	return map[domain.Currency]decimal.Decimal{
		domain.CurrencyINR: decimal.NewFromInt(1),
		domain.CurrencyUSD: decimal.NewFromInt(84),
		domain.CurrencyEUR: decimal.NewFromInt(92),
	}
}

// CurrencyService converts Money values into the reporting currency using a
// fixed rate table. Pure; no rounding happens until display.
type CurrencyService struct {
	rates map[domain.Currency]decimal.Decimal
}

// NewCurrencyService validates the rate table and returns a converter.
// Every known currency must have a positive rate and the reporting currency
// must convert at identity.
func NewCurrencyService(rates map[domain.Currency]decimal.Decimal) (*CurrencyService, error) {
	var missing, invalid []string
	for _, c := range domain.Currencies() {
		rate, ok := rates[c]
		if !ok {
			missing = append(missing, string(c))
			continue
		}
		if !rate.IsPositive() {
			invalid = append(invalid, string(c))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &ConfigurationError{Codes: missing, Reason: "missing rate for currency"}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, &ConfigurationError{Codes: invalid, Reason: "rate must be positive"}
	}
	if !rates[domain.ReportingCurrency].Equal(decimal.NewFromInt(1)) {
		return nil, &ConfigurationError{
			Codes:  []string{string(domain.ReportingCurrency)},
			Reason: "reporting currency must convert at identity",
		}
	}

	copied := make(map[domain.Currency]decimal.Decimal, len(rates))
	for c, r := range rates {
		copied[c] = r
	}
	return &CurrencyService{rates: copied}, nil
}

// ToReporting converts a Money value into the reporting currency. The table
// is validated to cover every known currency, so an unknown code here means
// the record itself is malformed.
func (s *CurrencyService) ToReporting(m domain.Money) (decimal.Decimal, error) {
	rate, ok := s.rates[m.Currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, m.Currency)
	}
	return m.Amount.Mul(rate), nil
}

// Rate returns the multiplier for a currency.
func (s *CurrencyService) Rate(c domain.Currency) (decimal.Decimal, bool) {
	rate, ok := s.rates[c]
	return rate, ok
}
