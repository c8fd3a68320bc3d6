package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaops/salesops-backend/internal/domain"
)

func TestNewCurrencyService_DefaultRates(t *testing.T) {
	svc, err := NewCurrencyService(DefaultRates())
	require.NoError(t, err)

	rate, ok := svc.Rate(domain.CurrencyUSD)
	require.True(t, ok)
	assert.Equal(t, "84", rate.String())
}

func TestNewCurrencyService_MissingRate(t *testing.T) {
	rates := DefaultRates()
	delete(rates, domain.CurrencyEUR)

	_, err := NewCurrencyService(rates)
	require.Error(t, err)

	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, []string{"EUR"}, confErr.Codes)
}

func TestNewCurrencyService_NonPositiveRate(t *testing.T) {
	rates := DefaultRates()
	rates[domain.CurrencyUSD] = decimal.Zero

	_, err := NewCurrencyService(rates)
	require.Error(t, err)

	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, []string{"USD"}, confErr.Codes)
}

func TestNewCurrencyService_ReportingCurrencyMustBeIdentity(t *testing.T) {
	rates := DefaultRates()
	rates[domain.CurrencyINR] = decimal.NewFromInt(2)

	_, err := NewCurrencyService(rates)
	require.Error(t, err)

	var confErr *ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, []string{"INR"}, confErr.Codes)
}

func TestCurrencyService_ToReporting(t *testing.T) {
	svc, err := NewCurrencyService(DefaultRates())
	require.NoError(t, err)

	tests := []struct {
		name  string
		money domain.Money
		want  string
	}{
		{"inr is identity", domain.NewMoney(decimal.NewFromInt(1500), domain.CurrencyINR), "1500"},
		{"usd multiplies by 84", domain.NewMoney(decimal.NewFromInt(1000), domain.CurrencyUSD), "84000"},
		{"eur multiplies by 92", domain.NewMoney(decimal.NewFromInt(500), domain.CurrencyEUR), "46000"},
		{"fractional amount survives", domain.NewMoney(decimal.NewFromFloat(10.55), domain.CurrencyUSD), "886.2"},
		{"zero stays zero", domain.ZeroMoney(domain.CurrencyEUR), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ToReporting(tt.money)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCurrencyService_ToReporting_UnknownCurrency(t *testing.T) {
	svc, err := NewCurrencyService(DefaultRates())
	require.NoError(t, err)

	_, err = svc.ToReporting(domain.NewMoney(decimal.NewFromInt(10), domain.Currency("GBP")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownCurrency))
}
