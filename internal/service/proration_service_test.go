package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProrationService_HalfTargets(t *testing.T) {
	svc := NewProrationService()

	h1, h2 := svc.HalfTargets(decimal.NewFromInt(1200000))

	assert.Equal(t, "720000", h1.String())
	assert.Equal(t, "480000", h2.String())
}

func TestProrationService_ShouldHaveAchievedYTD(t *testing.T) {
	svc := NewProrationService()
	annual := decimal.NewFromInt(1200000)

	tests := []struct {
		name      string
		reference time.Time
		want      string
	}{
		// Jul 1 is day 92 of the 183-day first half.
		{"mid H1", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "361967.21"},
		{"first day of year", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "3934.43"},
		{"last day of H1", time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), "720000.00"},
		// Dec 31 is day 92 of the 182-day second half; H1 counts in full.
		{"mid H2", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), "962637.36"},
		{"last day of year", time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), "1200000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ShouldHaveAchievedYTD(annual, tt.reference)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestProrationService_ShouldHaveAchievedYTD_ZeroAnnual(t *testing.T) {
	svc := NewProrationService()

	got := svc.ShouldHaveAchievedYTD(decimal.Zero, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, got.IsZero())
}

func TestProrationService_MonthlyProjection(t *testing.T) {
	svc := NewProrationService()
	annual := decimal.NewFromInt(1200000)

	h1Month := svc.MonthlyProjection(annual, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "120000", h1Month.String())

	h2Month := svc.MonthlyProjection(annual, time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "80000", h2Month.String())

	// January belongs to H2 of the fiscal year that started the previous April.
	janMonth := svc.MonthlyProjection(annual, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "80000", janMonth.String())
}

func TestProrationService_AchievementPercent(t *testing.T) {
	svc := NewProrationService()

	tests := []struct {
		name     string
		achieved decimal.Decimal
		target   decimal.Decimal
		want     string
	}{
		{"quarter of target", decimal.NewFromInt(50), decimal.NewFromInt(200), "25.00"},
		{"over target", decimal.NewFromInt(300), decimal.NewFromInt(200), "150.00"},
		{"zero target yields zero", decimal.NewFromInt(100), decimal.Zero, "0.00"},
		{"negative target yields zero", decimal.NewFromInt(100), decimal.NewFromInt(-50), "0.00"},
		{"zero achieved", decimal.Zero, decimal.NewFromInt(200), "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.AchievementPercent(tt.achieved, tt.target)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
