package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewMonthlyTargets(t *testing.T) {
	raw := map[string]Money{
		"Apr": NewMoney(decimal.NewFromInt(20000), CurrencyUSD),
		"Mar": NewMoney(decimal.NewFromInt(30000), CurrencyUSD),
	}

	targets, err := NewMonthlyTargets(raw)
	if err != nil {
		t.Fatalf("NewMonthlyTargets returned error: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(targets))
	}
	if got := targets[FiscalMonth("Apr")]; !got.Amount.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("Apr target = %s", got.Amount)
	}
}

func TestNewMonthlyTargets_RejectsUnknownLabel(t *testing.T) {
	raw := map[string]Money{
		"April": NewMoney(decimal.NewFromInt(1), CurrencyINR),
	}
	if _, err := NewMonthlyTargets(raw); err != ErrInvalidFiscalMonth {
		t.Errorf("err = %v, want ErrInvalidFiscalMonth", err)
	}
}

func TestProjectionTargetFor(t *testing.T) {
	p := &Projection{
		CustomerID: "c1",
		YTD:        NewMoney(decimal.NewFromInt(300000), CurrencyUSD),
		MonthlyBookingTargets: map[FiscalMonth]Money{
			"Jul": NewMoney(decimal.NewFromInt(15000), CurrencyUSD),
		},
	}

	if target, ok := p.TargetFor("Jul"); !ok || !target.Amount.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("TargetFor(Jul) = %v, %v", target, ok)
	}
	// Absent entry means no target set, not zero
	if _, ok := p.TargetFor("Aug"); ok {
		t.Error("TargetFor(Aug) should report no target")
	}

	var nilProjection *Projection
	if _, ok := nilProjection.TargetFor("Jul"); ok {
		t.Error("nil projection should report no target")
	}
}
