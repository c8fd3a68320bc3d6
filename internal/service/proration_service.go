package service

import (
	"time"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Fixed half-year split policy: 60% of the annual target lands in H1
// (Apr–Sep), 40% in H2 (Oct–Mar). Not configurable.
var (
	h1TargetShare = decimal.NewFromFloat(0.6)
	h2TargetShare = decimal.NewFromFloat(0.4)
)

var (
	monthsPerHalf = decimal.NewFromInt(6)
	hundred       = decimal.NewFromInt(100)
)

// ProrationService turns an annual, currency-normalized target into
// half-year targets and time-weighted "should have achieved" figures.
type ProrationService struct{}

// NewProrationService creates a new ProrationService.
func NewProrationService() *ProrationService {
	return &ProrationService{}
}

// HalfTargets splits an annual target into its H1 and H2 portions.
func (s *ProrationService) HalfTargets(annual decimal.Decimal) (h1, h2 decimal.Decimal) {
	return annual.Mul(h1TargetShare), annual.Mul(h2TargetShare)
}

// ShouldHaveAchievedYTD returns the portion of the annual target that should
// be realized by the reference date, prorated day-by-day within each half.
// Day counting is inclusive of both endpoints; dates before the fiscal year
// start yield zero and dates past its end yield the full annual target.
func (s *ProrationService) ShouldHaveAchievedYTD(annual decimal.Decimal, reference time.Time) decimal.Decimal {
	halves := domain.FiscalHalvesOf(reference)
	if reference.Before(halves.H1Start) {
		return decimal.Zero
	}

	h1Target, h2Target := s.HalfTargets(annual)
	if halves.InH1 {
		elapsed := domain.DaysBetween(halves.H1Start, reference)
		total := domain.DaysBetween(halves.H1Start, halves.H1End)
		return ratio(elapsed, total).Mul(h1Target)
	}

	total := domain.DaysBetween(halves.H2Start, halves.H2End)
	elapsed := domain.DaysBetween(halves.H2Start, reference)
	if elapsed > total {
		elapsed = total
	}
	return h1Target.Add(ratio(elapsed, total).Mul(h2Target))
}

// MonthlyProjection returns the flat monthly target for the reference month:
// one sixth of the half-year target it falls in. No day-of-month weighting.
func (s *ProrationService) MonthlyProjection(annual decimal.Decimal, reference time.Time) decimal.Decimal {
	h1Target, h2Target := s.HalfTargets(annual)
	if domain.InH1Month(reference) {
		return h1Target.Div(monthsPerHalf)
	}
	return h2Target.Div(monthsPerHalf)
}

// AchievementPercent returns achieved/target×100, with a zero target
// yielding zero rather than dividing by zero.
func (s *ProrationService) AchievementPercent(achieved, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return achieved.Div(target).Mul(hundred)
}

func ratio(num, den int) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den)))
}
