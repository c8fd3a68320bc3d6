package domain

// Projection holds one customer's revenue targets for the fiscal year: the
// annual (YTD) target plus per-month booking targets keyed by the twelve
// fiscal month labels. Projections are created lazily on first admin edit; a
// customer without one simply has no target set, which is distinct from a
// target of zero.
type Projection struct {
	CustomerID            string                `json:"customerId"`
	YTD                   Money                 `json:"ytd"`
	MonthlyBookingTargets map[FiscalMonth]Money `json:"monthlyBookingTargets"`
}

// NewMonthlyTargets validates a label→amount map into fiscal-month keys.
// An unknown label is a construction-time error, never a silent lookup miss.
func NewMonthlyTargets(raw map[string]Money) (map[FiscalMonth]Money, error) {
	targets := make(map[FiscalMonth]Money, len(raw))
	for label, money := range raw {
		month, err := ParseFiscalMonth(label)
		if err != nil {
			return nil, err
		}
		targets[month] = money
	}
	return targets, nil
}

// TargetFor returns the booking target for a fiscal month and whether one has
// been set. Absent entries mean "no target", not zero.
func (p *Projection) TargetFor(month FiscalMonth) (Money, bool) {
	if p == nil || p.MonthlyBookingTargets == nil {
		return Money{}, false
	}
	target, ok := p.MonthlyBookingTargets[month]
	return target, ok
}

// ProjectionRepository provides reads plus the admin projection edits. Both
// upserts create the projection on first edit.
type ProjectionRepository interface {
	GetAll() ([]*Projection, error)
	GetByCustomer(customerID string) (*Projection, error)
	UpsertYTD(customerID string, ytd Money) (*Projection, error)
	UpsertMonthlyTargets(customerID string, targets map[FiscalMonth]Money) (*Projection, error)
}
