package service

import (
	"sort"
	"time"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MetricsService is the sales performance metrics engine. It assembles an
// immutable ledger snapshot from the repositories and derives the full KPI
// set from it. The computation itself is a pure function of (snapshot,
// query); calling it twice with identical inputs yields identical output.
type MetricsService struct {
	salespersonRepo domain.SalespersonRepository
	customerRepo    domain.CustomerRepository
	orderRepo       domain.OrderRepository
	invoiceRepo     domain.InvoiceRepository
	activityRepo    domain.ActivityRepository
	projectionRepo  domain.ProjectionRepository
	currency        *CurrencyService
	proration       *ProrationService
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(
	salespersonRepo domain.SalespersonRepository,
	customerRepo domain.CustomerRepository,
	orderRepo domain.OrderRepository,
	invoiceRepo domain.InvoiceRepository,
	activityRepo domain.ActivityRepository,
	projectionRepo domain.ProjectionRepository,
	currency *CurrencyService,
	proration *ProrationService,
) *MetricsService {
	return &MetricsService{
		salespersonRepo: salespersonRepo,
		customerRepo:    customerRepo,
		orderRepo:       orderRepo,
		invoiceRepo:     invoiceRepo,
		activityRepo:    activityRepo,
		projectionRepo:  projectionRepo,
		currency:        currency,
		proration:       proration,
	}
}

// Snapshot reads the full ledger once. Repositories hand back copies, so the
// snapshot is private to the caller.
func (s *MetricsService) Snapshot() (*domain.LedgerSnapshot, error) {
	salespeople, err := s.salespersonRepo.GetAll()
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	activities, err := s.activityRepo.GetAll(nil)
	if err != nil {
		return nil, err
	}
	projections, err := s.projectionRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return &domain.LedgerSnapshot{
		Salespeople: salespeople,
		Customers:   customers,
		Orders:      orders,
		Invoices:    invoices,
		Activities:  activities,
		Projections: projections,
	}, nil
}

// Compute derives the KPI set for one scope and view at the reference date.
func (s *MetricsService) Compute(query domain.MetricsQuery) (*domain.MetricsResult, error) {
	if !query.View.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if query.SalespersonScope == "" {
		query.SalespersonScope = domain.ScopeAll
	}
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return s.ComputeFromSnapshot(snap, query)
}

// ComputeFromSnapshot derives the KPI set from an already-taken snapshot.
// It never mutates the snapshot.
func (s *MetricsService) ComputeFromSnapshot(snap *domain.LedgerSnapshot, query domain.MetricsQuery) (*domain.MetricsResult, error) {
	ref := query.ReferenceDate
	fy := domain.FiscalYearOf(ref)
	monthStart := domain.StartOfMonth(ref)

	scope := scopeCustomerIDs(snap.Customers, query.SalespersonScope)
	projections := projectionsByCustomer(snap.Projections)

	// Annual projection: sum of scoped customers' annual targets. A customer
	// with no projection contributes zero.
	ytdProjection := decimal.Zero
	bookingTarget := decimal.Zero
	fiscalMonth := domain.FiscalMonthOf(ref)
	for _, c := range snap.Customers {
		if _, ok := scope[c.ID]; !ok {
			continue
		}
		p := projections[c.ID]
		if p == nil {
			continue
		}
		v, err := s.currency.ToReporting(p.YTD)
		if err != nil {
			return nil, err
		}
		ytdProjection = ytdProjection.Add(v)

		if target, ok := p.TargetFor(fiscalMonth); ok {
			t, err := s.currency.ToReporting(target)
			if err != nil {
				return nil, err
			}
			bookingTarget = bookingTarget.Add(t)
		}
	}

	// Achieved revenue, measured by invoice issue date. YTD uses the fiscal
	// year window, MTD the calendar month; both inclusive of the boundary day.
	achievedYTD := decimal.Zero
	achievedMTD := decimal.Zero
	receivables := decimal.Zero
	for _, inv := range snap.Invoices {
		if _, ok := scope[inv.CustomerID]; !ok {
			continue
		}
		amount, err := s.currency.ToReporting(inv.Amount)
		if err != nil {
			return nil, err
		}
		if withinWindow(inv.IssueDate, fy.Start, fy.End) {
			achievedYTD = achievedYTD.Add(amount)
		}
		if !inv.IssueDate.Before(monthStart) {
			achievedMTD = achievedMTD.Add(amount)
		}

		paid, err := s.currency.ToReporting(inv.PaidAmount)
		if err != nil {
			return nil, err
		}
		if outstanding := amount.Sub(paid); outstanding.IsPositive() {
			receivables = receivables.Add(outstanding)
		}
	}

	// Orders: open pipeline, overdue subset, and month-to-date bookings.
	var openOrders, overdueOrders []*domain.Order
	openValue := decimal.Zero
	overdueValue := decimal.Zero
	mtdBooked := decimal.Zero
	for _, o := range snap.Orders {
		if _, ok := scope[o.CustomerID]; !ok {
			continue
		}
		value, err := s.currency.ToReporting(o.Value)
		if err != nil {
			return nil, err
		}
		if o.IsOpen() {
			openOrders = append(openOrders, o)
			openValue = openValue.Add(value)
			if o.PromiseDate.Before(ref) {
				overdueOrders = append(overdueOrders, o)
				overdueValue = overdueValue.Add(value)
			}
		}
		if !o.CreatedAt.Before(monthStart) {
			mtdBooked = mtdBooked.Add(value)
		}
	}
	sortOrdersByPromiseDate(openOrders)
	sortOrdersByPromiseDate(overdueOrders)

	pendingQuotes := pendingQuotationCount(snap.Activities, snap.Orders, scope)

	// Targets and ratios per view.
	mtdProjection := s.proration.MonthlyProjection(ytdProjection, ref)
	shouldHaveYTD := s.proration.ShouldHaveAchievedYTD(ytdProjection, ref)

	result := &domain.MetricsResult{
		View:                  query.View,
		SalespersonScope:      query.SalespersonScope,
		ReferenceDate:         ref,
		MonthlyBookingTarget:  bookingTarget,
		MTDBookedValue:        mtdBooked,
		BookingPercent:        s.proration.AchievementPercent(mtdBooked, bookingTarget),
		OpenOrders:            openOrders,
		OpenOrdersValue:       openValue,
		OverdueOrders:         overdueOrders,
		OverdueOrdersValue:    overdueValue,
		PendingQuotationCount: pendingQuotes,
		TotalReceivables:      receivables,
	}

	switch query.View {
	case domain.ViewMTD:
		result.Projection = mtdProjection
		result.Achieved = achievedMTD
		result.AchievedPercent = s.proration.AchievementPercent(achievedMTD, mtdProjection)
		result.RequiredRunRate = runRate(mtdProjection.Sub(achievedMTD), weeksRemainingInMonth(ref))
		result.Shortfall = mtdProjection.Sub(achievedMTD.Add(openValue))
	case domain.ViewYTD:
		result.Projection = ytdProjection
		result.Achieved = achievedYTD
		result.AchievedPercent = s.proration.AchievementPercent(achievedYTD, shouldHaveYTD)
		result.RequiredRunRate = runRate(ytdProjection.Sub(achievedYTD), domain.WholeMonthsBetween(ref, fy.End))
		result.Shortfall = ytdProjection.Sub(achievedYTD.Add(openValue))
	default:
		return nil, domain.ErrInvalidInput
	}

	return result, nil
}

// CompareSalespeople returns projection vs achieved per salesperson for the
// active view, regardless of the dashboard's scope filter.
func (s *MetricsService) CompareSalespeople(reference time.Time, view domain.View) ([]*domain.SalespersonComparison, error) {
	if !view.Valid() {
		return nil, domain.ErrInvalidInput
	}
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	projections := projectionsByCustomer(snap.Projections)
	windowStart := domain.StartOfMonth(reference)
	if view == domain.ViewYTD {
		windowStart = domain.FiscalYearOf(reference).Start
	}

	rows := make([]*domain.SalespersonComparison, 0, len(snap.Salespeople))
	for _, sp := range snap.Salespeople {
		projection := decimal.Zero
		for _, c := range snap.Customers {
			if c.SalespersonID != sp.ID {
				continue
			}
			p := projections[c.ID]
			if p == nil {
				continue
			}
			v, err := s.currency.ToReporting(p.YTD)
			if err != nil {
				return nil, err
			}
			projection = projection.Add(v)
		}
		if view == domain.ViewMTD {
			projection = s.proration.MonthlyProjection(projection, reference)
		}

		achieved := decimal.Zero
		for _, inv := range snap.Invoices {
			if inv.SalespersonID != sp.ID || inv.IssueDate.Before(windowStart) {
				continue
			}
			v, err := s.currency.ToReporting(inv.Amount)
			if err != nil {
				return nil, err
			}
			achieved = achieved.Add(v)
		}

		rows = append(rows, &domain.SalespersonComparison{
			SalespersonID:   sp.ID,
			SalespersonName: sp.Name,
			Projection:      projection,
			Achieved:        achieved,
		})
	}
	return rows, nil
}

// scopeCustomerIDs returns the ids of customers in scope: all of them, or
// those assigned to one salesperson.
func scopeCustomerIDs(customers []*domain.Customer, scope string) map[string]struct{} {
	ids := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		if scope == domain.ScopeAll || c.SalespersonID == scope {
			ids[c.ID] = struct{}{}
		}
	}
	return ids
}

func projectionsByCustomer(projections []*domain.Projection) map[string]*domain.Projection {
	m := make(map[string]*domain.Projection, len(projections))
	for _, p := range projections {
		m[p.CustomerID] = p
	}
	return m
}

// pendingQuotationCount counts quote-sent activities for in-scope customers
// that no later order followed. The join is per activity over the order list;
// fine at dashboard volumes.
func pendingQuotationCount(activities []*domain.Activity, orders []*domain.Order, scope map[string]struct{}) int {
	count := 0
	for _, a := range activities {
		if _, ok := scope[a.CustomerID]; !ok || !a.IsQuoteSent() {
			continue
		}
		followed := false
		for _, o := range orders {
			if o.CustomerID == a.CustomerID && o.CreatedAt.After(a.CreatedAt) {
				followed = true
				break
			}
		}
		if !followed {
			count++
		}
	}
	return count
}

// runRate divides the remaining gap across remaining periods, reporting zero
// when no periods remain.
func runRate(gap decimal.Decimal, periodsRemaining int) decimal.Decimal {
	if periodsRemaining <= 0 {
		return decimal.Zero
	}
	return gap.Div(decimal.NewFromInt(int64(periodsRemaining)))
}

// weeksRemainingInMonth counts the weeks left in the reference date's
// calendar month, rounding partial weeks up.
func weeksRemainingInMonth(reference time.Time) int {
	daysLeft := domain.DaysInMonth(reference) - reference.Day()
	return (daysLeft + 6) / 7
}

// withinWindow reports whether t falls in [start, end] where end is an
// inclusive day: a timestamp anywhere on the end date is still inside.
func withinWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end.AddDate(0, 0, 1))
}

func sortOrdersByPromiseDate(orders []*domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PromiseDate.Before(orders[j].PromiseDate)
	})
}
