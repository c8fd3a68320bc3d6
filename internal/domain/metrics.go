package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// View selects the reporting window for the dashboard.
type View string

const (
	ViewMTD View = "mtd"
	ViewYTD View = "ytd"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	return v == ViewMTD || v == ViewYTD
}

// ScopeAll means metrics cover every salesperson's customers.
const ScopeAll = "all"

// MetricsQuery selects what one metrics computation covers.
type MetricsQuery struct {
	ReferenceDate    time.Time
	SalespersonScope string // salesperson id or ScopeAll
	View             View
}

// MetricsResult is the full KPI set for one scope and view. Every monetary
// figure is in the reporting currency.
type MetricsResult struct {
	View             View            `json:"view"`
	SalespersonScope string          `json:"salespersonScope"`
	ReferenceDate    time.Time       `json:"referenceDate"`
	Projection       decimal.Decimal `json:"projection"`
	Achieved         decimal.Decimal `json:"achieved"`
	AchievedPercent  decimal.Decimal `json:"achievedPercent"`
	RequiredRunRate  decimal.Decimal `json:"requiredRunRate"`
	Shortfall        decimal.Decimal `json:"shortfall"`

	// Booking attainment is always month-to-date, whichever view is active.
	MonthlyBookingTarget decimal.Decimal `json:"monthlyBookingTarget"`
	MTDBookedValue       decimal.Decimal `json:"mtdBookedValue"`
	BookingPercent       decimal.Decimal `json:"bookingPercent"`

	OpenOrders            []*Order        `json:"openOrders"`
	OpenOrdersValue       decimal.Decimal `json:"openOrdersValue"`
	OverdueOrders         []*Order        `json:"overdueOrders"`
	OverdueOrdersValue    decimal.Decimal `json:"overdueOrdersValue"`
	PendingQuotationCount int             `json:"pendingQuotationCount"`
	TotalReceivables      decimal.Decimal `json:"totalReceivables"`
}

// SalespersonComparison is one row of the projection-vs-achieved comparison
// across salespeople, in the reporting currency.
type SalespersonComparison struct {
	SalespersonID   string          `json:"salespersonId"`
	SalespersonName string          `json:"salespersonName"`
	Projection      decimal.Decimal `json:"projection"`
	Achieved        decimal.Decimal `json:"achieved"`
}

// LedgerSnapshot is the immutable input to one metrics computation. The
// engine never holds a reference to live store state; it receives a copy per
// call, so recomputation is idempotent and re-entrant.
type LedgerSnapshot struct {
	Salespeople []*Salesperson
	Customers   []*Customer
	Orders      []*Order
	Invoices    []*Invoice
	Activities  []*Activity
	Projections []*Projection
}
