package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kamaops/salesops-backend/internal/domain"
)

func usd(amount int64) domain.Money {
	return domain.Money{Amount: decimal.NewFromInt(amount), Currency: domain.CurrencyUSD}
}

func inr(amount int64) domain.Money {
	return domain.Money{Amount: decimal.NewFromInt(amount), Currency: domain.CurrencyINR}
}

func eur(amount int64) domain.Money {
	return domain.Money{Amount: decimal.NewFromInt(amount), Currency: domain.CurrencyEUR}
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func moneyPtr(m domain.Money) *domain.Money { return &m }

func briefTypePtr(t domain.BriefProductType) *domain.BriefProductType { return &t }

// Seed loads the demo ledger. Dates are relative to now so overdue orders,
// receivables aging and month-to-date windows stay meaningful whenever the
// server starts.
func Seed(store *Store, now time.Time) {
	monthStart := domain.StartOfMonth(now)

	for _, sp := range []*domain.Salesperson{
		{ID: "sp1", Name: "Priya Nair", Email: "priya@kama.example"},
		{ID: "sp2", Name: "Arjun Mehta", Email: "arjun@kama.example"},
		{ID: "sp3", Name: "Sara Khan", Email: "sara@kama.example"},
	} {
		store.AddSalesperson(sp)
	}

	for _, c := range []*domain.Customer{
		{ID: "c1", Name: "Aurora Gems (US)", Region: "US", Currency: domain.CurrencyUSD, PaymentTerms: "NET30", SalespersonID: "sp1", PreviousYearSales: moneyPtr(usd(250000))},
		{ID: "c2", Name: "Stellar Jewels (EU)", Region: "EU", Currency: domain.CurrencyEUR, PaymentTerms: "NET45", SalespersonID: "sp2", PreviousYearSales: moneyPtr(eur(180000))},
		{ID: "c3", Name: "Bombay Boutique", Region: "India", Currency: domain.CurrencyINR, PaymentTerms: "NET15", SalespersonID: "sp1", PreviousYearSales: moneyPtr(inr(21000000))},
		{ID: "c4", Name: "Dubai Diamonds", Region: "Middle East", Currency: domain.CurrencyUSD, PaymentTerms: "NET60", SalespersonID: "sp3", PreviousYearSales: moneyPtr(usd(310000))},
		{ID: "c5", Name: "Singapore Fine Metals", Region: "Asia", Currency: domain.CurrencyUSD, PaymentTerms: "NET30", SalespersonID: "sp2", PreviousYearSales: moneyPtr(usd(130000))},
		{ID: "c6", Name: "London Crown Jewels", Region: "EU", Currency: domain.CurrencyEUR, PaymentTerms: "NET30", SalespersonID: "sp3", PreviousYearSales: moneyPtr(eur(150000))},
		{ID: "c7", Name: "Kolkata Creators", Region: "India", Currency: domain.CurrencyINR, PaymentTerms: "NET30", SalespersonID: "sp1", PreviousYearSales: moneyPtr(inr(15000000))},
		{ID: "c8", Name: "New York Chains Inc.", Region: "US", Currency: domain.CurrencyUSD, PaymentTerms: "NET15", SalespersonID: "sp2", PreviousYearSales: moneyPtr(usd(85000))},
	} {
		store.AddCustomer(c)
	}

	seedProjections(store)
	seedActivities(store, now, monthStart)
	seedOrders(store, now)
	seedInvoices(store, now, monthStart)
	seedStock(store, now)
}

func seedProjections(store *Store) {
	targets := func(amounts [12]domain.Money) map[domain.FiscalMonth]domain.Money {
		m := make(map[domain.FiscalMonth]domain.Money, 12)
		for i, month := range domain.FiscalYearMonths {
			m[month] = amounts[i]
		}
		return m
	}

	for _, p := range []*domain.Projection{
		{CustomerID: "c1", YTD: usd(300000), MonthlyBookingTargets: targets([12]domain.Money{
			usd(20000), usd(22000), usd(18000), usd(15000), usd(15000), usd(25000),
			usd(35000), usd(40000), usd(30000), usd(25000), usd(25000), usd(30000),
		})},
		{CustomerID: "c3", YTD: inr(25000000), MonthlyBookingTargets: targets([12]domain.Money{
			inr(1800000), inr(1800000), inr(1500000), inr(1200000), inr(1200000), inr(2500000),
			inr(3500000), inr(3000000), inr(2500000), inr(2000000), inr(2000000), inr(2000000),
		})},
		{CustomerID: "c7", YTD: inr(18000000), MonthlyBookingTargets: targets([12]domain.Money{
			inr(1200000), inr(1200000), inr(1000000), inr(1000000), inr(1000000), inr(1800000),
			inr(2500000), inr(2000000), inr(1500000), inr(1500000), inr(1500000), inr(1800000),
		})},
		{CustomerID: "c2", YTD: eur(220000), MonthlyBookingTargets: targets([12]domain.Money{
			eur(15000), eur(15000), eur(12000), eur(10000), eur(10000), eur(20000),
			eur(30000), eur(28000), eur(20000), eur(18000), eur(18000), eur(19000),
		})},
		{CustomerID: "c5", YTD: usd(150000), MonthlyBookingTargets: targets([12]domain.Money{
			usd(10000), usd(10000), usd(8000), usd(8000), usd(8000), usd(12000),
			usd(18000), usd(16000), usd(15000), usd(12000), usd(12000), usd(11000),
		})},
		{CustomerID: "c8", YTD: usd(100000), MonthlyBookingTargets: targets([12]domain.Money{
			usd(7000), usd(7000), usd(6000), usd(5000), usd(5000), usd(8000),
			usd(12000), usd(10000), usd(10000), usd(8000), usd(8000), usd(9000),
		})},
		{CustomerID: "c4", YTD: usd(350000), MonthlyBookingTargets: targets([12]domain.Money{
			usd(25000), usd(25000), usd(20000), usd(18000), usd(18000), usd(30000),
			usd(40000), usd(35000), usd(34000), usd(25000), usd(25000), usd(30000),
		})},
		{CustomerID: "c6", YTD: eur(180000), MonthlyBookingTargets: targets([12]domain.Money{
			eur(12000), eur(12000), eur(10000), eur(8000), eur(8000), eur(15000),
			eur(25000), eur(20000), eur(15000), eur(12000), eur(12000), eur(16000),
		})},
	} {
		store.AddProjection(p)
	}
}

func seedActivities(store *Store, now, monthStart time.Time) {
	for _, a := range []*domain.Activity{
		{
			ID: "a1", MeetingDate: now.AddDate(0, 0, -5), CustomerID: "c1",
			ActivityType: domain.ActivityReplenishment,
			Notes:        strPtr("Finalized Q4 holiday top-up."),
			Outcome:      strPtr("PO received"),
			Location:     strPtr("Zoom"),
			Program:      strPtr("Core 18K Essentials"),
			CreatedAt:    now.AddDate(0, 0, -5),
		},
		{
			ID: "a2", MeetingDate: now.AddDate(0, 0, -10), CustomerID: "c3",
			ActivityType: domain.ActivityInPersonMeeting,
			Notes:        strPtr("Presented Diwali collection, client loved it."),
			Outcome:      strPtr(domain.OutcomeQuoteSent),
			Location:     strPtr("Mumbai Office"),
			Program:      strPtr("Diwali Collection"),
			CreatedAt:    now.AddDate(0, 0, -10),
		},
		{
			ID: "a3", MeetingDate: now.AddDate(0, 0, -8), CustomerID: "c2",
			ActivityType:         domain.ActivityPDBriefsReceived,
			Notes:                strPtr("Client has some very specific design requests for Spring."),
			Outcome:              strPtr(domain.OutcomeQuoteSent),
			Location:             strPtr("Email"),
			AssignedMerchandizer: strPtr("Anjali"),
			Program:              strPtr("Spring Bridal Line"),
			MetalWt:              strPtr("1.5g - 2.0g"),
			DiamondWt:            strPtr("0.25 cts - 0.30 cts"),
			BriefProductType:     briefTypePtr(domain.BriefProductRing),
			BriefDueDate:         timePtr(now.AddDate(0, 0, 14)),
			CreatedAt:            now.AddDate(0, 0, -8),
		},
		{
			ID: "a4", MeetingDate: now.AddDate(0, 0, -15), CustomerID: "c5",
			ActivityType: domain.ActivityOther,
			Notes:        strPtr("Followed up on overdue invoice INV-9005."),
			Outcome:      strPtr("Client promised payment by end of week."),
			Location:     strPtr("Phone Call"),
			CreatedAt:    now.AddDate(0, 0, -15),
		},
		{
			ID: "a5", MeetingDate: now.AddDate(0, 0, -2), CustomerID: "c4",
			ActivityType:     domain.ActivityLeadershipCall,
			Notes:            strPtr("Introductory call with their head of procurement. Went well."),
			Outcome:          strPtr("Good rapport built. Follow-up meeting scheduled."),
			Location:         strPtr("MS Teams"),
			LeadershipMember: strPtr("Mr. Sharma (CEO)"),
			CreatedAt:        now.AddDate(0, 0, -2),
		},
		{
			ID: "a6", MeetingDate: now.AddDate(0, 0, -20), CustomerID: "c6",
			ActivityType: domain.ActivityStoreVisit,
			Notes:        strPtr("Visited their flagship London store to understand their customer profile."),
			Outcome:      strPtr("Identified opportunity for our minimalist collection."),
			Location:     strPtr("London"),
			StoreName:    strPtr("Crown Jewels Mayfair"),
			City:         strPtr("London"),
			CreatedAt:    now.AddDate(0, 0, -20),
		},
		{
			ID: "a7", MeetingDate: now.AddDate(0, 0, -1), CustomerID: "c7",
			ActivityType:      domain.ActivityReplenishment,
			Notes:             strPtr("Urgent replenishment for fast-moving SKUs."),
			Outcome:           strPtr("PO received"),
			Location:          strPtr("Email"),
			Program:           strPtr("Export Basics"),
			ReplenishmentSKUs: strPtr("E-GOLD-01, E-GOLD-05"),
			ExpectedPODate:    timePtr(now),
			CreatedAt:         now.AddDate(0, 0, -1),
		},
		{
			ID: "a8", MeetingDate: monthStart.AddDate(0, 0, -5), CustomerID: "c8",
			ActivityType: domain.ActivityInPersonMeeting,
			Notes:        strPtr("Met with client to discuss Q3 performance and Q4 forecast."),
			Outcome:      strPtr("Next steps defined"),
			Location:     strPtr("Client Office"),
			CreatedAt:    monthStart.AddDate(0, 0, -5),
		},
	} {
		store.AddActivity(a)
	}
}

func seedOrders(store *Store, now time.Time) {
	for _, o := range []*domain.Order{
		{ID: "o1", CustomerID: "c1", PONumber: "PO-1001", Value: usd(28000), PromiseDate: now.AddDate(0, 0, 10), Status: domain.OrderStatusInProduction, CreatedAt: now.AddDate(0, 0, -4), SalespersonID: "sp1"},
		{ID: "o2", CustomerID: "c3", PONumber: "PO-1002", Value: inr(1500000), PromiseDate: now.AddDate(0, 0, 25), Status: domain.OrderStatusOpen, CreatedAt: now.AddDate(0, 0, -8), SalespersonID: "sp1"},
		{ID: "o3", CustomerID: "c2", PONumber: "PO-1003", Value: eur(12000), PromiseDate: now.AddDate(0, 0, -2), Status: domain.OrderStatusInProduction, CreatedAt: now.AddDate(0, 0, -35), SalespersonID: "sp2"},
		{ID: "o4", CustomerID: "c4", PONumber: "PO-1004", Value: usd(15000), PromiseDate: now.AddDate(0, 0, 40), Status: domain.OrderStatusOpen, CreatedAt: now.AddDate(0, 0, -1), SalespersonID: "sp3"},
		{ID: "o5", CustomerID: "c5", PONumber: "PO-0955", Value: usd(9000), PromiseDate: now.AddDate(0, 0, -45), Status: domain.OrderStatusShipped, CreatedAt: now.AddDate(0, 0, -60), SalespersonID: "sp2"},
		{ID: "o6", CustomerID: "c7", PONumber: "PO-1005", Value: inr(800000), PromiseDate: now.AddDate(0, 0, 15), Status: domain.OrderStatusOpen, CreatedAt: now.AddDate(0, 0, -1), SalespersonID: "sp1"},
	} {
		store.AddOrder(o)
	}
}

func seedInvoices(store *Store, now, monthStart time.Time) {
	for _, i := range []*domain.Invoice{
		{ID: "i1", CustomerID: "c1", InvoiceNumber: "INV-9001", IssueDate: monthStart.AddDate(0, 0, -30), DueDate: monthStart, Amount: usd(18000), PaidAmount: usd(18000), SalespersonID: "sp1"},
		{ID: "i2", CustomerID: "c2", InvoiceNumber: "INV-9002", IssueDate: now.AddDate(0, 0, -50), DueDate: now.AddDate(0, 0, -5), Amount: eur(15000), PaidAmount: eur(5000), SalespersonID: "sp2"},
		{ID: "i3", CustomerID: "c3", InvoiceNumber: "INV-9003", IssueDate: now.AddDate(0, 0, -10), DueDate: now.AddDate(0, 0, 5), Amount: inr(1200000), PaidAmount: inr(0), SalespersonID: "sp1"},
		{ID: "i4", CustomerID: "c6", InvoiceNumber: "INV-9004", IssueDate: monthStart.AddDate(0, 0, -20), DueDate: monthStart.AddDate(0, 0, 10), Amount: eur(8000), PaidAmount: eur(8000), SalespersonID: "sp3"},
		{ID: "i5", CustomerID: "c5", InvoiceNumber: "INV-9005", IssueDate: now.AddDate(0, 0, -60), DueDate: now.AddDate(0, 0, -30), Amount: usd(9500), PaidAmount: usd(0), SalespersonID: "sp2"},
	} {
		store.AddInvoice(i)
	}
}

func seedStock(store *Store, now time.Time) {
	for _, fg := range []*domain.FGStock{
		{ID: "fg1", CustomerID: "c1", SKU: "NK-CLASSIC-007", Value: usd(8000), ReadySince: now.AddDate(0, 0, -40)},
		{ID: "fg2", CustomerID: "c3", SKU: "RG-DIWALI-002", Value: inr(250000), ReadySince: now.AddDate(0, 0, -10)},
		{ID: "fg3", CustomerID: "c1", SKU: "ER-STUD-011", Value: usd(4500), ReadySince: now.AddDate(0, 0, -95)},
	} {
		store.AddStock(fg)
	}
}
