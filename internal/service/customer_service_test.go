package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/testutil"
)

func newCustomerService() (*CustomerService, *testutil.MockCustomerRepository, *testutil.MockSalespersonRepository, *testutil.MockFGStockRepository, *testutil.MockEventPublisher) {
	customerRepo := testutil.NewMockCustomerRepository()
	salespersonRepo := testutil.NewMockSalespersonRepository()
	orderRepo := testutil.NewMockOrderRepository()
	invoiceRepo := testutil.NewMockInvoiceRepository()
	activityRepo := testutil.NewMockActivityRepository()
	projectionRepo := testutil.NewMockProjectionRepository()
	stockRepo := testutil.NewMockFGStockRepository()

	svc := NewCustomerService(customerRepo, salespersonRepo, orderRepo, invoiceRepo,
		activityRepo, projectionRepo, stockRepo)
	publisher := testutil.NewMockEventPublisher()
	svc.SetEventPublisher(publisher)
	return svc, customerRepo, salespersonRepo, stockRepo, publisher
}

func TestCustomerService_Reassign(t *testing.T) {
	svc, customerRepo, salespersonRepo, _, publisher := newCustomerService()

	salespersonRepo.Add(&domain.Salesperson{ID: "sp1", Name: "Priya Nair"})
	salespersonRepo.Add(&domain.Salesperson{ID: "sp2", Name: "Arjun Mehta"})
	customerRepo.Add(&domain.Customer{ID: "c1", Name: "Aurora Gems", Currency: domain.CurrencyUSD, SalespersonID: "sp1"})

	customer, err := svc.Reassign("c1", "sp2")

	require.NoError(t, err)
	assert.Equal(t, "sp2", customer.SalespersonID)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, "customer.reassigned", publisher.Events[0].Type)
}

func TestCustomerService_Reassign_UnknownSalesperson(t *testing.T) {
	svc, customerRepo, _, _, publisher := newCustomerService()
	customerRepo.Add(&domain.Customer{ID: "c1", Name: "Aurora Gems", Currency: domain.CurrencyUSD, SalespersonID: "sp1"})

	_, err := svc.Reassign("c1", "ghost")

	assert.ErrorIs(t, err, domain.ErrSalespersonNotFound)
	assert.Empty(t, publisher.Events)
}

func TestCustomerService_Reassign_UnknownCustomer(t *testing.T) {
	svc, _, salespersonRepo, _, _ := newCustomerService()
	salespersonRepo.Add(&domain.Salesperson{ID: "sp1", Name: "Priya Nair"})

	_, err := svc.Reassign("nope", "sp1")

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerService_Detail(t *testing.T) {
	svc, customerRepo, salespersonRepo, stockRepo, _ := newCustomerService()

	salespersonRepo.Add(&domain.Salesperson{ID: "sp1", Name: "Priya Nair"})
	customerRepo.Add(&domain.Customer{ID: "c1", Name: "Aurora Gems", Currency: domain.CurrencyUSD, SalespersonID: "sp1"})
	stockRepo.Add(&domain.FGStock{
		ID: "fg1", CustomerID: "c1", SKU: "NK-CLASSIC-007",
		ReadySince: time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC),
	})

	detail, err := svc.Detail("c1", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "c1", detail.Customer.ID)
	require.NotNil(t, detail.Salesperson)
	assert.Equal(t, "Priya Nair", detail.Salesperson.Name)
	// No projection on file is fine; the field is simply absent.
	assert.Nil(t, detail.Projection)

	require.Len(t, detail.Stock, 1)
	assert.Equal(t, 40, detail.Stock[0].DaysReady)
}

func TestCustomerService_Detail_UnknownCustomer(t *testing.T) {
	svc, _, _, _, _ := newCustomerService()

	_, err := svc.Detail("nope", time.Now())

	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
