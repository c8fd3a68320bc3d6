package service

import (
	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// ProjectionService handles the admin edits to revenue projections. A
// projection is created lazily the first time either target kind is set for
// a customer; amounts are denominated in the customer's own currency.
type ProjectionService struct {
	projectionRepo domain.ProjectionRepository
	customerRepo   domain.CustomerRepository
	eventPublisher websocket.EventPublisher
}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService(projectionRepo domain.ProjectionRepository, customerRepo domain.CustomerRepository) *ProjectionService {
	return &ProjectionService{
		projectionRepo: projectionRepo,
		customerRepo:   customerRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates.
func (s *ProjectionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ProjectionService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// List returns every projection on file.
func (s *ProjectionService) List() ([]*domain.Projection, error) {
	return s.projectionRepo.GetAll()
}

// GetForCustomer returns one customer's projection, or
// domain.ErrProjectionNotFound when none has been set yet.
func (s *ProjectionService) GetForCustomer(customerID string) (*domain.Projection, error) {
	return s.projectionRepo.GetByCustomer(customerID)
}

// SetAnnualTarget sets (or lazily creates) a customer's annual revenue
// target, denominated in the customer's currency.
func (s *ProjectionService) SetAnnualTarget(customerID string, amount decimal.Decimal) (*domain.Projection, error) {
	if amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	projection, err := s.projectionRepo.UpsertYTD(customerID, domain.NewMoney(amount, customer.Currency))
	if err != nil {
		return nil, err
	}
	s.publishEvent(websocket.ProjectionUpdated(projection))
	return projection, nil
}

// SetMonthlyTargets replaces a customer's monthly booking targets. Labels
// are validated against the twelve fiscal months before anything is stored;
// months absent from the map have no target.
func (s *ProjectionService) SetMonthlyTargets(customerID string, amounts map[string]decimal.Decimal) (*domain.Projection, error) {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	raw := make(map[string]domain.Money, len(amounts))
	for label, amount := range amounts {
		if amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		raw[label] = domain.NewMoney(amount, customer.Currency)
	}
	targets, err := domain.NewMonthlyTargets(raw)
	if err != nil {
		return nil, err
	}

	projection, err := s.projectionRepo.UpsertMonthlyTargets(customerID, targets)
	if err != nil {
		return nil, err
	}
	s.publishEvent(websocket.ProjectionUpdated(projection))
	return projection, nil
}
