package service

import (
	"time"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/websocket"
)

// ActivityService handles the customer activity log.
type ActivityService struct {
	activityRepo   domain.ActivityRepository
	customerRepo   domain.CustomerRepository
	eventPublisher websocket.EventPublisher
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo domain.ActivityRepository, customerRepo domain.CustomerRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		customerRepo: customerRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates.
func (s *ActivityService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ActivityService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// ActivityInput holds the caller-supplied fields of an activity.
type ActivityInput struct {
	CustomerID   string
	MeetingDate  time.Time
	ActivityType domain.ActivityType
	Attendees    *string
	Program      *string
	Notes        *string
	Outcome      *string
	Location     *string

	BriefDueDate         *time.Time
	AssignedMerchandizer *string
	MetalWt              *string
	DiamondWt            *string
	BriefProductType     *domain.BriefProductType

	ReplenishmentSKUs *string
	ExpectedPODate    *time.Time

	StoreName *string
	City      *string

	LeadershipMember *string
}

func (in ActivityInput) toActivity() domain.Activity {
	return domain.Activity{
		CustomerID:           in.CustomerID,
		MeetingDate:          in.MeetingDate,
		ActivityType:         in.ActivityType,
		Attendees:            in.Attendees,
		Program:              in.Program,
		Notes:                in.Notes,
		Outcome:              in.Outcome,
		Location:             in.Location,
		BriefDueDate:         in.BriefDueDate,
		AssignedMerchandizer: in.AssignedMerchandizer,
		MetalWt:              in.MetalWt,
		DiamondWt:            in.DiamondWt,
		BriefProductType:     in.BriefProductType,
		ReplenishmentSKUs:    in.ReplenishmentSKUs,
		ExpectedPODate:       in.ExpectedPODate,
		StoreName:            in.StoreName,
		City:                 in.City,
		LeadershipMember:     in.LeadershipMember,
	}
}

// List returns activities, optionally narrowed by filters, newest first.
func (s *ActivityService) List(filters *domain.ActivityFilters) ([]*domain.Activity, error) {
	return s.activityRepo.GetAll(filters)
}

// Get returns one activity by id.
func (s *ActivityService) Get(id string) (*domain.Activity, error) {
	return s.activityRepo.GetByID(id)
}

// Create validates and logs a new activity.
func (s *ActivityService) Create(input ActivityInput) (*domain.Activity, error) {
	activity := input.toActivity()
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.GetByID(activity.CustomerID); err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	created, err := s.activityRepo.Create(&activity)
	if err != nil {
		return nil, err
	}
	s.publishEvent(websocket.ActivityCreated(created))
	return created, nil
}

// Update replaces the editable fields of an existing activity. The original
// creation timestamp is preserved so quote-to-order correlation stays stable.
func (s *ActivityService) Update(id string, input ActivityInput) (*domain.Activity, error) {
	existing, err := s.activityRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	activity := input.toActivity()
	activity.ID = existing.ID
	activity.CreatedAt = existing.CreatedAt
	if err := activity.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.GetByID(activity.CustomerID); err != nil {
		return nil, domain.ErrCustomerNotFound
	}

	updated, err := s.activityRepo.Update(&activity)
	if err != nil {
		return nil, err
	}
	s.publishEvent(websocket.ActivityUpdated(updated))
	return updated, nil
}

// Delete removes an activity from the log.
func (s *ActivityService) Delete(id string) error {
	activity, err := s.activityRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.activityRepo.Delete(id); err != nil {
		return err
	}
	s.publishEvent(websocket.ActivityDeleted(activity))
	return nil
}
