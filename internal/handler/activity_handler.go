package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/service"
)

// ActivityHandler handles activity log HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ActivityRequest represents the create/update activity payload. Dates are
// RFC 3339 timestamps or plain YYYY-MM-DD.
type ActivityRequest struct {
	CustomerID   string  `json:"customerId"`
	MeetingDate  string  `json:"meetingDate"`
	ActivityType string  `json:"activityType"`
	Attendees    *string `json:"attendees"`
	Program      *string `json:"program"`
	Notes        *string `json:"notes"`
	Outcome      *string `json:"outcome"`
	Location     *string `json:"location"`

	BriefDueDate         *string `json:"briefDueDate"`
	AssignedMerchandizer *string `json:"assignedMerchandizer"`
	MetalWt              *string `json:"metalWt"`
	DiamondWt            *string `json:"diamondWt"`
	BriefProductType     *string `json:"briefProductType"`

	ReplenishmentSKUs *string `json:"replenishmentSkus"`
	ExpectedPODate    *string `json:"expectedPODate"`

	StoreName *string `json:"storeName"`
	City      *string `json:"city"`

	LeadershipMember *string `json:"leadershipMember"`
}

func (req *ActivityRequest) toInput() (service.ActivityInput, []ValidationError) {
	var validationErrors []ValidationError

	input := service.ActivityInput{
		CustomerID:           req.CustomerID,
		ActivityType:         domain.ActivityType(req.ActivityType),
		Attendees:            req.Attendees,
		Program:              req.Program,
		Notes:                req.Notes,
		Outcome:              req.Outcome,
		Location:             req.Location,
		AssignedMerchandizer: req.AssignedMerchandizer,
		MetalWt:              req.MetalWt,
		DiamondWt:            req.DiamondWt,
		ReplenishmentSKUs:    req.ReplenishmentSKUs,
		StoreName:            req.StoreName,
		City:                 req.City,
		LeadershipMember:     req.LeadershipMember,
	}

	if req.MeetingDate == "" {
		validationErrors = append(validationErrors, ValidationError{Field: "meetingDate", Message: "Required"})
	} else if t, err := parseTimestamp(req.MeetingDate); err != nil {
		validationErrors = append(validationErrors, ValidationError{Field: "meetingDate", Message: "Must be RFC 3339 or YYYY-MM-DD"})
	} else {
		input.MeetingDate = t
	}

	if req.BriefDueDate != nil {
		if t, err := parseTimestamp(*req.BriefDueDate); err != nil {
			validationErrors = append(validationErrors, ValidationError{Field: "briefDueDate", Message: "Must be RFC 3339 or YYYY-MM-DD"})
		} else {
			input.BriefDueDate = &t
		}
	}
	if req.ExpectedPODate != nil {
		if t, err := parseTimestamp(*req.ExpectedPODate); err != nil {
			validationErrors = append(validationErrors, ValidationError{Field: "expectedPODate", Message: "Must be RFC 3339 or YYYY-MM-DD"})
		} else {
			input.ExpectedPODate = &t
		}
	}
	if req.BriefProductType != nil {
		bt := domain.BriefProductType(*req.BriefProductType)
		input.BriefProductType = &bt
	}

	return input, validationErrors
}

// ListActivities handles GET /api/v1/activities
// Query params: customerId, type
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	var filters domain.ActivityFilters
	if customerID := c.QueryParam("customerId"); customerID != "" {
		filters.CustomerID = &customerID
	}
	if activityType := c.QueryParam("type"); activityType != "" {
		at := domain.ActivityType(activityType)
		if !at.Valid() {
			return NewValidationError(c, "Unknown activity type", []ValidationError{{Field: "type", Message: "Unknown activity type"}})
		}
		filters.ActivityType = &at
	}

	activities, err := h.activityService.List(&filters)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list activities")
		return NewInternalError(c, "Failed to list activities")
	}
	return c.JSON(http.StatusOK, activities)
}

// GetActivity handles GET /api/v1/activities/:id
func (h *ActivityHandler) GetActivity(c echo.Context) error {
	activity, err := h.activityService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return NewNotFoundError(c, "Activity not found")
		}
		log.Error().Err(err).Str("activity_id", c.Param("id")).Msg("Failed to get activity")
		return NewInternalError(c, "Failed to get activity")
	}
	return c.JSON(http.StatusOK, activity)
}

// CreateActivity handles POST /api/v1/activities
func (h *ActivityHandler) CreateActivity(c echo.Context) error {
	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, validationErrors := req.toInput()
	if len(validationErrors) > 0 {
		return NewValidationError(c, "Invalid activity", validationErrors)
	}

	activity, err := h.activityService.Create(input)
	if err != nil {
		return h.mapActivityError(c, err, "Failed to create activity")
	}
	return c.JSON(http.StatusCreated, activity)
}

// UpdateActivity handles PUT /api/v1/activities/:id
func (h *ActivityHandler) UpdateActivity(c echo.Context) error {
	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, validationErrors := req.toInput()
	if len(validationErrors) > 0 {
		return NewValidationError(c, "Invalid activity", validationErrors)
	}

	activity, err := h.activityService.Update(c.Param("id"), input)
	if err != nil {
		return h.mapActivityError(c, err, "Failed to update activity")
	}
	return c.JSON(http.StatusOK, activity)
}

// DeleteActivity handles DELETE /api/v1/activities/:id
func (h *ActivityHandler) DeleteActivity(c echo.Context) error {
	if err := h.activityService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			return NewNotFoundError(c, "Activity not found")
		}
		log.Error().Err(err).Str("activity_id", c.Param("id")).Msg("Failed to delete activity")
		return NewInternalError(c, "Failed to delete activity")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ActivityHandler) mapActivityError(c echo.Context, err error, internalDetail string) error {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return NewNotFoundError(c, "Activity not found")
	case errors.Is(err, domain.ErrCustomerNotFound):
		return NewValidationError(c, "Unknown customer", []ValidationError{{Field: "customerId", Message: "Unknown customer"}})
	case errors.Is(err, domain.ErrCustomerRequired):
		return NewValidationError(c, "Customer is required", []ValidationError{{Field: "customerId", Message: "Required"}})
	case errors.Is(err, domain.ErrMeetingDateRequired):
		return NewValidationError(c, "Meeting date is required", []ValidationError{{Field: "meetingDate", Message: "Required"}})
	case errors.Is(err, domain.ErrInvalidActivityType):
		return NewValidationError(c, "Unknown activity type", []ValidationError{{Field: "activityType", Message: "Unknown activity type"}})
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Invalid activity", nil)
	default:
		log.Error().Err(err).Msg(internalDetail)
		return NewInternalError(c, internalDetail)
	}
}

// parseTimestamp accepts RFC 3339 timestamps and plain dates.
func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
