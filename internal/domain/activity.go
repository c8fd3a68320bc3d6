package domain

import "time"

type ActivityType string

const (
	ActivityInPersonMeeting  ActivityType = "In person meeting"
	ActivityLeadershipCall   ActivityType = "Kama Leadership calls"
	ActivityReplenishment    ActivityType = "Replenishment"
	ActivityPDBriefsReceived ActivityType = "PD - Briefs received"
	ActivityStoreVisit       ActivityType = "Store visits"
	ActivityMumbaiVisit      ActivityType = "Mumbai office visit"
	ActivityOther            ActivityType = "Other"
)

// ActivityTypes lists every valid activity type.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityInPersonMeeting,
		ActivityLeadershipCall,
		ActivityReplenishment,
		ActivityPDBriefsReceived,
		ActivityStoreVisit,
		ActivityMumbaiVisit,
		ActivityOther,
	}
}

// Valid reports whether t is a known activity type.
func (t ActivityType) Valid() bool {
	for _, at := range ActivityTypes() {
		if t == at {
			return true
		}
	}
	return false
}

type BriefProductType string

const (
	BriefProductRing      BriefProductType = "Ring"
	BriefProductEarring   BriefProductType = "Earring"
	BriefProductPendant   BriefProductType = "Pendant"
	BriefProductSets      BriefProductType = "Sets"
	BriefProductNecklaces BriefProductType = "Necklaces"
)

// OutcomeQuoteSent is the activity outcome the metrics engine correlates with
// later orders to infer pending quotations.
const OutcomeQuoteSent = "Quote sent"

// Activity is one logged customer interaction. Beyond the common fields, each
// activity type carries its own optional detail fields.
type Activity struct {
	ID           string       `json:"id"`
	MeetingDate  time.Time    `json:"meetingDate"`
	CustomerID   string       `json:"customerId"`
	ActivityType ActivityType `json:"activityType"`
	Attendees    *string      `json:"attendees,omitempty"`
	Program      *string      `json:"program,omitempty"`
	Notes        *string      `json:"notes,omitempty"`
	Outcome      *string      `json:"outcome,omitempty"`
	Location     *string      `json:"location,omitempty"`

	// PD brief fields
	BriefDueDate         *time.Time        `json:"briefDueDate,omitempty"`
	AssignedMerchandizer *string           `json:"assignedMerchandizer,omitempty"`
	MetalWt              *string           `json:"metalWt,omitempty"`
	DiamondWt            *string           `json:"diamondWt,omitempty"`
	BriefProductType     *BriefProductType `json:"briefProductType,omitempty"`

	// Replenishment fields
	ReplenishmentSKUs *string    `json:"replenishmentSkus,omitempty"`
	ExpectedPODate    *time.Time `json:"expectedPODate,omitempty"`

	// Store visit fields
	StoreName *string `json:"storeName,omitempty"`
	City      *string `json:"city,omitempty"`

	// Leadership call fields
	LeadershipMember *string `json:"leadershipMember,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// IsQuoteSent reports whether this activity recorded a quote going out.
func (a *Activity) IsQuoteSent() bool {
	return a.Outcome != nil && *a.Outcome == OutcomeQuoteSent
}

// Validate checks the fields every activity must carry.
func (a *Activity) Validate() error {
	if a.CustomerID == "" {
		return ErrCustomerRequired
	}
	if a.MeetingDate.IsZero() {
		return ErrMeetingDateRequired
	}
	if !a.ActivityType.Valid() {
		return ErrInvalidActivityType
	}
	if a.Notes != nil && len(*a.Notes) > MaxNotesLength {
		return ErrInvalidInput
	}
	if a.Outcome != nil && len(*a.Outcome) > MaxOutcomeLength {
		return ErrInvalidInput
	}
	return nil
}

// ActivityFilters narrows activity listings.
type ActivityFilters struct {
	CustomerID   *string
	ActivityType *ActivityType
}

// ActivityRepository provides reads and the activity log mutations.
type ActivityRepository interface {
	GetAll(filters *ActivityFilters) ([]*Activity, error)
	GetByID(id string) (*Activity, error)
	Create(activity *Activity) (*Activity, error)
	Update(activity *Activity) (*Activity, error)
	Delete(id string) error
}
