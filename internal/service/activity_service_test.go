package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaops/salesops-backend/internal/domain"
	"github.com/kamaops/salesops-backend/internal/testutil"
)

func newActivityService() (*ActivityService, *testutil.MockActivityRepository, *testutil.MockCustomerRepository, *testutil.MockEventPublisher) {
	activityRepo := testutil.NewMockActivityRepository()
	customerRepo := testutil.NewMockCustomerRepository()
	customerRepo.Add(&domain.Customer{ID: "c1", Name: "Bombay Boutique", Currency: domain.CurrencyINR, SalespersonID: "sp1"})

	svc := NewActivityService(activityRepo, customerRepo)
	publisher := testutil.NewMockEventPublisher()
	svc.SetEventPublisher(publisher)
	return svc, activityRepo, customerRepo, publisher
}

func TestActivityService_Create_Success(t *testing.T) {
	svc, _, _, publisher := newActivityService()

	notes := "Presented the new collection."
	created, err := svc.Create(ActivityInput{
		CustomerID:   "c1",
		MeetingDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ActivityType: domain.ActivityInPersonMeeting,
		Notes:        &notes,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, domain.ActivityInPersonMeeting, created.ActivityType)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, "activity.created", publisher.Events[0].Type)
}

func TestActivityService_Create_ValidationFailures(t *testing.T) {
	svc, _, _, publisher := newActivityService()

	tests := []struct {
		name    string
		input   ActivityInput
		wantErr error
	}{
		{
			name: "missing customer",
			input: ActivityInput{
				MeetingDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				ActivityType: domain.ActivityOther,
			},
			wantErr: domain.ErrCustomerRequired,
		},
		{
			name: "missing meeting date",
			input: ActivityInput{
				CustomerID:   "c1",
				ActivityType: domain.ActivityOther,
			},
			wantErr: domain.ErrMeetingDateRequired,
		},
		{
			name: "unknown activity type",
			input: ActivityInput{
				CustomerID:   "c1",
				MeetingDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				ActivityType: domain.ActivityType("Webinar"),
			},
			wantErr: domain.ErrInvalidActivityType,
		},
		{
			name: "unknown customer",
			input: ActivityInput{
				CustomerID:   "nope",
				MeetingDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				ActivityType: domain.ActivityOther,
			},
			wantErr: domain.ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, publisher.Events)
}

func TestActivityService_Update_PreservesCreatedAt(t *testing.T) {
	svc, activityRepo, _, publisher := newActivityService()

	createdAt := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	activityRepo.Add(&domain.Activity{
		ID:           "a1",
		CustomerID:   "c1",
		MeetingDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		ActivityType: domain.ActivityInPersonMeeting,
		CreatedAt:    createdAt,
	})

	outcome := domain.OutcomeQuoteSent
	updated, err := svc.Update("a1", ActivityInput{
		CustomerID:   "c1",
		MeetingDate:  time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		ActivityType: domain.ActivityInPersonMeeting,
		Outcome:      &outcome,
	})

	require.NoError(t, err)
	assert.Equal(t, "a1", updated.ID)
	assert.True(t, updated.CreatedAt.Equal(createdAt))
	assert.True(t, updated.IsQuoteSent())

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, "activity.updated", publisher.Events[0].Type)
}

func TestActivityService_Update_NotFound(t *testing.T) {
	svc, _, _, _ := newActivityService()

	_, err := svc.Update("missing", ActivityInput{
		CustomerID:   "c1",
		MeetingDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		ActivityType: domain.ActivityOther,
	})

	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestActivityService_Delete(t *testing.T) {
	svc, activityRepo, _, publisher := newActivityService()

	activityRepo.Add(&domain.Activity{
		ID:           "a1",
		CustomerID:   "c1",
		MeetingDate:  time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		ActivityType: domain.ActivityOther,
		CreatedAt:    time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, svc.Delete("a1"))
	assert.ErrorIs(t, svc.Delete("a1"), domain.ErrActivityNotFound)

	require.Len(t, publisher.Events, 1)
	assert.Equal(t, "activity.deleted", publisher.Events[0].Type)
}

func TestActivityService_List_Filters(t *testing.T) {
	svc, activityRepo, customerRepo, _ := newActivityService()
	customerRepo.Add(&domain.Customer{ID: "c2", Name: "Kolkata Creators", Currency: domain.CurrencyINR, SalespersonID: "sp1"})

	activityRepo.Add(&domain.Activity{
		ID: "a1", CustomerID: "c1", ActivityType: domain.ActivityInPersonMeeting,
		MeetingDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	activityRepo.Add(&domain.Activity{
		ID: "a2", CustomerID: "c2", ActivityType: domain.ActivityStoreVisit,
		MeetingDate: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
	})

	all, err := svc.List(nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Newest first.
	assert.Equal(t, "a2", all[0].ID)

	customerID := "c1"
	filtered, err := svc.List(&domain.ActivityFilters{CustomerID: &customerID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a1", filtered[0].ID)

	visits := domain.ActivityStoreVisit
	filtered, err = svc.List(&domain.ActivityFilters{ActivityType: &visits})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a2", filtered[0].ID)
}
