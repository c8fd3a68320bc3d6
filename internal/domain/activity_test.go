package domain

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func TestActivityValidate(t *testing.T) {
	meeting := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		activity Activity
		wantErr  error
	}{
		{
			"valid activity",
			Activity{CustomerID: "c1", MeetingDate: meeting, ActivityType: ActivityInPersonMeeting},
			nil,
		},
		{
			"missing customer",
			Activity{MeetingDate: meeting, ActivityType: ActivityOther},
			ErrCustomerRequired,
		},
		{
			"missing meeting date",
			Activity{CustomerID: "c1", ActivityType: ActivityOther},
			ErrMeetingDateRequired,
		},
		{
			"unknown activity type",
			Activity{CustomerID: "c1", MeetingDate: meeting, ActivityType: "Lunch"},
			ErrInvalidActivityType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.activity.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestActivityIsQuoteSent(t *testing.T) {
	a := &Activity{Outcome: strptr(OutcomeQuoteSent)}
	if !a.IsQuoteSent() {
		t.Error("quote-sent outcome not detected")
	}
	b := &Activity{Outcome: strptr("PO received")}
	if b.IsQuoteSent() {
		t.Error("other outcome misdetected as quote sent")
	}
	c := &Activity{}
	if c.IsQuoteSent() {
		t.Error("nil outcome misdetected as quote sent")
	}
}
