package domain

import "errors"

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrSalespersonNotFound = errors.New("salesperson not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrProjectionNotFound  = errors.New("projection not found")
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrInvalidFiscalMonth  = errors.New("invalid fiscal month label")
	ErrMeetingDateRequired = errors.New("meeting date is required")
	ErrCustomerRequired    = errors.New("customer is required")
	ErrInvalidActivityType = errors.New("invalid activity type")
)

// Validation constants
const (
	MaxNotesLength   = 2000
	MaxOutcomeLength = 500
)
