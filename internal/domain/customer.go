package domain

// Customer is a trading account. Each customer bills in exactly one currency
// and is assigned to one salesperson; the assignment is the only mutable
// field and changes through an admin action.
type Customer struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Region            string   `json:"region"`
	Currency          Currency `json:"currency"`
	PaymentTerms      string   `json:"paymentTerms"`
	SalespersonID     string   `json:"salespersonId"`
	PreviousYearSales *Money   `json:"previousYearSales,omitempty"`
}

// CustomerRepository provides reads plus the single admin mutation
// (salesperson reassignment).
type CustomerRepository interface {
	GetAll() ([]*Customer, error)
	GetByID(id string) (*Customer, error)
	UpdateAssignment(customerID, salespersonID string) (*Customer, error)
}
