package domain

// Salesperson owns a book of customers and is the unit the dashboard can be
// scoped to.
type Salesperson struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SalespersonRepository provides read access to salespeople.
type SalespersonRepository interface {
	GetAll() ([]*Salesperson, error)
	GetByID(id string) (*Salesperson, error)
}
