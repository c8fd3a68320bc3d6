package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a billed amount against a customer. Amount and PaidAmount are
// always in the same currency.
type Invoice struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	IssueDate     time.Time `json:"issueDate"`
	DueDate       time.Time `json:"dueDate"`
	Amount        Money     `json:"amount"`
	PaidAmount    Money     `json:"paidAmount"`
	SalespersonID string    `json:"salespersonId"`
}

// Outstanding returns the unpaid balance in the invoice's own currency.
// Overpayments (a data error) clamp to zero so they never reduce a
// receivables total.
func (i *Invoice) Outstanding() Money {
	out := i.Amount.Amount.Sub(i.PaidAmount.Amount)
	if out.LessThan(decimal.Zero) {
		out = decimal.Zero
	}
	return Money{Amount: out, Currency: i.Amount.Currency}
}

// InvoiceRepository provides read access to invoices.
type InvoiceRepository interface {
	GetAll() ([]*Invoice, error)
	GetByCustomer(customerID string) ([]*Invoice, error)
}
