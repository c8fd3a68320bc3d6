package domain

import "time"

type OrderStatus string

const (
	OrderStatusOpen         OrderStatus = "Open"
	OrderStatusInProduction OrderStatus = "In Production"
	OrderStatusShipped      OrderStatus = "Shipped"
	OrderStatusClosed       OrderStatus = "Closed"
)

// Order is a confirmed purchase order. Orders are read-only inputs to the
// metrics engine.
type Order struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customerId"`
	PONumber      string      `json:"poNumber"`
	Value         Money       `json:"value"`
	PromiseDate   time.Time   `json:"promiseDate"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	SalespersonID string      `json:"salespersonId"`
}

// IsOpen reports whether the order still counts as pipeline. Shipped and
// Closed orders are done; Open and In Production are not.
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen || o.Status == OrderStatusInProduction
}

// IsOverdue reports whether an open order has slipped past its promise date.
func (o *Order) IsOverdue(reference time.Time) bool {
	return o.IsOpen() && o.PromiseDate.Before(reference)
}

// OrderRepository provides read access to orders.
type OrderRepository interface {
	GetAll() ([]*Order, error)
	GetByCustomer(customerID string) ([]*Order, error)
}
