package domain

import "time"

// FGStock is a finished-goods piece produced against a customer allocation
// and waiting to ship.
type FGStock struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	SKU        string    `json:"sku"`
	Value      Money     `json:"value"`
	ReadySince time.Time `json:"readySince"`
}

// DaysReady returns how many whole days the piece has been sitting ready.
func (s *FGStock) DaysReady(reference time.Time) int {
	days := int(reference.Sub(s.ReadySince).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// FGStockRepository provides read access to finished-goods stock.
type FGStockRepository interface {
	GetAll() ([]*FGStock, error)
	GetByCustomer(customerID string) ([]*FGStock, error)
}
