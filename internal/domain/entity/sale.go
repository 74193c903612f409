package entity

import (
	"time"

	"github.com/google/uuid"
)

// Sale is a completed point-of-sale transaction.
type Sale struct {
	ID          int64
	TotalAmount float64
	SoldAt      time.Time
	UserID      *uuid.UUID // Staff member who rang up the sale, when known.
	Username    string     // Resolved for listings; empty when UserID is nil.
	Notes       string
	CreatedAt   time.Time
}

// SaleDetail is one line item of a sale, linking it to a product.
type SaleDetail struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  float64
	Price     float64 // Unit sell price at the time of sale.
	// LineTotal is the precomputed line amount; nil means it was never
	// stored and Price*Quantity applies.
	LineTotal *float64
}

// Amount returns the effective line amount.
func (d *SaleDetail) Amount() float64 {
	if d.LineTotal != nil {
		return *d.LineTotal
	}

	return d.Price * d.Quantity
}
