package entity

import "time"

// Product is a sellable catalog item.
type Product struct {
	ID            int64
	Name          string
	Description   string
	Price         float64 // Current sell price.
	PurchasePrice float64 // Cost price used for profit reporting.
	Stock         float64
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
