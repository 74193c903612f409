package entity

import "time"

// Offer groups products under a promotional bundle. Membership lives in
// a join table written atomically with the offer row itself.
type Offer struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Active      bool
	ProductIDs  []int64 // Member products; order is not significant.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
