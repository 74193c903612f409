package usecase

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
)

// SalesListInput bounds a sales listing request. Limit and Offset may
// arrive out of range; the use case clamps them.
type SalesListInput struct {
	FromISO string
	ToISO   string
	Query   string
	Limit   int
	Offset  int
}

// SaleView is the outward representation of one sale.
type SaleView struct {
	ID          int64     `json:"id"`
	TotalAmount float64   `json:"totalAmount"`
	SoldAt      time.Time `json:"soldAt"`
	Username    string    `json:"username,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// NewSaleView maps a sale entity to its outward representation.
func NewSaleView(sale *entity.Sale) *SaleView {
	return &SaleView{
		ID:          sale.ID,
		TotalAmount: sale.TotalAmount,
		SoldAt:      sale.SoldAt,
		Username:    sale.Username,
		Notes:       sale.Notes,
	}
}

// SaleDetailView is the outward representation of one line item.
type SaleDetailView struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"lineTotal"`
}

// SalesListOutput returns the total match count and one page of sales.
type SalesListOutput struct {
	Total int64       `json:"total"`
	Items []*SaleView `json:"items"`
}

// SaleDetailOutput returns a single sale with its line items.
type SaleDetailOutput struct {
	Sale    *SaleView         `json:"sale"`
	Details []*SaleDetailView `json:"details"`
}

// SalesUsecase defines the interface for sales listing operations.
type SalesUsecase interface {
	List(ctx context.Context, input *SalesListInput) (*SalesListOutput, error)
	Get(ctx context.Context, id int64) (*SaleDetailOutput, error)
}
