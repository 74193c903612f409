package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrSaleNotFound is returned when no sale matches the lookup.
var ErrSaleNotFound = errors.New("sale not found")

// SaleFilter bounds a sales listing. Limit and Offset arrive already
// clamped by the use case; Query is empty when no free-text search
// applies.
type SaleFilter struct {
	Range  entity.DateRange
	Query  string
	Limit  int
	Offset int
}

// SaleRepository provides read access to sales and their line items.
type SaleRepository interface {
	// Search returns the total match count and one page of sales for the
	// same filtered predicate.
	Search(ctx context.Context, filter SaleFilter) (int64, []*entity.Sale, error)

	FindByID(ctx context.Context, id int64) (*entity.Sale, error)
	FindDetails(ctx context.Context, saleID int64) ([]*entity.SaleDetail, error)
}
