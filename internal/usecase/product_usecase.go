package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ProductInput defines the data for creating or updating a product.
type ProductInput struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	PurchasePrice float64 `json:"purchasePrice" validate:"gte=0"`
	Stock         float64 `json:"stock"`
	Active        *bool   `json:"active"`
}

// ProductUsecase defines the interface for product catalog operations.
type ProductUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id int64, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
