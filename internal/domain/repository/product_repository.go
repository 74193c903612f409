package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// Sentinel errors surfaced by catalog repositories.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductReferenced = errors.New("product is referenced by other records")
)

// ProductRepository provides CRUD access to catalog products.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
