package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrOfferNotFound is returned when no offer matches the lookup.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository provides CRUD access to offers and their product
// membership. Mutations touch two tables (offers and offer_products)
// and must run inside a transaction via TransactionManager.
type OfferRepository interface {
	List(ctx context.Context) ([]*entity.Offer, error)
	FindByID(ctx context.Context, id int64) (*entity.Offer, error)
	Create(ctx context.Context, offer *entity.Offer) error
	Update(ctx context.Context, offer *entity.Offer) error
	Delete(ctx context.Context, id int64) error

	// ReplaceProducts rewrites the offer's membership join rows.
	ReplaceProducts(ctx context.Context, offerID int64, productIDs []int64) error
}
