package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// OfferInput defines the data for creating or updating an offer,
// including its full product membership.
type OfferInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Active      *bool   `json:"active"`
	ProductIDs  []int64 `json:"productIds"`
}

// OfferUsecase defines the interface for offer operations. Mutations
// write the offer row and its membership join rows atomically.
type OfferUsecase interface {
	List(ctx context.Context) ([]*entity.Offer, error)
	Get(ctx context.Context, id int64) (*entity.Offer, error)
	Create(ctx context.Context, input *OfferInput) (*entity.Offer, error)
	Update(ctx context.Context, id int64, input *OfferInput) (*entity.Offer, error)
	Delete(ctx context.Context, id int64) error
}
