package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
// Multi-table mutations (offer row plus membership rows) are composed by
// the use case inside TransactionManager.Execute; this repository only
// issues the individual statements.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// List retrieves all offers with their product membership preloaded.
func (repo *offerRepository) List(ctx context.Context) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Products").
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// FindByID retrieves a single offer with its product membership.
func (repo *offerRepository) FindByID(ctx context.Context, id int64) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Preload("Products").
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// Create persists the offer row only; membership rows follow through
// ReplaceProducts within the same transaction.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBadRequest.WrapMessage("missing required offer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Update modifies the offer row only.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", offer.ID).
		Updates(map[string]any{
			"name":        offer.Name,
			"description": offer.Description,
			"price":       offer.Price,
			"active":      offer.Active,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// Delete removes the offer row and its membership rows.
func (repo *offerRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("offer_id = ?", id).
		Delete(&model.OfferProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete offer membership")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// ReplaceProducts rewrites the offer's membership join rows.
func (repo *offerRepository) ReplaceProducts(ctx context.Context, offerID int64, productIDs []int64) error {
	if err := repo.db.WithContext(ctx).
		Where("offer_id = ?", offerID).
		Delete(&model.OfferProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear offer membership")
	}

	if len(productIDs) == 0 {
		return nil
	}

	rows := make([]model.OfferProductModel, 0, len(productIDs))
	for _, productID := range productIDs {
		rows = append(rows, model.OfferProductModel{
			OfferID:   offerID,
			ProductID: productID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBadRequest.WrapMessage("duplicate product in offer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to write offer membership")
	}

	return nil
}

// toOfferDomain converts a GORM OfferModel to a domain entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	productIDs := make([]int64, 0, len(data.Products))
	for _, member := range data.Products {
		productIDs = append(productIDs, member.ProductID)
	}

	return &entity.Offer{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Active:      data.Active,
		ProductIDs:  productIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromOfferDomain converts a domain entity to a GORM OfferModel. The
// membership rows are written separately via ReplaceProducts.
func fromOfferDomain(offer *entity.Offer) *model.OfferModel {
	return &model.OfferModel{
		ID:          offer.ID,
		Name:        offer.Name,
		Description: offer.Description,
		Price:       offer.Price,
		Active:      offer.Active,
	}
}
