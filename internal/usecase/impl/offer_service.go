package impl

import (
	"context"
	"log/slog"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offerService implements the OfferUsecase interface. Every mutation
// spans the offer row and its membership join rows, so writes run
// through the transaction manager: one connection, one transaction,
// rollback on any failure.
type offerService struct {
	txManager repository.TransactionManager
	offerRepo repository.OfferRepository
	logger    *slog.Logger
}

// OfferServiceParams holds dependencies for offerService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OfferRepo repository.OfferRepository
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		txManager: params.TxManager,
		offerRepo: params.OfferRepo,
		logger:    params.Logger,
	}
}

func (srv *offerService) List(ctx context.Context) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

func (srv *offerService) Get(ctx context.Context, id int64) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "offer lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load offer")
	}

	return offer, nil
}

func (srv *offerService) Create(ctx context.Context, input *usecase.OfferInput) (*entity.Offer, error) {
	offer := &entity.Offer{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Active:      true,
		ProductIDs:  input.ProductIDs,
	}
	if input.Active != nil {
		offer.Active = *input.Active
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		if err := offerRepo.Create(ctx, offer); err != nil {
			return err
		}

		return offerRepo.ReplaceProducts(ctx, offer.ID, input.ProductIDs)
	})
	if err != nil {
		return nil, srv.mapOfferWriteError(err, "failed to create offer")
	}

	srv.logger.Info("Offer created", slog.Int64("offerID", offer.ID))

	return offer, nil
}

func (srv *offerService) Update(ctx context.Context, id int64, input *usecase.OfferInput) (*entity.Offer, error) {
	offer := &entity.Offer{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Active:      true,
		ProductIDs:  input.ProductIDs,
	}
	if input.Active != nil {
		offer.Active = *input.Active
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.OfferRepo()

		if err := offerRepo.Update(ctx, offer); err != nil {
			return err
		}

		return offerRepo.ReplaceProducts(ctx, id, input.ProductIDs)
	})
	if err != nil {
		return nil, srv.mapOfferWriteError(err, "failed to update offer")
	}

	return offer, nil
}

func (srv *offerService) Delete(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OfferRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(domainerrors.ErrOfferNotFound, "offer delete failed")
		}

		return errors.Wrap(err, "failed to delete offer")
	}

	srv.logger.Info("Offer deleted", slog.Int64("offerID", id))

	return nil
}

// mapOfferWriteError converts repository sentinels surfaced from inside
// the transaction into boundary errors.
func (srv *offerService) mapOfferWriteError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrOfferNotFound):
		return errors.Wrap(domainerrors.ErrOfferNotFound, message)
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrBadRequest.WithDetails("offer references a missing product"), message)
	default:
		return errors.Wrap(err, message)
	}
}
