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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

func (srv *productService) Create(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		PurchasePrice: input.PurchasePrice,
		Stock:         input.Stock,
		Active:        true,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created", slog.Int64("productID", product.ID))

	return product, nil
}

func (srv *productService) Update(ctx context.Context, id int64, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.PurchasePrice = input.PurchasePrice
	product.Stock = input.Stock
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete removes a product; historical sale line items keep their raw
// product reference and keep reporting under a placeholder name.
func (srv *productService) Delete(ctx context.Context, id int64) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrProductNotFound):
			return errors.Wrap(domainerrors.ErrProductNotFound, "product delete failed")
		case errors.Is(err, repository.ErrProductReferenced):
			return errors.Wrap(domainerrors.ErrDeleteRestricted, "product delete failed")
		default:
			return errors.Wrap(err, "failed to delete product")
		}
	}

	srv.logger.Info("Product deleted", slog.Int64("productID", id))

	return nil
}
