package impl

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Pagination bounds for the sales listing.
const (
	defaultSalesLimit = 20
	maxSalesLimit     = 100
	maxSalesOffset    = 1_000_000
)

// salesService implements the SalesUsecase interface.
type salesService struct {
	saleRepo repository.SaleRepository
	logger   *slog.Logger
}

// SalesServiceParams holds dependencies for salesService, injected by Fx.
type SalesServiceParams struct {
	fx.In

	SaleRepo repository.SaleRepository
	Logger   *slog.Logger
}

// NewSalesService is the constructor for salesService.
func NewSalesService(params SalesServiceParams) usecase.SalesUsecase {
	return &salesService{
		saleRepo: params.SaleRepo,
		logger:   params.Logger,
	}
}

// List returns one filtered page of sales plus the total match count.
func (srv *salesService) List(ctx context.Context, input *usecase.SalesListInput) (*usecase.SalesListOutput, error) {
	dateRange, err := entity.ResolveDateRange(input.FromISO, input.ToISO)
	if err != nil {
		return nil, err
	}

	filter := repository.SaleFilter{
		Range:  dateRange,
		Query:  strings.TrimSpace(input.Query),
		Limit:  clamp(input.Limit, 1, maxSalesLimit, defaultSalesLimit),
		Offset: clamp(input.Offset, 0, maxSalesOffset, 0),
	}

	total, sales, err := srv.saleRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search sales")
	}

	items := make([]*usecase.SaleView, 0, len(sales))
	for _, sale := range sales {
		items = append(items, usecase.NewSaleView(sale))
	}

	return &usecase.SalesListOutput{
		Total: total,
		Items: items,
	}, nil
}

// Get returns one sale with its line items.
func (srv *salesService) Get(ctx context.Context, id int64) (*usecase.SaleDetailOutput, error) {
	sale, err := srv.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSaleNotFound, "sale lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load sale")
	}

	details, err := srv.saleRepo.FindDetails(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load sale details")
	}

	detailViews := make([]*usecase.SaleDetailView, 0, len(details))
	for _, detail := range details {
		detailViews = append(detailViews, &usecase.SaleDetailView{
			ID:        detail.ID,
			ProductID: detail.ProductID,
			Quantity:  detail.Quantity,
			Price:     detail.Price,
			LineTotal: detail.Amount(),
		})
	}

	return &usecase.SaleDetailOutput{
		Sale:    usecase.NewSaleView(sale),
		Details: detailViews,
	}, nil
}

// clamp bounds v to [min, max], substituting fallback when v is zero or
// below the lower bound with no explicit value semantics.
func clamp(v, min, max, fallback int) int {
	if v == 0 {
		return fallback
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}

	return v
}
