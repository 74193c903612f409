package impl

import (
	"context"
	"log/slog"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// topRankingLimit caps both the product and offer rankings.
const topRankingLimit = 10

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	logger     *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo: params.ReportRepo,
		logger:     params.Logger,
	}
}

// Summary computes the dashboard figures for an inclusive calendar-date
// range. Aggregation is a pure read; no result caching exists.
func (srv *reportService) Summary(ctx context.Context, fromISO, toISO string) (*usecase.DashboardSummary, error) {
	dateRange, err := entity.ResolveDateRange(fromISO, toISO)
	if err != nil {
		return nil, err
	}

	revenue, salesCount, err := srv.reportRepo.SalesTotals(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute sales totals")
	}

	profit, err := srv.reportRepo.Profit(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute profit")
	}

	series, err := srv.reportRepo.DailyRevenue(ctx, dateRange)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute daily revenue")
	}

	topProducts, err := srv.reportRepo.TopProducts(ctx, dateRange, topRankingLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute top products")
	}

	topOffers, err := srv.reportRepo.TopOffers(ctx, dateRange, topRankingLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute top offers")
	}

	kpis := &entity.KPISummary{
		Revenue:    revenue,
		Profit:     profit,
		SalesCount: salesCount,
	}
	if salesCount > 0 {
		kpis.AvgTicket = revenue / float64(salesCount)
	}

	return &usecase.DashboardSummary{
		KPIs:        kpis,
		Series:      series,
		TopProducts: topProducts,
		TopOffers:   topOffers,
	}, nil
}
