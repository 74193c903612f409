package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// DashboardSummary aggregates everything the dashboard widget renders
// for one date range.
type DashboardSummary struct {
	KPIs        *entity.KPISummary     `json:"kpis"`
	Series      []*entity.SeriesPoint  `json:"series"`
	TopProducts []*entity.ProductRank  `json:"topProducts"`
	TopOffers   []*entity.OfferRank    `json:"topOffers"`
}

// ReportUsecase defines the interface for the reporting engine.
type ReportUsecase interface {
	// Summary resolves the inclusive calendar-date range and computes
	// KPIs, the daily revenue series, and the top rankings over it.
	Summary(ctx context.Context, fromISO, toISO string) (*DashboardSummary, error)
}
