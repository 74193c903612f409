package repository

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ReportRepository issues the read-only aggregate queries behind the
// dashboard. All methods take a resolved half-open range and never
// mutate state.
type ReportRepository interface {
	// SalesTotals returns the revenue sum and sale count for the range.
	SalesTotals(ctx context.Context, r entity.DateRange) (revenue float64, count int64, err error)

	// Profit sums (line amount - purchase cost) over sold line items in
	// the range. Line items whose product was deleted contribute a zero
	// purchase price, not an error.
	Profit(ctx context.Context, r entity.DateRange) (float64, error)

	// DailyRevenue groups revenue by calendar day, ascending. Days with
	// no sales are absent from the result.
	DailyRevenue(ctx context.Context, r entity.DateRange) ([]*entity.SeriesPoint, error)

	// TopProducts ranks sold products by revenue, descending, up to limit.
	TopProducts(ctx context.Context, r entity.DateRange, limit int) ([]*entity.ProductRank, error)

	// TopOffers ranks offers by the revenue of sold line items whose
	// product belongs to them, descending, up to limit.
	TopOffers(ctx context.Context, r entity.DateRange, limit int) ([]*entity.OfferRank, error)
}
