package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lineAmountExpr is the effective amount of one sold line item: the
// precomputed line total when stored, otherwise price times quantity.
const lineAmountExpr = "COALESCE(d.line_total, d.price * d.quantity)"

// reportRepository implements the repository.ReportRepository interface
// with read-only aggregate queries.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// SalesTotals returns the revenue sum and sale count for the range.
func (repo *reportRepository) SalesTotals(ctx context.Context, r entity.DateRange) (float64, int64, error) {
	var row struct {
		Revenue    float64
		SalesCount int64
	}

	err := repo.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0) AS revenue,
		       COUNT(*)                       AS sales_count
		FROM sales
		WHERE sold_at >= ? AND sold_at < ?`,
		r.Start, r.End,
	).Scan(&row).Error
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to aggregate sales totals")
	}

	return row.Revenue, row.SalesCount, nil
}

// Profit sums (line amount - purchase cost) over sold line items in the
// range. The LEFT JOIN makes a deleted product contribute a zero
// purchase price instead of dropping the row.
func (repo *reportRepository) Profit(ctx context.Context, r entity.DateRange) (float64, error) {
	var profit float64

	err := repo.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(`+lineAmountExpr+` - COALESCE(p.purchase_price, 0) * d.quantity), 0)
		FROM sale_details d
		JOIN sales s ON s.id = d.sale_id
		LEFT JOIN products p ON p.id = d.product_id
		WHERE s.sold_at >= ? AND s.sold_at < ?`,
		r.Start, r.End,
	).Scan(&profit).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to aggregate profit")
	}

	return profit, nil
}

// DailyRevenue groups revenue by calendar day, ascending.
func (repo *reportRepository) DailyRevenue(ctx context.Context, r entity.DateRange) ([]*entity.SeriesPoint, error) {
	var rows []struct {
		Day     time.Time
		Revenue float64
	}

	err := repo.db.WithContext(ctx).Raw(`
		SELECT sold_at::date               AS day,
		       COALESCE(SUM(total_amount), 0) AS revenue
		FROM sales
		WHERE sold_at >= ? AND sold_at < ?
		GROUP BY sold_at::date
		ORDER BY day ASC`,
		r.Start, r.End,
	).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily revenue")
	}

	series := make([]*entity.SeriesPoint, 0, len(rows))
	for _, row := range rows {
		series = append(series, &entity.SeriesPoint{
			Date:    row.Day.Format("2006-01-02"),
			Revenue: row.Revenue,
		})
	}

	return series, nil
}

// TopProducts ranks sold products by revenue. Line items whose product
// no longer exists group by their raw product reference under a
// synthesized placeholder name. The secondary order on product id makes
// revenue ties deterministic but is not contractual.
func (repo *reportRepository) TopProducts(ctx context.Context, r entity.DateRange, limit int) ([]*entity.ProductRank, error) {
	var rows []struct {
		ProductID int64
		Name      string
		Quantity  float64
		Revenue   float64
	}

	err := repo.db.WithContext(ctx).Raw(`
		SELECT d.product_id                                     AS product_id,
		       COALESCE(p.name, 'Product #' || d.product_id)    AS name,
		       COALESCE(SUM(d.quantity), 0)                     AS quantity,
		       COALESCE(SUM(`+lineAmountExpr+`), 0)             AS revenue
		FROM sale_details d
		JOIN sales s ON s.id = d.sale_id
		LEFT JOIN products p ON p.id = d.product_id
		WHERE s.sold_at >= ? AND s.sold_at < ?
		GROUP BY d.product_id, p.name
		ORDER BY revenue DESC, d.product_id ASC
		LIMIT ?`,
		r.Start, r.End, limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top products")
	}

	ranks := make([]*entity.ProductRank, 0, len(rows))
	for _, row := range rows {
		ranks = append(ranks, &entity.ProductRank{
			ProductID: row.ProductID,
			Name:      row.Name,
			Quantity:  row.Quantity,
			Revenue:   row.Revenue,
		})
	}

	return ranks, nil
}

// TopOffers ranks offers by membership attribution: every sold line
// item whose product belongs to an offer counts toward that offer, so
// an item in several offers is counted once per offer.
func (repo *reportRepository) TopOffers(ctx context.Context, r entity.DateRange, limit int) ([]*entity.OfferRank, error) {
	var rows []struct {
		OfferID  int64
		Name     string
		Quantity float64
		Revenue  float64
	}

	err := repo.db.WithContext(ctx).Raw(`
		SELECT o.id                                 AS offer_id,
		       o.name                               AS name,
		       COALESCE(SUM(d.quantity), 0)         AS quantity,
		       COALESCE(SUM(`+lineAmountExpr+`), 0) AS revenue
		FROM sale_details d
		JOIN sales s ON s.id = d.sale_id
		JOIN offer_products op ON op.product_id = d.product_id
		JOIN offers o ON o.id = op.offer_id
		WHERE s.sold_at >= ? AND s.sold_at < ?
		GROUP BY o.id, o.name
		ORDER BY revenue DESC, o.id ASC
		LIMIT ?`,
		r.Start, r.End, limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate top offers")
	}

	ranks := make([]*entity.OfferRank, 0, len(rows))
	for _, row := range rows {
		ranks = append(ranks, &entity.OfferRank{
			OfferID:  row.OfferID,
			Name:     row.Name,
			Quantity: row.Quantity,
			Revenue:  row.Revenue,
		})
	}

	return ranks, nil
}
