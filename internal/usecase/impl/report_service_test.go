package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportService(repo *fakeReportRepo) usecase.ReportUsecase {
	return NewReportService(ReportServiceParams{
		ReportRepo: repo,
		Logger:     newDiscardLogger(),
	})
}

func TestReportService_Summary_KPIMath(t *testing.T) {
	repo := &fakeReportRepo{
		revenue: 150,
		count:   2,
		profit:  60,
		series: []*entity.SeriesPoint{
			{Date: "2024-01-01", Revenue: 100},
			{Date: "2024-01-02", Revenue: 50},
		},
		topProducts: []*entity.ProductRank{{ProductID: 1, Name: "Espresso", Revenue: 90}},
		topOffers:   []*entity.OfferRank{{OfferID: 2, Name: "Breakfast deal", Revenue: 40}},
	}
	service := newReportService(repo)

	summary, err := service.Summary(context.Background(), "2024-01-01", "2024-01-02")

	require.NoError(t, err)
	assert.Equal(t, 150.0, summary.KPIs.Revenue)
	assert.Equal(t, 60.0, summary.KPIs.Profit)
	assert.Equal(t, int64(2), summary.KPIs.SalesCount)
	assert.Equal(t, 75.0, summary.KPIs.AvgTicket)
	assert.Len(t, summary.Series, 2)
	assert.Len(t, summary.TopProducts, 1)
	assert.Len(t, summary.TopOffers, 1)

	// Rankings are capped at ten entries.
	assert.Equal(t, 10, repo.lastLimit)
	// The inclusive end date widens to the following midnight.
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), repo.lastRange.End)
}

func TestReportService_Summary_NoSales(t *testing.T) {
	service := newReportService(&fakeReportRepo{})

	summary, err := service.Summary(context.Background(), "2024-01-01", "2024-01-31")

	require.NoError(t, err)
	// No division by zero: an empty range reports a zero average ticket.
	assert.Equal(t, 0.0, summary.KPIs.AvgTicket)
	assert.Equal(t, int64(0), summary.KPIs.SalesCount)
	assert.Empty(t, summary.Series)
}

func TestReportService_Summary_InvalidRange(t *testing.T) {
	service := newReportService(&fakeReportRepo{})

	_, err := service.Summary(context.Background(), "2024-01-01", "not-a-date")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_DATE_RANGE", appErr.ErrorCode())
}

func TestReportService_Summary_AggregateFailure(t *testing.T) {
	repo := &fakeReportRepo{profitErr: errors.New("statement timeout")}
	service := newReportService(repo)

	summary, err := service.Summary(context.Background(), "2024-01-01", "2024-01-31")

	assert.Nil(t, summary)
	assert.Error(t, err)
}
