package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(migratePlaintext, overwriteLegacy bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			MigratePlaintext: migratePlaintext,
			OverwriteLegacy:  overwriteLegacy,
		},
	}
}

// fakeUserRepo is an in-memory UserRepository that records credential
// writes so tests can assert on the upgrade path taken.
type fakeUserRepo struct {
	users map[string]*entity.User

	lastLoginCalls int
	lastLoginErr   error

	hashWrites   []string
	hashWriteErr error

	legacyWrites   []string
	legacyWriteErr error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		repo.users[user.Username] = user
	}

	return repo
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID, _ time.Time) error {
	f.lastLoginCalls++

	return f.lastLoginErr
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, _ uuid.UUID, hash string) error {
	if f.hashWriteErr != nil {
		return f.hashWriteErr
	}
	f.hashWrites = append(f.hashWrites, hash)

	return nil
}

func (f *fakeUserRepo) UpdateLegacyPassword(_ context.Context, _ uuid.UUID, value string) error {
	if f.legacyWriteErr != nil {
		return f.legacyWriteErr
	}
	f.legacyWrites = append(f.legacyWrites, value)

	return nil
}

// stubVerifier accepts a single password and hashes to a fixed value.
type stubVerifier struct {
	accept  string
	hash    string
	hashErr error
}

func (s *stubVerifier) Verify(password string, _ *entity.User) bool {
	return password == s.accept
}

func (s *stubVerifier) Hash(_ string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}

	return s.hash, nil
}

// stubTokenService issues a fixed token.
type stubTokenService struct {
	token string
	err   error
}

func (s *stubTokenService) Issue(_ uuid.UUID, _ string) (string, error) {
	return s.token, s.err
}

func (s *stubTokenService) Verify(_ string) (*service.Claims, error) {
	panic("not used in these tests")
}

// fakeSaleRepo records the filter it was searched with.
type fakeSaleRepo struct {
	lastFilter repository.SaleFilter

	total   int64
	sales   []*entity.Sale
	details []*entity.SaleDetail

	searchErr  error
	findErr    error
	detailsErr error
}

func (f *fakeSaleRepo) Search(_ context.Context, filter repository.SaleFilter) (int64, []*entity.Sale, error) {
	f.lastFilter = filter
	if f.searchErr != nil {
		return 0, nil, f.searchErr
	}

	return f.total, f.sales, nil
}

func (f *fakeSaleRepo) FindByID(_ context.Context, id int64) (*entity.Sale, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, sale := range f.sales {
		if sale.ID == id {
			return sale, nil
		}
	}

	return nil, repository.ErrSaleNotFound
}

func (f *fakeSaleRepo) FindDetails(_ context.Context, _ int64) ([]*entity.SaleDetail, error) {
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}

	return f.details, nil
}

// fakeReportRepo returns canned aggregates and records the range used.
type fakeReportRepo struct {
	lastRange entity.DateRange
	lastLimit int

	revenue     float64
	count       int64
	profit      float64
	series      []*entity.SeriesPoint
	topProducts []*entity.ProductRank
	topOffers   []*entity.OfferRank

	totalsErr      error
	profitErr      error
	seriesErr      error
	topProductsErr error
	topOffersErr   error
}

func (f *fakeReportRepo) SalesTotals(_ context.Context, r entity.DateRange) (float64, int64, error) {
	f.lastRange = r

	return f.revenue, f.count, f.totalsErr
}

func (f *fakeReportRepo) Profit(_ context.Context, r entity.DateRange) (float64, error) {
	f.lastRange = r

	return f.profit, f.profitErr
}

func (f *fakeReportRepo) DailyRevenue(_ context.Context, r entity.DateRange) ([]*entity.SeriesPoint, error) {
	f.lastRange = r

	return f.series, f.seriesErr
}

func (f *fakeReportRepo) TopProducts(_ context.Context, r entity.DateRange, limit int) ([]*entity.ProductRank, error) {
	f.lastRange = r
	f.lastLimit = limit

	return f.topProducts, f.topProductsErr
}

func (f *fakeReportRepo) TopOffers(_ context.Context, r entity.DateRange, limit int) ([]*entity.OfferRank, error) {
	f.lastRange = r
	f.lastLimit = limit

	return f.topOffers, f.topOffersErr
}
