package postgres

import (
	"context"
	"strconv"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// saleRow carries the joined username alongside the sale columns.
type saleRow struct {
	model.SaleModel
	Username *string
}

// Search returns the total match count and one page of sales. Count and
// page run as two queries over the identical predicate so they stay
// consistent under the store's snapshot semantics.
func (repo *saleRepository) Search(ctx context.Context, filter repository.SaleFilter) (int64, []*entity.Sale, error) {
	base := repo.searchPredicate(ctx, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, errors.Wrap(err, "failed to count sales")
	}

	var rows []saleRow
	if err := repo.searchPredicate(ctx, filter).
		Select("sales.*, users.username AS username").
		Order("sales.sold_at DESC, sales.id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&rows).Error; err != nil {
		return 0, nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(rows))
	for i := range rows {
		sales = append(sales, toSaleDomain(&rows[i]))
	}

	return total, sales, nil
}

// searchPredicate builds the shared filtered query for count and page.
func (repo *saleRepository) searchPredicate(ctx context.Context, filter repository.SaleFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Joins("LEFT JOIN users ON users.id = sales.user_id").
		Where("sales.sold_at >= ? AND sales.sold_at < ?", filter.Range.Start, filter.Range.End)

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		if id, err := strconv.ParseInt(filter.Query, 10, 64); err == nil {
			query = query.Where(
				"sales.notes ILIKE ? OR users.username ILIKE ? OR sales.id = ?",
				like, like, id,
			)
		} else {
			query = query.Where(
				"sales.notes ILIKE ? OR users.username ILIKE ?",
				like, like,
			)
		}
	}

	return query
}

// FindByID retrieves a single sale with its seller's username resolved.
func (repo *saleRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var row saleRow

	err := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("sales.*, users.username AS username").
		Joins("LEFT JOIN users ON users.id = sales.user_id").
		Where("sales.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&row), nil
}

// FindDetails retrieves the line items of a sale.
func (repo *saleRepository) FindDetails(ctx context.Context, saleID int64) ([]*entity.SaleDetail, error) {
	var detailModels []*model.SaleDetailModel

	if err := repo.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("id").
		Find(&detailModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sale details")
	}

	details := make([]*entity.SaleDetail, 0, len(detailModels))
	for _, detailM := range detailModels {
		details = append(details, toSaleDetailDomain(detailM))
	}

	return details, nil
}

// toSaleDomain converts a joined sale row to a domain Sale entity.
func toSaleDomain(row *saleRow) *entity.Sale {
	sale := &entity.Sale{
		ID:          row.ID,
		TotalAmount: row.TotalAmount,
		SoldAt:      row.SoldAt,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
	}
	if row.UserID != nil {
		id := *row.UserID
		sale.UserID = &id
	}
	if row.Username != nil {
		sale.Username = *row.Username
	}

	return sale
}

// toSaleDetailDomain converts a GORM SaleDetailModel to a domain entity.
func toSaleDetailDomain(data *model.SaleDetailModel) *entity.SaleDetail {
	return &entity.SaleDetail{
		ID:        data.ID,
		SaleID:    data.SaleID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Price:     data.Price,
		LineTotal: data.LineTotal,
	}
}
