package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo is an in-memory ProductRepository.
type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64

	deleteErr error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[int64]*entity.Product), nextID: 1}
	for _, product := range products {
		repo.products[product.ID] = product
		if product.ID >= repo.nextID {
			repo.nextID = product.ID + 1
		}
	}

	return repo
}

func (f *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	result := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		result = append(result, product)
	}

	return result, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return product, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = product

	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	f.products[product.ID] = product

	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)

	return nil
}

func newProductService(repo repository.ProductRepository) usecase.ProductUsecase {
	return NewProductService(ProductServiceParams{
		ProductRepo: repo,
		Logger:      newDiscardLogger(),
	})
}

func TestProductService_CreateDefaultsActive(t *testing.T) {
	repo := newFakeProductRepo()
	service := newProductService(repo)

	product, err := service.Create(context.Background(), &usecase.ProductInput{
		Name:          "Espresso",
		Price:         3.5,
		PurchasePrice: 1.2,
	})

	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.True(t, product.Active)
}

func TestProductService_CreateInactive(t *testing.T) {
	inactive := false
	service := newProductService(newFakeProductRepo())

	product, err := service.Create(context.Background(), &usecase.ProductInput{
		Name:   "Seasonal special",
		Active: &inactive,
	})

	require.NoError(t, err)
	assert.False(t, product.Active)
}

func TestProductService_UpdateFullReplace(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: 1, Name: "Espresso", Price: 3.5, Active: true})
	service := newProductService(repo)

	product, err := service.Update(context.Background(), 1, &usecase.ProductInput{
		Name:  "Double espresso",
		Price: 4.5,
	})

	require.NoError(t, err)
	assert.Equal(t, "Double espresso", product.Name)
	assert.Equal(t, 4.5, product.Price)
	// Active is untouched when the input omits it.
	assert.True(t, product.Active)
}

func TestProductService_UpdateNotFound(t *testing.T) {
	service := newProductService(newFakeProductRepo())

	_, err := service.Update(context.Background(), 9, &usecase.ProductInput{Name: "Ghost"})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_GetNotFound(t *testing.T) {
	service := newProductService(newFakeProductRepo())

	_, err := service.Get(context.Background(), 9)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_Delete(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: 1, Name: "Espresso"})
	service := newProductService(repo)

	require.NoError(t, service.Delete(context.Background(), 1))
	assert.Empty(t, repo.products)
}

func TestProductService_DeleteReferenced(t *testing.T) {
	repo := newFakeProductRepo(&entity.Product{ID: 1, Name: "Espresso"})
	repo.deleteErr = repository.ErrProductReferenced
	service := newProductService(repo)

	err := service.Delete(context.Background(), 1)

	// Referenced products surface as a conflict, not an internal error.
	assert.True(t, errors.Is(err, domainerrors.ErrDeleteRestricted))
}

func TestProductService_DeleteNotFound(t *testing.T) {
	service := newProductService(newFakeProductRepo())

	err := service.Delete(context.Background(), 9)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
