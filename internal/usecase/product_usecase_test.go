package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) FindActiveByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProdProductRepoMock) SoftDelete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

var _ repo.ProductRepository = (*ProdProductRepoMock)(nil)

// =====================
// Public: List / Detail
// =====================

func TestProductUsecase_ListPublicProducts_InvalidPage(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock))

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestProductUsecase_ListPublicProducts_InvalidLimit(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock))

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestProductUsecase_ListPublicProducts_InvalidSort(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock))

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Sort: "rating"})
	assertErrContains(t, err, "invalid sort")
}

func TestProductUsecase_ListPublicProducts_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	in := usecase.ListProductsInput{Page: 1, Limit: 20, Q: "shirt", Sort: "new"}
	q := repo.ProductListQuery{Page: 1, Limit: 20, Q: "shirt", Sort: "new"}

	compareAt := "1200"
	items := []model.Product{
		{ID: 1, Name: "Shirt", Price: "960", CompareAtPrice: &compareAt, IsActive: true},
	}
	pRepo.On("ListPublic", mock.Anything, q).Return(items, int64(1), nil)

	out, err := uc.ListPublicProducts(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, "₹960", out.Items[0].PriceDisplay)
	assert.Equal(t, int64(20), out.Items[0].SavingsPercent)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_GetProductDetail_NotFound_WhenInactive(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: "10", IsActive: false}, nil)

	_, err := uc.GetProductDetail(context.Background(), 1)
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_GetProductDetail_NotFound_WhenRepoNotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_GetProductDetail_Success(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Price: "150000", IsActive: true}, nil)

	p, err := uc.GetProductDetail(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "₹1,50,000", p.PriceDisplay)
	// no compare-at price, no savings badge
	assert.Equal(t, int64(0), p.SavingsPercent)
}

// =====================
// Admin: delete
// =====================

func TestProductUsecase_AdminDeleteProduct_Unauthorized(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProdProductRepoMock))

	err := uc.AdminDeleteProduct(context.Background(), 0, 1)
	assertErrContains(t, err, "unauthorized")
}

func TestProductUsecase_AdminDeleteProduct_NotFound(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("SoftDelete", mock.Anything, int64(42)).Return(repo.ErrNotFound)

	err := uc.AdminDeleteProduct(context.Background(), 1, 42)
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_AdminDeleteProduct_Success(t *testing.T) {
	pRepo := new(ProdProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("SoftDelete", mock.Anything, int64(42)).Return(nil)

	err := uc.AdminDeleteProduct(context.Background(), 1, 42)
	assert.NoError(t, err)
	pRepo.AssertExpectations(t)
}
