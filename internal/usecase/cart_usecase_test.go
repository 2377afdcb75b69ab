package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/pricing"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindActiveByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CartProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) SoftDelete(ctx context.Context, productID int64) error {
	panic("not used in CartUsecase tests")
}

var _ repo.ProductRepository = (*CartProductRepoMock)(nil)

func TestCartUsecase_Summarize_NilRows(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartProductRepoMock), pricing.CurrentPolicy())

	out, err := uc.Summarize(context.Background(), nil)
	assert.NoError(t, err)
	assert.True(t, out.Summary.Total.IsZero())
	assert.Equal(t, "₹0", out.TotalDisplay)
}

func TestCartUsecase_Summarize_ClientSnapshots(t *testing.T) {
	// rows carrying their own snapshots never hit the repo
	uc := usecase.NewCartUsecase(new(CartProductRepoMock), pricing.CurrentPolicy())

	out, err := uc.Summarize(context.Background(), []usecase.CartLineInput{
		{Quantity: 2, Product: &pricing.ProductSnapshot{Price: "500"}},
	})
	assert.NoError(t, err)
	assert.True(t, out.Summary.Subtotal.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "₹1,000", out.TotalDisplay)
}

func TestCartUsecase_Summarize_ResolvesProductIDs(t *testing.T) {
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(pRepo, pricing.CurrentPolicy())

	pRepo.On("FindActiveByIDs", mock.Anything, []int64{7}).Return([]model.Product{
		{ID: 7, Price: "250", IsActive: true},
	}, nil)

	out, err := uc.Summarize(context.Background(), []usecase.CartLineInput{
		{ProductID: 7, Quantity: 4},
	})
	assert.NoError(t, err)
	assert.True(t, out.Summary.Subtotal.Equal(decimal.NewFromInt(1000)))

	pRepo.AssertExpectations(t)
}

func TestCartUsecase_Summarize_UnresolvedRowCountsAsZero(t *testing.T) {
	pRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(pRepo, pricing.CurrentPolicy())

	// product 9 is inactive or gone; repo only returns 7
	pRepo.On("FindActiveByIDs", mock.Anything, []int64{7, 9}).Return([]model.Product{
		{ID: 7, Price: "100", IsActive: true},
	}, nil)

	out, err := uc.Summarize(context.Background(), []usecase.CartLineInput{
		{ProductID: 7, Quantity: 1},
		{ProductID: 9, Quantity: 5},
	})
	assert.NoError(t, err)
	assert.True(t, out.Summary.Subtotal.Equal(decimal.NewFromInt(100)))
}
