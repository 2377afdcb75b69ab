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

type AdminOrderRepoMock struct{ mock.Mock }

func (m *AdminOrderRepoMock) Create(ctx context.Context, order model.Order, items []model.OrderItem) (model.Order, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *AdminOrderRepoMock) FindByIdempotencyKey(ctx context.Context, customerEmail string, key string) (model.Order, bool, error) {
	panic("not used in AdminOrderUsecase tests")
}

func (m *AdminOrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *AdminOrderRepoMock) UpdateTracking(ctx context.Context, orderID int64, status model.OrderStatus, trackingNumber string) error {
	args := m.Called(ctx, orderID, status, trackingNumber)
	return args.Error(0)
}

var _ repo.OrderRepository = (*AdminOrderRepoMock)(nil)

type AdminOrderItemRepoMock struct{ mock.Mock }

func (m *AdminOrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

var _ repo.OrderItemRepository = (*AdminOrderItemRepoMock)(nil)

// =====================
// List / Get
// =====================

func TestAdminOrderUsecase_List_InvalidPage(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(AdminOrderRepoMock), new(AdminOrderItemRepoMock))

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 0, Limit: 50})
	assertErrContains(t, err, "invalid page")
}

func TestAdminOrderUsecase_List_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(AdminOrderRepoMock), new(AdminOrderItemRepoMock))

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 1, Limit: 50, Status: "REFUNDED"})
	assertErrContains(t, err, "invalid status")
}

func TestAdminOrderUsecase_List_Success(t *testing.T) {
	oRepo := new(AdminOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(AdminOrderItemRepoMock))

	f := repo.AdminOrderListFilter{Page: 1, Limit: 50, Status: "PENDING"}
	oRepo.On("ListAdmin", mock.Anything, f).Return([]model.Order{
		{ID: 1, Status: model.OrderStatusPending},
	}, int64(1), nil)

	out, err := uc.List(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, len(out.Items))

	oRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_Get_Success(t *testing.T) {
	oRepo := new(AdminOrderRepoMock)
	iRepo := new(AdminOrderItemRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, iRepo)

	oRepo.On("FindByID", mock.Anything, int64(5)).Return(model.Order{ID: 5}, nil)
	iRepo.On("ListByOrderID", mock.Anything, int64(5)).Return([]model.OrderItem{
		{ID: 1, OrderID: 5, ProductNameSnapshot: "Shirt"},
	}, nil)

	out, err := uc.Get(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.Order.ID)
	assert.Equal(t, 1, len(out.Items))
}

// =====================
// UpdateTracking
// =====================

func TestAdminOrderUsecase_UpdateTracking_Unauthorized(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(AdminOrderRepoMock), new(AdminOrderItemRepoMock))

	err := uc.UpdateTracking(context.Background(), 0, 1, usecase.UpdateTrackingInput{Status: "PAID"})
	assertErrContains(t, err, "unauthorized")
}

func TestAdminOrderUsecase_UpdateTracking_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(AdminOrderRepoMock), new(AdminOrderItemRepoMock))

	err := uc.UpdateTracking(context.Background(), 1, 1, usecase.UpdateTrackingInput{Status: "LOST"})
	assertErrContains(t, err, "invalid status")
}

func TestAdminOrderUsecase_UpdateTracking_ShippedRequiresTracking(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(AdminOrderRepoMock), new(AdminOrderItemRepoMock))

	err := uc.UpdateTracking(context.Background(), 1, 1, usecase.UpdateTrackingInput{Status: "SHIPPED"})
	assertErrContains(t, err, "tracking_number required")
}

func TestAdminOrderUsecase_UpdateTracking_CanceledIsTerminal(t *testing.T) {
	oRepo := new(AdminOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(AdminOrderItemRepoMock))

	oRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Order{
		ID:     1,
		Status: model.OrderStatusCanceled,
	}, nil)

	err := uc.UpdateTracking(context.Background(), 1, 1, usecase.UpdateTrackingInput{Status: "PAID"})
	assertErrContains(t, err, "order canceled")
	oRepo.AssertNotCalled(t, "UpdateTracking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateTracking_Success(t *testing.T) {
	oRepo := new(AdminOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(AdminOrderItemRepoMock))

	oRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Order{
		ID:     1,
		Status: model.OrderStatusPaid,
	}, nil)
	oRepo.On("UpdateTracking", mock.Anything, int64(1), model.OrderStatusShipped, "TRACK-123").Return(nil)

	err := uc.UpdateTracking(context.Background(), 1, 1, usecase.UpdateTrackingInput{
		Status:         "shipped",
		TrackingNumber: "TRACK-123",
	})
	assert.NoError(t, err)
	oRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateTracking_KeepsExistingTracking(t *testing.T) {
	oRepo := new(AdminOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(AdminOrderItemRepoMock))

	oRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Order{
		ID:             1,
		Status:         model.OrderStatusShipped,
		TrackingNumber: "TRACK-123",
	}, nil)
	// status change without a tracking number keeps the stored one
	oRepo.On("UpdateTracking", mock.Anything, int64(1), model.OrderStatusPaid, "TRACK-123").Return(nil)

	err := uc.UpdateTracking(context.Background(), 1, 1, usecase.UpdateTrackingInput{Status: "PAID"})
	assert.NoError(t, err)
	oRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateTracking_NotFound(t *testing.T) {
	oRepo := new(AdminOrderRepoMock)
	uc := usecase.NewAdminOrderUsecase(oRepo, new(AdminOrderItemRepoMock))

	oRepo.On("FindByID", mock.Anything, int64(9)).Return(model.Order{}, repo.ErrNotFound)

	err := uc.UpdateTracking(context.Background(), 1, 9, usecase.UpdateTrackingInput{Status: "PAID"})
	assertErrContains(t, err, "not found")
}
