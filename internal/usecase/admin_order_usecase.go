package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

func NewAdminOrderUsecase(orderRepo repo.OrderRepository, orderItemRepo repo.OrderItemRepository) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

type AdminOrderListOutput struct {
	Items []model.Order `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) (AdminOrderListOutput, error) {
	if f.Page < 1 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if f.Status != "" && !isValidOrderStatus(f.Status) {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	orders, total, err := u.orderRepo.ListAdmin(ctx, f)
	if err != nil {
		return AdminOrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AdminOrderListOutput{
		Items: orders,
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
	}, nil
}

type AdminOrderDetailOutput struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

func (u *AdminOrderUsecase) Get(ctx context.Context, orderID int64) (AdminOrderDetailOutput, error) {
	if orderID <= 0 {
		return AdminOrderDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return AdminOrderDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return AdminOrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return AdminOrderDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AdminOrderDetailOutput{Order: order, Items: items}, nil
}

type UpdateTrackingInput struct {
	Status         string
	TrackingNumber string
}

// UpdateTracking moves an order along its lifecycle and records the
// carrier tracking number. CANCELED is terminal; SHIPPED requires a
// tracking number.
func (u *AdminOrderUsecase) UpdateTracking(ctx context.Context, adminUserID int64, orderID int64, in UpdateTrackingInput) error {
	if adminUserID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	status := model.OrderStatus(strings.ToUpper(strings.TrimSpace(in.Status)))
	if !isValidOrderStatus(string(status)) {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	tracking := strings.TrimSpace(in.TrackingNumber)
	if status == model.OrderStatusShipped && tracking == "" {
		return NewHTTPError(http.StatusBadRequest, "tracking_number required")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if order.Status == model.OrderStatusCanceled {
		return NewHTTPError(http.StatusConflict, "order canceled")
	}

	// Keep an existing tracking number when the update omits one.
	if tracking == "" {
		tracking = order.TrackingNumber
	}

	if err := u.orderRepo.UpdateTracking(ctx, orderID, status, tracking); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func isValidOrderStatus(s string) bool {
	switch model.OrderStatus(s) {
	case model.OrderStatusPending, model.OrderStatusPaid, model.OrderStatusShipped, model.OrderStatusCanceled:
		return true
	}
	return false
}
