package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"
)

// Admin listing filter.
type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order, items []model.OrderItem) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	FindByIdempotencyKey(ctx context.Context, customerEmail string, key string) (model.Order, bool, error)
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
	UpdateTracking(ctx context.Context, orderID int64, status model.OrderStatus, trackingNumber string) error
}

type OrderItemRepository interface {
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
