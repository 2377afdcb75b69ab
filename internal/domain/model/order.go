package model

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusShipped  OrderStatus = "SHIPPED"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

// Order stores the full price breakdown as charged, not just the total,
// so later policy changes cannot rewrite history.
type Order struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerEmail  string      `gorm:"type:varchar(255);not null;index" json:"customer_email"`
	Status         OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Subtotal       string      `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	Shipping       string      `gorm:"type:numeric(12,2);not null" json:"shipping"`
	Tax            string      `gorm:"type:numeric(12,2);not null" json:"tax"`
	Total          string      `gorm:"type:numeric(12,2);not null" json:"total"`
	TrackingNumber string      `gorm:"type:varchar(100)" json:"tracking_number"`
	IdempotencyKey string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	CreatedAt      time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
