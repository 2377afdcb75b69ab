package model

import (
	"time"

	"gorm.io/gorm"
)

// Product keeps prices as numeric strings end to end; handlers and the
// pricing package parse them with shopspring/decimal, never float64.
type Product struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Price          string         `gorm:"type:numeric(12,2);not null" json:"price"`
	CompareAtPrice *string        `gorm:"type:numeric(12,2)" json:"compare_at_price,omitempty"`
	IsActive       bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt      time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
