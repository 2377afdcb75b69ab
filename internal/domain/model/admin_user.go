package model

import "time"

type AdminUser struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	Username     string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
