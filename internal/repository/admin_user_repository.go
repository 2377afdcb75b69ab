package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	FindByID(ctx context.Context, id int64) (*model.AdminUser, error)
	Update(ctx context.Context, u *model.AdminUser) error
}
