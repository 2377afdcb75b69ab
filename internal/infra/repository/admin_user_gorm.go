package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	domainrepo "storefront/internal/repository"

	"gorm.io/gorm"
)

type adminUserGormRepository struct {
	db *gorm.DB
}

// DI
func NewAdminUserRepository(db *gorm.DB) domainrepo.AdminUserRepository {
	return &adminUserGormRepository{db: db}
}

// FindByEmail returns nil without error when no user matches; callers
// turn that into an invalid-credentials result.
func (r *adminUserGormRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var u model.AdminUser

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

func (r *adminUserGormRepository) FindByID(ctx context.Context, id int64) (*model.AdminUser, error) {
	var u model.AdminUser

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

func (r *adminUserGormRepository) Update(ctx context.Context, u *model.AdminUser) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return err
	}
	return nil
}
