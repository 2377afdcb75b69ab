package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type adminSessionGormRepository struct {
	db *gorm.DB
}

// DI
func NewAdminSessionRepository(db *gorm.DB) repo.AdminSessionRepository {
	return &adminSessionGormRepository{db: db}
}

func (r *adminSessionGormRepository) Create(ctx context.Context, s *model.AdminSession) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return err
	}
	return nil
}

func (r *adminSessionGormRepository) FindByID(ctx context.Context, id string) (*model.AdminSession, error) {
	var s model.AdminSession

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return &s, nil
}

// Revoke sets revoked_at once; re-revoking an already revoked session
// reports ErrNotFound.
func (r *adminSessionGormRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.AdminSession{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", &at)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}

	return nil
}
