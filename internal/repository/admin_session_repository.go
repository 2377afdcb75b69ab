package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"
)

// Sessions are revoked, not deleted, so a logout leaves a trace.
type AdminSessionRepository interface {
	Create(ctx context.Context, s *model.AdminSession) error
	FindByID(ctx context.Context, id string) (*model.AdminSession, error)
	Revoke(ctx context.Context, id string, at time.Time) error
}
