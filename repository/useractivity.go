package repository

import (
	"context"

	"github.com/wellnest/backend/domain"
)

type UserActivityRepository interface {
	// Create inserts the tracking row. Foreign-key and uniqueness violations
	// surface as MODEL_VALIDATION domain errors ("user not found",
	// "activity not found", "activity already exists"); referential integrity is
	// enforced by the storage engine, not pre-checked here.
	Create(ctx context.Context, ua *domain.UserActivity) (*domain.UserActivity, error)
	// GetByID returns domain.ErrUserActivityNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*domain.UserActivity, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.UserActivity, error)
	ListByUser(ctx context.Context, userID string) ([]domain.UserActivity, error)
	ListByUserAndStatus(ctx context.Context, userID, status string) ([]domain.UserActivity, error)
	// DetailsByUser joins tracking rows with the catalog. Row order is
	// implementation-defined.
	DetailsByUser(ctx context.Context, userID string) ([]domain.UserActivityDetail, error)
	DetailsByUserAndStatus(ctx context.Context, userID, status string) ([]domain.UserActivityDetail, error)
}
