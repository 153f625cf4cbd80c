package repository

import (
	"context"

	"github.com/wellnest/backend/domain"
)

type UserRepository interface {
	// Create inserts the user and fills generated id/timestamps. A violated
	// unique constraint surfaces as a MODEL_VALIDATION domain error naming the
	// duplicated field.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// GetByEmail returns domain.ErrUserNotFound when no row matches; that is an
	// expected outcome, not a storage failure.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
