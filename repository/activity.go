package repository

import (
	"context"
	"time"

	"github.com/wellnest/backend/domain"
)

type ActivityRepository interface {
	// ListActive returns every catalog row whose status is ACTIVE. Soft-deleted
	// rows never appear.
	ListActive(ctx context.Context) ([]domain.Activity, error)
	// CreateBatch inserts catalog rows in one parameterized statement, defaulting
	// status to ACTIVE, and returns them with generated ids and timestamps.
	CreateBatch(ctx context.Context, activities []domain.Activity) ([]domain.Activity, error)
}

// ActivityCache is a read-through cache for the activity catalog. A miss is
// reported as (nil, false, nil); both operations are best-effort for callers.
type ActivityCache interface {
	Get(ctx context.Context) ([]domain.Activity, bool, error)
	Set(ctx context.Context, activities []domain.Activity, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
