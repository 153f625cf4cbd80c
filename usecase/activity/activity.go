package activity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/repository"
)

type UseCase struct {
	activities repository.ActivityRepository
	cache      repository.ActivityCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// New builds the catalog use case. cache may be nil, in which case every read
// goes to the repository.
func New(activities repository.ActivityRepository, cache repository.ActivityCache, cacheTTL time.Duration, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &UseCase{
		activities: activities,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// List returns the active catalog, read through the cache when one is
// configured. Cache failures are logged and never surface to callers.
func (uc *UseCase) List(ctx context.Context) ([]domain.Activity, error) {
	if uc.cache != nil {
		cached, hit, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	activities, err := uc.activities.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, activities, uc.cacheTTL); err != nil {
			uc.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}
	return activities, nil
}

// SeedCatalog bulk-inserts catalog rows and invalidates the cache. The input
// comes from trusted seed tooling, so no schema validation happens here beyond
// the storage type constraints.
func (uc *UseCase) SeedCatalog(ctx context.Context, activities []domain.Activity) ([]domain.Activity, error) {
	inserted, err := uc.activities.CreateBatch(ctx, activities)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}
	return inserted, nil
}
