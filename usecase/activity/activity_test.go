package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/backend/domain"
)

type fakeCatalogRepo struct {
	active    []domain.Activity
	listCalls int
}

func (f *fakeCatalogRepo) ListActive(context.Context) ([]domain.Activity, error) {
	f.listCalls++
	return f.active, nil
}

func (f *fakeCatalogRepo) CreateBatch(_ context.Context, activities []domain.Activity) ([]domain.Activity, error) {
	out := make([]domain.Activity, len(activities))
	for i, a := range activities {
		a.ID = "seeded"
		if a.Status == "" {
			a.Status = domain.ActivityStatusActive
		}
		out[i] = a
	}
	return out, nil
}

type fakeCache struct {
	stored      []domain.Activity
	hit         bool
	getErr      error
	invalidated int
}

func (f *fakeCache) Get(context.Context) ([]domain.Activity, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	return f.stored, f.hit, nil
}

func (f *fakeCache) Set(_ context.Context, activities []domain.Activity, _ time.Duration) error {
	f.stored = activities
	f.hit = true
	return nil
}

func (f *fakeCache) Invalidate(context.Context) error {
	f.stored = nil
	f.hit = false
	f.invalidated++
	return nil
}

var catalog = []domain.Activity{
	{ID: "a1", Title: "Mindful Breathing", Status: domain.ActivityStatusActive},
	{ID: "a2", Title: "Pomodoro Technique", Status: domain.ActivityStatusActive},
}

func TestListPopulatesAndReusesCache(t *testing.T) {
	repo := &fakeCatalogRepo{active: catalog}
	cache := &fakeCache{}
	uc := New(repo, cache, time.Minute, nil)

	first, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, repo.listCalls)

	second, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	// Served from cache, no second repository read.
	assert.Equal(t, 1, repo.listCalls)
}

func TestListSurvivesCacheFailure(t *testing.T) {
	repo := &fakeCatalogRepo{active: catalog}
	cache := &fakeCache{getErr: errors.New("redis down")}
	uc := New(repo, cache, time.Minute, nil)

	activities, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, activities, 2)
	assert.Equal(t, 1, repo.listCalls)
}

func TestListWithoutCache(t *testing.T) {
	repo := &fakeCatalogRepo{active: catalog}
	uc := New(repo, nil, 0, nil)

	activities, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestSeedCatalogDefaultsStatusAndInvalidatesCache(t *testing.T) {
	repo := &fakeCatalogRepo{}
	cache := &fakeCache{stored: catalog, hit: true}
	uc := New(repo, cache, time.Minute, nil)

	inserted, err := uc.SeedCatalog(context.Background(), []domain.Activity{
		{Title: "Gratitude Journal", Category: domain.CategorySelfEsteem, Duration: 600, DifficultyLevel: domain.DifficultyBeginner},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 1)
	assert.Equal(t, domain.ActivityStatusActive, inserted[0].Status)
	assert.Equal(t, 1, cache.invalidated)
}
