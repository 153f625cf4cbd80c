package useractivity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellnest/backend/domain"
)

const (
	userID     = "3f1f8e7e-0c4a-4b5e-9a8a-6a2f0c9d1b2e"
	activityID = "7b0c2d4e-1a2b-4c3d-8e9f-0a1b2c3d4e5f"
	trackingID = "9d8c7b6a-5f4e-4d3c-b2a1-0f9e8d7c6b5a"
)

type fakeTrackingRepo struct {
	rows      map[string]*domain.UserActivity
	createErr error
	details   []domain.UserActivityDetail

	detailsByStatusCalls int
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{rows: make(map[string]*domain.UserActivity)}
}

func (f *fakeTrackingRepo) Create(_ context.Context, ua *domain.UserActivity) (*domain.UserActivity, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	ua.ID = trackingID
	ua.CreatedAt = time.Now()
	ua.UpdatedAt = ua.CreatedAt
	f.rows[ua.ID] = ua
	return ua, nil
}

func (f *fakeTrackingRepo) GetByID(_ context.Context, id string) (*domain.UserActivity, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrUserActivityNotFound
	}
	return row, nil
}

func (f *fakeTrackingRepo) UpdateStatus(_ context.Context, id, status string) (*domain.UserActivity, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrUserActivityNotFound
	}
	row.Status = status
	row.UpdatedAt = time.Now()
	return row, nil
}

func (f *fakeTrackingRepo) ListByUser(_ context.Context, userID string) ([]domain.UserActivity, error) {
	var out []domain.UserActivity
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) ListByUserAndStatus(_ context.Context, userID, status string) ([]domain.UserActivity, error) {
	var out []domain.UserActivity
	for _, row := range f.rows {
		if row.UserID == userID && row.Status == status {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeTrackingRepo) DetailsByUser(context.Context, string) ([]domain.UserActivityDetail, error) {
	return f.details, nil
}

func (f *fakeTrackingRepo) DetailsByUserAndStatus(_ context.Context, _ string, status string) ([]domain.UserActivityDetail, error) {
	f.detailsByStatusCalls++
	var out []domain.UserActivityDetail
	for _, d := range f.details {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

func TestTrack(t *testing.T) {
	repo := newFakeTrackingRepo()
	uc := New(repo, nil)

	created, err := uc.Track(context.Background(), userID, activityID, domain.TrackingStatusPending)
	require.NoError(t, err)
	assert.Equal(t, trackingID, created.ID)
	assert.Equal(t, domain.TrackingStatusPending, created.Status)
}

func TestTrackValidation(t *testing.T) {
	uc := New(newFakeTrackingRepo(), nil)

	tests := []struct {
		name                 string
		user, activity, stat string
		wantField            string
	}{
		{"bad user id", "abc", activityID, "PENDING", "user_id"},
		{"empty user id", "", activityID, "PENDING", "user_id"},
		{"bad activity id", userID, "123", "PENDING", "activity_id"},
		{"bad status", userID, activityID, "DONE", "status"},
		{"empty status", userID, activityID, "", "status"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Track(context.Background(), tc.user, tc.activity, tc.stat)
			require.Error(t, err)
			var dErr *domain.Error
			require.ErrorAs(t, err, &dErr)
			assert.Equal(t, domain.ErrCodeValidation, dErr.Code)
			assert.Equal(t, tc.wantField, dErr.Field)
		})
	}
}

func TestTrackConflictPassesThrough(t *testing.T) {
	repo := newFakeTrackingRepo()
	repo.createErr = domain.NewModelValidationError("activity already exists")
	uc := New(repo, nil)

	_, err := uc.Track(context.Background(), userID, activityID, domain.TrackingStatusPending)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeModelValidation))
	assert.Equal(t, "activity already exists", err.Error())
}

func TestUpdateStatusRequiresExistingRow(t *testing.T) {
	repo := newFakeTrackingRepo()
	uc := New(repo, nil)

	_, err := uc.UpdateStatus(context.Background(), trackingID, domain.TrackingStatusCompleted)
	require.Error(t, err)
	assert.Equal(t, domain.ErrUserActivityNotFound, err)
	assert.Equal(t, "User activity does not exist", err.Error())
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	repo := newFakeTrackingRepo()
	uc := New(repo, nil)

	_, err := uc.Track(context.Background(), userID, activityID, domain.TrackingStatusCompleted)
	require.NoError(t, err)

	// No transition graph: COMPLETED may go back to PENDING.
	updated, err := uc.UpdateStatus(context.Background(), trackingID, domain.TrackingStatusPending)
	require.NoError(t, err)
	assert.Equal(t, domain.TrackingStatusPending, updated.Status)
}

func TestUpdateStatusValidation(t *testing.T) {
	uc := New(newFakeTrackingRepo(), nil)

	_, err := uc.UpdateStatus(context.Background(), "not-a-uuid", domain.TrackingStatusPending)
	require.Error(t, err)
	var dErr *domain.Error
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "id", dErr.Field)

	_, err = uc.UpdateStatus(context.Background(), trackingID, "ARCHIVED")
	require.Error(t, err)
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "status", dErr.Field)
}

func TestListDetailsFiltersByStatus(t *testing.T) {
	repo := newFakeTrackingRepo()
	repo.details = []domain.UserActivityDetail{
		{ID: "a", Title: "Mindful Breathing", Category: domain.CategoryRelaxation, Status: domain.TrackingStatusCompleted},
		{ID: "b", Title: "Yoga for Beginners", Category: domain.CategoryPhysicalHealth, Status: domain.TrackingStatusPending},
	}
	uc := New(repo, nil)

	all, err := uc.ListDetails(context.Background(), userID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Zero(t, repo.detailsByStatusCalls)

	completed, err := uc.ListDetails(context.Background(), userID, domain.TrackingStatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Mindful Breathing", completed[0].Title)
	assert.Equal(t, domain.TrackingStatusCompleted, completed[0].Status)
	assert.Equal(t, 1, repo.detailsByStatusCalls)
}

func TestListDetailsValidation(t *testing.T) {
	uc := New(newFakeTrackingRepo(), nil)

	_, err := uc.ListDetails(context.Background(), "nope", "")
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))

	_, err = uc.ListDetails(context.Background(), userID, "DONE")
	require.Error(t, err)
	assert.Equal(t, "status must be one of [PENDING, STARTED, COMPLETED, CANCELLED]", err.Error())
}
