package useractivity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/internal/validation"
	"github.com/wellnest/backend/repository"
)

type UseCase struct {
	tracking repository.UserActivityRepository
	logger   *zap.Logger
}

func New(tracking repository.UserActivityRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tracking: tracking,
		logger:   logger,
	}
}

var createSchema = validation.Schema{
	{Field: "user_id", Required: true, Pattern: validation.UUIDPattern},
	{Field: "activity_id", Required: true, Pattern: validation.UUIDPattern},
	{Field: "status", Required: true, Enum: domain.TrackingStatuses},
}

var updateSchema = validation.Schema{
	{Field: "id", Required: true, Pattern: validation.UUIDPattern},
	{Field: "status", Required: true, Enum: domain.TrackingStatuses},
}

var fetchSchema = validation.Schema{
	{Field: "user_id", Required: true, Pattern: validation.UUIDPattern},
	{Field: "status", Enum: domain.TrackingStatuses},
}

// Track starts tracking an activity for a user. Referential integrity is left
// to the storage engine: a dangling user or activity id, or an already tracked
// pair, comes back as a MODEL_VALIDATION error from the repository.
func (uc *UseCase) Track(ctx context.Context, userID, activityID, status string) (*domain.UserActivity, error) {
	if err := createSchema.Validate(map[string]any{
		"user_id":     userID,
		"activity_id": activityID,
		"status":      status,
	}); err != nil {
		return nil, err
	}

	created, err := uc.tracking.Create(ctx, &domain.UserActivity{
		UserID:     userID,
		ActivityID: activityID,
		Status:     status,
	})
	if err != nil {
		if !domain.IsDomainError(err, domain.ErrCodeModelValidation) {
			uc.logger.Error("user activity creation failed", zap.Error(err))
		}
		return nil, err
	}
	return created, nil
}

// UpdateStatus moves a tracking row to a new status. The row is fetched first
// so a missing target is reported as "User activity does not exist" instead of
// a silent zero-row update. Any status may follow any other.
func (uc *UseCase) UpdateStatus(ctx context.Context, id, status string) (*domain.UserActivity, error) {
	if err := updateSchema.Validate(map[string]any{
		"id":     id,
		"status": status,
	}); err != nil {
		return nil, err
	}

	if _, err := uc.tracking.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserActivityNotFound) {
			return nil, domain.ErrUserActivityNotFound
		}
		uc.logger.Error("user activity lookup failed", zap.Error(err))
		return nil, err
	}

	return uc.tracking.UpdateStatus(ctx, id, status)
}

// ListDetails returns catalog details for every activity the user tracks,
// optionally narrowed to one status. Row order is implementation-defined.
func (uc *UseCase) ListDetails(ctx context.Context, userID, status string) ([]domain.UserActivityDetail, error) {
	input := map[string]any{"user_id": userID}
	if status != "" {
		input["status"] = status
	}
	if err := fetchSchema.Validate(input); err != nil {
		return nil, err
	}

	if status != "" {
		return uc.tracking.DetailsByUserAndStatus(ctx, userID, status)
	}
	return uc.tracking.DetailsByUser(ctx, userID)
}

// List returns raw tracking rows without catalog detail.
func (uc *UseCase) List(ctx context.Context, userID, status string) ([]domain.UserActivity, error) {
	input := map[string]any{"user_id": userID}
	if status != "" {
		input["status"] = status
	}
	if err := fetchSchema.Validate(input); err != nil {
		return nil, err
	}

	if status != "" {
		return uc.tracking.ListByUserAndStatus(ctx, userID, status)
	}
	return uc.tracking.ListByUser(ctx, userID)
}
