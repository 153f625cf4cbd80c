package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/repository"
)

type userActivityRepository struct {
	pool *pgxpool.Pool
}

// NewUserActivityRepository returns a Postgres-backed tracking repository.
func NewUserActivityRepository(pool *pgxpool.Pool) repository.UserActivityRepository {
	return &userActivityRepository{pool: pool}
}

func (r *userActivityRepository) Create(ctx context.Context, ua *domain.UserActivity) (*domain.UserActivity, error) {
	if ua == nil {
		return nil, domain.NewError(domain.ErrCodeInternal, "nil user activity")
	}

	const query = `
	INSERT INTO user_activities (user_id, activity_id, status)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		ua.UserID,
		ua.ActivityID,
		ua.Status,
	).Scan(&ua.ID, &ua.CreatedAt, &ua.UpdatedAt); err != nil {
		return nil, classifyConstraint(err, userActivityConstraintMessages)
	}

	return ua, nil
}

func (r *userActivityRepository) GetByID(ctx context.Context, id string) (*domain.UserActivity, error) {
	const query = `
	SELECT id, user_id, activity_id, status, created_at, updated_at
	FROM user_activities
	WHERE id = $1
	`
	return scanUserActivity(r.pool.QueryRow(ctx, query, id))
}

func (r *userActivityRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.UserActivity, error) {
	const query = `
	UPDATE user_activities
	SET status = $2, updated_at = NOW()
	WHERE id = $1
	RETURNING id, user_id, activity_id, status, created_at, updated_at
	`
	return scanUserActivity(r.pool.QueryRow(ctx, query, id, status))
}

func (r *userActivityRepository) ListByUser(ctx context.Context, userID string) ([]domain.UserActivity, error) {
	const query = `
	SELECT id, user_id, activity_id, status, created_at, updated_at
	FROM user_activities
	WHERE user_id = $1
	`
	return r.queryMany(ctx, query, userID)
}

func (r *userActivityRepository) ListByUserAndStatus(ctx context.Context, userID, status string) ([]domain.UserActivity, error) {
	const query = `
	SELECT id, user_id, activity_id, status, created_at, updated_at
	FROM user_activities
	WHERE user_id = $1 AND status = $2
	`
	return r.queryMany(ctx, query, userID, status)
}

func (r *userActivityRepository) DetailsByUser(ctx context.Context, userID string) ([]domain.UserActivityDetail, error) {
	const query = `
	SELECT a.id, a.title, a.description, a.category, a.duration, a.difficulty_level, a.content, ua.status
	FROM user_activities ua
	INNER JOIN activities a ON ua.activity_id = a.id
	WHERE ua.user_id = $1
	`
	return r.queryDetails(ctx, query, userID)
}

func (r *userActivityRepository) DetailsByUserAndStatus(ctx context.Context, userID, status string) ([]domain.UserActivityDetail, error) {
	const query = `
	SELECT a.id, a.title, a.description, a.category, a.duration, a.difficulty_level, a.content, ua.status
	FROM user_activities ua
	INNER JOIN activities a ON ua.activity_id = a.id
	WHERE ua.user_id = $1 AND ua.status = $2
	`
	return r.queryDetails(ctx, query, userID, status)
}

func (r *userActivityRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.UserActivity, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.UserActivity
	for rows.Next() {
		item, err := scanUserActivity(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *userActivityRepository) queryDetails(ctx context.Context, query string, args ...any) ([]domain.UserActivityDetail, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.UserActivityDetail
	for rows.Next() {
		var d domain.UserActivityDetail
		if err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.Description,
			&d.Category,
			&d.Duration,
			&d.DifficultyLevel,
			&d.Content,
			&d.Status,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func scanUserActivity(row interface {
	Scan(dest ...any) error
}) (*domain.UserActivity, error) {
	var ua domain.UserActivity
	if err := row.Scan(
		&ua.ID,
		&ua.UserID,
		&ua.ActivityID,
		&ua.Status,
		&ua.CreatedAt,
		&ua.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserActivityNotFound
		}
		return nil, err
	}
	return &ua, nil
}
