package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wellnest/backend/domain"
	"github.com/wellnest/backend/repository"
)

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed catalog repository.
func NewActivityRepository(pool *pgxpool.Pool) repository.ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) ListActive(ctx context.Context) ([]domain.Activity, error) {
	const query = `
	SELECT id, title, description, category, duration, difficulty_level, content, status, created_at, updated_at
	FROM activities
	WHERE status = $1
	ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, domain.ActivityStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, rows.Err()
}

// CreateBatch inserts every row through one parameterized statement. Values
// are always bound, never interpolated into the statement text.
func (r *activityRepository) CreateBatch(ctx context.Context, activities []domain.Activity) ([]domain.Activity, error) {
	if len(activities) == 0 {
		return nil, nil
	}

	var (
		sb   strings.Builder
		args = make([]any, 0, len(activities)*7)
	)
	sb.WriteString(`INSERT INTO activities (title, description, category, duration, difficulty_level, content, status) VALUES `)
	for i, activity := range activities {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)

		status := activity.Status
		if status == "" {
			status = domain.ActivityStatusActive
		}
		args = append(args,
			activity.Title,
			activity.Description,
			activity.Category,
			activity.Duration,
			activity.DifficultyLevel,
			activity.Content,
			status,
		)
	}
	sb.WriteString(` RETURNING id, title, description, category, duration, difficulty_level, content, status, created_at, updated_at`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inserted := make([]domain.Activity, 0, len(activities))
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		inserted = append(inserted, *activity)
	}
	return inserted, rows.Err()
}

func scanActivity(row interface {
	Scan(dest ...any) error
}) (*domain.Activity, error) {
	var activity domain.Activity
	if err := row.Scan(
		&activity.ID,
		&activity.Title,
		&activity.Description,
		&activity.Category,
		&activity.Duration,
		&activity.DifficultyLevel,
		&activity.Content,
		&activity.Status,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &activity, nil
}
