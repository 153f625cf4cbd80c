package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wellnest/backend/domain"
)

// Per-entity mapping from the constraint name reported by Postgres to the
// domain message. The names are declared in assets/migrations and are the
// single source of truth for classifying conflicts.
var (
	userConstraintMessages = map[string]string{
		"users_username_key": "username already exists",
		"users_email_key":    "email already exists",
	}

	userActivityConstraintMessages = map[string]string{
		"user_activities_user_id_fkey":            "user not found",
		"user_activities_activity_id_fkey":        "activity not found",
		"user_activities_user_id_activity_id_key": "activity already exists",
	}
)

// SQLSTATE class 23: integrity constraint violations.
const integrityViolationClass = "23"

// classifyConstraint translates a raw storage error into a domain error using
// the entity's constraint table. A violated constraint missing from the table
// becomes an UNKNOWN_CONFLICT so it is never silently misreported; any other
// error passes through unchanged.
func classifyConstraint(err error, table map[string]string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if len(pgErr.Code) < 2 || pgErr.Code[:2] != integrityViolationClass {
		return err
	}

	if message, ok := table[pgErr.ConstraintName]; ok {
		return domain.NewModelValidationError(message)
	}
	return domain.WrapError(domain.ErrCodeUnknownConflict, "unrecognized constraint violation", err)
}
