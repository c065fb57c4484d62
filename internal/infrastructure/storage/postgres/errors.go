package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"stockpilot/internal/core/apperror"
)

// PostgreSQL error codes the repositories care about.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgConnectionClass     = "08" // connection exception class
	pgQueryCanceled       = "57014"
)

// TranslateError maps low-level pgx failures onto the service error
// taxonomy. Unique-index violations become the matching duplicate error,
// so a check-then-write race lost at commit time still surfaces as
// DuplicateName/DuplicatePhone rather than a bare 500.
func TranslateError(err error, entity string) error {
	if err == nil {
		return nil
	}

	// Already classified upstream
	if apperror.IsAppError(err) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.NewTimeout(err)
	}
	if errors.Is(err, context.Canceled) {
		return apperror.NewTimeout(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return translateUniqueViolation(pgErr, entity, err)
		case pgErr.Code == pgForeignKeyViolation:
			return apperror.NewConflict("operation violates a reference constraint").
				WithDetail("entity", entity).
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		case pgErr.Code == pgQueryCanceled:
			return apperror.NewTimeout(err)
		case strings.HasPrefix(pgErr.Code, pgConnectionClass):
			return apperror.NewUnavailable(err)
		}
	}

	if pgconn.Timeout(err) {
		return apperror.NewTimeout(err)
	}

	return apperror.NewInternal(err).WithDetail("entity", entity)
}

// translateUniqueViolation inspects the violated constraint name to pick
// the precise duplicate error. Constraint naming follows the schema:
// <table>_name_lower_key and clients_phone_normalized_key.
func translateUniqueViolation(pgErr *pgconn.PgError, entity string, cause error) error {
	constraint := pgErr.ConstraintName
	switch {
	case strings.Contains(constraint, "phone"):
		return apperror.NewDuplicatePhone(entity, "").WithCause(cause)
	case strings.Contains(constraint, "name"):
		return apperror.NewDuplicateName(entity, "").WithCause(cause)
	default:
		return apperror.NewConflict("duplicate value").
			WithDetail("entity", entity).
			WithDetail("constraint", constraint).
			WithCause(cause)
	}
}
