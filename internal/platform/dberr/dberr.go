// Copyright (c) 2026 CyberSage. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cybersage/api/internal/platform/apperr"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
//
// # Why this matters
//
// Existence pre-checks before an INSERT have a check-then-act race under
// concurrent requests. The database constraint is the authoritative uniqueness
// signal; stores must classify its rejection rather than trust the pre-check.
func IsUniqueViolation(err error) bool {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code == pgerrcode.UniqueViolation
	}
	return false
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Parameters
//   - err: The raw database error.
//   - resource: Client-facing resource name used for NOT_FOUND messages.
//   - conflictMsg: Client-facing message used for unique violations.
func Wrap(err error, resource, conflictMsg string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	if IsUniqueViolation(err) {
		return apperr.Conflict(conflictMsg)
	}

	// Unknown query errors become Internal Server Errors.
	return apperr.Internal(err)
}
