// Copyright (c) 2026 GVDB. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"gvdb/internal/platform/apperr"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique-constraint violations.
const uniqueViolation = "23505"

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Unique violation mapping (duplicate code/tag/name)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict("Duplicate value violates a uniqueness rule")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
