// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	return WrapResource(err, "Resource", action)
}

// WrapResource is [Wrap] with the resource name used in not-found and conflict messages.
//
// # Classification
//
//   - pgx.ErrNoRows: NOT_FOUND
//   - 23505 unique_violation: CONFLICT
//   - 23503 foreign_key_violation: VALIDATION_ERROR on the referencing column
//   - 23502, 22001, 23514: VALIDATION_ERROR
//   - anything else: PERSISTENCE_ERROR
//
// Errors that already are an [apperr.AppError] pass through untouched.
func WrapResource(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperr.Persistence(action, err)
	}

	var classified *apperr.AppError
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		classified = apperr.Conflict(resource + " already exists")

	case pgerrcode.ForeignKeyViolation:
		classified = apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   fieldFromConstraint(pgErr.TableName, pgErr.ConstraintName),
			Message: "Must reference an existing record",
		})

	case pgerrcode.NotNullViolation:
		classified = apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   pgErr.ColumnName,
			Message: "This field is required",
		})

	case pgerrcode.StringDataRightTruncationDataException:
		classified = apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   pgErr.ColumnName,
			Message: "Value is too long",
		})

	case pgerrcode.CheckViolation:
		classified = apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   fieldFromConstraint(pgErr.TableName, pgErr.ConstraintName),
			Message: "Value is not allowed",
		})

	default:
		return apperr.Persistence(action, err)
	}

	classified.Cause = err
	return classified
}

// fieldFromConstraint recovers the column from a conventional constraint name
// such as "show_venue_id_fkey" or "venue_phone_check".
func fieldFromConstraint(table, constraint string) string {
	field := strings.TrimPrefix(constraint, table+"_")
	for _, suffix := range []string{"_fkey", "_check", "_key"} {
		field = strings.TrimSuffix(field, suffix)
	}
	return field
}
