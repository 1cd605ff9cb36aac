package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound tags errors for missing schedules, recipes, checks.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput tags caller mistakes: bad ids, negative batch counts, mixed units.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPersistence tags read/write failures against the store.
	ErrPersistence = errors.New("persistence failure")
	// ErrUnauthorized tags missing/invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden tags authenticated but disallowed access.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict tags uniqueness/concurrency conflicts.
	ErrConflict = errors.New("conflict")
)

// NotFound tags an error as a missing-resource failure.
func NotFound(msg string) error {
	return errors.Join(ErrNotFound, errors.New(strings.TrimSpace(msg)))
}

// InvalidInput tags an error as caller input validation failure.
func InvalidInput(msg string) error {
	return errors.Join(ErrInvalidInput, errors.New(strings.TrimSpace(msg)))
}

// Persistence wraps a store failure, preserving the cause for logs.
func Persistence(op string, err error) error {
	return errors.Join(ErrPersistence, fmt.Errorf("%s: %w", op, err))
}

// Unauthorized tags an error as an authentication failure.
func Unauthorized(msg string) error {
	return errors.Join(ErrUnauthorized, errors.New(strings.TrimSpace(msg)))
}

// Conflict tags an error as a uniqueness or concurrency conflict.
func Conflict(msg string) error {
	return errors.Join(ErrConflict, errors.New(strings.TrimSpace(msg)))
}

// MapDBError classifies gorm/postgres failures into the taxonomy.
func MapDBError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Join(ErrNotFound, fmt.Errorf("%s: %w", op, err))
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return errors.Join(ErrConflict, fmt.Errorf("%s: %w", op, err))
		case "23503": // foreign_key_violation
			return errors.Join(ErrInvalidInput, fmt.Errorf("%s: %w", op, err))
		}
	}
	return Persistence(op, err)
}

// HTTPStatus maps a tagged error to its contractual status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Code maps a tagged error to a stable machine-readable code string.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrPersistence):
		return "persistence_error"
	default:
		return "internal_error"
	}
}
