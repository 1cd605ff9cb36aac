package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestMapDBErrorRecordNotFound(t *testing.T) {
	err := MapDBError("load schedule", gorm.ErrRecordNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if HTTPStatus(err) != http.StatusNotFound {
		t.Fatalf("status: want=404 got=%d", HTTPStatus(err))
	}
}

func TestMapDBErrorUniqueViolation(t *testing.T) {
	err := MapDBError("create ingredient", &pgconn.PgError{Code: "23505"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if Code(err) != "conflict" {
		t.Fatalf("code: want=conflict got=%s", Code(err))
	}
}

func TestMapDBErrorForeignKeyViolation(t *testing.T) {
	err := MapDBError("create shortage", &pgconn.PgError{Code: "23503"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMapDBErrorDefaultsToPersistence(t *testing.T) {
	err := MapDBError("write check", fmt.Errorf("connection reset"))
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if HTTPStatus(err) != http.StatusInternalServerError {
		t.Fatalf("status: want=500 got=%d", HTTPStatus(err))
	}
}

func TestMapDBErrorNil(t *testing.T) {
	if err := MapDBError("noop", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestTaggedConstructorsCarryMessage(t *testing.T) {
	err := InvalidInput("batch count must be non-negative")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := HTTPStatus(err); got != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", got)
	}
}
