package store

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify_NilAndNonPostgresErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()

	if got := c.Classify(nil); got != NonRetryable {
		t.Fatalf("expected NonRetryable for nil error, got %v", got)
	}
	if got := c.Classify(errors.New("plain error")); got != NonRetryable {
		t.Fatalf("expected NonRetryable for non-driver error, got %v", got)
	}
	if got := c.Classify(sql.ErrNoRows); got != NonRetryable {
		t.Fatalf("expected NonRetryable for sql.ErrNoRows, got %v", got)
	}
}

func TestClassify_PostgresErrorCodes(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		code string
		want ErrorClassification
	}{
		{"connection exception", pgerrcode.ConnectionException, Retryable},
		{"connection does not exist", pgerrcode.ConnectionDoesNotExist, Retryable},
		{"connection failure", pgerrcode.ConnectionFailure, Retryable},
		{"serialization failure", pgerrcode.SerializationFailure, Retryable},
		{"deadlock detected", pgerrcode.DeadlockDetected, Retryable},
		{"cannot connect now", pgerrcode.CannotConnectNow, Retryable},
		{"unique violation", pgerrcode.UniqueViolation, NonRetryable},
		{"not null violation", pgerrcode.NotNullViolation, NonRetryable},
		{"syntax error", pgerrcode.SyntaxError, NonRetryable},
		{"unknown code", "XX000", NonRetryable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := c.Classify(pgError(test.code)); got != test.want {
				t.Fatalf("Classify(%s) = %v, want %v", test.code, got, test.want)
			}
		})
	}
}

func TestClassify_UnwrapsWrappedDriverErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()

	wrapped := fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.DeadlockDetected))
	if got := c.Classify(wrapped); got != Retryable {
		t.Fatalf("expected Retryable for wrapped deadlock error, got %v", got)
	}
}

func TestClassifyPgError_DefaultsToNonRetryable(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.AdminShutdown}
	if got := ClassifyPgError(pgErr); got != NonRetryable {
		t.Fatalf("expected NonRetryable for unlisted code, got %v", got)
	}
}

func TestErrorClassification_String(t *testing.T) {
	if got := Retryable.String(); got != "retryable" {
		t.Fatalf("Retryable.String() = %q, want %q", got, "retryable")
	}
	if got := NonRetryable.String(); got != "non_retryable" {
		t.Fatalf("NonRetryable.String() = %q, want %q", got, "non_retryable")
	}
}
