package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{
			name: "nil error is non-retryable",
			err:  nil,
			want: NonRetryable,
		},
		{
			name: "plain error is non-retryable",
			err:  errors.New("something broke"),
			want: NonRetryable,
		},
		{
			name: "connection failure is retryable",
			err:  &pgconn.PgError{Code: pgerrcode.ConnectionFailure},
			want: Retryable,
		},
		{
			name: "server starting up is retryable",
			err:  &pgconn.PgError{Code: pgerrcode.CannotConnectNow},
			want: Retryable,
		},
		{
			name: "deadlock is retryable",
			err:  &pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			want: Retryable,
		},
		{
			name: "wrapped pg error is unwrapped before classification",
			err:  fmt.Errorf("ping: %w", &pgconn.PgError{Code: pgerrcode.ConnectionDoesNotExist}),
			want: Retryable,
		},
		{
			name: "bad password is non-retryable",
			err:  &pgconn.PgError{Code: pgerrcode.InvalidPassword},
			want: NonRetryable,
		},
		{
			name: "unique violation is non-retryable",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			want: NonRetryable,
		},
		{
			name: "undefined table is non-retryable",
			err:  &pgconn.PgError{Code: pgerrcode.UndefinedTable},
			want: NonRetryable,
		},
		{
			name: "unknown pg code is non-retryable",
			err:  &pgconn.PgError{Code: "P0001"},
			want: NonRetryable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.Classify(tc.err))
		})
	}
}
