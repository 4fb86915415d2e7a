package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// NewConnectPostgres opens a PostgreSQL connection using the pgx stdlib
// driver and verifies it with a ping.
//
// The ping is retried with exponential backoff for up to pingMaxElapsed,
// which covers the common deployment race where the database container is
// still starting when the service comes up. Errors the classifier marks as
// non-retryable (bad credentials, unknown database) abort the retry loop
// immediately.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	db := &DB{
		DB:              conn,
		logger:          log,
		errorClassifier: NewPostgresErrorClassifier(),
	}

	if err := db.pingWithRetry(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

const pingMaxElapsed = 15 * time.Second

// pingWithRetry pings the database until it answers, the backoff budget is
// exhausted, or a non-retryable driver error is observed.
func (db *DB) pingWithRetry(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = pingMaxElapsed

	operation := func() error {
		pingErr := db.PingContext(ctx)
		if pingErr == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(pingErr, &pgErr) && db.errorClassifier.Classify(pingErr) == NonRetryable {
			return backoff.Permanent(pingErr)
		}

		return pingErr
	}

	notify := func(err error, next time.Duration) {
		db.logger.Warn().
			Str("func", "DB.pingWithRetry").
			Dur("next_attempt_in", next).
			Err(err).
			Msg("database not ready, retrying ping")
	}

	return backoff.RetryNotify(operation, backoff.WithContext(bo, ctx), notify)
}

// postgresError extracts the PostgreSQL error code from err, or returns an
// empty string when err does not originate from the pgx driver.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
