// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
	"github.com/jackc/pgerrcode"
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository] working against the "transactions" table.
type transactionRepository struct {
	*DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveTransaction inserts a new transaction row carrying the encrypted
// payload envelope. The server-assigned ID and CreatedAt are written back
// into txn via the INSERT ... RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateRecord]
//     (the (order_id, user_id) pair was already recorded).
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *transactionRepository) SaveTransaction(ctx context.Context, txn *models.Transaction) error {
	log := logger.FromContext(ctx)

	authTag := sql.NullString{String: txn.Payload.AuthTag, Valid: txn.Payload.AuthTag != ""}

	err := r.DB.QueryRowContext(ctx, saveTransaction,
		txn.OrderID,
		txn.UserID,
		txn.Payload.Ciphertext,
		txn.Payload.IV,
		txn.Payload.Algorithm,
		authTag,
		txn.Payload.HMAC,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.SaveTransaction").
			Int64("order_id", txn.OrderID).
			Int64("user_id", txn.UserID).
			Msg("failed to save transaction")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrDuplicateRecord
		}

		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetTransaction retrieves the transaction recorded for the given order and
// user pair.
//
// Returns [ErrTransactionNotFound] when no row matches.
func (r *transactionRepository) GetTransaction(ctx context.Context, orderID, userID int64) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	var txn models.Transaction
	var authTag sql.NullString

	err := r.DB.QueryRowContext(ctx, getTransactionByOrderAndUser, orderID, userID).Scan(
		&txn.ID,
		&txn.OrderID,
		&txn.UserID,
		&txn.Payload.Ciphertext,
		&txn.Payload.IV,
		&txn.Payload.Algorithm,
		&authTag,
		&txn.Payload.HMAC,
		&txn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "transactionRepository.GetTransaction").
				Int64("order_id", orderID).
				Int64("user_id", userID).
				Msg("transaction not found")
			return models.Transaction{}, ErrTransactionNotFound
		}

		log.Err(err).
			Str("func", "transactionRepository.GetTransaction").
			Int64("order_id", orderID).
			Int64("user_id", userID).
			Msg("failed to scan transaction row")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	txn.Payload.AuthTag = authTag.String

	return txn, nil
}

// GetUserHistory retrieves the transactions a user participated in, newest
// first.
//
// A zero limit returns the full history. Returns the matched rows or an
// error if the query fails, a row cannot be scanned, or an iteration error
// is detected after the result set is exhausted.
func (r *transactionRepository) GetUserHistory(ctx context.Context, userID int64, limit uint64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserHistoryQuery(ctx, userID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.GetUserHistory").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "transactionRepository.GetUserHistory").
			Int64("user_id", userID).
			Msg("failed to execute query for getting user history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, 50)

	for rows.Next() {
		var txn models.Transaction
		var authTag sql.NullString

		scanErr := rows.Scan(
			&txn.ID,
			&txn.OrderID,
			&txn.UserID,
			&txn.Payload.Ciphertext,
			&txn.Payload.IV,
			&txn.Payload.Algorithm,
			&authTag,
			&txn.Payload.HMAC,
			&txn.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "transactionRepository.GetUserHistory").
				Int64("user_id", userID).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		txn.Payload.AuthTag = authTag.String
		results = append(results, txn)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "transactionRepository.GetUserHistory").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
