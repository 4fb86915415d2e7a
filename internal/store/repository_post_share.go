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
)

// postShareRepository is the PostgreSQL-backed implementation of
// [PostShareRepository] working against the "post_shares" table.
type postShareRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostShareRepository constructs a [PostShareRepository] backed by the
// provided database connection and logger.
func NewPostShareRepository(db *DB, logger *logger.Logger) PostShareRepository {
	return &postShareRepository{
		DB:     db,
		logger: logger,
	}
}

// SavePostShare inserts a new share row carrying the encrypted summary
// envelope. The server-assigned ID and CreatedAt are written back into
// share via the INSERT ... RETURNING clause.
func (r *postShareRepository) SavePostShare(ctx context.Context, share *models.PostShare) error {
	log := logger.FromContext(ctx)

	authTag := sql.NullString{String: share.Summary.AuthTag, Valid: share.Summary.AuthTag != ""}

	err := r.DB.QueryRowContext(ctx, savePostShare,
		share.PostID,
		share.SenderID,
		share.GroupID,
		share.Summary.Ciphertext,
		share.Summary.IV,
		share.Summary.Algorithm,
		authTag,
		share.Summary.HMAC,
	).Scan(&share.ID, &share.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "postShareRepository.SavePostShare").
			Int64("post_id", share.PostID).
			Int64("group_id", share.GroupID).
			Msg("failed to save post share")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetPostShareByID retrieves a single share row by its primary key.
//
// Returns [ErrPostShareNotFound] when no row matches.
func (r *postShareRepository) GetPostShareByID(ctx context.Context, id int64) (models.PostShare, error) {
	log := logger.FromContext(ctx)

	var share models.PostShare
	var authTag sql.NullString

	err := r.DB.QueryRowContext(ctx, getPostShareByID, id).Scan(
		&share.ID,
		&share.PostID,
		&share.SenderID,
		&share.GroupID,
		&share.Summary.Ciphertext,
		&share.Summary.IV,
		&share.Summary.Algorithm,
		&authTag,
		&share.Summary.HMAC,
		&share.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "postShareRepository.GetPostShareByID").
				Int64("share_id", id).
				Msg("post share not found")
			return models.PostShare{}, ErrPostShareNotFound
		}

		log.Err(err).
			Str("func", "postShareRepository.GetPostShareByID").
			Int64("share_id", id).
			Msg("failed to scan post share row")
		return models.PostShare{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	share.Summary.AuthTag = authTag.String

	return share, nil
}

// GetGroupFeed retrieves the shares posted to a group, newest first.
//
// A zero limit returns the full feed. Returns the matched rows or an error
// if the query fails, a row cannot be scanned, or an iteration error is
// detected after the result set is exhausted.
func (r *postShareRepository) GetGroupFeed(ctx context.Context, groupID int64, limit uint64) ([]models.PostShare, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGroupFeedQuery(ctx, groupID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "postShareRepository.GetGroupFeed").
			Int64("group_id", groupID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postShareRepository.GetGroupFeed").
			Int64("group_id", groupID).
			Msg("failed to execute query for getting group feed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.PostShare, 0, 50)

	for rows.Next() {
		var share models.PostShare
		var authTag sql.NullString

		scanErr := rows.Scan(
			&share.ID,
			&share.PostID,
			&share.SenderID,
			&share.GroupID,
			&share.Summary.Ciphertext,
			&share.Summary.IV,
			&share.Summary.Algorithm,
			&authTag,
			&share.Summary.HMAC,
			&share.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "postShareRepository.GetGroupFeed").
				Int64("group_id", groupID).
				Msg("failed to scan post share row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		share.Summary.AuthTag = authTag.String
		results = append(results, share)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "postShareRepository.GetGroupFeed").
			Int64("group_id", groupID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
