// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
	"github.com/jackc/pgerrcode"
)

// mediaRepository is the PostgreSQL-backed implementation of
// [MediaRepository] working against the "media_objects" table. Only
// metadata lives here; the encrypted bytes are held by a [MediaFileStore]
// under the row's blob key.
type mediaRepository struct {
	*DB
	logger *logger.Logger
}

// NewMediaRepository constructs a [MediaRepository] backed by the provided
// database connection and logger.
func NewMediaRepository(db *DB, logger *logger.Logger) MediaRepository {
	return &mediaRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveMediaObject inserts a new metadata row. The server-assigned ID and
// CreatedAt are written back into obj via the INSERT ... RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateRecord]
//     (blob keys are unique; a collision means the key was reused).
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *mediaRepository) SaveMediaObject(ctx context.Context, obj *models.MediaObject) error {
	log := logger.FromContext(ctx)

	err := r.DB.QueryRowContext(ctx, saveMediaObject,
		obj.SenderID,
		obj.ReceiverID,
		obj.BlobKey,
		obj.ContentType,
		obj.Size,
	).Scan(&obj.ID, &obj.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "mediaRepository.SaveMediaObject").
			Int64("sender_id", obj.SenderID).
			Int64("receiver_id", obj.ReceiverID).
			Msg("failed to save media object")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrDuplicateRecord
		}

		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// GetMediaObjectByID retrieves a single metadata row by its primary key.
//
// Returns [ErrMediaNotFound] when no row matches.
func (r *mediaRepository) GetMediaObjectByID(ctx context.Context, id int64) (models.MediaObject, error) {
	log := logger.FromContext(ctx)

	var obj models.MediaObject

	err := r.DB.QueryRowContext(ctx, getMediaObjectByID, id).Scan(
		&obj.ID,
		&obj.SenderID,
		&obj.ReceiverID,
		&obj.BlobKey,
		&obj.ContentType,
		&obj.Size,
		&obj.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "mediaRepository.GetMediaObjectByID").
				Int64("media_id", id).
				Msg("media object not found")
			return models.MediaObject{}, ErrMediaNotFound
		}

		log.Err(err).
			Str("func", "mediaRepository.GetMediaObjectByID").
			Int64("media_id", id).
			Msg("failed to scan media object row")
		return models.MediaObject{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return obj, nil
}

// DeleteMediaObject removes a metadata row. The blob itself is the caller's
// responsibility; the service deletes it from the [MediaFileStore] after
// the row is gone.
//
// Returns [ErrMediaNotFound] when no row was deleted.
func (r *mediaRepository) DeleteMediaObject(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteMediaObject, id)
	if err != nil {
		log.Err(err).
			Str("func", "mediaRepository.DeleteMediaObject").
			Int64("media_id", id).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "mediaRepository.DeleteMediaObject").
			Int64("media_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "mediaRepository.DeleteMediaObject").
			Int64("media_id", id).
			Msg("media object not found")
		return ErrMediaNotFound
	}

	return nil
}

// ListOrphanMedia retrieves metadata rows older than the cutoff that no
// message references. The sweeper calls this periodically to reclaim blobs
// left behind by interrupted uploads.
func (r *mediaRepository) ListOrphanMedia(ctx context.Context, olderThan time.Time) ([]models.MediaObject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOrphanMediaQuery(ctx, olderThan)
	if err != nil {
		log.Err(err).
			Str("func", "mediaRepository.ListOrphanMedia").
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "mediaRepository.ListOrphanMedia").
			Time("older_than", olderThan).
			Msg("failed to execute query for listing orphan media")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.MediaObject, 0, 50)

	for rows.Next() {
		var obj models.MediaObject

		scanErr := rows.Scan(
			&obj.ID,
			&obj.SenderID,
			&obj.ReceiverID,
			&obj.BlobKey,
			&obj.ContentType,
			&obj.Size,
			&obj.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "mediaRepository.ListOrphanMedia").
				Msg("failed to scan media object row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, obj)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "mediaRepository.ListOrphanMedia").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
