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

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. It executes all message CRUD operations directly
// against the "messages" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (message_id, sender_id, receiver_id, etc.).
type messageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveMessage inserts a new message row carrying an encrypted envelope.
//
// The server-assigned ID and CreatedAt are written back into msg via the
// INSERT ... RETURNING clause. An empty AuthTag is stored as NULL so legacy
// rows and modern rows share one column.
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrMissingParent]
//     (msg.MediaID references a media object that does not exist).
//   - Any other driver-level error → wrapped in [ErrExecutingQuery].
func (r *messageRepository) SaveMessage(ctx context.Context, msg *models.Message) error {
	log := logger.FromContext(ctx)

	authTag := sql.NullString{String: msg.Content.AuthTag, Valid: msg.Content.AuthTag != ""}

	err := r.DB.QueryRowContext(ctx, saveMessage,
		msg.SenderID,
		msg.ReceiverID,
		msg.Content.Ciphertext,
		msg.Content.IV,
		msg.Content.Algorithm,
		authTag,
		msg.Content.HMAC,
		msg.MediaID,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.SaveMessage").
			Int64("sender_id", msg.SenderID).
			Int64("receiver_id", msg.ReceiverID).
			Msg("failed to save message")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%w: media object", ErrMissingParent)
		}

		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	msg.UpdatedAt = msg.CreatedAt

	return nil
}

// GetMessageByID retrieves a single message row by its primary key,
// including soft-deleted rows.
//
// Returns [ErrMessageNotFound] when no row matches.
func (r *messageRepository) GetMessageByID(ctx context.Context, id int64) (models.Message, error) {
	log := logger.FromContext(ctx)

	var msg models.Message
	var authTag sql.NullString

	err := r.DB.QueryRowContext(ctx, getMessageByID, id).Scan(
		&msg.ID,
		&msg.SenderID,
		&msg.ReceiverID,
		&msg.Content.Ciphertext,
		&msg.Content.IV,
		&msg.Content.Algorithm,
		&authTag,
		&msg.Content.HMAC,
		&msg.MediaID,
		&msg.CreatedAt,
		&msg.UpdatedAt,
		&msg.Deleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "messageRepository.GetMessageByID").
				Int64("message_id", id).
				Msg("message not found")
			return models.Message{}, ErrMessageNotFound
		}

		log.Err(err).
			Str("func", "messageRepository.GetMessageByID").
			Int64("message_id", id).
			Msg("failed to scan message row")
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	msg.Content.AuthTag = authTag.String

	return msg, nil
}

// GetConversation retrieves the messages exchanged between two users in
// either direction, oldest first, excluding soft-deleted rows.
//
// A zero limit returns the full conversation. Returns the matched rows or an
// error if the query fails, a row cannot be scanned, or an iteration error
// is detected after the result set is exhausted.
func (r *messageRepository) GetConversation(ctx context.Context, firstUserID, secondUserID int64, limit uint64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConversationQuery(ctx, firstUserID, secondUserID, limit)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetConversation").
			Int64("first_user_id", firstUserID).
			Int64("second_user_id", secondUserID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetConversation").
			Int64("first_user_id", firstUserID).
			Int64("second_user_id", secondUserID).
			Msg("failed to execute query for getting conversation")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Message, 0, 50)

	for rows.Next() {
		var msg models.Message
		var authTag sql.NullString

		scanErr := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.Content.Ciphertext,
			&msg.Content.IV,
			&msg.Content.Algorithm,
			&authTag,
			&msg.Content.HMAC,
			&msg.MediaID,
			&msg.CreatedAt,
			&msg.UpdatedAt,
			&msg.Deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "messageRepository.GetConversation").
				Int64("first_user_id", firstUserID).
				Int64("second_user_id", secondUserID).
				Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		msg.Content.AuthTag = authTag.String
		results = append(results, msg)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageRepository.GetConversation").
			Int64("first_user_id", firstUserID).
			Int64("second_user_id", secondUserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetLatestPerConversation retrieves the newest non-deleted message of each
// conversation the user participates in. DISTINCT ON over the unordered
// (LEAST, GREATEST) pair collapses both directions of a conversation into
// one row, so the inbox view needs a single query.
func (r *messageRepository) GetLatestPerConversation(ctx context.Context, userID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getLatestPerConversation, userID)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetLatestPerConversation").
			Int64("user_id", userID).
			Msg("failed to execute query for latest messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Message, 0, 50)

	for rows.Next() {
		var msg models.Message
		var authTag sql.NullString

		scanErr := rows.Scan(
			&msg.ID,
			&msg.SenderID,
			&msg.ReceiverID,
			&msg.Content.Ciphertext,
			&msg.Content.IV,
			&msg.Content.Algorithm,
			&authTag,
			&msg.Content.HMAC,
			&msg.MediaID,
			&msg.CreatedAt,
			&msg.UpdatedAt,
			&msg.Deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "messageRepository.GetLatestPerConversation").
				Int64("user_id", userID).
				Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		msg.Content.AuthTag = authTag.String
		results = append(results, msg)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageRepository.GetLatestPerConversation").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdateMessageContent replaces the encrypted envelope of an existing
// message. The WHERE clause pins the row to msg.SenderID so a sender can
// only edit their own messages, and skips soft-deleted rows.
//
// Returns [ErrMessageNotFound] when no row was updated.
func (r *messageRepository) UpdateMessageContent(ctx context.Context, msg models.Message) error {
	log := logger.FromContext(ctx)

	authTag := sql.NullString{String: msg.Content.AuthTag, Valid: msg.Content.AuthTag != ""}

	result, err := r.DB.ExecContext(ctx, updateMessageContent,
		msg.Content.Ciphertext,
		msg.Content.IV,
		msg.Content.Algorithm,
		authTag,
		msg.Content.HMAC,
		msg.ID,
		msg.SenderID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.UpdateMessageContent").
			Int64("message_id", msg.ID).
			Int64("sender_id", msg.SenderID).
			Msg("failed to execute update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.UpdateMessageContent").
			Int64("message_id", msg.ID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "messageRepository.UpdateMessageContent").
			Int64("message_id", msg.ID).
			Int64("sender_id", msg.SenderID).
			Msg("message not found or not owned by sender")
		return ErrMessageNotFound
	}

	log.Info().
		Str("func", "messageRepository.UpdateMessageContent").
		Int64("message_id", msg.ID).
		Msg("successfully updated message content")

	return nil
}

// DeleteMessage soft-deletes a message owned by senderID. The row is kept
// with deleted = TRUE so conversations retain their ordering.
//
// Returns [ErrMessageNotFound] when no row was updated, which covers both a
// missing row and a sender trying to delete someone else's message.
func (r *messageRepository) DeleteMessage(ctx context.Context, id, senderID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, softDeleteMessage, id, senderID)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.DeleteMessage").
			Int64("message_id", id).
			Int64("sender_id", senderID).
			Msg("failed to execute soft delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.DeleteMessage").
			Int64("message_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "messageRepository.DeleteMessage").
			Int64("message_id", id).
			Int64("sender_id", senderID).
			Msg("message not found or not owned by sender")
		return ErrMessageNotFound
	}

	log.Info().
		Str("func", "messageRepository.DeleteMessage").
		Int64("message_id", id).
		Msg("successfully soft-deleted message")

	return nil
}
