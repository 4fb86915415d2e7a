package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
)

const (
	saveMessage = `INSERT INTO messages (sender_id, receiver_id, ciphertext, iv, algorithm, auth_tag, hmac, media_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;`

	getMessageByID = `SELECT id, sender_id, receiver_id, ciphertext, iv, algorithm, auth_tag, hmac, media_id, created_at, updated_at, deleted
		FROM messages
		WHERE id = $1;`

	getLatestPerConversation = `SELECT DISTINCT ON (LEAST(sender_id, receiver_id), GREATEST(sender_id, receiver_id))
			id, sender_id, receiver_id, ciphertext, iv, algorithm, auth_tag, hmac, media_id, created_at, updated_at, deleted
		FROM messages
		WHERE (sender_id = $1 OR receiver_id = $1) AND deleted = FALSE
		ORDER BY LEAST(sender_id, receiver_id), GREATEST(sender_id, receiver_id), created_at DESC, id DESC;`

	updateMessageContent = `UPDATE messages
		SET ciphertext = $1, iv = $2, algorithm = $3, auth_tag = $4, hmac = $5, updated_at = NOW()
		WHERE id = $6 AND sender_id = $7 AND deleted = FALSE;`

	softDeleteMessage = `UPDATE messages
		SET deleted = TRUE, updated_at = NOW()
		WHERE id = $1 AND sender_id = $2 AND deleted = FALSE;`

	savePostShare = `INSERT INTO post_shares (post_id, sender_id, group_id, ciphertext, iv, algorithm, auth_tag, hmac)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;`

	getPostShareByID = `SELECT id, post_id, sender_id, group_id, ciphertext, iv, algorithm, auth_tag, hmac, created_at
		FROM post_shares
		WHERE id = $1;`

	saveTransaction = `INSERT INTO transactions (order_id, user_id, ciphertext, iv, algorithm, auth_tag, hmac)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;`

	getTransactionByOrderAndUser = `SELECT id, order_id, user_id, ciphertext, iv, algorithm, auth_tag, hmac, created_at
		FROM transactions
		WHERE order_id = $1 AND user_id = $2;`

	saveMediaObject = `INSERT INTO media_objects (sender_id, receiver_id, blob_key, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`

	getMediaObjectByID = `SELECT id, sender_id, receiver_id, blob_key, content_type, size_bytes, created_at
		FROM media_objects
		WHERE id = $1;`

	deleteMediaObject = `DELETE FROM media_objects
		WHERE id = $1;`
)

// messageColumns lists the messages columns in scan order. Shared by the
// static [getMessageByID] query and the dynamic conversation builder so the
// two cannot drift apart.
var messageColumns = []string{
	"id", "sender_id", "receiver_id", "ciphertext", "iv", "algorithm",
	"auth_tag", "hmac", "media_id", "created_at", "updated_at", "deleted",
}

var postShareColumns = []string{
	"id", "post_id", "sender_id", "group_id", "ciphertext", "iv",
	"algorithm", "auth_tag", "hmac", "created_at",
}

var transactionColumns = []string{
	"id", "order_id", "user_id", "ciphertext", "iv", "algorithm",
	"auth_tag", "hmac", "created_at",
}

// buildConversationQuery builds the SELECT returning all messages exchanged
// between two users in either direction, oldest first. Soft-deleted rows are
// excluded. A zero limit produces an unbounded query.
func buildConversationQuery(ctx context.Context, firstUserID, secondUserID int64, limit uint64) (string, []any, error) {
	builder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Or{
			sq.And{sq.Eq{"sender_id": firstUserID}, sq.Eq{"receiver_id": secondUserID}},
			sq.And{sq.Eq{"sender_id": secondUserID}, sq.Eq{"receiver_id": firstUserID}},
		}).
		Where(sq.Eq{"deleted": false}).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "buildConversationQuery").
			Msg("failed to build conversation query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGroupFeedQuery builds the SELECT returning the shares posted to a
// group, newest first. A zero limit produces an unbounded query.
func buildGroupFeedQuery(ctx context.Context, groupID int64, limit uint64) (string, []any, error) {
	builder := sq.Select(postShareColumns...).
		From("post_shares").
		Where(sq.Eq{"group_id": groupID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "buildGroupFeedQuery").
			Msg("failed to build group feed query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUserHistoryQuery builds the SELECT returning the transactions a user
// participated in, newest first. A zero limit produces an unbounded query.
func buildUserHistoryQuery(ctx context.Context, userID int64, limit uint64) (string, []any, error) {
	builder := sq.Select(transactionColumns...).
		From("transactions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "buildUserHistoryQuery").
			Msg("failed to build user history query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildOrphanMediaQuery builds the SELECT returning media metadata rows older
// than the cutoff that no message references. The LEFT JOIN plus IS NULL
// filter keeps rows an interrupted upload left behind.
func buildOrphanMediaQuery(ctx context.Context, olderThan time.Time) (string, []any, error) {
	builder := sq.Select(
		"m.id", "m.sender_id", "m.receiver_id", "m.blob_key",
		"m.content_type", "m.size_bytes", "m.created_at").
		From("media_objects m").
		LeftJoin("messages ON messages.media_id = m.id").
		Where("messages.id IS NULL").
		Where(sq.Lt{"m.created_at": olderThan}).
		OrderBy("m.created_at ASC").
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "buildOrphanMediaQuery").
			Msg("failed to build orphan media query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
