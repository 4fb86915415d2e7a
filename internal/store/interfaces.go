// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

package store

import (
	"context"
	"time"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MessageRepository provides relational persistence for direct messages.
// Rows carry encrypted envelopes only; the repository never sees plaintext.
type MessageRepository interface {
	// SaveMessage inserts a new message row and writes the server-assigned
	// ID and CreatedAt back into msg.
	SaveMessage(ctx context.Context, msg *models.Message) error

	// GetMessageByID returns a single message row, including soft-deleted
	// ones. Returns [ErrMessageNotFound] when no row matches.
	GetMessageByID(ctx context.Context, id int64) (models.Message, error)

	// GetConversation returns the messages exchanged between two users in
	// either direction, oldest first, excluding soft-deleted rows.
	// A zero limit means no limit.
	GetConversation(ctx context.Context, firstUserID, secondUserID int64, limit uint64) ([]models.Message, error)

	// GetLatestPerConversation returns the newest non-deleted message of
	// each conversation the user participates in, one row per counterpart.
	GetLatestPerConversation(ctx context.Context, userID int64) ([]models.Message, error)

	// UpdateMessageContent replaces the encrypted envelope of an existing
	// message owned by msg.SenderID. Returns [ErrMessageNotFound] when the
	// row does not exist, is soft-deleted, or belongs to another sender.
	UpdateMessageContent(ctx context.Context, msg models.Message) error

	// DeleteMessage soft-deletes a message owned by senderID. The row is
	// kept so conversations retain their ordering.
	DeleteMessage(ctx context.Context, id, senderID int64) error
}

// PostShareRepository provides relational persistence for group-shared posts.
type PostShareRepository interface {
	// SavePostShare inserts a new share row and writes the server-assigned
	// ID and CreatedAt back into share.
	SavePostShare(ctx context.Context, share *models.PostShare) error

	// GetPostShareByID returns a single share row.
	// Returns [ErrPostShareNotFound] when no row matches.
	GetPostShareByID(ctx context.Context, id int64) (models.PostShare, error)

	// GetGroupFeed returns the shares posted to a group, newest first.
	// A zero limit means no limit.
	GetGroupFeed(ctx context.Context, groupID int64, limit uint64) ([]models.PostShare, error)
}

// TransactionRepository provides relational persistence for marketplace
// transaction records.
type TransactionRepository interface {
	// SaveTransaction inserts a new transaction row and writes the
	// server-assigned ID and CreatedAt back into txn. Returns
	// [ErrDuplicateRecord] when the (order, user) pair already exists.
	SaveTransaction(ctx context.Context, txn *models.Transaction) error

	// GetTransaction returns the transaction recorded for the given order
	// and user pair. Returns [ErrTransactionNotFound] when no row matches.
	GetTransaction(ctx context.Context, orderID, userID int64) (models.Transaction, error)

	// GetUserHistory returns the transactions a user participated in,
	// newest first. A zero limit means no limit.
	GetUserHistory(ctx context.Context, userID int64, limit uint64) ([]models.Transaction, error)
}

// MediaRepository provides relational persistence for media metadata rows.
// The encrypted bytes themselves live in a [MediaFileStore]; rows only carry
// the blob key and descriptive fields.
type MediaRepository interface {
	// SaveMediaObject inserts a new metadata row and writes the
	// server-assigned ID and CreatedAt back into obj.
	SaveMediaObject(ctx context.Context, obj *models.MediaObject) error

	// GetMediaObjectByID returns a single metadata row.
	// Returns [ErrMediaNotFound] when no row matches.
	GetMediaObjectByID(ctx context.Context, id int64) (models.MediaObject, error)

	// DeleteMediaObject removes a metadata row. Deleting a row that does
	// not exist returns [ErrMediaNotFound].
	DeleteMediaObject(ctx context.Context, id int64) error

	// ListOrphanMedia returns metadata rows older than the cutoff that no
	// message references. The sweeper uses this to reclaim blobs left
	// behind by interrupted uploads.
	ListOrphanMedia(ctx context.Context, olderThan time.Time) ([]models.MediaObject, error)
}

// MediaFileStore persists opaque encrypted blobs outside the relational
// database. Implementations exist for a local directory and for S3.
type MediaFileStore interface {
	// SaveBlob writes an encrypted blob and returns the generated key
	// under which it can be loaded later.
	SaveBlob(ctx context.Context, blob []byte) (string, error)

	// LoadBlob reads the encrypted blob stored under key.
	// Returns [ErrMediaNotFound] when no blob exists for the key.
	LoadBlob(ctx context.Context, key string) ([]byte, error)

	// DeleteBlob removes the blob stored under key. Deleting a key that
	// does not exist is not an error.
	DeleteBlob(ctx context.Context, key string) error
}
