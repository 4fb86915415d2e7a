// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FCS Project Authors

// Package adapter provides a Go client for the encrypted-content service.
//
// The primary abstraction is [ServerAdapter], which decouples callers (the
// operator console and other platform services) from the underlying
// protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// encrypted-content service. Implementations are responsible for
// serialisation, transport integrity headers, and mapping transport-level
// errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// Version returns the version string reported by the server.
	Version(ctx context.Context) (string, error)

	// SendMessage stores a new encrypted message and returns its decrypted
	// view. A transport integrity hash covering the request body is
	// attached automatically when a hash key is configured.
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.MessageView, error)

	// EditMessage replaces the content of message id. The server
	// re-encrypts the new content into a fresh envelope.
	EditMessage(ctx context.Context, id int64, req models.EditMessageRequest) (models.MessageView, error)

	// DeleteMessage soft-deletes a message owned by senderID.
	DeleteMessage(ctx context.Context, id, senderID int64) error

	// GetMessage fetches one decrypted message. When the server could not
	// open the envelope the returned view carries the placeholder flag and
	// the error wraps [ErrUnprocessable].
	GetMessage(ctx context.Context, id int64) (models.MessageView, error)

	// GetConversation fetches the decrypted conversation between two
	// users, oldest first. limit of zero means no limit.
	GetConversation(ctx context.Context, firstUserID, secondUserID int64, limit uint64) (models.ConversationResponse, error)

	// GetLatestConversations fetches the newest message of each
	// conversation the user participates in.
	GetLatestConversations(ctx context.Context, userID int64) (models.ConversationResponse, error)

	// SharePost stores an encrypted post summary in a group feed.
	SharePost(ctx context.Context, req models.SharePostRequest) (models.PostShareView, error)

	// GetPostShare fetches one decrypted feed entry. Placeholder semantics
	// match [ServerAdapter.GetMessage].
	GetPostShare(ctx context.Context, id int64) (models.PostShareView, error)

	// GetGroupFeed fetches the decrypted share feed of a group, newest
	// first. limit of zero means no limit.
	GetGroupFeed(ctx context.Context, groupID int64, limit uint64) (models.FeedResponse, error)

	// RecordTransaction stores the encrypted settlement payload of an
	// order. Recording the same (order, user) pair twice returns
	// [ErrConflict] (wrapped).
	RecordTransaction(ctx context.Context, req models.RecordTransactionRequest) (models.TransactionView, error)

	// GetTransaction fetches the decrypted settlement record of one order
	// and user.
	GetTransaction(ctx context.Context, orderID, userID int64) (models.TransactionView, error)

	// GetUserHistory fetches the decrypted settlement history of a user,
	// newest first. limit of zero means no limit.
	GetUserHistory(ctx context.Context, userID int64, limit uint64) (models.HistoryResponse, error)

	// UploadMedia encrypts and stores an attachment for the
	// (sender, receiver) pair and returns the stored metadata.
	UploadMedia(ctx context.Context, senderID, receiverID int64, contentType string, data []byte) (models.MediaUploadResponse, error)

	// DownloadMedia fetches and decrypts a stored attachment.
	DownloadMedia(ctx context.Context, id int64) ([]byte, string, error)

	// DeleteMedia removes an attachment and its metadata.
	DeleteMedia(ctx context.Context, id int64) error
}
