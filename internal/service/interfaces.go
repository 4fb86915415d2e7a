package service

import (
	"context"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MessageService owns the encrypted lifecycle of direct and group-chat
// messages. Plaintext exists only in the request and response values; every
// persisted row carries an envelope keyed by the (sender, receiver) pair.
type MessageService interface {
	// Send encrypts req.Content for (req.SenderID, req.ReceiverID) and
	// stores a new message row. The returned view echoes the plaintext.
	Send(ctx context.Context, req models.SendMessageRequest) (models.MessageView, error)

	// Edit re-encrypts the new content into a brand-new envelope (fresh IV
	// and HMAC) and replaces the stored one. The key context must match
	// the original send.
	Edit(ctx context.Context, id int64, req models.EditMessageRequest) (models.MessageView, error)

	// Get returns a single decrypted message. When the envelope cannot be
	// opened the returned view carries the placeholder text with
	// Placeholder set, and the error reports the cause.
	Get(ctx context.Context, id int64) (models.MessageView, error)

	// Conversation returns the decrypted messages exchanged between two
	// users, oldest first. Each record is decrypted independently: one
	// broken envelope becomes a placeholder entry and never hides its
	// siblings.
	Conversation(ctx context.Context, firstUserID, secondUserID int64, limit uint64) (models.ConversationResponse, error)

	// LatestPerConversation returns the newest decrypted message of each
	// conversation the user participates in. This is the batch path: it
	// performs one key derivation per returned row.
	LatestPerConversation(ctx context.Context, userID int64) (models.ConversationResponse, error)

	// Delete soft-deletes a message owned by senderID.
	Delete(ctx context.Context, id, senderID int64) error
}

// PostShareService owns the encrypted summaries of posts shared into group
// chats, keyed by the (sender, group) pair.
type PostShareService interface {
	// Share encrypts the post summary for (req.SenderID, req.GroupID) and
	// stores a new share row.
	Share(ctx context.Context, req models.SharePostRequest) (models.PostShareView, error)

	// Get returns a single decrypted share. Placeholder semantics match
	// [MessageService.Get].
	Get(ctx context.Context, id int64) (models.PostShareView, error)

	// Feed returns the decrypted share feed of a group, newest first, with
	// per-record decrypt isolation.
	Feed(ctx context.Context, groupID int64, limit uint64) (models.FeedResponse, error)
}

// TransactionService owns the encrypted payment and contact payloads of
// settled marketplace orders, keyed by the (order, user) pair.
type TransactionService interface {
	// Record encrypts the payment and contact details into one payload and
	// stores a new transaction row. Recording the same (order, user) pair
	// twice fails with [store.ErrDuplicateRecord].
	Record(ctx context.Context, req models.RecordTransactionRequest) (models.TransactionView, error)

	// Get returns the decrypted settlement record of one order and user.
	// Placeholder semantics match [MessageService.Get].
	Get(ctx context.Context, orderID, userID int64) (models.TransactionView, error)

	// History returns the decrypted settlement history of a user, newest
	// first, with per-record decrypt isolation.
	History(ctx context.Context, userID int64, limit uint64) (models.HistoryResponse, error)
}

// MediaService owns encrypted message attachments: opaque blobs in the file
// store plus a metadata row per blob.
type MediaService interface {
	// Upload encrypts data for the (senderID, receiverID) pair, stores the
	// blob and records its metadata row.
	Upload(ctx context.Context, senderID, receiverID int64, contentType string, data []byte) (models.MediaUploadResponse, error)

	// Download loads and decrypts a stored attachment. The key is
	// re-derived from the salt recovered out of the blob header.
	Download(ctx context.Context, id int64) (models.MediaObject, []byte, error)

	// Remove deletes the blob and its metadata row. The blob delete is
	// idempotent: a missing file is not an error.
	Remove(ctx context.Context, id int64) error
}
