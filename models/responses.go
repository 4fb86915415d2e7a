package models

import "time"

// MessageView is one message as returned to the CRUD tier, with content
// already decrypted. When decryption fails the record is still returned:
// Content holds the placeholder text and Placeholder is set, so one broken
// row never hides its siblings.
type MessageView struct {
	// ID is the message identifier.
	ID int64 `json:"id"`

	// SenderID is the author of the message.
	SenderID int64 `json:"sender_id"`

	// ReceiverID is the other party of the conversation.
	ReceiverID int64 `json:"receiver_id"`

	// Content is the decrypted body, or the placeholder text when
	// Placeholder is set.
	Content string `json:"content"`

	// MediaID references an encrypted attachment, if any.
	MediaID *int64 `json:"media_id,omitempty"`

	// Placeholder reports that Content could not be decrypted.
	Placeholder bool `json:"placeholder,omitempty"`

	// CreatedAt is the original send time.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last edit time.
	UpdatedAt time.Time `json:"updated_at"`
}

// ConversationResponse is a decrypted page of one conversation.
type ConversationResponse struct {
	// Messages is the page of messages, oldest first.
	Messages []MessageView `json:"messages"`

	// Length is the total number of entries in Messages.
	Length int `json:"length"`
}

// PostShareView is one group-feed entry with its summary decrypted.
type PostShareView struct {
	// ID is the share identifier.
	ID int64 `json:"id"`

	// PostID references the shared post.
	PostID int64 `json:"post_id"`

	// SenderID is the user who shared the post.
	SenderID int64 `json:"sender_id"`

	// GroupID is the group chat the post was shared into.
	GroupID int64 `json:"group_id"`

	// Summary is the decrypted post summary; nil when Placeholder is set.
	Summary *PostSummary `json:"summary,omitempty"`

	// Placeholder reports that Summary could not be decrypted.
	Placeholder bool `json:"placeholder,omitempty"`

	// CreatedAt is the share time.
	CreatedAt time.Time `json:"created_at"`
}

// FeedResponse is the decrypted share feed of one group.
type FeedResponse struct {
	// Shares is the list of feed entries, newest first.
	Shares []PostShareView `json:"shares"`

	// Length is the total number of entries in Shares.
	Length int `json:"length"`
}

// TransactionView is one settlement record with its payload decrypted.
type TransactionView struct {
	// ID is the transaction identifier.
	ID int64 `json:"id"`

	// OrderID references the settled order.
	OrderID int64 `json:"order_id"`

	// UserID is the buyer the payload belongs to.
	UserID int64 `json:"user_id"`

	// Payload is the decrypted payment and contact payload; nil when
	// Placeholder is set.
	Payload *TransactionPayload `json:"payload,omitempty"`

	// Placeholder reports that Payload could not be decrypted.
	Placeholder bool `json:"placeholder,omitempty"`

	// CreatedAt is the settlement time.
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse is the decrypted settlement history of one user.
type HistoryResponse struct {
	// Transactions is the list of settlements, newest first.
	Transactions []TransactionView `json:"transactions"`

	// Length is the total number of entries in Transactions.
	Length int `json:"length"`
}

// MediaUploadResponse confirms a stored attachment.
type MediaUploadResponse struct {
	// ID is the media identifier to reference from messages.
	ID int64 `json:"id"`

	// BlobKey is the file-store key of the encrypted blob.
	BlobKey string `json:"blob_key"`

	// Size is the plaintext size in bytes.
	Size int64 `json:"size"`
}
