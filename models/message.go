package models

import "time"

// Message is one direct or group-chat message with encrypted content.
//
// Only ciphertext crosses this service's boundary: the plaintext exists in
// request/response DTOs and is never persisted. The envelope is keyed by the
// ordered (SenderID, ReceiverID) pair.
type Message struct {
	// ID is the unique message identifier.
	ID int64 `json:"id"`

	// SenderID is the author of the message.
	SenderID int64 `json:"sender_id"`

	// ReceiverID is the other party of the conversation.
	ReceiverID int64 `json:"receiver_id"`

	// Content is the encrypted message body.
	Content Envelope `json:"content"`

	// MediaID references an encrypted attachment, if any.
	MediaID *int64 `json:"media_id,omitempty"`

	// CreatedAt is the original send time.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt moves forward on edit; an edit replaces the whole
	// envelope, it never rewrites fields inside one.
	UpdatedAt time.Time `json:"updated_at"`

	// Deleted marks the message as soft-deleted. Ciphertext is retained
	// so conversations stay reconcilable, but reads skip the record.
	Deleted bool `json:"deleted,omitempty"`
}

// Context returns the key context the message content was encrypted under.
func (m Message) Context() KeyContext {
	return NewKeyContext(m.SenderID, m.ReceiverID)
}
