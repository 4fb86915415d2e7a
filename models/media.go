package models

import "time"

// MediaObject is the metadata row for one encrypted message attachment.
//
// The blob itself lives in the media file store as a single opaque file of
// salt, IV, auth tag and ciphertext; this record keeps its location and the
// identifiers needed to re-derive the key. The scrypt salt is inside the
// blob, never in the row.
type MediaObject struct {
	// ID is the unique media identifier.
	ID int64 `json:"id"`

	// SenderID and ReceiverID form the key context of the attachment,
	// matching the conversation the owning message belongs to.
	SenderID   int64 `json:"sender_id"`
	ReceiverID int64 `json:"receiver_id"`

	// BlobKey is the file-store key of the encrypted blob. Local storage
	// uses it as a file name, S3 as an object key.
	BlobKey string `json:"blob_key"`

	// ContentType is the MIME type of the decrypted content.
	ContentType string `json:"content_type"`

	// Size is the plaintext size in bytes.
	Size int64 `json:"size"`

	// CreatedAt is the upload time.
	CreatedAt time.Time `json:"created_at"`
}

// Context returns the key context the blob was encrypted under.
func (m MediaObject) Context() KeyContext {
	return NewKeyContext(m.SenderID, m.ReceiverID)
}
