package models

// SendMessageRequest carries one new direct or group-chat message.
// Content arrives as plaintext over the platform's internal transport and
// is encrypted before it touches storage.
type SendMessageRequest struct {
	// SenderID is the author of the message.
	SenderID int64 `json:"sender_id"`

	// ReceiverID is the other party of the conversation.
	ReceiverID int64 `json:"receiver_id"`

	// Content is the plaintext message body.
	Content string `json:"content"`

	// MediaID optionally attaches a previously uploaded media object.
	MediaID *int64 `json:"media_id,omitempty"`
}

// EditMessageRequest replaces the content of an existing message.
// Sender and receiver identify the key context; they must match the values
// the message was originally sent under.
type EditMessageRequest struct {
	// SenderID is the author of the message being edited.
	SenderID int64 `json:"sender_id"`

	// ReceiverID is the other party of the conversation.
	ReceiverID int64 `json:"receiver_id"`

	// Content is the new plaintext body.
	Content string `json:"content"`
}

// SharePostRequest shares a post into a group chat.
type SharePostRequest struct {
	// PostID references the post being shared.
	PostID int64 `json:"post_id"`

	// SenderID is the user sharing the post.
	SenderID int64 `json:"sender_id"`

	// GroupID is the target group chat.
	GroupID int64 `json:"group_id"`

	// Summary is the plaintext summary to encrypt for the group feed.
	Summary PostSummary `json:"summary"`
}

// RecordTransactionRequest stores the sensitive payload of a settled
// marketplace order.
type RecordTransactionRequest struct {
	// OrderID references the settled order.
	OrderID int64 `json:"order_id"`

	// UserID is the buyer the payload belongs to.
	UserID int64 `json:"user_id"`

	// Payment carries how the order was paid.
	Payment PaymentInfo `json:"payment"`

	// Contact carries delivery contact details.
	Contact ContactInfo `json:"contact"`
}
