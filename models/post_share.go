package models

import "time"

// PostShare records one post shared into a group chat. The visible summary
// of the post (caption, preview location) is encrypted for the ordered
// (sender, group) pair so that only members resolving the same relationship
// can render it.
type PostShare struct {
	// ID is the unique share identifier.
	ID int64 `json:"id"`

	// PostID references the shared post in the platform schema.
	PostID int64 `json:"post_id"`

	// SenderID is the user who shared the post.
	SenderID int64 `json:"sender_id"`

	// GroupID is the group chat the post was shared into.
	GroupID int64 `json:"group_id"`

	// Summary is the encrypted JSON form of PostSummary.
	Summary Envelope `json:"summary"`

	// CreatedAt is the share time.
	CreatedAt time.Time `json:"created_at"`
}

// Context returns the key context the share summary was encrypted under.
func (p PostShare) Context() KeyContext {
	return NewKeyContext(p.SenderID, p.GroupID)
}

// PostSummary is the decrypted payload of a PostShare: the minimum a group
// feed needs to render a shared post without reaching into the post tables.
type PostSummary struct {
	// Title is the post headline or first line.
	Title string `json:"title"`

	// Preview is a short excerpt of the post body.
	Preview string `json:"preview,omitempty"`

	// MediaPath locates the post's preview image, when present.
	MediaPath string `json:"media_path,omitempty"`
}
