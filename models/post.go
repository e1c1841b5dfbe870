package models

import "time"

// Post is a piece of content authored by exactly one user.
// At least one of Text or File is non-empty.
type Post struct {
	PostID string `json:"id"`

	// UserID is the author of the post.
	UserID string `json:"userId"`

	// Author is filled by read queries; never persisted on its own.
	Author *UserSummary `json:"author,omitempty"`

	Text string `json:"text"`

	// File is the media host URL of the attached media.
	File string `json:"file"`

	// Likes holds the ids of users who liked the post, each at most once,
	// in the order the likes were given.
	Likes IDList `json:"likes"`

	// Comments are append-only and ordered by creation time.
	Comments Comments `json:"comments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// Comment is a single comment left under a post.
type Comment struct {
	CommentID string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
