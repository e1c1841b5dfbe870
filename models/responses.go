package models

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// FeedResponse wraps the posts of the users the requester follows.
type FeedResponse struct {
	Posts []Post `json:"data"`

	// Length is the total number of entries in Posts.
	Length int `json:"length"`
}
