package model

import "time"

// PostID identifies a forum post
type PostID string

// Author is the public identity attached to forum content
type Author struct {
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// Reply is a response to a forum post
type Reply struct {
	ID        string    `json:"id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
}

// AnonymousAuthor is used for posts made without a session
const AnonymousAuthor = "Anonymous"

// Post is a peer forum thread
type Post struct {
	ID        PostID    `json:"id"`
	Author    Author    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	Tags      []string  `json:"tags"`

	// ReplyCount includes replies made before the thread was imported,
	// so it may exceed len(Replies)
	ReplyCount int     `json:"replyCount"`
	Replies    []Reply `json:"replies"`

	// Liked is computed per viewer and never stored
	Liked bool `json:"isLiked"`
}
