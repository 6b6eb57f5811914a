// Package models defines the domain records the ForumApp client hands to the
// UI layer. They are plain value types; normalization of server payloads into
// these shapes lives in the services package.
package models

// Session is the locally persisted login state. Zero or one session exists at
// a time; it is replaced or cleared as a whole, never partially updated.
type Session struct {
	SessionID string
	UserID    string
	Username  string
	Email     string
}

// FeedSort selects the ordering the server applies to a feed page.
type FeedSort string

const (
	SortHot FeedSort = "HOT"
	SortNew FeedSort = "NEW"
	SortTop FeedSort = "TOP"
)

// Post is a normalized forum post. ID is always non-empty; Community, Author
// and Title carry placeholder values when the server omitted them.
type Post struct {
	ID        string
	Community string
	Author    string
	Title     string
	Type      string
	Body      string
	URL       string
	MediaURL  string
	Score     int
	CreatedAt string
}

// Comment is a normalized comment on a post. All fields come verbatim from
// the server.
type Comment struct {
	ID        string
	PostID    string
	Author    string
	Body      string
	Score     int
	CreatedAt string
}

// Page is one server-ordered page of items. The client never re-sorts posts.
type Page[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
