// Package api is the transport layer of the ForumApp client: a typed client
// for the forum backend's JSON endpoints. It knows verbs, paths, headers and
// wire DTOs, and reports failures as *HTTPError or ErrUnreachable. It does
// not normalize payloads or translate errors; that is the services layer's job.
package api

import (
	"context"
	"encoding/json"
)

// Client defines the forum backend endpoints consumed by the services layer.
//
// Contract:
//   - Authenticated endpoints take the session identifier explicitly; the
//     transport never reads session state on its own.
//   - A non-2xx response surfaces as *HTTPError carrying status, raw body and
//     a human-readable message.
//   - A request that gets no response at all surfaces as an error matching
//     ErrUnreachable via errors.Is.
//   - No retries: every failure is reported once.
//
// All methods honor context cancellation.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthSessionResponse, error)
	Logout(ctx context.Context, sessionID string) error

	// ListFeed returns the raw response body: the feed endpoint has shipped
	// several historical shapes and the caller owns normalization.
	ListFeed(ctx context.Context, scope, sort string, page, size int) (json.RawMessage, error)

	CreatePost(ctx context.Context, sessionID string, req CreatePostRequest) (*PostResponse, error)
	CreateCommunity(ctx context.Context, sessionID string, req CreateCommunityRequest) (*CommunityResponse, error)
	GetPost(ctx context.Context, postID string) (*PostResponse, error)
	ListComments(ctx context.Context, postID string) ([]CommentResponse, error)
	CreateComment(ctx context.Context, sessionID, postID string, req CreateCommentRequest) (*CommentResponse, error)
}

// LoginRequest carries the identifier under both field names the backend has
// accepted over time.
type LoginRequest struct {
	Identifier      string `json:"identifier"`
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

type AuthSessionResponse struct {
	SessionID string       `json:"sessionId"`
	User      UserResponse `json:"user"`
}

// PostResponse mirrors the post wire shape across backend versions. Almost
// everything is optional; the services layer decides fallbacks.
type PostResponse struct {
	ID          string `json:"id"`
	Community   string `json:"community"`
	CommunityID string `json:"communityId"`
	Author      string `json:"author"`
	AuthorID    string `json:"authorId"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	MediaURL    string `json:"mediaUrl"`
	MediaBase64 string `json:"mediaBase64"`
	Score       int    `json:"score"`
	CreatedAt   string `json:"createdAt"`
}

type CreatePostRequest struct {
	CommunityName string `json:"communityName"`
	Title         string `json:"title"`
	Type          string `json:"type"`
	Body          string `json:"body,omitempty"`
	URL           string `json:"url,omitempty"`
}

type CreateCommunityRequest struct {
	Name string `json:"name"`
	// Description is omitted from the request entirely when nil; the backend
	// treats an empty string differently from an absent field.
	Description *string `json:"description,omitempty"`
}

type CommunityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	Score     int    `json:"score"`
	CreatedAt string `json:"createdAt"`
}

type CreateCommentRequest struct {
	PostID string `json:"postId"`
	Body   string `json:"body"`
}
