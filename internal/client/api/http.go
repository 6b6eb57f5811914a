package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hbv501g/forumapp/internal/logging"
)

const (
	headerSessionID = "X-Session-Id"
	headerRequestID = "X-Request-Id"
)

// HTTPClient implements Client against the forum backend's REST API.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL. The timeout
// applies per request; a zero timeout leaves requests bounded only by the
// caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	var out UserResponse
	if err := c.do(ctx, http.MethodPost, "api/auth/register", "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*AuthSessionResponse, error) {
	var out AuthSessionResponse
	if err := c.do(ctx, http.MethodPost, "api/auth/login", "", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Logout(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodPost, "api/auth/logout", sessionID, nil, nil, nil)
}

func (c *HTTPClient) ListFeed(ctx context.Context, scope, sort string, page, size int) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("scope", scope)
	q.Set("sort", sort)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "api/feed", "", q, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *HTTPClient) CreatePost(ctx context.Context, sessionID string, req CreatePostRequest) (*PostResponse, error) {
	var out PostResponse
	if err := c.do(ctx, http.MethodPost, "api/posts", sessionID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateCommunity(ctx context.Context, sessionID string, req CreateCommunityRequest) (*CommunityResponse, error) {
	var out CommunityResponse
	if err := c.do(ctx, http.MethodPost, "api/communities", sessionID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GetPost(ctx context.Context, postID string) (*PostResponse, error) {
	var out PostResponse
	if err := c.do(ctx, http.MethodGet, "api/posts/"+url.PathEscape(postID), "", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListComments(ctx context.Context, postID string) ([]CommentResponse, error) {
	var out []CommentResponse
	if err := c.do(ctx, http.MethodGet, "api/posts/"+url.PathEscape(postID)+"/comments", "", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, sessionID, postID string, req CreateCommentRequest) (*CommentResponse, error) {
	var out CommentResponse
	if err := c.do(ctx, http.MethodPost, "api/posts/"+url.PathEscape(postID)+"/comments", sessionID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request/response round trip. A non-2xx status becomes
// *HTTPError; a transport failure with no response becomes an ErrUnreachable
// error. The decoded body is written into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path, sessionID string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(headerSessionID, sessionID)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed without response",
			"method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	c.log.Debug(ctx, "request completed",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
			Message:    resp.Status,
		}
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}
