package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hbv501g/forumapp/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, testLogger())
}

func TestLogin_DecodesResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "bob", req.Identifier)
		require.Equal(t, "bob", req.UsernameOrEmail)

		_ = json.NewEncoder(w).Encode(AuthSessionResponse{
			SessionID: "sess-1",
			User:      UserResponse{ID: "u1", Username: "bob", Email: "bob@example.com"},
		})
	}))

	resp, err := client.Login(context.Background(), LoginRequest{
		Identifier: "bob", UsernameOrEmail: "bob", Password: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "sess-1", resp.SessionID)
	require.Equal(t, "bob", resp.User.Username)
}

func TestCreatePost_SendsSessionHeader(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts", r.URL.Path)
		require.Equal(t, "sess-1", r.Header.Get("X-Session-Id"))
		_ = json.NewEncoder(w).Encode(PostResponse{ID: "p1"})
	}))

	resp, err := client.CreatePost(context.Background(), "sess-1", CreatePostRequest{
		CommunityName: "golang", Title: "hi", Type: "TEXT", Body: "body",
	})
	require.NoError(t, err)
	require.Equal(t, "p1", resp.ID)
}

func TestGetPost_NoSessionHeaderWhenAnonymous(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Session-Id"]
		require.False(t, present)
		_ = json.NewEncoder(w).Encode(PostResponse{ID: "p1"})
	}))

	_, err := client.GetPost(context.Background(), "p1")
	require.NoError(t, err)
}

func TestListFeed_QueryParamsAndRawBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/feed", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "GLOBAL", q.Get("scope"))
		require.Equal(t, "NEW", q.Get("sort"))
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "25", q.Get("size"))

		// The feed body is passed through untouched, whatever its shape.
		_, _ = w.Write([]byte(`{"posts": [{"id": "p1"}]}`))
	}))

	raw, err := client.ListFeed(context.Background(), "GLOBAL", "NEW", 2, 25)
	require.NoError(t, err)
	require.JSONEq(t, `{"posts": [{"id": "p1"}]}`, string(raw))
}

func TestDo_NonSuccessStatusBecomesHTTPError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "username taken"}`))
	}))

	_, err := client.Register(context.Background(), RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "secret",
	})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusConflict, httpErr.StatusCode)
	require.JSONEq(t, `{"message": "username taken"}`, httpErr.Body)
	require.Contains(t, httpErr.Message, "409")
}

func TestDo_EmptySuccessBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Logout(context.Background(), "sess-1"))
}

func TestDo_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewHTTPClient(url, time.Second, testLogger())

	_, err := client.GetPost(context.Background(), "p1")
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestDo_PathEscapesPostID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts/a%2Fb/comments", r.URL.RawPath)
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.ListComments(context.Background(), "a/b")
	require.NoError(t, err)
}

func TestNewHTTPClient_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A base URL with a trailing slash must not produce a double slash.
		require.Equal(t, "/api/feed", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL+"/", time.Second, testLogger())
	_, err := client.ListFeed(context.Background(), "GLOBAL", "HOT", 0, 25)
	require.NoError(t, err)
}
