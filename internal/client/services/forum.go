// Package services contains the application core of the ForumApp client:
// the forum gateway the UI layer calls into, normalization of variable server
// payloads, translation of heterogeneous failures into one user-facing
// message, and the client-local membership cache.
package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/hbv501g/forumapp/internal/client/api"
	"github.com/hbv501g/forumapp/internal/client/models"
	"github.com/hbv501g/forumapp/internal/client/session"
	"github.com/hbv501g/forumapp/internal/common"
	"github.com/hbv501g/forumapp/internal/logging"
)

const (
	scopeGlobal = "GLOBAL"

	// DefaultFeedSize is the page size used when the caller does not care.
	DefaultFeedSize = 25
	// DefaultCommunitiesSize is how many posts one community listing samples.
	DefaultCommunitiesSize = 100
)

// ForumService implements every domain operation of the client: auth, feed,
// posts, comments, communities and membership. Failures always leave through
// fail(), so callers see exactly one *common.Error per attempt.
//
// Operations are safe to invoke concurrently; shared state lives only behind
// the session store and the membership cache, both of which replace their
// value as a whole.
type ForumService struct {
	api        api.Client
	sessions   *session.Store
	membership *MembershipCache
	log        logging.Logger
}

func NewForumService(client api.Client, sessions *session.Store, log logging.Logger) *ForumService {
	return &ForumService{
		api:        client,
		sessions:   sessions,
		membership: NewMembershipCache(),
		log:        log.With("component", "forum"),
	}
}

// WatchSession exposes the live session stream: the current value on
// subscribe, then every login/logout.
func (s *ForumService) WatchSession(ctx context.Context) <-chan *models.Session {
	return s.sessions.Watch(ctx)
}

// WatchMembership exposes the live joined-communities stream.
func (s *ForumService) WatchMembership(ctx context.Context) <-chan []string {
	return s.membership.Watch(ctx)
}

// CurrentSession returns the active session, or nil when logged out.
func (s *ForumService) CurrentSession(ctx context.Context) *models.Session {
	return s.sessions.Current(ctx)
}

// Register creates a new account. The caller stays logged out.
func (s *ForumService) Register(ctx context.Context, username, email, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := requireFields("Username", username, "Email", email, "Password", password); err != nil {
		return err
	}

	_, err := s.api.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return s.fail(ctx, "register", err)
	}
	s.log.Info(ctx, "account registered", "username", username)
	return nil
}

// RegisterAndLogin registers and then logs in with the same credentials: two
// sequential calls, no retry. If registration succeeds but login fails, the
// caller observes the login failure and no session exists.
func (s *ForumService) RegisterAndLogin(ctx context.Context, username, email, password string) error {
	if err := s.Register(ctx, username, email, password); err != nil {
		return err
	}
	return s.Login(ctx, username, password)
}

// Login authenticates and persists the session. No session is observable
// until the store write has completed.
func (s *ForumService) Login(ctx context.Context, identifier, password string) error {
	identifier = strings.TrimSpace(identifier)
	if err := requireFields("Username or email", identifier, "Password", password); err != nil {
		return err
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{
		Identifier:      identifier,
		UsernameOrEmail: identifier,
		Password:        password,
	})
	if err != nil {
		return s.fail(ctx, "login", err)
	}

	err = s.sessions.Save(ctx, models.Session{
		SessionID: resp.SessionID,
		UserID:    resp.User.ID,
		Username:  resp.User.Username,
		Email:     resp.User.Email,
	})
	if err != nil {
		return s.fail(ctx, "login", err)
	}
	s.log.Info(ctx, "logged in", "username", resp.User.Username)
	return nil
}

// Logout invalidates the session server-side on a best-effort basis, then
// unconditionally clears local state. The client always ends up logged out
// with an empty membership set, even when the server call fails.
func (s *ForumService) Logout(ctx context.Context) error {
	if sessionID := s.sessions.CurrentID(ctx); sessionID != "" {
		if err := s.api.Logout(ctx, sessionID); err != nil {
			s.log.Warn(ctx, "server-side logout failed, clearing local session anyway", "error", err)
		}
	}

	err := s.sessions.Clear(ctx)
	s.membership.Clear()
	if err != nil {
		return s.fail(ctx, "logout", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// GetFeed fetches one feed page and normalizes whichever response shape the
// backend produced.
func (s *ForumService) GetFeed(ctx context.Context, sort models.FeedSort, page, size int) (*models.Page[models.Post], error) {
	raw, err := s.api.ListFeed(ctx, scopeGlobal, string(sort), page, size)
	if err != nil {
		return nil, s.fail(ctx, "feed", err)
	}
	result, err := normalizePage(raw)
	if err != nil {
		return nil, s.fail(ctx, "feed", err)
	}
	s.log.Debug(ctx, "feed loaded", "sort", sort, "page", page, "items", len(result.Items))
	return result, nil
}

// CreateTextPost submits a TEXT post to a community. The supplied community
// name backstops normalization: some server versions do not echo it on a
// freshly created post.
func (s *ForumService) CreateTextPost(ctx context.Context, community, title, body string) (*models.Post, error) {
	sessionID, err := s.requireSessionID(ctx)
	if err != nil {
		return nil, err
	}

	community = strings.TrimSpace(community)
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if err := requireFields("Community", community, "Title", title, "Body", body); err != nil {
		return nil, err
	}

	resp, err := s.api.CreatePost(ctx, sessionID, api.CreatePostRequest{
		CommunityName: community,
		Title:         title,
		Type:          defaultType,
		Body:          body,
	})
	if err != nil {
		return nil, s.fail(ctx, "create post", err)
	}
	post, err := normalizePost(*resp, community)
	if err != nil {
		return nil, s.fail(ctx, "create post", err)
	}
	s.log.Info(ctx, "post created", "post", post.ID, "community", post.Community)
	return &post, nil
}

// CreateCommunity creates a community and returns its server-confirmed name.
// A blank description is omitted from the request, not sent as empty.
func (s *ForumService) CreateCommunity(ctx context.Context, name, description string) (string, error) {
	sessionID, err := s.requireSessionID(ctx)
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if err := requireFields("Name", name); err != nil {
		return "", err
	}

	req := api.CreateCommunityRequest{Name: name}
	if desc := strings.TrimSpace(description); desc != "" {
		req.Description = &desc
	}

	resp, err := s.api.CreateCommunity(ctx, sessionID, req)
	if err != nil {
		return "", s.fail(ctx, "create community", err)
	}
	s.log.Info(ctx, "community created", "name", resp.Name)
	return resp.Name, nil
}

// GetPost fetches and normalizes a single post.
func (s *ForumService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	resp, err := s.api.GetPost(ctx, postID)
	if err != nil {
		return nil, s.fail(ctx, "get post", err)
	}
	post, err := normalizePost(*resp, "")
	if err != nil {
		return nil, s.fail(ctx, "get post", err)
	}
	return &post, nil
}

// GetComments fetches a post's comments in server order.
func (s *ForumService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	responses, err := s.api.ListComments(ctx, postID)
	if err != nil {
		return nil, s.fail(ctx, "comments", err)
	}
	comments := make([]models.Comment, 0, len(responses))
	for _, resp := range responses {
		comment, err := normalizeComment(resp)
		if err != nil {
			return nil, s.fail(ctx, "comments", err)
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

// CreateComment submits a comment on a post.
func (s *ForumService) CreateComment(ctx context.Context, postID, body string) (*models.Comment, error) {
	sessionID, err := s.requireSessionID(ctx)
	if err != nil {
		return nil, err
	}

	body = strings.TrimSpace(body)
	if err := requireFields("Comment", body); err != nil {
		return nil, err
	}

	resp, err := s.api.CreateComment(ctx, sessionID, postID, api.CreateCommentRequest{
		PostID: postID,
		Body:   body,
	})
	if err != nil {
		return nil, s.fail(ctx, "create comment", err)
	}
	comment, err := normalizeComment(*resp)
	if err != nil {
		return nil, s.fail(ctx, "create comment", err)
	}
	s.log.Info(ctx, "comment created", "post", postID)
	return &comment, nil
}

// ListCommunities derives community names from one feed page: distinct
// case-insensitively, sorted case-insensitively, first-seen casing kept.
// The backend has no listing endpoint, so this is a client-side view.
func (s *ForumService) ListCommunities(ctx context.Context, sort models.FeedSort, size int) ([]string, error) {
	page, err := s.GetFeed(ctx, sort, 0, size)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, post := range page.Items {
		name := strings.TrimSpace(post.Community)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	sortCaseInsensitive(names)
	return names, nil
}

// SetCommunityJoined marks a community joined or left on this device.
func (s *ForumService) SetCommunityJoined(name string, joined bool) {
	s.membership.SetJoined(name, joined)
}

// ToggleCommunityMembership flips the local joined state of a community.
func (s *ForumService) ToggleCommunityMembership(name string) {
	s.membership.Toggle(name)
}

// Memberships returns the current joined-communities snapshot.
func (s *ForumService) Memberships() []string {
	return s.membership.Snapshot()
}

// IsCommunityJoined reports the local joined state of a community.
func (s *ForumService) IsCommunityJoined(name string) bool {
	return s.membership.IsJoined(name)
}

// requireSessionID guards authenticated operations: with no active session
// the operation fails before any network call happens.
func (s *ForumService) requireSessionID(ctx context.Context) (string, error) {
	sessionID := s.sessions.CurrentID(ctx)
	if sessionID == "" {
		return "", common.NewError(common.ErrSessionExpired, msgSessionExpired)
	}
	return sessionID, nil
}

// fail funnels every failure through the translator so callers always see a
// single *common.Error with one user-facing message. Failures that already
// carry a domain message pass through verbatim.
func (s *ForumService) fail(ctx context.Context, op string, err error) error {
	var appErr *common.Error
	if errors.As(err, &appErr) {
		s.log.Warn(ctx, "operation failed", "op", op, "error", appErr)
		return appErr
	}

	kind, msg := translate(err)
	s.log.Warn(ctx, "operation failed", "op", op, "error", err)
	return common.NewError(kind, msg)
}

// requireFields raises a validation failure for the first blank value,
// before any network traffic. Arguments alternate label, value.
func requireFields(labelValue ...string) error {
	for i := 0; i+1 < len(labelValue); i += 2 {
		if strings.TrimSpace(labelValue[i+1]) == "" {
			return common.NewError(common.ErrValidation, labelValue[i]+" is required.")
		}
	}
	return nil
}

func sortCaseInsensitive(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
}
