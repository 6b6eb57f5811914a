package services

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/hbv501g/forumapp/internal/client/api"
	"github.com/hbv501g/forumapp/internal/client/models"
	"github.com/hbv501g/forumapp/internal/common"
)

// Placeholders applied when the server omits a field it used to send.
const (
	unknownName   = "unknown"
	untitledTitle = "(untitled)"
	defaultType   = "TEXT"
)

// pageEnvelope is the canonical paginated feed shape.
type pageEnvelope struct {
	Items         []api.PostResponse `json:"items"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
}

// normalizePage turns a raw feed response into one page of posts. The feed
// endpoint has shipped four shapes over time; they are tried in priority
// order and the first match wins:
//
//  1. a bare JSON array of posts
//  2. an object with "items" (canonical envelope)
//  3. an object with "content" plus Spring-style sibling counters
//  4. an object wrapping a "posts" array
//
// Anything else fails as a malformed response.
func normalizePage(raw json.RawMessage) (*models.Page[models.Post], error) {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var posts []api.PostResponse
		if err := json.Unmarshal(trimmed, &posts); err != nil {
			return nil, common.NewError(common.ErrMalformedResponse, "Unexpected feed response format")
		}
		return singlePage(posts)
	}

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return nil, common.NewError(common.ErrMalformedResponse, "Unexpected feed response format")
		}
		return normalizePageObject(trimmed, fields)
	}

	return nil, common.NewError(common.ErrMalformedResponse, "Unexpected feed response format")
}

func normalizePageObject(raw []byte, fields map[string]json.RawMessage) (*models.Page[models.Post], error) {
	if _, ok := fields["items"]; ok {
		var env pageEnvelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, common.NewError(common.ErrMalformedResponse, "Unexpected feed response format")
		}
		items, err := normalizePosts(env.Items)
		if err != nil {
			return nil, err
		}
		return &models.Page[models.Post]{
			Items:         items,
			Page:          env.Page,
			Size:          env.Size,
			TotalElements: env.TotalElements,
			TotalPages:    env.TotalPages,
		}, nil
	}

	if content, ok := fields["content"]; ok {
		var posts []api.PostResponse
		if err := json.Unmarshal(content, &posts); err != nil {
			return nil, common.NewError(common.ErrMalformedResponse, "Unexpected feed response format")
		}
		items, err := normalizePosts(posts)
		if err != nil {
			return nil, err
		}
		return &models.Page[models.Post]{
			Items:         items,
			Page:          intOrDefault(fields, "number", 0),
			Size:          intOrDefault(fields, "size", len(posts)),
			TotalElements: int64OrDefault(fields, "totalElements", int64(len(posts))),
			TotalPages:    intOrDefault(fields, "totalPages", 1),
		}, nil
	}

	if postsRaw, ok := fields["posts"]; ok {
		if trimmed := bytes.TrimSpace(postsRaw); len(trimmed) > 0 && trimmed[0] == '[' {
			var posts []api.PostResponse
			if err := json.Unmarshal(trimmed, &posts); err != nil {
				return nil, common.NewError(common.ErrMalformedResponse, "Unexpected feed response format")
			}
			return singlePage(posts)
		}
	}

	return nil, common.NewError(common.ErrMalformedResponse, "Feed response missing posts/items/content")
}

// singlePage wraps an unpaginated post list as page zero of one.
func singlePage(posts []api.PostResponse) (*models.Page[models.Post], error) {
	items, err := normalizePosts(posts)
	if err != nil {
		return nil, err
	}
	return &models.Page[models.Post]{
		Items:         items,
		Page:          0,
		Size:          len(posts),
		TotalElements: int64(len(posts)),
		TotalPages:    1,
	}, nil
}

func normalizePosts(responses []api.PostResponse) ([]models.Post, error) {
	items := make([]models.Post, 0, len(responses))
	for _, resp := range responses {
		post, err := normalizePost(resp, "")
		if err != nil {
			return nil, err
		}
		items = append(items, post)
	}
	return items, nil
}

// normalizePost converts one post payload into the domain record. The id must
// be present; everything else degrades to a placeholder. fallbackCommunity is
// supplied only right after creating a post, where the caller already knows
// the community and older backends do not echo it.
func normalizePost(resp api.PostResponse, fallbackCommunity string) (models.Post, error) {
	id := strings.TrimSpace(resp.ID)
	if id == "" {
		return models.Post{}, common.NewError(common.ErrMalformedResponse, "Post response missing id")
	}

	community := firstNonBlank(resp.Community, resp.CommunityID, fallbackCommunity)
	if community == "" {
		community = unknownName
	}
	author := firstNonBlank(resp.Author, resp.AuthorID)
	if author == "" {
		author = unknownName
	}
	title := strings.TrimSpace(resp.Title)
	if title == "" {
		title = untitledTitle
	}
	postType := resp.Type
	if postType == "" {
		postType = defaultType
	}

	return models.Post{
		ID:        id,
		Community: community,
		Author:    author,
		Title:     title,
		Type:      postType,
		Body:      resp.Body,
		URL:       resp.URL,
		MediaURL:  resp.MediaURL,
		Score:     resp.Score,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// normalizeComment passes a comment through verbatim. Comments have never had
// shape drift, so a comment that cannot identify itself is a server fault.
func normalizeComment(resp api.CommentResponse) (models.Comment, error) {
	if strings.TrimSpace(resp.ID) == "" || strings.TrimSpace(resp.PostID) == "" {
		return models.Comment{}, common.NewError(common.ErrMalformedResponse, "Comment response missing id")
	}
	return models.Comment{
		ID:        resp.ID,
		PostID:    resp.PostID,
		Author:    resp.Author,
		Body:      resp.Body,
		Score:     resp.Score,
		CreatedAt: resp.CreatedAt,
	}, nil
}

// firstNonBlank returns the first value with non-whitespace content, trimmed.
func firstNonBlank(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func intOrDefault(fields map[string]json.RawMessage, name string, def int) int {
	raw, ok := fields[name]
	if !ok {
		return def
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

func int64OrDefault(fields map[string]json.RawMessage, name string, def int64) int64 {
	raw, ok := fields[name]
	if !ok {
		return def
	}
	var v int64
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}
