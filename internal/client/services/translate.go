package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hbv501g/forumapp/internal/client/api"
	"github.com/hbv501g/forumapp/internal/common"
)

// Fixed user-facing messages for failures the backend cannot describe itself.
const (
	msgSessionExpired  = "Session expired. Please log in again."
	msgDuplicateCreds  = "Username or email already in use. Try logging in or choose different values."
	msgUnreachable     = "Could not reach server. Check the backend URL/network."
	msgUnexpected      = "Unexpected error"
	maxRawBodyExcerpt  = 220
	badRequestExcerpt  = "Bad request: "
	requestFailedProto = "Request failed with HTTP %d"
)

// errorBody is the backend's error payload on a good day. Which of the two
// fields is populated varies by endpoint.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// httpRule inspects an HTTP failure and either produces a user-facing
// message or passes.
type httpRule func(e *api.HTTPError, body errorBody) (string, bool)

// httpRules are tried in order; the first usable message wins. The order
// encodes how much each source is trusted: a structured backend message
// first, then known statuses, then progressively rawer material.
var httpRules = []httpRule{
	func(e *api.HTTPError, body errorBody) (string, bool) {
		return body.Message, usable(body.Message)
	},
	func(e *api.HTTPError, body errorBody) (string, bool) {
		return msgDuplicateCreds, e.StatusCode == http.StatusConflict
	},
	func(e *api.HTTPError, body errorBody) (string, bool) {
		raw := strings.TrimSpace(e.Body)
		if e.StatusCode == http.StatusBadRequest && usable(raw) && !strings.HasPrefix(raw, "<") {
			return badRequestExcerpt + truncate(raw, maxRawBodyExcerpt), true
		}
		return "", false
	},
	func(e *api.HTTPError, body errorBody) (string, bool) {
		return body.Error, usable(body.Error)
	},
	func(e *api.HTTPError, body errorBody) (string, bool) {
		return e.Message, usable(e.Message)
	},
}

// translate maps any failure surfaced by the transport, or by this layer's
// own logic, onto the error taxonomy: a kind sentinel plus exactly one
// user-facing message. Backend error payloads are inconsistent across
// endpoints, so HTTP failures degrade through httpRules rather than trusting
// any single field.
func translate(err error) (kind error, msg string) {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		var body errorBody
		// Tolerant parse: a non-JSON body simply leaves the fields blank.
		_ = json.Unmarshal([]byte(httpErr.Body), &body)

		for _, rule := range httpRules {
			if m, ok := rule(httpErr, body); ok {
				return common.ErrRequestFailed, m
			}
		}
		return common.ErrRequestFailed, fmt.Sprintf(requestFailedProto, httpErr.StatusCode)
	}

	if errors.Is(err, api.ErrUnreachable) {
		return common.ErrConnectivity, msgUnreachable
	}

	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return common.ErrRequestFailed, msgUnexpected
	}
	return common.ErrRequestFailed, err.Error()
}

// usable reports whether a backend-provided message is fit to show to the
// user: non-blank and not the literal string "null".
func usable(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed != "" && !strings.EqualFold(trimmed, "null")
}

// truncate limits s to max characters, not bytes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
