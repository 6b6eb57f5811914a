package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hbv501g/forumapp/internal/client/api"
	"github.com/hbv501g/forumapp/internal/common"
)

func httpErr(status int, body string) *api.HTTPError {
	return &api.HTTPError{StatusCode: status, Body: body, Message: fmt.Sprintf("%d boom", status)}
}

func TestTranslate_BodyMessageFieldWins(t *testing.T) {
	kind, msg := translate(httpErr(422, `{"message": "title too long", "error": "ignored"}`))

	require.Equal(t, common.ErrRequestFailed, kind)
	require.Equal(t, "title too long", msg)
}

func TestTranslate_Conflict409FixedMessage(t *testing.T) {
	// The 409 message is fixed regardless of body content.
	for _, body := range []string{
		`{"error": "user_exists"}`,
		`some plain text`,
		``,
		`null`,
	} {
		_, msg := translate(httpErr(409, body))
		require.Equal(t, msgDuplicateCreds, msg)
	}
}

func TestTranslate_BadRequestRawBody(t *testing.T) {
	_, msg := translate(httpErr(400, `community name must not contain spaces`))
	require.Equal(t, "Bad request: community name must not contain spaces", msg)
}

func TestTranslate_BadRequestBodyTruncatedTo220(t *testing.T) {
	long := strings.Repeat("x", 500)

	_, msg := translate(httpErr(400, long))
	require.Equal(t, "Bad request: "+strings.Repeat("x", 220), msg)
}

func TestTranslate_BadRequestMarkupBodySkipped(t *testing.T) {
	// An HTML error page must never be shown to the user.
	_, msg := translate(httpErr(400, `<html><body>Bad Request</body></html>`))
	require.Equal(t, "400 boom", msg)
}

func TestTranslate_BadRequestNullBodySkipped(t *testing.T) {
	_, msg := translate(httpErr(400, `null`))
	require.Equal(t, "400 boom", msg)
}

func TestTranslate_BodyErrorFieldFallback(t *testing.T) {
	_, msg := translate(httpErr(500, `{"error": "database exploded"}`))
	require.Equal(t, "database exploded", msg)
}

func TestTranslate_TransportMessageFallback(t *testing.T) {
	_, msg := translate(httpErr(502, ``))
	require.Equal(t, "502 boom", msg)
}

func TestTranslate_GenericHTTPMessage(t *testing.T) {
	_, msg := translate(&api.HTTPError{StatusCode: 503, Body: "null", Message: "  "})
	require.Equal(t, "Request failed with HTTP 503", msg)
}

func TestTranslate_BlankMessageFieldFallsThrough(t *testing.T) {
	_, msg := translate(httpErr(500, `{"message": "  ", "error": "real cause"}`))
	require.Equal(t, "real cause", msg)
}

func TestTranslate_NullMessageFieldFallsThrough(t *testing.T) {
	_, msg := translate(httpErr(500, `{"message": "null", "error": "real cause"}`))
	require.Equal(t, "real cause", msg)
}

func TestTranslate_Unreachable(t *testing.T) {
	err := fmt.Errorf("GET api/feed: %w: dial tcp: connection refused", api.ErrUnreachable)

	kind, msg := translate(err)
	require.Equal(t, common.ErrConnectivity, kind)
	require.Equal(t, msgUnreachable, msg)
}

func TestTranslate_OtherErrorUsesOwnMessage(t *testing.T) {
	kind, msg := translate(errors.New("decode response: unexpected EOF"))

	require.Equal(t, common.ErrRequestFailed, kind)
	require.Equal(t, "decode response: unexpected EOF", msg)
}

func TestTranslate_EmptyErrorMessage(t *testing.T) {
	_, msg := translate(errors.New("  "))
	require.Equal(t, msgUnexpected, msg)
}
