//go:build unit

package errs_test

import (
	"errors"
	"net/http"
	"testing"

	"tos-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseError(t *testing.T) {
	cases := []struct {
		name   string
		err    *errs.ResponseError
		kind   errs.Kind
		status int
		msg    string
	}{
		{name: "bad request", err: errs.BadRequest("appid must be a String."), kind: errs.KindBadRequest, status: http.StatusBadRequest, msg: "appid must be a String."},
		{name: "unauthorized without message", err: errs.Unauthorized(""), kind: errs.KindUnauthorized, status: http.StatusUnauthorized, msg: "Unauthorized"},
		{name: "forbidden", err: errs.Forbidden("user declined TOS"), kind: errs.KindForbidden, status: http.StatusForbidden, msg: "user declined TOS"},
		{name: "not found", err: errs.NotFound(""), kind: errs.KindNotFound, status: http.StatusNotFound, msg: "Not Found"},
		{name: "method not allowed", err: errs.MethodNotAllowed(""), kind: errs.KindMethodNotAllowed, status: http.StatusMethodNotAllowed, msg: "Method Not Allowed"},
		{name: "unsupported media type", err: errs.UnsupportedMediaType(""), kind: errs.KindUnsupportedMediaType, status: http.StatusUnsupportedMediaType, msg: "Unsupported Media Type"},
		{name: "internal", err: errs.Internal("boom", nil), kind: errs.KindInternal, status: http.StatusInternalServerError, msg: "boom"},
		{name: "known status maps to kind", err: errs.WithStatus(http.StatusUnauthorized, "Invalid Value", nil), kind: errs.KindUnauthorized, status: http.StatusUnauthorized, msg: "Invalid Value"},
		{name: "unknown status is upstream", err: errs.WithStatus(http.StatusBadGateway, "", nil), kind: errs.KindUpstream, status: http.StatusBadGateway, msg: "Bad Gateway"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind)
			assert.Equal(t, tc.status, tc.err.StatusCode)
			assert.Equal(t, tc.msg, tc.err.Error())
		})
	}
}

func TestStatusCode(t *testing.T) {
	status, ok := errs.StatusCode(errs.Wrap(errs.Forbidden("x"), "context"))
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, status)

	_, ok = errs.StatusCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestAsResponseError(t *testing.T) {
	assert.Nil(t, errs.AsResponseError(nil))

	cause := errors.New("pool closed")
	re := errs.AsResponseError(cause)
	assert.Equal(t, http.StatusInternalServerError, re.StatusCode)
	assert.Equal(t, "pool closed", re.Error())
	assert.ErrorIs(t, re, cause)
}

func TestPrefixed(t *testing.T) {
	t.Run("keeps status and joins messages", func(t *testing.T) {
		err := errs.Prefixed(errs.Forbidden("user declined TOS"), "Error reading user response")
		assert.Equal(t, http.StatusForbidden, err.StatusCode)
		assert.Equal(t, "Error reading user response: user declined TOS", err.Error())
	})

	t.Run("falls back to the status text", func(t *testing.T) {
		err := errs.Prefixed(errs.NotFound(""), "Error reading user response")
		assert.Equal(t, "Error reading user response: Not Found", err.Error())
	})

	t.Run("plain errors become internal", func(t *testing.T) {
		cause := errors.New("timeout")
		err := errs.Prefixed(cause, "Error writing user response")
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, errs.Prefixed(nil, "stage"))
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 5))

	err := errs.Wrap(errors.New("connection reset"), "failed to insert response")
	lines := errs.ExtractStackLines(err, 3)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "failed to insert response")

	assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 3, "zero keeps every line")
}
