//go:build unit

package validation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tos-api/internal/domain/tos"
	"tos-api/internal/handler/validation"
	"tos-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method, target, contentType, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func requireStatus(t *testing.T, err error, expected int) {
	t.Helper()
	require.Error(t, err)
	status, ok := errs.StatusCode(err)
	require.True(t, ok, "error should carry a status code: %v", err)
	assert.Equal(t, expected, status)
}

func TestValidateRequestURL(t *testing.T) {
	for _, path := range []string{"/user/response", "/v1/user/response", "/v1/user/response?appid=a"} {
		t.Run("known path "+path, func(t *testing.T) {
			assert.NoError(t, validation.ValidateRequestURL(newRequest(http.MethodGet, path, "", "")))
		})
	}

	for _, path := range []string{"/", "/v2/user/response", "/user/response/", "/v1/status"} {
		t.Run("unknown path "+path, func(t *testing.T) {
			err := validation.ValidateRequestURL(newRequest(http.MethodGet, path, "", ""))
			requireStatus(t, err, http.StatusNotFound)
			assert.Equal(t, "Not Found", err.Error())
		})
	}
}

func TestValidateRequestMethod(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodOptions} {
		t.Run("allowed "+method, func(t *testing.T) {
			assert.NoError(t, validation.ValidateRequestMethod(newRequest(method, "/v1/user/response", "", "")))
		})
	}
	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodHead} {
		t.Run("rejected "+method, func(t *testing.T) {
			err := validation.ValidateRequestMethod(newRequest(method, "/v1/user/response", "", ""))
			requireStatus(t, err, http.StatusMethodNotAllowed)
		})
	}
}

func TestValidateContentType(t *testing.T) {
	cases := []struct {
		name        string
		method      string
		contentType string
		wantErr     bool
	}{
		{name: "POST json", method: http.MethodPost, contentType: "application/json"},
		{name: "POST json with charset", method: http.MethodPost, contentType: "application/json; charset=utf-8"},
		{name: "POST text", method: http.MethodPost, contentType: "text/plain", wantErr: true},
		{name: "POST missing", method: http.MethodPost, wantErr: true},
		{name: "GET ignores content type", method: http.MethodGet, contentType: "text/plain"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.ValidateContentType(newRequest(tc.method, "/v1/user/response", tc.contentType, ""))
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			requireStatus(t, err, http.StatusUnsupportedMediaType)
		})
	}
}

func TestRequireAuthorizationHeader(t *testing.T) {
	t.Run("returns the raw header", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/v1/user/response", "", "")
		req.Header.Set("Authorization", "Bearer abc")
		header, err := validation.RequireAuthorizationHeader(req)
		require.NoError(t, err)
		assert.Equal(t, "Bearer abc", header)
	})

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run("missing on "+method, func(t *testing.T) {
			_, err := validation.RequireAuthorizationHeader(newRequest(method, "/v1/user/response", "", ""))
			requireStatus(t, err, http.StatusUnauthorized)
		})
	}

	t.Run("OPTIONS needs none", func(t *testing.T) {
		header, err := validation.RequireAuthorizationHeader(newRequest(http.MethodOptions, "/v1/user/response", "", ""))
		require.NoError(t, err)
		assert.Empty(t, header)
	})
}

func TestValidateInputs(t *testing.T) {
	t.Run("GET", func(t *testing.T) {
		success := []struct {
			name    string
			query   string
			appID   string
			version float64
		}{
			{name: "integer version", query: "appid=test-app&tosversion=1", appID: "test-app", version: 1},
			{name: "fractional version", query: "appid=test-app&tosversion=1.5", appID: "test-app", version: 1.5},
			{name: "trailing garbage is ignored", query: "appid=test-app&tosversion=2abc", appID: "test-app", version: 2},
			{name: "leading whitespace", query: "appid=test-app&tosversion=%201.5", appID: "test-app", version: 1.5},
			{name: "leading dot", query: "appid=test-app&tosversion=.5", appID: "test-app", version: 0.5},
			{name: "exponent", query: "appid=test-app&tosversion=1e3x", appID: "test-app", version: 1000},
			{name: "empty appid is a string", query: "appid=&tosversion=1", appID: "", version: 1},
		}
		for _, tc := range success {
			t.Run(tc.name, func(t *testing.T) {
				info, err := validation.ValidateInputs(newRequest(http.MethodGet, "/v1/user/response?"+tc.query, "", ""))
				require.NoError(t, err)
				assert.Equal(t, tos.RequestInfo{AppID: tc.appID, TOSVersion: tc.version}, info)
			})
		}

		failure := []struct {
			name  string
			query string
			msg   string
		}{
			{name: "missing appid", query: "tosversion=1", msg: "appid must be a String."},
			{name: "repeated appid", query: "appid=a&appid=b&tosversion=1", msg: "appid must be a String."},
			{name: "missing tosversion", query: "appid=test-app", msg: "tosversion must be a Number."},
			{name: "non-numeric tosversion", query: "appid=test-app&tosversion=abc", msg: "tosversion must be a Number."},
			{name: "infinite tosversion", query: "appid=test-app&tosversion=Infinity", msg: "tosversion must be a Number."},
			{name: "both missing, in order", query: "", msg: "appid must be a String. tosversion must be a Number."},
		}
		for _, tc := range failure {
			t.Run(tc.name, func(t *testing.T) {
				_, err := validation.ValidateInputs(newRequest(http.MethodGet, "/v1/user/response?"+tc.query, "", ""))
				requireStatus(t, err, http.StatusBadRequest)
				assert.Equal(t, tc.msg, err.Error())
			})
		}
	})

	t.Run("POST", func(t *testing.T) {
		t.Run("valid body", func(t *testing.T) {
			info, err := validation.ValidateInputs(newRequest(http.MethodPost, "/v1/user/response", "application/json",
				`{"appid":"test-app","tosversion":1.5,"accepted":false}`))
			require.NoError(t, err)
			assert.Equal(t, "test-app", info.AppID)
			assert.Equal(t, 1.5, info.TOSVersion)
			require.NotNil(t, info.Accepted)
			assert.False(t, *info.Accepted)
		})

		for _, body := range []string{"", "not json", "[]", "1", "null", `"text"`, "true"} {
			t.Run("non-object body "+body, func(t *testing.T) {
				_, err := validation.ValidateInputs(newRequest(http.MethodPost, "/v1/user/response", "application/json", body))
				requireStatus(t, err, http.StatusBadRequest)
				assert.Equal(t, "Request body must be valid JSON.", err.Error())
			})
		}

		failure := []struct {
			name string
			body string
			msg  string
		}{
			{name: "empty object", body: `{}`, msg: "accepted must be a Boolean. appid must be a String. tosversion must be a Number."},
			{name: "string accepted", body: `{"appid":"a","tosversion":1,"accepted":"true"}`, msg: "accepted must be a Boolean."},
			{name: "numeric appid", body: `{"appid":1,"tosversion":1,"accepted":true}`, msg: "appid must be a String."},
			{name: "string tosversion", body: `{"appid":"a","tosversion":"1","accepted":true}`, msg: "tosversion must be a Number."},
			{name: "null accepted and tosversion", body: `{"appid":"a","tosversion":null,"accepted":null}`, msg: "accepted must be a Boolean. tosversion must be a Number."},
		}
		for _, tc := range failure {
			t.Run(tc.name, func(t *testing.T) {
				_, err := validation.ValidateInputs(newRequest(http.MethodPost, "/v1/user/response", "application/json", tc.body))
				requireStatus(t, err, http.StatusBadRequest)
				assert.Equal(t, tc.msg, err.Error())
			})
		}
	})

	t.Run("other methods", func(t *testing.T) {
		for _, method := range []string{http.MethodOptions, http.MethodPut} {
			_, err := validation.ValidateInputs(newRequest(method, "/v1/user/response", "", ""))
			requireStatus(t, err, http.StatusMethodNotAllowed)
		}
	})
}

func TestRoutes(t *testing.T) {
	assert.True(t, validation.IsStatusPath("/status"))
	assert.True(t, validation.IsStatusPath("/v1/status"))
	assert.False(t, validation.IsStatusPath("/v1/user/response"))
	assert.ElementsMatch(t, []string{"/user/response", "/v1/user/response"}, validation.UserResponsePaths())
}
