//go:build unit

package identity_test

import (
	"net/http"
	"testing"

	"tos-api/internal/domain/identity"
	"tos-api/internal/pkg/errs"
	"tos-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(identity.VerifiedIdentity{}),
}

var testAllowList = identity.NewAllowList([]string{"778899"}, []string{"@example.com"})

type testCase struct {
	name    string
	payload func() any
	errMsg  string
}

func TestNewVerifiedIdentity(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewClaimsBuilder().BuildIdentity(testAllowList)
		require.NoError(t, err)

		expected := &identity.VerifiedIdentity{
			UserID:        "108234567890123456789",
			Email:         "user@example.com",
			VerifiedEmail: true,
			Audience:      "778899-web.apps.googleusercontent.com",
			ExpiresIn:     3599,
		}
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("VerifiedIdentity mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "user@example.com", actual.Claims()[identity.ClaimEmail])
	})

	t.Run("payload shape", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "null payload", payload: func() any { return nil }, errMsg: "OAuth response is null"},
			{name: "string payload", payload: func() any { return "token" }, errMsg: "OAuth response is not an object: string"},
			{name: "number payload", payload: func() any { return float64(42) }, errMsg: "OAuth response is not an object: number"},
			{name: "boolean payload", payload: func() any { return true }, errMsg: "OAuth response is not an object: boolean"},
			{name: "array payload has no claims", payload: func() any { return []any{} }, errMsg: "OAuth token does not include email"},
		})
	})

	t.Run("required claims, first missing key wins", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:    "missing email",
				payload: func() any { return builder.NewClaimsBuilder().Without("email").Without("audience").BuildPayload() },
				errMsg:  "OAuth token does not include email",
			},
			{
				name:    "missing verified_email",
				payload: func() any { return builder.NewClaimsBuilder().Without("verified_email").BuildPayload() },
				errMsg:  "OAuth token does not include verified_email",
			},
			{
				name:    "missing user_id",
				payload: func() any { return builder.NewClaimsBuilder().Without("user_id").Without("expires_in").BuildPayload() },
				errMsg:  "OAuth token does not include user_id",
			},
			{
				name:    "missing audience",
				payload: func() any { return builder.NewClaimsBuilder().Without("audience").BuildPayload() },
				errMsg:  "OAuth token does not include audience",
			},
			{
				name:    "missing expires_in",
				payload: func() any { return builder.NewClaimsBuilder().Without("expires_in").BuildPayload() },
				errMsg:  "OAuth token does not include expires_in",
			},
			{
				name:    "null valued claim counts as present",
				payload: func() any { return builder.NewClaimsBuilder().WithUserID(nil).BuildPayload() },
			},
		})
	})

	t.Run("verified_email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:    "string true is not a boolean",
				payload: func() any { return builder.NewClaimsBuilder().WithVerifiedEmail("true").BuildPayload() },
				errMsg:  "OAuth token verified_email must be a Boolean.",
			},
			{
				name:    "false",
				payload: func() any { return builder.NewClaimsBuilder().WithVerifiedEmail(false).BuildPayload() },
				errMsg:  "OAuth token verified_email must be true.",
			},
		})
	})

	t.Run("expires_in", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:    "numeric string OK",
				payload: func() any { return builder.NewClaimsBuilder().WithExpiresIn("120").BuildPayload() },
			},
			{
				name:    "true coerces to 1 OK",
				payload: func() any { return builder.NewClaimsBuilder().WithExpiresIn(true).BuildPayload() },
			},
			{
				name:    "non-numeric string",
				payload: func() any { return builder.NewClaimsBuilder().WithExpiresIn("soon").BuildPayload() },
				errMsg:  "OAuth token expires_in must be a number.",
			},
			{
				name:    "object",
				payload: func() any { return builder.NewClaimsBuilder().WithExpiresIn(map[string]any{}).BuildPayload() },
				errMsg:  "OAuth token expires_in must be a number.",
			},
			{
				name:    "zero",
				payload: func() any { return builder.NewClaimsBuilder().WithExpiresIn(float64(0)).BuildPayload() },
				errMsg:  "OAuth token has expired (expires_in: 0)",
			},
			{
				name:    "negative",
				payload: func() any { return builder.NewClaimsBuilder().WithExpiresIn(float64(-5)).BuildPayload() },
				errMsg:  "OAuth token has expired (expires_in: -5)",
			},
			{
				name:    "blank string coerces to zero",
				payload: func() any { return builder.NewClaimsBuilder().WithExpiresIn("  ").BuildPayload() },
				errMsg:  "OAuth token has expired (expires_in: 0)",
			},
			{
				name:    "null coerces to zero",
				payload: func() any { return builder.NewClaimsBuilder().WithExpiresIn(nil).BuildPayload() },
				errMsg:  "OAuth token has expired (expires_in: 0)",
			},
		})
	})

	t.Run("allow-list", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "email suffix OK when audience does not match",
				payload: func() any {
					return builder.NewClaimsBuilder().WithAudience("112233-other").BuildPayload()
				},
			},
			{
				name: "audience prefix OK when email does not match",
				payload: func() any {
					return builder.NewClaimsBuilder().WithEmail("someone@other.org").BuildPayload()
				},
			},
			{
				name: "neither matches",
				payload: func() any {
					return builder.NewClaimsBuilder().
						WithAudience("112233-other").
						WithEmail("someone@other.org").
						BuildPayload()
				},
				errMsg: "OAuth token must have an acceptable audience (112233-other) or email (someone@other.org)",
			},
			{
				name: "prefix must be at the start",
				payload: func() any {
					return builder.NewClaimsBuilder().
						WithAudience("x-778899").
						WithEmail("someone@example.com.evil").
						BuildPayload()
				},
				errMsg: "OAuth token must have an acceptable audience (x-778899) or email (someone@example.com.evil)",
			},
		})
	})

	t.Run("empty allow-list rejects everything", func(t *testing.T) {
		empty := identity.NewAllowList(nil, nil)
		_, err := builder.NewClaimsBuilder().BuildIdentity(empty)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must have an acceptable audience")
	})
}

func TestAllowList(t *testing.T) {
	t.Run("blank entries are dropped", func(t *testing.T) {
		allow := identity.NewAllowList([]string{"", "  "}, []string{""})
		assert.True(t, allow.IsEmpty())
		assert.False(t, allow.Permits("anything", "anyone@anywhere"))
	})

	t.Run("entries are trimmed", func(t *testing.T) {
		allow := identity.NewAllowList([]string{" 778899 "}, nil)
		assert.False(t, allow.IsEmpty())
		assert.True(t, allow.Permits("778899-web", ""))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := identity.NewVerifiedIdentity(tc.payload(), testAllowList)
			if tc.errMsg == "" {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Error(t, err)
			assert.Nil(t, actual)
			assert.Equal(t, tc.errMsg, err.Error())

			status, ok := errs.StatusCode(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, status)
		})
	}
}
