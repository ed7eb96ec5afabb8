package identity

import (
	"fmt"
	"math"

	"tos-api/internal/pkg/errs"
)

// VerifiedIdentity is the set of claims returned by the token verifier after
// every policy check has passed. It only exists in that state.
type VerifiedIdentity struct {
	UserID        string
	Email         string
	VerifiedEmail bool
	Audience      string
	ExpiresIn     float64
	claims        map[string]any
}

// Claims returns the verifier's payload unchanged.
func (v *VerifiedIdentity) Claims() map[string]any {
	return v.claims
}

// NewVerifiedIdentity validates a decoded tokeninfo payload and builds the
// identity from it. Each violation is reported as Unauthorized, first one wins.
func NewVerifiedIdentity(payload any, allow AllowList) (*VerifiedIdentity, error) {
	if payload == nil {
		return nil, errs.Unauthorized("OAuth response is null")
	}

	var claims map[string]any
	switch p := payload.(type) {
	case map[string]any:
		claims = p
	case []any:
		claims = map[string]any{}
	default:
		return nil, errs.Unauthorized("OAuth response is not an object: " + typeName(payload))
	}

	for _, key := range RequiredClaims {
		if _, ok := claims[key]; !ok {
			return nil, errs.Unauthorized("OAuth token does not include " + key)
		}
	}

	verified, ok := claims[ClaimVerifiedEmail].(bool)
	if !ok {
		return nil, errs.Unauthorized("OAuth token verified_email must be a Boolean.")
	}
	if !verified {
		return nil, errs.Unauthorized("OAuth token verified_email must be true.")
	}

	expires := toNumber(claims[ClaimExpiresIn])
	if math.IsNaN(expires) {
		return nil, errs.Unauthorized("OAuth token expires_in must be a number.")
	}
	if expires <= 0 {
		return nil, errs.Unauthorized(fmt.Sprintf("OAuth token has expired (expires_in: %s)", formatNumber(expires)))
	}

	audience := stringify(claims[ClaimAudience])
	email := stringify(claims[ClaimEmail])
	if !allow.Permits(audience, email) {
		return nil, errs.Unauthorized(fmt.Sprintf("OAuth token must have an acceptable audience (%s) or email (%s)", audience, email))
	}

	return &VerifiedIdentity{
		UserID:        stringify(claims[ClaimUserID]),
		Email:         email,
		VerifiedEmail: verified,
		Audience:      audience,
		ExpiresIn:     expires,
		claims:        claims,
	}, nil
}
