//go:build unit || e2e

package builder

import (
	"tos-api/internal/domain/identity"
)

// ClaimsBuilder builds tokeninfo payloads. The defaults pass the test
// config's allow-list through the audience prefix.
type ClaimsBuilder struct {
	Email         any
	VerifiedEmail any
	UserID        any
	Audience      any
	ExpiresIn     any
	omit          map[string]bool
}

func NewClaimsBuilder() *ClaimsBuilder {
	return &ClaimsBuilder{
		Email:         "user@example.com",
		VerifiedEmail: true,
		UserID:        "108234567890123456789",
		Audience:      "778899-web.apps.googleusercontent.com",
		ExpiresIn:     float64(3599),
		omit:          map[string]bool{},
	}
}

func (b *ClaimsBuilder) With(mutate func(*ClaimsBuilder)) *ClaimsBuilder {
	mutate(b)
	return b
}

func (b *ClaimsBuilder) WithEmail(email any) *ClaimsBuilder {
	b.Email = email
	return b
}

func (b *ClaimsBuilder) WithVerifiedEmail(v any) *ClaimsBuilder {
	b.VerifiedEmail = v
	return b
}

func (b *ClaimsBuilder) WithUserID(userID any) *ClaimsBuilder {
	b.UserID = userID
	return b
}

func (b *ClaimsBuilder) WithAudience(audience any) *ClaimsBuilder {
	b.Audience = audience
	return b
}

func (b *ClaimsBuilder) WithExpiresIn(v any) *ClaimsBuilder {
	b.ExpiresIn = v
	return b
}

// Without drops a claim key from the payload entirely.
func (b *ClaimsBuilder) Without(key string) *ClaimsBuilder {
	b.omit[key] = true
	return b
}

// Build methods
func (b *ClaimsBuilder) BuildPayload() map[string]any {
	payload := map[string]any{
		identity.ClaimEmail:         b.Email,
		identity.ClaimVerifiedEmail: b.VerifiedEmail,
		identity.ClaimUserID:        b.UserID,
		identity.ClaimAudience:      b.Audience,
		identity.ClaimExpiresIn:     b.ExpiresIn,
	}
	for key := range b.omit {
		delete(payload, key)
	}
	return payload
}

func (b *ClaimsBuilder) BuildIdentity(allow identity.AllowList) (*identity.VerifiedIdentity, error) {
	return identity.NewVerifiedIdentity(b.BuildPayload(), allow)
}
