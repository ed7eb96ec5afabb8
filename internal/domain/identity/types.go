package identity

// claim keys expected from the tokeninfo endpoint, checked in this order
const (
	ClaimEmail         = "email"
	ClaimVerifiedEmail = "verified_email"
	ClaimUserID        = "user_id"
	ClaimAudience      = "audience"
	ClaimExpiresIn     = "expires_in"
)

var RequiredClaims = []string{
	ClaimEmail,
	ClaimVerifiedEmail,
	ClaimUserID,
	ClaimAudience,
	ClaimExpiresIn,
}
