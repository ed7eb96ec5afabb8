package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

import (
	"context"

	"tos-api/internal/domain/identity"
	"tos-api/internal/domain/tos"
)

// Authorizer turns a raw Authorization header into a verified identity.
type Authorizer interface {
	Authorize(ctx context.Context, authHeader string) (*identity.VerifiedIdentity, error)
}

// TokenInfoClient asks the OAuth provider about an access token and returns
// the decoded claims payload as-is.
type TokenInfoClient interface {
	TokenInfo(ctx context.Context, token string) (any, error)
}

// ResponseStore reads and appends user responses to a TermsOfService version.
type ResponseStore interface {
	GetCurrentResponse(ctx context.Context, userID string, doc tos.DocumentKey) (*tos.Response, error)
	CreateResponse(ctx context.Context, user *identity.VerifiedIdentity, info tos.RequestInfo) (*tos.Response, error)
}

// HealthProber runs the storage probe and reports how many records it saw.
type HealthProber interface {
	HealthCheck(ctx context.Context) (int, error)
}
