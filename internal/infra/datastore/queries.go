package datastore

import (
	"context"

	"tos-api/internal/domain/tos"
)

// Queries is the hierarchical key-value store underneath the client. Every
// call is scoped to a namespace; lookups return all hits so that callers can
// tell zero, one and many apart.
type Queries interface {
	LookupApplication(ctx context.Context, namespace, appID string) ([]tos.Application, error)
	LookupTermsOfService(ctx context.Context, namespace string, doc tos.DocumentKey) ([]tos.TermsOfService, error)
	// QueryResponses returns descendants of q.Ancestor for q.UserID, newest first.
	QueryResponses(ctx context.Context, namespace string, q ResponseQuery) ([]tos.Response, error)
	InsertResponse(ctx context.Context, namespace string, r *tos.Response) error
}

type ResponseQuery struct {
	Ancestor tos.DocumentKey
	UserID   string
	Limit    int
}
