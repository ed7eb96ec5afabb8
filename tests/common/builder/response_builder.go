//go:build unit || e2e

package builder

import (
	"time"

	"tos-api/internal/domain/tos"

	"github.com/google/uuid"
)

type ResponseBuilder struct {
	ID         uuid.UUID
	AppID      string
	TOSVersion float64
	UserID     string
	Email      string
	Timestamp  time.Time
	Accepted   bool
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{
		ID:         uuid.New(),
		AppID:      "test-app",
		TOSVersion: 1,
		UserID:     "108234567890123456789",
		Email:      "user@example.com",
		Timestamp:  time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Accepted:   true,
	}
}

func (b *ResponseBuilder) With(mutate func(*ResponseBuilder)) *ResponseBuilder {
	mutate(b)
	return b
}

func (b *ResponseBuilder) WithAppID(appID string) *ResponseBuilder {
	b.AppID = appID
	return b
}

func (b *ResponseBuilder) WithTOSVersion(v float64) *ResponseBuilder {
	b.TOSVersion = v
	return b
}

func (b *ResponseBuilder) WithUserID(userID string) *ResponseBuilder {
	b.UserID = userID
	return b
}

func (b *ResponseBuilder) WithAccepted(accepted bool) *ResponseBuilder {
	b.Accepted = accepted
	return b
}

func (b *ResponseBuilder) WithTimestamp(ts time.Time) *ResponseBuilder {
	b.Timestamp = ts
	return b
}

// Build methods
func (b *ResponseBuilder) DocumentKey() tos.DocumentKey {
	return tos.NewDocumentKey(b.AppID, b.TOSVersion)
}

func (b *ResponseBuilder) BuildDomain() *tos.Response {
	return &tos.Response{
		ID:        b.ID,
		Document:  b.DocumentKey(),
		UserID:    b.UserID,
		Email:     b.Email,
		Timestamp: b.Timestamp,
		Accepted:  b.Accepted,
	}
}

func (b *ResponseBuilder) BuildRequestInfo() tos.RequestInfo {
	accepted := b.Accepted
	return tos.RequestInfo{
		AppID:      b.AppID,
		TOSVersion: b.TOSVersion,
		Accepted:   &accepted,
	}
}

// BuildDTO is the POST body for this response.
func (b *ResponseBuilder) BuildDTO() map[string]any {
	return map[string]any{
		"appid":      b.AppID,
		"tosversion": b.TOSVersion,
		"accepted":   b.Accepted,
	}
}
