package tos

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	AppID string
}

type TermsOfService struct {
	AppID   string
	Version float64
}

// Response is one user's answer to a TermsOfService version. Responses are
// append-only; the most recent by Timestamp is the user's current answer.
// Timestamps are kept at millisecond precision; responses within the same
// millisecond are ordered by insertion.
type Response struct {
	ID        uuid.UUID
	Document  DocumentKey
	UserID    string
	Email     string
	Timestamp time.Time
	Accepted  bool
}

func NewResponse(doc DocumentKey, userID, email string, accepted bool, now time.Time) *Response {
	return &Response{
		ID:        uuid.New(),
		Document:  doc,
		UserID:    userID,
		Email:     email,
		Timestamp: now.UTC().Truncate(time.Millisecond),
		Accepted:  accepted,
	}
}

// RequestInfo is the normalized input of a user response request.
// Accepted is only set for writes.
type RequestInfo struct {
	AppID      string
	TOSVersion float64
	Accepted   *bool
}

func (r RequestInfo) DocumentKey() DocumentKey {
	return NewDocumentKey(r.AppID, r.TOSVersion)
}
