//go:build unit || e2e

package oauthtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const TokenInfoPath = "/oauth2/v2/tokeninfo"

// Server is a stand-in for Google's tokeninfo endpoint. Registered tokens
// return their payload; anything else gets the provider's invalid_token error.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	payloads map[string]any
	statuses map[string]int
	calls    []Call
}

// Call records what one tokeninfo request carried.
type Call struct {
	Method      string
	QueryToken  string
	BearerToken string
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		payloads: map[string]any{},
		statuses: map[string]int{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// TokenInfoURL is the value for OAUTH_TOKENINFO_URL.
func (s *Server) TokenInfoURL() string {
	return s.URL + TokenInfoPath
}

// Register makes token resolve to payload with a 200.
func (s *Server) Register(token string, payload any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[token] = payload
	delete(s.statuses, token)
}

// Fail makes token resolve to the given status with the provider error body.
func (s *Server) Fail(token string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[token] = status
	delete(s.payloads, token)
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("access_token")

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:      r.Method,
		QueryToken:  token,
		BearerToken: strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "),
	})
	payload, ok := s.payloads[token]
	status, failed := s.statuses[token]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case failed:
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_token",
			"error_description": "Invalid Value",
		})
	case ok:
		_ = json.NewEncoder(w).Encode(payload)
	default:
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_token",
			"error_description": "Invalid Value",
		})
	}
}
