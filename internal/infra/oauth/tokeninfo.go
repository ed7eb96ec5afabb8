package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"tos-api/internal/pkg/config"
	"tos-api/internal/pkg/errs"

	"golang.org/x/oauth2"
)

// cap on how much of a provider response is read
const maxResponseBytes = 1 << 20

// providerError is the error body Google returns for rejected tokens.
type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenInfoClient calls Google's tokeninfo endpoint for an access token.
type TokenInfoClient struct {
	endpoint *url.URL
	base     *http.Client
	logger   *slog.Logger
}

func NewTokenInfoClient(cfg config.OAuthConfig, logger *slog.Logger) (*TokenInfoClient, error) {
	endpoint, err := url.Parse(cfg.TokenInfoURL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid OAUTH_TOKENINFO_URL")
	}
	return &TokenInfoClient{
		endpoint: endpoint,
		base:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}, nil
}

// TokenInfo posts the token both as a query parameter and as bearer
// credential, and returns the decoded JSON payload.
func (c *TokenInfoClient) TokenInfo(ctx context.Context, token string) (any, error) {
	reqURL := *c.endpoint
	query := reqURL.Query()
	query.Set("access_token", token)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build tokeninfo request")
	}
	req.Header.Set("Accept", "application/json")

	clientCtx := context.WithValue(ctx, oauth2.HTTPClient, c.base)
	httpClient := oauth2.NewClient(clientCtx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	}))

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "tokeninfo request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read tokeninfo response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Tokeninfo API responded with error",
			"status_code", resp.StatusCode,
			"body", string(body),
		)
		return nil, errs.WithStatus(resp.StatusCode, describeFailure(resp.StatusCode, body), nil)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errs.Wrap(err, "tokeninfo response is not valid JSON")
	}
	return payload, nil
}

func describeFailure(status int, body []byte) string {
	var pe providerError
	if err := json.Unmarshal(body, &pe); err == nil && pe.ErrorDescription != "" {
		return pe.ErrorDescription
	}
	return fmt.Sprintf("%d - %s", status, strings.TrimSpace(string(body)))
}
