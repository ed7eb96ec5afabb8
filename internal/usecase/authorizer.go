package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"tos-api/internal/domain/identity"
	"tos-api/internal/pkg/config"
	"tos-api/internal/pkg/errs"
)

const authErrorPrefix = "Error authorizing user: "

// only a leading "bearer " is stripped, case-insensitively
var bearerPrefix = regexp.MustCompile(`(?i)^bearer `)

type googleOAuthAuthorizer struct {
	client    TokenInfoClient
	allowList identity.AllowList
	logger    *slog.Logger
}

func NewGoogleOAuthAuthorizer(client TokenInfoClient, cfg config.OAuthConfig, logger *slog.Logger) Authorizer {
	allowList := identity.NewAllowList(cfg.AudiencePrefixes, cfg.EmailSuffixes)
	if allowList.IsEmpty() {
		logger.Warn("OAuth allow-lists are empty; every token will be rejected")
	}
	return &googleOAuthAuthorizer{
		client:    client,
		allowList: allowList,
		logger:    logger,
	}
}

func (a *googleOAuthAuthorizer) Authorize(ctx context.Context, authHeader string) (*identity.VerifiedIdentity, error) {
	if authHeader == "" {
		return nil, errs.Unauthorized("")
	}
	token := bearerPrefix.ReplaceAllString(authHeader, "")

	payload, err := a.client.TokenInfo(ctx, token)
	if err != nil {
		return nil, a.reject(err)
	}

	user, err := identity.NewVerifiedIdentity(payload, a.allowList)
	if err != nil {
		return nil, a.reject(err)
	}
	return user, nil
}

// reject keeps the failure's status code, or 400 when it carries none.
func (a *googleOAuthAuthorizer) reject(err error) error {
	status, ok := errs.StatusCode(err)
	if !ok {
		status = http.StatusBadRequest
	}
	a.logger.Warn("Token authorization failed", "status_code", status, "error", err.Error())
	return errs.WithStatus(status, authErrorPrefix+err.Error(), err)
}
