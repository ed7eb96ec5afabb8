package datastore

import (
	"context"
	"fmt"
	"log/slog"

	"tos-api/internal/domain/identity"
	"tos-api/internal/domain/tos"
	"tos-api/internal/pkg/clock"
	"tos-api/internal/pkg/config"
	"tos-api/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const msgTooManyResults = "unexpected: returned too many results"

// Client applies the storage rules of the TOS API on top of Queries.
type Client struct {
	queries    Queries
	namespace  string
	probeAppID string
	clock      clock.Clock
	logger     *slog.Logger
}

func NewClient(queries Queries, cfg config.Config, clk clock.Clock, logger *slog.Logger) *Client {
	return &Client{
		queries:    queries,
		namespace:  cfg.DB.Namespace,
		probeAppID: cfg.Status.ProbeAppID,
		clock:      clk,
		logger:     logger,
	}
}

func (c *Client) ApplicationExists(ctx context.Context, appID string) (*tos.Application, error) {
	hits, err := c.queries.LookupApplication(ctx, c.namespace, appID)
	if err != nil {
		return nil, storageFailure(err)
	}
	switch len(hits) {
	case 0:
		return nil, errs.BadRequest(fmt.Sprintf("Application %s does not exist.", appID))
	case 1:
		return &hits[0], nil
	default:
		return nil, errs.Internal(msgTooManyResults, nil)
	}
}

func (c *Client) TOSExists(ctx context.Context, doc tos.DocumentKey) (*tos.TermsOfService, error) {
	hits, err := c.queries.LookupTermsOfService(ctx, c.namespace, doc)
	if err != nil {
		return nil, storageFailure(err)
	}
	switch len(hits) {
	case 0:
		return nil, errs.BadRequest(fmt.Sprintf("TermsOfService %s does not exist.", doc))
	case 1:
		return &hits[0], nil
	default:
		return nil, errs.Internal(msgTooManyResults, nil)
	}
}

func (c *Client) GetCurrentResponse(ctx context.Context, userID string, doc tos.DocumentKey) (*tos.Response, error) {
	hits, err := c.queries.QueryResponses(ctx, c.namespace, ResponseQuery{
		Ancestor: doc,
		UserID:   userID,
		Limit:    1,
	})
	if err != nil {
		return nil, storageFailure(err)
	}
	switch len(hits) {
	case 0:
		return nil, errs.NotFound("")
	case 1:
		if !hits[0].Accepted {
			return nil, errs.Forbidden("user declined TOS")
		}
		return &hits[0], nil
	default:
		return nil, errs.Internal(msgTooManyResults, nil)
	}
}

// CreateResponse appends a response once both ancestors are known to exist.
func (c *Client) CreateResponse(ctx context.Context, user *identity.VerifiedIdentity, info tos.RequestInfo) (*tos.Response, error) {
	if info.Accepted == nil {
		return nil, errs.BadRequest("accepted must be a Boolean.")
	}
	doc := info.DocumentKey()

	var (
		g              errgroup.Group
		appErr, tosErr error
	)
	g.Go(func() error {
		_, appErr = c.ApplicationExists(ctx, doc.AppID)
		return appErr
	})
	g.Go(func() error {
		_, tosErr = c.TOSExists(ctx, doc)
		return tosErr
	})
	_ = g.Wait()
	if appErr != nil {
		return nil, appErr
	}
	if tosErr != nil {
		return nil, tosErr
	}

	record := tos.NewResponse(doc, user.UserID, user.Email, *info.Accepted, c.clock.Now())
	if err := c.queries.InsertResponse(ctx, c.namespace, record); err != nil {
		return nil, storageFailure(err)
	}
	c.logger.Info("Stored TOS response",
		"appid", doc.AppID,
		"tosversion", doc.VersionName(),
		"accepted", record.Accepted,
	)
	return record, nil
}

// HealthCheck looks up the probe application and reports the hit count.
func (c *Client) HealthCheck(ctx context.Context) (int, error) {
	hits, err := c.queries.LookupApplication(ctx, c.namespace, c.probeAppID)
	if err != nil {
		return 0, err
	}
	return len(hits), nil
}

// storageFailure keeps a failure's own status code and maps the rest to 500.
func storageFailure(err error) error {
	if _, ok := errs.StatusCode(err); ok {
		return err
	}
	return errs.Internal(err.Error(), err)
}
