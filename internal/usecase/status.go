package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"tos-api/internal/pkg/clock"
	"tos-api/internal/pkg/config"
)

const datastoreSystem = "datastore"

type SubsystemStatus struct {
	OK       bool     `json:"ok"`
	Messages []string `json:"messages,omitempty"`
}

type StatusCheckResponse struct {
	OK      bool                       `json:"ok"`
	Systems map[string]SubsystemStatus `json:"systems"`
}

// ResponseCode is 200 for a healthy API and 500 otherwise, regardless of
// individual subsystems.
func (s *StatusCheckResponse) ResponseCode() int {
	if s != nil && s.OK {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// StatusCache is a single-slot cache; Put replaces the slot wholesale.
type StatusCache struct {
	mu          sync.Mutex
	clock       clock.Clock
	ttl         time.Duration
	lastRefresh time.Time
	lastResult  *StatusCheckResponse
}

func NewStatusCache(clk clock.Clock, ttl time.Duration) *StatusCache {
	return &StatusCache{clock: clk, ttl: ttl}
}

func (c *StatusCache) Get() (*StatusCheckResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastResult == nil || c.clock.Now().Sub(c.lastRefresh) >= c.ttl {
		return nil, false
	}
	return c.lastResult, true
}

func (c *StatusCache) Put(status *StatusCheckResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastRefresh = c.clock.Now()
	c.lastResult = status
}

type StatusReporter interface {
	CheckHealth(ctx context.Context) *StatusCheckResponse
}

type statusReporterImpl struct {
	prober HealthProber
	cache  *StatusCache
	logger *slog.Logger
}

func NewStatusReporter(prober HealthProber, cache *StatusCache, logger *slog.Logger) StatusReporter {
	return &statusReporterImpl{
		prober: prober,
		cache:  cache,
		logger: logger,
	}
}

func NewStatusCacheFromConfig(clk clock.Clock, cfg config.StatusConfig) *StatusCache {
	return NewStatusCache(clk, cfg.CacheTTL)
}

func (r *statusReporterImpl) CheckHealth(ctx context.Context) *StatusCheckResponse {
	if cached, ok := r.cache.Get(); ok {
		r.logger.Debug("Returning cached status check")
		return cached
	}

	datastore := r.checkDatastore(ctx)
	status := &StatusCheckResponse{
		OK:      datastore.OK,
		Systems: map[string]SubsystemStatus{datastoreSystem: datastore},
	}
	r.cache.Put(status)
	return status
}

func (r *statusReporterImpl) checkDatastore(ctx context.Context) (status SubsystemStatus) {
	defer func() {
		if rec := recover(); rec != nil {
			status = SubsystemStatus{OK: false, Messages: []string{fmt.Sprint(rec)}}
		}
	}()

	hits, err := r.prober.HealthCheck(ctx)
	if err != nil {
		r.logger.Error("Datastore health probe failed", "error", err.Error())
		return SubsystemStatus{OK: false, Messages: []string{err.Error()}}
	}
	if hits != 1 {
		return SubsystemStatus{OK: false, Messages: []string{fmt.Sprintf("%d entities returned from Datastore.", hits)}}
	}
	return SubsystemStatus{OK: true}
}
