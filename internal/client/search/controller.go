package search

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"

	"chemexplorer/internal/client/filter"
	"chemexplorer/internal/models"
)

// ErrSuperseded is returned when a search response arrives after a newer
// search has already been issued. The response is discarded instead of
// overwriting the newer request's results.
var ErrSuperseded = errors.New("search superseded by a newer request")

// CatalogAPI is the part of the API client the controller needs.
type CatalogAPI interface {
	SearchCompounds(ctx context.Context, token string, params url.Values) ([]models.Compound, error)
}

// SessionReader exposes the current bearer credential read-only.
type SessionReader interface {
	Token() string
}

// Controller issues filtered queries against the compound catalog and owns
// the current result set. The set is replaced wholesale on every successful
// search; a failed search leaves it untouched.
//
// Each search carries a generation number. A response is applied only while
// its generation is still the newest, so a slow response can never overwrite
// results produced by a search the user issued later.
type Controller struct {
	api      CatalogAPI
	sessions SessionReader
	logger   *slog.Logger

	gen atomic.Uint64

	mu      sync.Mutex
	results []models.Compound
}

// NewController creates a search controller.
func NewController(apiClient CatalogAPI, sessions SessionReader, logger *slog.Logger) *Controller {
	return &Controller{
		api:      apiClient,
		sessions: sessions,
		logger:   logger,
	}
}

// Search serializes the criteria, issues an authorized catalog query and
// replaces the held result set with the response. On failure the prior
// result set is kept and the error is returned for the caller to record.
func (c *Controller) Search(ctx context.Context, criteria filter.Criteria) ([]models.Compound, error) {
	gen := c.gen.Add(1)

	compounds, err := c.api.SearchCompounds(ctx, c.sessions.Token(), criteria.Values())
	if err != nil {
		c.logger.Warn("compound search failed", "error", err)
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen.Load() {
		c.logger.Debug("discarding stale search response", "generation", gen)
		return nil, ErrSuperseded
	}

	c.results = compounds
	c.logger.Info("search results replaced", "count", len(compounds))
	return compounds, nil
}

// Results returns the current result set.
func (c *Controller) Results() []models.Compound {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}
