// Package geocode resolves free-text place queries to coordinates through a
// cached, rate-limited lookup against a Nominatim endpoint.
package geocode

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client wraps a Provider with a process-lifetime outcome cache, a global
// minimum delay between outgoing requests, and a per-attempt timeout. The
// limiter is shared across all callers of the client, so concurrent distinct
// lookups are still spaced apart.
type Client struct {
	provider Provider
	limiter  *rate.Limiter
	cache    *outcomeCache
	timeout  time.Duration
}

// Option configures the Client.
type Option func(*Client)

// WithProvider sets the geocoding backend.
func WithProvider(p Provider) Option {
	return func(c *Client) {
		if p != nil {
			c.provider = p
		}
	}
}

// WithMinDelay sets the minimum spacing between consecutive outgoing requests.
func WithMinDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.limiter = rate.NewLimiter(rate.Every(d), 1)
		}
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a Client with the given options. Defaults: Nominatim
// provider, one request per second, ten second attempt timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		provider: NewNominatim(),
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
		cache:    newOutcomeCache(),
		timeout:  10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves query to coordinates. A blank query and a provider
// "no match" both return Found=false with a nil error; transport and provider
// failures return Found=false with the error. Definitive outcomes are cached
// by exact query text; transient failures are not, so a later identical
// search may retry.
func (c *Client) Lookup(ctx context.Context, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return &Result{Found: false}, nil
	}

	if cached, ok := c.cache.get(query); ok {
		zap.L().Debug("geocode cache hit",
			zap.String("query", query),
			zap.Bool("found", cached.Found),
		)
		return &cached, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return &Result{Found: false}, eris.Wrap(err, "geocode: rate limit wait")
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.provider.Resolve(attemptCtx, query)
	if err != nil {
		zap.L().Warn("geocode lookup failed",
			zap.String("provider", c.provider.Name()),
			zap.String("query", query),
			zap.Error(err),
		)
		return &Result{Found: false}, eris.Wrapf(err, "geocode: lookup %q", query)
	}

	c.cache.put(query, *result)
	if !result.Found {
		zap.L().Info("location not found", zap.String("query", query))
	}
	return result, nil
}

// CachedQueries returns how many query outcomes are held in the cache.
func (c *Client) CachedQueries() int {
	return c.cache.size()
}
