package textwave

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/textwave/textwave-go/internal/api"
	"github.com/textwave/textwave-go/internal/cache"
	"github.com/textwave/textwave-go/internal/db"
	dbredis "github.com/textwave/textwave-go/internal/db/redis"
)

// transport is the internal interface for the HTTP layer, narrowed for
// substitution in tests.
type transport interface {
	Get(ctx context.Context, endpoint string, params url.Values, out any) error
	Post(ctx context.Context, endpoint string, params url.Values, body, out any) error
}

// DefaultBaseURL is the public TextWave API endpoint.
const DefaultBaseURL = api.DefaultBaseURL

// Client is the TextWave SDK entry point. Safe for concurrent use.
type Client struct {
	api    transport
	cache  *cache.Cache
	store  db.Store
	logger *zap.Logger
	obs    *observer
}

// New creates a Client authenticated with the given API token.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("textwave: api token required")
	}

	cfg := &clientConfig{compress: true}
	for _, o := range opts {
		o.apply(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		api: api.New(api.Config{
			Token:    token,
			BaseURL:  cfg.baseURL,
			Compress: cfg.compress,
			HTTP:     cfg.httpClient,
			Logger:   logger,
		}),
		logger: logger,
		obs:    obs,
	}

	if len(cfg.cacheAddrs) > 0 {
		store, err := dbredis.NewStore(dbredis.Config{
			Addrs:    cfg.cacheAddrs,
			Password: cfg.cachePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("textwave: create cache store: %w", err)
		}
		c.store = store
		c.cache = cache.New(store, cfg.cacheTTL, obs.cacheCounter(), logger)
	}

	return c, nil
}

// Ping verifies connectivity of the configured cache store. Clients
// without a cache have nothing to check and always return nil.
func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	return c.store.Ping(ctx)
}

// Close releases the cache store connection, if any.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// postCached issues a POST request, consulting the analysis cache when
// one is configured. Only deterministic analysis endpoints go through
// here; task lifecycle calls never do.
func (c *Client) postCached(ctx context.Context, endpoint string, params url.Values, body, out any) error {
	if c.cache == nil {
		return c.api.Post(ctx, endpoint, params, body, out)
	}
	key := cache.Key(endpoint, params, body)
	if c.cache.Get(ctx, key, out) {
		return nil
	}
	if err := c.api.Post(ctx, endpoint, params, body, out); err != nil {
		return err
	}
	c.cache.Put(ctx, key, out)
	return nil
}
