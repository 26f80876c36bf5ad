package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/caseglance/caseglance/internal/cache"
	"github.com/caseglance/caseglance/internal/model"
	"github.com/caseglance/caseglance/internal/worker"
)

// Client pulls record payloads from the record store API. Responses are
// cached so repeated renders within a TTL do not hit the API, and all
// requests pass through a per-host rate limiter.
type Client struct {
	httpClient *http.Client
	registry   *Registry
	limiter    *worker.Limiter
	cache      cache.Cache
	cacheTTL   time.Duration
	baseURL    string
	apiKey     string
	userAgent  string
	maxBytes   int64
	log        *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithCache attaches a response cache.
func WithCache(c cache.Cache, ttl time.Duration) ClientOption {
	return func(cl *Client) {
		cl.cache = c
		cl.cacheTTL = ttl
	}
}

// WithClientLogger attaches a logger. The default discards everything.
func WithClientLogger(log *zap.Logger) ClientOption {
	return func(cl *Client) {
		if log != nil {
			cl.log = log
		}
	}
}

// NewClient creates a Client from source configuration.
func NewClient(cfg model.SourceConfig, opts ...ClientOption) *Client {
	cl := &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		registry:  NewRegistry(),
		limiter:   worker.NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cl)
	}
	return cl
}

// Records fetches one table's records, decoding whichever wire shape
// the endpoint returns.
func (c *Client) Records(ctx context.Context, table string) ([]*model.RawRecord, error) {
	payload, err := c.fetch(ctx, c.baseURL+"/records/"+table)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", table, err)
	}
	recs, err := c.registry.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", table, err)
	}
	for _, rec := range recs {
		if rec.Table == "" {
			rec.Table = table
		}
	}
	c.log.Debug("fetched records", zap.String("table", table), zap.Int("count", len(recs)))
	return recs, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.Get(cache.Key(url)); ok {
			c.log.Debug("cache hit", zap.String("url", url))
			return body, nil
		}
	}

	if err := c.limiter.Wait(ctx, url); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if c.cache != nil {
		if err := c.cache.Set(cache.Key(url), body, c.cacheTTL); err != nil {
			c.log.Warn("cache write failed", zap.String("url", url), zap.Error(err))
		}
	}
	return body, nil
}
