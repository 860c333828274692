// Package bgg talks to the BoardGameGeek XML API2 and turns its replies
// into normalized game records.
package bgg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

const (
	serviceName = "bgg"

	// maxResponseBytes bounds how much of a reply is read into memory
	maxResponseBytes = 8 << 20
	snippetBytes     = 512
)

// Config holds configuration for the BGG client
type Config struct {
	BaseURL     string        // Default: https://boardgamegeek.com/xmlapi2
	Token       string        // Optional bearer token for the XML API
	UserAgent   string        // Identifies this client to BGG
	Timeout     time.Duration // Default: 15s, per request
	SearchLimit int           // Default: 20 candidates
	MaxBatch    int           // Default: 20 ids per thing request
	Workers     int           // Default: 4 parallel block normalizers

	// HTTPClient overrides the default client (tests)
	HTTPClient *http.Client
}

// Client handles communication with the BGG XML API2
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *zap.Logger
	metrics    *clientMetrics
}

// clientMetrics tracks client usage statistics
type clientMetrics struct {
	requests atomic.Int64
	errors   atomic.Int64
}

// NewClient creates a new BGG API client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://boardgamegeek.com/xmlapi2"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "GameShelf/1.0"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = 20
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = 20
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		logger:     logging.OrNop(logger).Named(serviceName),
		metrics:    &clientMetrics{},
	}
}

// MaxBatch is the largest id batch FetchDetails accepts
func (c *Client) MaxBatch() int {
	return c.config.MaxBatch
}

// Workers is how many item blocks of one reply are normalized in parallel
func (c *Client) Workers() int {
	return c.config.Workers
}

// GetMetrics returns current client metrics
func (c *Client) GetMetrics() map[string]int64 {
	return map[string]int64{
		"requests": c.metrics.requests.Load(),
		"errors":   c.metrics.errors.Load(),
	}
}

// get performs a single GET against the API. There are no retries: any
// network error or non-2xx reply fails the call.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/%s?%s", c.config.BaseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.UpstreamTransportError(serviceName, 0, fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/xml")
	if c.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.Token)
	}

	c.metrics.requests.Add(1)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.errors.Add(1)
		c.logger.Warn("request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, apperrors.UpstreamTransportError(serviceName, 0, fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.metrics.errors.Add(1)
		c.logger.Warn("reading response failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return nil, apperrors.UpstreamTransportError(serviceName, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.errors.Add(1)
		c.logger.Warn("unexpected status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", logging.Snippet(body, snippetBytes)))
		return nil, apperrors.UpstreamTransportError(serviceName, resp.StatusCode,
			fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	return body, nil
}
