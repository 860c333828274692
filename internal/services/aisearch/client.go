// Package aisearch resolves board game queries through a chat-completions
// gateway that answers with a forced function call instead of BGG XML.
package aisearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/internal/models"
	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

const (
	// ServiceName tags errors raised by this client
	ServiceName = "ai"

	toolName         = "search_board_games"
	maxResponseBytes = 4 << 20
	snippetBytes     = 1024
)

const systemPrompt = "You are a board game database expert. When asked to search for board games, " +
	"use the search_board_games tool to return accurate results. Include real BoardGameGeek IDs (bggId) " +
	"when you know them. Return up to 10 results sorted by relevance. For each game, provide as much " +
	"accurate data as possible including player counts, playing time, year published, BGG rating, " +
	"weight/complexity, categories and mechanics. Use English names for game titles."

// Config holds configuration for the AI search client
type Config struct {
	APIKey     string        // Required
	BaseURL    string        // Default: https://ai.gateway.lovable.dev/v1
	Model      string        // Default: google/gemini-3-flash-preview
	Timeout    time.Duration // Default: 15s
	MaxResults int           // Default: 10

	// HTTPClient overrides the default client (tests)
	HTTPClient *http.Client
}

// Client calls the chat-completions gateway
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *zap.Logger
	requests   atomic.Int64
}

// NewClient creates a new AI search client. A missing API key is a
// configuration error reported here rather than on the first request.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.ConfigRequiredError("ai.api_key")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://ai.gateway.lovable.dev/v1"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = "google/gemini-3-flash-preview"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 10
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		logger:     logging.OrNop(logger).Named(ServiceName),
	}, nil
}

// GetMetrics returns current client metrics
func (c *Client) GetMetrics() map[string]int64 {
	return map[string]int64{"requests": c.requests.Load()}
}

// ResolveGames asks the gateway for games matching query. Entries without
// an id or a name are dropped; the rest are normalized like BGG records.
func (c *Client) ResolveGames(ctx context.Context, query string) ([]models.GameRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ValidationError("query", "must not be empty")
	}

	payload, err := json.Marshal(c.buildRequest(query))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode chat request")
	}

	body, err := c.post(ctx, payload)
	if err != nil {
		return nil, err
	}

	games, err := c.parseToolCall(body)
	if err != nil {
		return nil, err
	}

	records := make([]models.GameRecord, 0, len(games))
	for _, g := range games {
		if len(records) >= c.config.MaxResults {
			break
		}
		rec := g.record().Normalize()
		if !rec.Valid() {
			continue
		}
		records = append(records, rec)
	}

	c.logger.Debug("ai search resolved",
		zap.String("query", query),
		zap.Int("games", len(games)),
		zap.Int("records", len(records)))
	return records, nil
}

func (c *Client) buildRequest(query string) chatRequest {
	return chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Search for board games matching: %q", query)},
		},
		Tools:      []tool{searchTool()},
		ToolChoice: toolChoice{Type: "function", Function: toolRef{Name: toolName}},
	}
}

func (c *Client) post(ctx context.Context, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.UpstreamTransportError(ServiceName, 0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	c.requests.Add(1)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("gateway request failed", zap.Error(err))
		return nil, apperrors.UpstreamTransportError(ServiceName, 0, fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperrors.UpstreamTransportError(ServiceName, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.Warn("gateway rate limited")
		return nil, apperrors.RateLimitError(ServiceName, "gateway request rate")
	case resp.StatusCode == http.StatusPaymentRequired:
		c.logger.Warn("gateway credits exhausted")
		return nil, apperrors.QuotaError(ServiceName)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Error("gateway error",
			zap.Int("status", resp.StatusCode),
			zap.String("body", logging.Snippet(body, snippetBytes)))
		return nil, apperrors.UpstreamTransportError(ServiceName, resp.StatusCode,
			fmt.Errorf("unexpected status: %d", resp.StatusCode))
	}

	return body, nil
}

// parseToolCall pulls the games array out of the first tool call.
func (c *Client) parseToolCall(body []byte) ([]toolGame, error) {
	var resp chatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Error("unexpected gateway payload", zap.ByteString("payload", body), zap.Error(err))
		return nil, apperrors.UpstreamFormatError(ServiceName, "response is not JSON")
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 ||
		resp.Choices[0].Message.ToolCalls[0].Function.Name != toolName {
		c.logger.Error("unexpected gateway payload", zap.ByteString("payload", body))
		return nil, apperrors.UpstreamFormatError(ServiceName, "missing "+toolName+" tool call")
	}

	var args toolArguments
	raw := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		c.logger.Error("unexpected tool arguments", zap.String("arguments", raw), zap.Error(err))
		return nil, apperrors.UpstreamFormatError(ServiceName, "tool arguments are not valid JSON")
	}
	return args.Games, nil
}

// record converts loosely typed tool output. Numbers arrive as JSON
// numbers that may carry a fraction, counts are rounded.
func (g toolGame) record() models.GameRecord {
	rec := models.GameRecord{
		Name:          g.Name,
		YearPublished: roundPtr(g.YearPublished),
		MinPlayers:    roundPtr(g.MinPlayers),
		MaxPlayers:    roundPtr(g.MaxPlayers),
		PlayingTime:   roundPtr(g.PlayingTime),
		MinAge:        roundPtr(g.MinAge),
		Description:   g.Description,
		Rating:        g.Rating,
		Weight:        g.Weight,
		Categories:    g.Categories,
		Mechanics:     g.Mechanics,
	}
	if id := roundPtr(g.BGGID); id != nil {
		rec.ExternalID = *id
	}
	return rec
}

func roundPtr(v *float64) *int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	n := int(math.Round(*v))
	return &n
}
