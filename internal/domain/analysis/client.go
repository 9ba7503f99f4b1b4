// Package analysis talks to the external similarity/summary service.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/pressdetective/internal/domain/model"
	"github.com/okian/pressdetective/pkg/logger"
)

// RequestIDHeader correlates our logs with the backend's.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is kept for logs.
const maxErrorBody = 512

// Analyzer is the contract the app layer depends on.
type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (model.AnalysisResult, error)
}

// Client posts article URLs to the analyze endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	logger   logger.Logger
	newID    func() string
}

var _ Analyzer = (*Client)(nil)

// NewClient creates a client for endpoint. Without options the client has
// no timeout and never retries.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{},
		logger:   logger.Discard(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the resolved analyze URL.
func (c *Client) Endpoint() string { return c.endpoint }

// Analyze validates rawURL and sends exactly one request for it.
// Blank input returns ErrEmptyURL without touching the network; every
// other failure is reported as ErrAnalyzeFailed.
func (c *Client) Analyze(ctx context.Context, rawURL string) (model.AnalysisResult, error) {
	const op = "analysis.analyze"
	if strings.TrimSpace(rawURL) == "" {
		return model.AnalysisResult{}, fmt.Errorf("%s: %w", op, ErrEmptyURL)
	}

	reqID := c.newID()
	log := c.logger.With(logger.String("request_id", reqID))
	start := time.Now()

	var result model.AnalysisResult
	if err := c.post(ctx, reqID, model.AnalysisRequest{URL: rawURL}, &result); err != nil {
		log.Warn(ctx, "analyze request failed",
			logger.String("url_host", URLHost(rawURL)),
			logger.Duration("latency", time.Since(start)),
			logger.Error(err),
		)
		return model.AnalysisResult{}, wrapKind(op, ErrAnalyzeFailed, err)
	}

	log.Info(ctx, "analyze request finished",
		logger.String("url_host", URLHost(rawURL)),
		logger.Float64("similarity_score", result.SimilarityScore),
		logger.String("label", result.Label),
		logger.Duration("latency", time.Since(start)),
	)
	return result, nil
}

func (c *Client) post(ctx context.Context, reqID string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
