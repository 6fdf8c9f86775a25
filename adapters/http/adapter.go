// Package http grades through a running gridin server, so a deployed
// instance can be checked against the shared fixtures.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gridin/api"
	"gridin/core/conformance"
	"gridin/internal/errors"
	"gridin/internal/logging"
)

// DefaultTimeout bounds a single request
const DefaultTimeout = 10 * time.Second

// Adapter calls the /v1 endpoints of a gridin server
type Adapter struct {
	base   *url.URL
	client *http.Client
	log    *zap.Logger

	// Metrics
	requestCount   int64
	errorCount     int64
	totalLatencyMs int64
	mu             sync.RWMutex
}

// Stats summarizes the requests an adapter has made
type Stats struct {
	Requests     int64 `json:"requests"`
	Errors       int64 `json:"errors"`
	AvgLatencyMs int64 `json:"avg_latency_ms"`
}

// New creates an adapter for the server at baseURL. A nil client gets
// DefaultTimeout.
func New(baseURL string, client *http.Client) (*Adapter, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, errors.Newf(errors.TypeConfig, "invalid server URL %q", baseURL)
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	return &Adapter{
		base:   base,
		client: client,
		log:    logging.Named("http-engine"),
	}, nil
}

// Name returns the engine name
func (a *Adapter) Name() string { return "http " + a.base.String() }

// Equivalent asks the server whether response is correct
func (a *Adapter) Equivalent(ctx context.Context, key, response string) (bool, error) {
	resp, err := a.check(ctx, key, response)
	if err != nil {
		return false, err
	}
	return resp.Correct, nil
}

// MixedAnswer asks the server whether answer is a mistyped mixed number
func (a *Adapter) MixedAnswer(ctx context.Context, key, answer string) (bool, error) {
	resp, err := a.check(ctx, key, answer)
	if err != nil {
		return false, err
	}
	return resp.MixedAnswer, nil
}

// Display asks the server to render text
func (a *Adapter) Display(ctx context.Context, text string) (string, error) {
	var resp api.DisplayResponse
	if err := a.post(ctx, "/v1/display", &api.DisplayRequest{Text: text}, &resp); err != nil {
		return "", err
	}
	return resp.Display, nil
}

// Format asks the server to pad text to the grid
func (a *Adapter) Format(ctx context.Context, raw string) (string, error) {
	resp, err := a.format(ctx, raw)
	if err != nil {
		return "", err
	}
	return resp.Formatted, nil
}

// Valid asks the server whether raw fits the grid
func (a *Adapter) Valid(ctx context.Context, raw string) (bool, error) {
	resp, err := a.format(ctx, raw)
	if err != nil {
		return false, err
	}
	return resp.Valid, nil
}

// Stats returns request counters
func (a *Adapter) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := Stats{Requests: a.requestCount, Errors: a.errorCount}
	if a.requestCount > 0 {
		s.AvgLatencyMs = a.totalLatencyMs / a.requestCount
	}
	return s
}

func (a *Adapter) check(ctx context.Context, key, response string) (*api.CheckResponse, error) {
	var resp api.CheckResponse
	if err := a.post(ctx, "/v1/check", &api.CheckRequest{Key: key, Response: response}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *Adapter) format(ctx context.Context, raw string) (*api.FormatResponse, error) {
	var resp api.FormatResponse
	if err := a.post(ctx, "/v1/format", &api.FormatRequest{Text: raw}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post sends body as JSON and decodes a 200 response into out
func (a *Adapter) post(ctx context.Context, path string, body, out interface{}) (err error) {
	start := time.Now()
	defer func() { a.record(time.Since(start), err) }()

	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Internal("encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.base.String()+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Internal("build request", err)
	}
	id := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(api.RequestIDHeader, id)

	res, err := a.client.Do(req)
	if err != nil {
		return errors.Wrapf(errors.TypeStorage, err, "POST %s", path)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return errors.Wrapf(errors.TypeStorage, err, "read %s response", path)
	}

	a.log.Debug("response",
		zap.String("request_id", id),
		zap.String("path", path),
		zap.Int("status", res.StatusCode))

	if res.StatusCode != http.StatusOK {
		var apiErr api.ErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Code != "" {
			return errors.Newf(errors.TypeStorage, "POST %s: %d %s: %s", path, res.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}
		return errors.Newf(errors.TypeStorage, "POST %s: unexpected status %d", path, res.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(errors.TypeStorage, fmt.Sprintf("decode %s response", path), err)
	}
	return nil
}

func (a *Adapter) record(d time.Duration, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.requestCount++
	a.totalLatencyMs += d.Milliseconds()
	if err != nil {
		a.errorCount++
	}
}

var (
	_ conformance.Engine     = (*Adapter)(nil)
	_ conformance.TextEngine = (*Adapter)(nil)
)
