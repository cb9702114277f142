// Package opencage reverse-geocodes coordinates through an OpenCage
// compatible endpoint (the geoproxy deployment by default).
package opencage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const retryDelay = 500 * time.Millisecond

// Provider resolves coordinates to a formatted address.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider. An empty apiKey makes every Lookup fail
// with domain.ErrNotConfigured.
func NewProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "opencage"),
	}
}

// Lookup returns the first formatted address for the coordinates.
// Returns nil, nil when the provider answered definitively without a result
// (empty result set, non-200 status in the payload, or an HTTP 4xx).
// Transport failures, timeouts, 5xx and undecodable bodies are errors.
func (p *Provider) Lookup(ctx context.Context, lat, lng float64, language string) (*string, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("opencage: %w", domain.ErrNotConfigured)
	}

	q := url.Values{}
	q.Set("q", strconv.FormatFloat(lat, 'f', -1, 64)+"+"+strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("key", p.apiKey)
	q.Set("no_annotations", "1")
	q.Set("language", language)
	reqURL := p.baseURL + "?" + q.Encode()

	p.log.DebugContext(ctx, "opencage request", slog.Float64("lat", lat), slog.Float64("lng", lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("opencage: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("opencage: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("opencage: unexpected status %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		p.log.WarnContext(ctx, "opencage rejected request", slog.Int("status", resp.StatusCode))
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("opencage: read body: %w", err)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("opencage: decode json: %w", err)
	}

	if payload.Status.Code != http.StatusOK || len(payload.Results) == 0 {
		p.log.DebugContext(ctx, "opencage no result",
			slog.Int("code", payload.Status.Code),
			slog.String("message", payload.Status.Message),
		)
		return nil, nil
	}

	formatted := strings.TrimSpace(payload.Results[0].Formatted)
	if formatted == "" {
		return nil, nil
	}
	return &formatted, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "opencage retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return p.httpClient.Do(req)
}
