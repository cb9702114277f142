// Package blob stores objects through a Vercel Blob compatible HTTP API.
package blob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/config"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const apiVersion = "7"

// Store uploads objects with public read access.
type Store struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewStore creates a Store from media configuration.
func NewStore(cfg config.MediaConfig, logger *slog.Logger) *Store {
	return &Store{
		baseURL:    strings.TrimRight(cfg.BlobBaseURL, "/"),
		token:      cfg.BlobToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "blob"),
	}
}

type putResponse struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Put stores data at path and returns its public URL.
// A missing token yields domain.ErrNotConfigured.
func (s *Store) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("blob: %w", domain.ErrNotConfigured)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.baseURL+"/"+path, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("blob: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("x-api-version", apiVersion)
	req.Header.Set("x-content-type", contentType)
	req.Header.Set("x-add-random-suffix", "0")
	req.Header.Set("access", "public")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("blob: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("blob: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(body, &apiErr)
		return "", fmt.Errorf("blob: unexpected status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	var out putResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("blob: decode json: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("blob: response has no url")
	}

	s.log.DebugContext(ctx, "blob stored", slog.String("path", path), slog.Int("bytes", len(data)))
	return out.URL, nil
}
