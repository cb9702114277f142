// Package local stores objects on the local filesystem and serves them over HTTP.
package local

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Store writes objects under a root directory.
type Store struct {
	root          string
	publicBaseURL string
	log           *slog.Logger
}

// NewStore creates a Store rooted at dir. Objects are addressed publicly as
// publicBaseURL + "/" + path.
func NewStore(dir, publicBaseURL string, logger *slog.Logger) *Store {
	return &Store{
		root:          dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		log:           logger.With("adapter", "local_storage"),
	}
}

// Put writes data to path and returns its public URL.
func (s *Store) Put(ctx context.Context, path string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := filepath.Clean("/" + path)
	full := filepath.Join(s.root, filepath.FromSlash(clean))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("local storage: mkdir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("local storage: write: %w", err)
	}

	s.log.DebugContext(ctx, "object stored", slog.String("path", clean), slog.Int("bytes", len(data)))
	return s.publicBaseURL + clean, nil
}

// Handler serves stored objects. Mount it under the public path prefix with
// http.StripPrefix.
func (s *Store) Handler() http.Handler {
	return http.FileServer(http.Dir(s.root))
}
