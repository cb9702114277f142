// Package media ingests inline report photos into object storage.
package media

import (
	"context"
	"log/slog"
	"time"
)

type objectStore interface {
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// Service uploads decoded images and returns their public URLs.
type Service struct {
	store    objectStore
	maxBytes int64
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a media Service. maxBytes bounds the decoded payload size;
// zero disables the check.
func NewService(log *slog.Logger, store objectStore, maxBytes int64) *Service {
	return &Service{
		store:    store,
		maxBytes: maxBytes,
		now:      time.Now,
		log:      log.With("service", "media"),
	}
}
