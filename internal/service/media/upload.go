package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Upload decodes an inline image, stores it and returns its public URL.
// Failures are returned as *domain.UploadError.
func (s *Service) Upload(ctx context.Context, encoded, filename string) (string, error) {
	mime, data, err := decodePayload(encoded)
	if err != nil {
		return "", uploadError(domain.UploadInvalidPayload, filename, err)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return "", uploadError(domain.UploadInvalidPayload, filename,
			fmt.Errorf("image is %d bytes, limit is %d", len(data), s.maxBytes))
	}

	ext, contentType, known := extension(mime)
	if known {
		if _, err := checkHeader(data); err != nil {
			return "", uploadError(domain.UploadInvalidPayload, filename, err)
		}
	}

	path := objectPath(s.now(), filename, ext)
	url, err := s.store.Put(ctx, path, data, contentType)
	if err != nil {
		reason := domain.UploadStorage
		if errors.Is(err, domain.ErrNotConfigured) {
			reason = domain.UploadNotConfigured
		}
		s.log.ErrorContext(ctx, "image upload failed",
			slog.String("path", path),
			slog.String("reason", string(reason)),
			slog.String("error", err.Error()),
		)
		return "", uploadError(reason, filename, err)
	}

	s.log.InfoContext(ctx, "image uploaded",
		slog.String("path", path),
		slog.Int("bytes", len(data)),
	)
	return url, nil
}

func uploadError(reason domain.UploadFailureReason, filename string, err error) error {
	return &domain.UploadError{Reason: reason, Filename: filename, Err: err}
}
