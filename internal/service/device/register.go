package device

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Register creates a device or refreshes its descriptive fields.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Device, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	saved, err := s.devices.Upsert(ctx, &domain.Device{
		ID:         strings.TrimSpace(input.ID),
		DeviceType: strings.TrimSpace(input.DeviceType),
		OSVersion:  strings.TrimSpace(input.OSVersion),
		AppVersion: strings.TrimSpace(input.AppVersion),
		Language:   strings.TrimSpace(input.Language),
		PushToken:  input.PushToken,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert device: %w", err)
	}

	s.log.InfoContext(ctx, "device registered",
		slog.String("device_id", saved.ID),
		slog.String("device_type", saved.DeviceType),
	)
	return saved, nil
}

// Update changes the provided fields of a registered device.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Device, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.devices.Update(ctx, &domain.Device{
		ID:         strings.TrimSpace(input.ID),
		DeviceType: strings.TrimSpace(input.DeviceType),
		OSVersion:  strings.TrimSpace(input.OSVersion),
		AppVersion: strings.TrimSpace(input.AppVersion),
		Language:   strings.TrimSpace(input.Language),
		PushToken:  input.PushToken,
		UpdatedAt:  s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("update device: %w", err)
	}
	return saved, nil
}
