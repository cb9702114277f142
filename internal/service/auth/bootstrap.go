package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/auth"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Bootstrap creates an active super admin unless one with the same email
// exists. The second return value reports whether a new account was created.
func (s *Service) Bootstrap(ctx context.Context, input BootstrapInput) (*domain.Admin, bool, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	existing, err := s.admins.GetByEmail(ctx, input.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("auth.Bootstrap get admin: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, false, fmt.Errorf("auth.Bootstrap: %w", err)
	}

	created, err := s.admins.Create(ctx, &domain.Admin{
		Email:        input.Email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Role:         domain.AdminRoleSuperAdmin,
		IsActive:     true,
	})
	if err != nil {
		return nil, false, fmt.Errorf("auth.Bootstrap create admin: %w", err)
	}

	s.log.InfoContext(ctx, "super admin created", slog.String("admin_id", created.ID.String()))
	return created, true, nil
}
