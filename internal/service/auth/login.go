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

// Login authenticates an active admin with email + password.
// Returns ErrUnauthorized if the email is unknown, the account is inactive,
// or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get admin: %w", err)
	}

	if !admin.IsActive || !auth.CheckPassword(admin.PasswordHash, input.Password) {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	if err := s.admins.TouchLastLogin(ctx, admin.ID, now); err != nil {
		return nil, fmt.Errorf("auth.Login touch last login: %w", err)
	}
	admin.LastLoginAt = &now

	token, expires, err := s.tokens.GenerateAccessToken(admin)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "admin logged in",
		slog.String("admin_id", admin.ID.String()),
		slog.String("role", string(admin.Role)),
	)

	return &LoginResult{Token: token, ExpiresAt: expires, Admin: admin}, nil
}
