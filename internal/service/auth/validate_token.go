package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// ValidateToken validates an access token and returns the caller identity.
// Any failure is reported as domain.ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	id, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", "error", err.Error())
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return id, nil
}
