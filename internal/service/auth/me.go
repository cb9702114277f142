package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/pkg/ctxutil"
)

// Me returns the profile of the calling admin.
func (s *Service) Me(ctx context.Context) (*domain.Admin, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	admin, err := s.admins.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me get admin: %w", err)
	}
	return admin, nil
}
