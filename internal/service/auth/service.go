package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// adminRepo defines the admin repository interface needed by auth service.
type adminRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// tokenManager defines the JWT management interface needed by auth service.
type tokenManager interface {
	GenerateAccessToken(admin *domain.Admin) (string, time.Time, error)
	ValidateAccessToken(token string) (domain.Identity, error)
}

// Service implements admin authentication.
type Service struct {
	log    *slog.Logger
	admins adminRepo
	tokens tokenManager
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, admins adminRepo, tokens tokenManager) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		admins: admins,
		tokens: tokens,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *domain.Admin
}
