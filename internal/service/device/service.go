// Package device manages the registry of mobile clients that submit reports.
package device

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

type deviceRepo interface {
	Upsert(ctx context.Context, d *domain.Device) (*domain.Device, error)
	Update(ctx context.Context, d *domain.Device) (*domain.Device, error)
	GetByID(ctx context.Context, id string) (*domain.Device, error)
	List(ctx context.Context, limit, offset int) ([]domain.Device, int, error)
}

type reportCounter interface {
	CountByAuthor(ctx context.Context, authorIDs []string) (map[string]int, error)
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service provides device registry operations.
type Service struct {
	devices deviceRepo
	reports reportCounter
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a device Service.
func NewService(log *slog.Logger, devices deviceRepo, reports reportCounter) *Service {
	return &Service{
		devices: devices,
		reports: reports,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log.With("service", "device"),
	}
}

// Page is one page of the device listing.
type Page struct {
	Items []domain.DeviceWithReports
	Total int
	Page  int
	Limit int
}
