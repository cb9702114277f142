// Package notification routes processing alerts to the phone linked to a
// report category.
package notification

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/metrics"
)

type settingsRepo interface {
	Get(ctx context.Context, category domain.ReportCategory) (*domain.CategorySetting, error)
	EnsureDefaults(ctx context.Context, categories []domain.ReportCategory) error
	List(ctx context.Context) ([]domain.CategorySetting, error)
	Upsert(ctx context.Context, s domain.CategorySetting) error
}

type messenger interface {
	Send(ctx context.Context, to, text string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service sends notifications and manages category routing settings.
type Service struct {
	settings settingsRepo
	sender   messenger
	tx       txManager
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewService creates a notification Service.
func NewService(
	log *slog.Logger,
	settings settingsRepo,
	sender messenger,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		settings: settings,
		sender:   sender,
		tx:       tx,
		metrics:  m,
		log:      log.With("service", "notification"),
	}
}

// normalizePhone strips everything but ASCII digits.
func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
