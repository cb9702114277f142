// Package stats computes status snapshots, trends and chart series over the
// report store.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

type reportCounter interface {
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time, inclusiveTo bool) (int, error)
	CountByDay(ctx context.Context, from, to time.Time) (map[string]int, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
}

const (
	// DailyWindow is the number of calendar days in the daily chart.
	DailyWindow = 30

	WeekDays  = 7
	MonthDays = 30
)

// Service is a read-only aggregation service.
type Service struct {
	reports reportCounter
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a stats Service.
func NewService(log *slog.Logger, reports reportCounter) *Service {
	return &Service{
		reports: reports,
		now:     time.Now,
		log:     log.With("service", "stats"),
	}
}
