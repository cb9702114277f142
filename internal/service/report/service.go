// Package report implements the report lifecycle: intake, triage transitions,
// content edits, listing and deletion.
package report

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/metrics"
)

type reportRepo interface {
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	Update(ctx context.Context, id string, p domain.ReportPatch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, int, error)
}

type addressResolver interface {
	Resolve(ctx context.Context, lat, lng float64, language string) *string
}

type imageUploader interface {
	Upload(ctx context.Context, encoded, filename string) (string, error)
}

type notifier interface {
	Notify(ctx context.Context, category domain.ReportCategory, text string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the lifecycle settings taken from the reports config section.
type Config struct {
	PageSize          int
	MaxPageSize       int
	GeocodeLanguage   string
	ProcessingMessage string
}

const (
	defaultPageSize          = 10
	defaultMaxPageSize       = 100
	defaultProcessingMessage = "You have a new report to process."
)

// Service provides report lifecycle operations.
type Service struct {
	reports  reportRepo
	resolver addressResolver
	uploader imageUploader
	notifier notifier
	tx       txManager
	cfg      Config
	metrics  *metrics.Metrics
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new report Service. Zero config values fall back to
// defaults.
func NewService(
	log *slog.Logger,
	reports reportRepo,
	resolver addressResolver,
	uploader imageUploader,
	notifier notifier,
	tx txManager,
	cfg Config,
	m *metrics.Metrics,
) *Service {
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = defaultMaxPageSize
	}
	if cfg.PageSize <= 0 || cfg.PageSize > cfg.MaxPageSize {
		cfg.PageSize = min(defaultPageSize, cfg.MaxPageSize)
	}
	if strings.TrimSpace(cfg.ProcessingMessage) == "" {
		cfg.ProcessingMessage = defaultProcessingMessage
	}
	return &Service{
		reports:  reports,
		resolver: resolver,
		uploader: uploader,
		notifier: notifier,
		tx:       tx,
		cfg:      cfg,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.With("service", "report"),
	}
}

// normalizeTags trims tags, drops blanks and duplicates, keeps first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// trimOrEmpty trims whitespace. Returns "" for nil.
func trimOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
