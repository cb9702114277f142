package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Create accepts a public submission. The report always starts pending.
// Image upload failures abort the create before anything is persisted.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	images, err := s.ingestImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	loc := input.Location.toDomain()
	s.enrichLocation(ctx, loc)

	priority := input.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}

	now := s.now()
	created, err := s.reports.Create(ctx, &domain.Report{
		Title:      strings.TrimSpace(input.Title),
		Content:    strings.TrimSpace(input.Content),
		AuthorID:   strings.TrimSpace(input.AuthorID),
		AuthorName: strings.TrimSpace(input.AuthorName),
		Category:   input.Category,
		Priority:   priority,
		Status:     domain.ReportStatusPending,
		Tags:       normalizeTags(input.Tags),
		Images:     images,
		Location:   loc,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	s.metrics.ReportCreated(string(created.Category))
	s.log.InfoContext(ctx, "report created",
		slog.String("report_id", created.ID),
		slog.String("category", string(created.Category)),
		slog.Int("images", len(images)),
		slog.Bool("has_location", loc != nil),
	)

	return created, nil
}
