package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Get returns a single report.
func (s *Service) Get(ctx context.Context, id string) (*domain.Report, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report: %w", err)
	}
	return r, nil
}
