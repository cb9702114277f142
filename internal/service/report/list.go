package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// List returns one page of reports. Without a status filter rejected reports
// are excluded.
func (s *Service) List(ctx context.Context, input ListInput) (*domain.ReportPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	page := max(input.Page, 1)
	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.PageSize
	}
	limit = min(limit, s.cfg.MaxPageSize)

	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = domain.SortByCreatedAt
	}
	order := input.SortOrder
	if order == "" {
		order = domain.SortDesc
	}

	filter := domain.ReportFilter{
		Search:      strings.TrimSpace(input.Search),
		Status:      input.Status,
		Priority:    input.Priority,
		Category:    input.Category,
		CreatedFrom: input.CreatedFrom,
		CreatedTo:   input.CreatedTo,
		HasLocation: input.HasLocation,
		SortBy:      sortBy,
		SortOrder:   order,
		Offset:      (page - 1) * limit,
		Limit:       limit,
	}
	if filter.Status == nil {
		filter.ExcludeStatuses = []domain.ReportStatus{domain.ReportStatusRejected}
	}

	items, total, err := s.reports.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if items == nil {
		items = []domain.Report{}
	}

	return &domain.ReportPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}
