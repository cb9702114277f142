package device

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// Get returns a device together with the number of reports it authored.
func (s *Service) Get(ctx context.Context, id string) (*domain.DeviceWithReports, error) {
	id = strings.TrimSpace(id)
	if errs := validateID(id); errs != nil {
		return nil, domain.NewValidationErrors(errs)
	}

	d, err := s.devices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get device: %w", err)
	}

	counts, err := s.reports.CountByAuthor(ctx, []string{id})
	if err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	return &domain.DeviceWithReports{Device: *d, Reports: counts[id]}, nil
}

// List returns a page of devices with their report counts.
func (s *Service) List(ctx context.Context, page, limit int) (*Page, error) {
	if page < 0 || limit < 0 {
		return nil, domain.NewValidationError("page", "must be positive")
	}
	page = max(page, 1)
	if limit == 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	devices, total, err := s.devices.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}

	counts := map[string]int{}
	if len(ids) > 0 {
		counts, err = s.reports.CountByAuthor(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("count reports: %w", err)
		}
	}

	items := make([]domain.DeviceWithReports, len(devices))
	for i, d := range devices {
		items[i] = domain.DeviceWithReports{Device: d, Reports: counts[d.ID]}
	}

	return &Page{Items: items, Total: total, Page: page, Limit: limit}, nil
}
