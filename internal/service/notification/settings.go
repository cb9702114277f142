package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/pkg/ctxutil"
)

// Settings returns one setting per known category in declaration order,
// creating missing rows with defaults.
func (s *Service) Settings(ctx context.Context) ([]domain.CategorySetting, error) {
	if err := s.settings.EnsureDefaults(ctx, domain.ReportCategories); err != nil {
		return nil, fmt.Errorf("ensure defaults: %w", err)
	}

	rows, err := s.settings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	byCategory := make(map[domain.ReportCategory]domain.CategorySetting, len(rows))
	for _, r := range rows {
		byCategory[r.Category] = r
	}

	out := make([]domain.CategorySetting, 0, len(domain.ReportCategories))
	for _, c := range domain.ReportCategories {
		if r, ok := byCategory[c]; ok {
			out = append(out, r)
		} else {
			out = append(out, domain.DefaultCategorySetting(c))
		}
	}
	return out, nil
}

// UpdateSettings replaces the settings of the given categories and returns
// the full list.
func (s *Service) UpdateSettings(ctx context.Context, input UpdateSettingsInput) ([]domain.CategorySetting, error) {
	caller, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for category, in := range input.Categories {
			err := s.settings.Upsert(txCtx, domain.CategorySetting{
				Category: category,
				Phone:    strings.TrimSpace(in.Phone),
				Linked:   in.Linked,
			})
			if err != nil {
				return fmt.Errorf("upsert %s: %w", category, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "notification settings updated",
		slog.String("admin_id", caller.ID.String()),
		slog.Int("categories", len(input.Categories)),
	)

	return s.Settings(ctx)
}
