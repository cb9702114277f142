package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// DailyCounts returns exactly days entries, oldest first, ending with the
// current UTC date. Days without reports have a zero count.
func (s *Service) DailyCounts(ctx context.Context, days int) ([]domain.DailyCount, error) {
	if days <= 0 {
		return nil, domain.NewValidationError("days", "must be positive")
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	counts, err := s.reports.CountByDay(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("count by day: %w", err)
	}

	out := make([]domain.DailyCount, days)
	for i := range out {
		date := from.AddDate(0, 0, i).Format(dateLayout)
		out[i] = domain.DailyCount{Date: date, Count: counts[date]}
	}
	return out, nil
}

// CategoryCounts groups reports by category. Blank categories are reported
// as "other". Sorted by count descending, then by name.
func (s *Service) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := s.reports.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}

	merged := make(map[string]int, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Category)
		if name == "" {
			name = domain.CategoryOther
		}
		merged[name] += row.Count
	}

	out := make([]domain.CategoryCount, 0, len(merged))
	for name, n := range merged {
		out = append(out, domain.CategoryCount{Category: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}
