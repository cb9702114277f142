package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// StatusSnapshot counts reports per known status. Total counts every report,
// including those with an unrecognised status.
func (s *Service) StatusSnapshot(ctx context.Context) (domain.StatusSnapshot, error) {
	rows, err := s.reports.CountByStatus(ctx)
	if err != nil {
		return domain.StatusSnapshot{}, fmt.Errorf("count by status: %w", err)
	}

	var snap domain.StatusSnapshot
	for _, row := range rows {
		snap.Total += row.Count
		switch domain.ReportStatus(strings.ToLower(strings.TrimSpace(row.Status))) {
		case domain.ReportStatusPending:
			snap.Pending += row.Count
		case domain.ReportStatusProcessing:
			snap.Processing += row.Count
		case domain.ReportStatusCompleted:
			snap.Completed += row.Count
		case domain.ReportStatusRejected:
			snap.Rejected += row.Count
		}
	}
	return snap, nil
}
