package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

func format(now time.Time, d *domain.Dashboard, cats []domain.CategoryCount, top int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Reports digest %s\n\n", now.Format("2006-01-02"))

	s := d.ByStatus
	fmt.Fprintf(&b, "Total: %d\n", s.Total)
	fmt.Fprintf(&b, "Pending: %d\n", s.Pending)
	fmt.Fprintf(&b, "Processing: %d\n", s.Processing)
	fmt.Fprintf(&b, "Completed: %d\n", s.Completed)
	fmt.Fprintf(&b, "Rejected: %d\n", s.Rejected)

	b.WriteString("\n")
	writeTrend(&b, "Last 7 days", d.Week)
	writeTrend(&b, "Last 30 days", d.Month)

	if top > 0 && len(cats) > 0 {
		b.WriteString("\nTop categories:\n")
		for i, c := range cats {
			if i == top {
				break
			}
			fmt.Fprintf(&b, "%d. %s: %d\n", i+1, c.Category, c.Count)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeTrend(b *strings.Builder, label string, t domain.Trend) {
	change := "n/a"
	if t.PercentChange != nil {
		change = fmt.Sprintf("%+d%%", *t.PercentChange)
	}
	fmt.Fprintf(b, "%s: %d (previous %d, %s)\n", label, t.Current, t.Previous, change)
}
