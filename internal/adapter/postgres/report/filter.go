package report

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// defaultLimit applies when the caller leaves Limit unset. Upper bounds are
// the service's concern.
const defaultLimit = 10

// filter wraps domain.ReportFilter with SQL rendering.
type filter struct {
	domain.ReportFilter
}

// newFilter applies defaults. Limit is taken as given.
func newFilter(f domain.ReportFilter) filter {
	if !f.SortBy.IsValid() {
		f.SortBy = domain.SortByCreatedAt
	}
	if !f.SortOrder.IsValid() {
		f.SortOrder = domain.SortDesc
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return filter{f}
}

// where composes all set clauses with AND.
func (f filter) where() sq.And {
	where := sq.And{}

	if term := strings.TrimSpace(f.Search); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		where = append(where, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
			sq.ILike{"author_name": pattern},
		})
	}

	switch {
	case f.Status != nil:
		where = append(where, sq.Eq{"status": string(*f.Status)})
	case len(f.ExcludeStatuses) > 0:
		excluded := make([]string, 0, len(f.ExcludeStatuses))
		for _, s := range f.ExcludeStatuses {
			excluded = append(excluded, string(s))
		}
		where = append(where, sq.NotEq{"status": excluded})
	}

	if f.Priority != nil {
		where = append(where, sq.Eq{"priority": string(*f.Priority)})
	}
	if f.Category != nil {
		where = append(where, sq.Eq{"category": string(*f.Category)})
	}
	if f.CreatedFrom != nil {
		where = append(where, sq.GtOrEq{"created_at": f.CreatedFrom.UTC()})
	}
	if f.CreatedTo != nil {
		where = append(where, sq.LtOrEq{"created_at": f.CreatedTo.UTC()})
	}
	if f.HasLocation != nil {
		if *f.HasLocation {
			where = append(where, sq.NotEq{"latitude": nil})
		} else {
			where = append(where, sq.Eq{"latitude": nil})
		}
	}

	return where
}

// orderBy returns the sort clause with id as the tiebreaker.
func (f filter) orderBy() []string {
	dir := "DESC"
	if f.SortOrder == domain.SortAsc {
		dir = "ASC"
	}
	return []string{sortColumn(f.SortBy) + " " + dir, "id " + dir}
}

func sortColumn(field domain.ReportSortField) string {
	switch field {
	case domain.SortByUpdatedAt:
		return "updated_at"
	case domain.SortByTitle:
		return "title"
	case domain.SortByPriority:
		return "priority"
	case domain.SortByStatus:
		return "status"
	case domain.SortByCategory:
		return "category"
	default:
		return "created_at"
	}
}

// escapeLike escapes LIKE wildcards so the term matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// window builds the created_at range predicate used by the aggregations.
func window(from, to time.Time, inclusiveTo bool) sq.And {
	upper := sq.Sqlizer(sq.Lt{"created_at": to.UTC()})
	if inclusiveTo {
		upper = sq.LtOrEq{"created_at": to.UTC()}
	}
	return sq.And{sq.GtOrEq{"created_at": from.UTC()}, upper}
}
