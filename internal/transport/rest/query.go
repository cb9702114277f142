package rest

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/service/report"
)

// parseListQuery maps query parameters onto a ListInput. Malformed values
// are collected as field errors.
func parseListQuery(q url.Values) (report.ListInput, error) {
	var (
		in   report.ListInput
		errs []domain.FieldError
	)

	in.Search = strings.TrimSpace(q.Get("search"))
	in.SortBy = domain.ReportSortField(q.Get("sortBy"))
	in.SortOrder = domain.SortOrder(strings.ToLower(q.Get("sortOrder")))

	if v := q.Get("status"); v != "" {
		s := domain.ReportStatus(v)
		in.Status = &s
	}
	if v := q.Get("priority"); v != "" {
		p := domain.ReportPriority(v)
		in.Priority = &p
	}
	if v := q.Get("category"); v != "" {
		c := domain.ReportCategory(v)
		in.Category = &c
	}

	parseInt := func(field string, dst *int) {
		v := q.Get(field)
		if v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be an integer"})
			return
		}
		*dst = n
	}
	parseInt("page", &in.Page)
	parseInt("limit", &in.Limit)

	if v := q.Get("hasLocation"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "hasLocation", Message: "must be true or false"})
		} else {
			in.HasLocation = &b
		}
	}

	parseTime := func(field string, endOfDay bool) *time.Time {
		v := q.Get(field)
		if v == "" {
			return nil
		}
		t, err := parseDateOrTime(v, endOfDay)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be RFC 3339 or YYYY-MM-DD"})
			return nil
		}
		return &t
	}
	in.CreatedFrom = parseTime("createdFrom", false)
	in.CreatedTo = parseTime("createdTo", true)

	if len(errs) > 0 {
		return in, domain.NewValidationErrors(errs)
	}
	return in, nil
}

// parseDateOrTime accepts a full timestamp or a UTC calendar date. A bare
// date used as an upper bound covers the whole day.
func parseDateOrTime(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return d.Add(24*time.Hour - time.Nanosecond), nil
	}
	return d, nil
}

// queryInt parses an optional integer query parameter into dst. It returns
// false only when the parameter is present and malformed.
func queryInt(r *http.Request, name string, dst *int) bool {
	v := r.URL.Query().Get(name)
	if v == "" {
		return true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return false
	}
	*dst = n
	return true
}
