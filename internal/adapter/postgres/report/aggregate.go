package report

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

// CountByStatus groups all reports by their stored status value.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	query, args, err := psql.Select("status", "count(*)").From(table).GroupBy("status").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by status: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()

	var out []domain.StatusCount
	for rows.Next() {
		var c domain.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountCreatedBetween counts reports with created_at in [from, to] or [from, to).
func (r *Repo) CountCreatedBetween(ctx context.Context, from, to time.Time, inclusiveTo bool) (int, error) {
	query, args, err := psql.Select("count(*)").From(table).Where(window(from, to, inclusiveTo)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count between: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count between: %w", err)
	}
	return n, nil
}

// CountByDay counts reports created in [from, to) per UTC calendar date.
// Days without reports are absent from the result.
func (r *Repo) CountByDay(ctx context.Context, from, to time.Time) (map[string]int, error) {
	day := "to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	query, args, err := psql.Select(day, "count(*)").From(table).
		Where(window(from, to, false)).
		GroupBy(day).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by day: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by day: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			date string
			n    int
		)
		if err := rows.Scan(&date, &n); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		out[date] = n
	}
	return out, rows.Err()
}

// CountByCategory groups all reports by their stored category value.
func (r *Repo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	query, args, err := psql.Select("category", "count(*)").From(table).GroupBy("category").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by category: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	var out []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountByAuthor returns the number of reports per author id for the given ids.
func (r *Repo) CountByAuthor(ctx context.Context, authorIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	query, args, err := psql.Select("author_id", "count(*)").From(table).
		Where(sq.Eq{"author_id": authorIDs}).
		GroupBy("author_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by author: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by author: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id string
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan author count: %w", err)
		}
		out[id] = n
	}
	return out, rows.Err()
}
