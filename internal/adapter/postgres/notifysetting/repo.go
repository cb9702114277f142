// Package notifysetting stores per-category notification routing in PostgreSQL.
package notifysetting

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const entity = "notification_setting"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides notification setting persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification setting repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the setting for a category.
func (r *Repo) Get(ctx context.Context, category domain.ReportCategory) (*domain.CategorySetting, error) {
	var s domain.CategorySetting
	var c string
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT category, phone, linked, updated_at FROM notification_settings WHERE category = $1`,
		string(category),
	).Scan(&c, &s.Phone, &s.Linked, &s.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, entity, category)
	}
	s.Category = domain.ReportCategory(c)
	return &s, nil
}

// EnsureDefaults inserts an empty, unlinked setting for every category that
// has none yet.
func (r *Repo) EnsureDefaults(ctx context.Context, categories []domain.ReportCategory) error {
	if len(categories) == 0 {
		return nil
	}

	b := psql.Insert("notification_settings").Columns("category")
	for _, c := range categories {
		b = b.Values(string(c))
	}
	query, args, err := b.Suffix("ON CONFLICT (category) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("ensure default settings: %w", err)
	}
	return nil
}

// List returns all stored settings ordered by category.
func (r *Repo) List(ctx context.Context) ([]domain.CategorySetting, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT category, phone, linked, updated_at FROM notification_settings ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var out []domain.CategorySetting
	for rows.Next() {
		var (
			s domain.CategorySetting
			c string
		)
		if err := rows.Scan(&c, &s.Phone, &s.Linked, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		s.Category = domain.ReportCategory(c)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Upsert stores a setting.
func (r *Repo) Upsert(ctx context.Context, s domain.CategorySetting) error {
	query, args, err := psql.Insert("notification_settings").
		Columns("category", "phone", "linked", "updated_at").
		Values(string(s.Category), s.Phone, s.Linked, s.UpdatedAt).
		Suffix(`ON CONFLICT (category) DO UPDATE SET
			phone = EXCLUDED.phone, linked = EXCLUDED.linked, updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, s.Category)
	}
	return nil
}
