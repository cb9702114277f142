// Package device implements the mobile device registry using PostgreSQL.
package device

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const entity = "device"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "device_type", "os_version", "app_version", "language", "push_token", "created_at", "updated_at",
}

// Repo provides device persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new device repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts a device or refreshes its descriptive fields.
// created_at of an existing row is kept.
func (r *Repo) Upsert(ctx context.Context, d *domain.Device) (*domain.Device, error) {
	query, args, err := psql.Insert("devices").
		Columns(columns...).
		Values(d.ID, d.DeviceType, d.OSVersion, d.AppVersion, d.Language, d.PushToken, d.CreatedAt, d.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			device_type = EXCLUDED.device_type,
			os_version  = EXCLUDED.os_version,
			app_version = EXCLUDED.app_version,
			language    = EXCLUDED.language,
			push_token  = COALESCE(EXCLUDED.push_token, devices.push_token),
			updated_at  = EXCLUDED.updated_at
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert: %w", err)
	}

	saved, err := scanDevice(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, d.ID)
	}
	return saved, nil
}

// Update changes the provided fields of an existing device.
func (r *Repo) Update(ctx context.Context, d *domain.Device) (*domain.Device, error) {
	b := psql.Update("devices").Set("updated_at", d.UpdatedAt).Where(sq.Eq{"id": d.ID})
	if d.DeviceType != "" {
		b = b.Set("device_type", d.DeviceType)
	}
	if d.OSVersion != "" {
		b = b.Set("os_version", d.OSVersion)
	}
	if d.AppVersion != "" {
		b = b.Set("app_version", d.AppVersion)
	}
	if d.Language != "" {
		b = b.Set("language", d.Language)
	}
	if d.PushToken != nil {
		b = b.Set("push_token", *d.PushToken)
	}

	query, args, err := b.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	saved, err := scanDevice(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, d.ID)
	}
	return saved, nil
}

// GetByID returns a device by id.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Device, error) {
	query, args, err := psql.Select(columns...).From("devices").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	d, err := scanDevice(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return d, nil
}

// List returns devices ordered by most recent activity.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.Device, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM devices`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count devices: %w", err)
	}

	query, args, err := psql.Select(columns...).From("devices").
		OrderBy("updated_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	var out []domain.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan device: %w", err)
		}
		out = append(out, *d)
	}
	return out, total, rows.Err()
}

func scanDevice(row pgx.Row) (*domain.Device, error) {
	var d domain.Device
	if err := row.Scan(&d.ID, &d.DeviceType, &d.OSVersion, &d.AppVersion, &d.Language, &d.PushToken, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
