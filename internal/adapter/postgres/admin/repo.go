// Package admin implements the administrator account repository using PostgreSQL.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const entity = "admin"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "email", "name", "password_hash", "role", "is_active", "last_login_at", "created_at", "updated_at",
}

// Repo provides admin persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns an admin by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns an admin by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.getOne(ctx, sq.Expr("lower(email) = lower(?)", strings.TrimSpace(email)), email)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.Admin, error) {
	query, args, err := psql.Select(columns...).From("admins").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	a, err := scanAdmin(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return a, nil
}

// Create inserts a new admin.
func (r *Repo) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	query, args, err := psql.Insert("admins").
		Columns(columns...).
		Values(a.ID, a.Email, a.Name, a.PasswordHash, string(a.Role), a.IsActive, a.LastLoginAt, a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanAdmin(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, a.ID)
	}
	return created, nil
}

// TouchLastLogin records a successful login.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := psql.Update("admins").
		Set("last_login_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// Count returns the number of admin accounts.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return n, nil
}

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var (
		a    domain.Admin
		role string
	)
	if err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &role, &a.IsActive, &a.LastLoginAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Role = domain.AdminRole(role)
	return &a, nil
}
