// Package report implements the report repository using PostgreSQL.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const (
	table  = "reports"
	entity = "report"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "title", "content", "author_id", "author_name", "category", "priority", "status",
	"tags", "images", "latitude", "longitude", "address",
	"reviewed_by", "reviewed_at", "rejection_reason", "created_at", "updated_at",
}

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a report. An empty ID is replaced by a fresh UUID.
func (r *Repo) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	id := rep.ID
	if id == "" {
		id = uuid.NewString()
	}

	images, err := marshalImages(rep.Images)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, id, err)
	}
	lat, lng, address := splitLocation(rep.Location)

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(
			id, rep.Title, rep.Content, rep.AuthorID, rep.AuthorName,
			string(rep.Category), string(rep.Priority), string(rep.Status),
			nonNilTags(rep.Tags), images, lat, lng, address,
			rep.ReviewedBy, rep.ReviewedAt, rep.RejectionReason, rep.CreatedAt, rep.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanReport(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return created, nil
}

// GetByID returns a report by id. A malformed id is reported as not found.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	query, args, err := psql.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rep, err := scanReport(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return rep, nil
}

// Update applies a partial update. Fields left nil in the patch keep their
// stored value; updated_at is always written.
func (r *Repo) Update(ctx context.Context, id string, p domain.ReportPatch) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	b := psql.Update(table).Set("updated_at", p.UpdatedAt).Where(sq.Eq{"id": id})

	if p.Title != nil {
		b = b.Set("title", *p.Title)
	}
	if p.Content != nil {
		b = b.Set("content", *p.Content)
	}
	if p.Category != nil {
		b = b.Set("category", string(*p.Category))
	}
	if p.Priority != nil {
		b = b.Set("priority", string(*p.Priority))
	}
	if p.Tags != nil {
		b = b.Set("tags", nonNilTags(*p.Tags))
	}
	if p.Images != nil {
		images, err := marshalImages(*p.Images)
		if err != nil {
			return fmt.Errorf("%s %s: %w", entity, id, err)
		}
		b = b.Set("images", images)
	}
	if p.Location != nil {
		lat, lng, address := splitLocation(p.Location)
		b = b.Set("latitude", lat).Set("longitude", lng).Set("address", address)
	}
	if p.Status != nil {
		b = b.Set("status", string(*p.Status))
	}
	if p.ReviewedBy != nil {
		b = b.Set("reviewed_by", *p.ReviewedBy)
	}
	if p.ReviewedAt != nil {
		b = b.Set("reviewed_at", *p.ReviewedAt)
	}
	switch {
	case p.ClearRejectionReason:
		b = b.Set("rejection_reason", nil)
	case p.RejectionReason != nil:
		b = b.Set("rejection_reason", *p.RejectionReason)
	}

	query, args, err := b.ToSql()
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

// Delete hard-deletes a report.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	query, args, err := psql.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
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

// List returns the page selected by the filter and the total number of
// matching reports.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, int, error) {
	filter := newFilter(f)
	where := filter.where()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	query, args, err := psql.Select(columns...).From(table).
		Where(where).
		OrderBy(filter.orderBy()...).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Report, 0, filter.Limit)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan report: %w", err)
		}
		items = append(items, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	return items, total, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

// imageDoc is the JSON shape of one element of the images column.
type imageDoc struct {
	LocalURL  string `json:"localUrl"`
	PublicURL string `json:"publicUrl,omitempty"`
}

func marshalImages(images []domain.Image) ([]byte, error) {
	docs := make([]imageDoc, 0, len(images))
	for _, img := range images {
		docs = append(docs, imageDoc{LocalURL: img.LocalURL, PublicURL: img.PublicURL})
	}
	b, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	return b, nil
}

func unmarshalImages(raw []byte) ([]domain.Image, error) {
	var docs []imageDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, fmt.Errorf("unmarshal images: %w", err)
		}
	}
	images := make([]domain.Image, 0, len(docs))
	for _, d := range docs {
		images = append(images, domain.Image{LocalURL: d.LocalURL, PublicURL: d.PublicURL})
	}
	return images, nil
}

func splitLocation(loc *domain.Location) (lat, lng *float64, address *string) {
	if loc == nil {
		return nil, nil, nil
	}
	la, ln := loc.Latitude, loc.Longitude
	if loc.HasAddress() {
		a := loc.Address
		address = &a
	}
	return &la, &ln, address
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func scanReport(row pgx.Row) (*domain.Report, error) {
	var (
		rep                        domain.Report
		category, priority, status string
		images                     []byte
		lat, lng                   *float64
		address                    *string
	)

	err := row.Scan(
		&rep.ID, &rep.Title, &rep.Content, &rep.AuthorID, &rep.AuthorName,
		&category, &priority, &status,
		&rep.Tags, &images, &lat, &lng, &address,
		&rep.ReviewedBy, &rep.ReviewedAt, &rep.RejectionReason, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rep.Category = domain.ReportCategory(category)
	rep.Priority = domain.ReportPriority(priority)
	rep.Status = domain.ReportStatus(status)
	if rep.Tags == nil {
		rep.Tags = []string{}
	}
	if rep.Images, err = unmarshalImages(images); err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		rep.Location = &domain.Location{Latitude: *lat, Longitude: *lng}
		if address != nil {
			rep.Location.Address = *address
		}
	}
	rep.CreatedAt = rep.CreatedAt.UTC()
	rep.UpdatedAt = rep.UpdatedAt.UTC()
	if rep.ReviewedAt != nil {
		t := rep.ReviewedAt.UTC()
		rep.ReviewedAt = &t
	}
	return &rep, nil
}
