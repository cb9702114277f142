// Package report implements the report repository on a MongoDB collection.
package report

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

const (
	entity       = "report"
	defaultLimit = 10
)

// Repo provides report persistence backed by a MongoDB collection.
type Repo struct {
	col *mongo.Collection
}

// New creates a new report repository over the given collection.
func New(col *mongo.Collection) *Repo {
	return &Repo{col: col}
}

// EnsureIndexes creates the indexes used by listing and aggregation.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "authorId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create report indexes: %w", err)
	}
	return nil
}

// Create inserts a report. A missing or non-ObjectID id is replaced.
func (r *Repo) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	doc := fromDomain(rep)
	if oid, err := primitive.ObjectIDFromHex(rep.ID); err == nil {
		doc.ID = oid
	} else {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, mapError(err, doc.ID.Hex())
	}

	created := toDomain(doc)
	return &created, nil
}

// GetByID returns a report by id. A malformed id is reported as not found.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var doc reportDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapError(err, id)
	}
	rep := toDomain(doc)
	return &rep, nil
}

// Update applies a partial update with $set and $unset.
func (r *Repo) Update(ctx context.Context, id string, p domain.ReportPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	set := bson.M{"updatedAt": p.UpdatedAt}
	unset := bson.M{}

	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	if p.Category != nil {
		set["category"] = string(*p.Category)
	}
	if p.Priority != nil {
		set["priority"] = string(*p.Priority)
	}
	if p.Tags != nil {
		tags := *p.Tags
		if tags == nil {
			tags = []string{}
		}
		set["tags"] = tags
	}
	if p.Images != nil {
		set["images"] = toImageDocs(*p.Images)
	}
	if p.Location != nil {
		set["location"] = toLocationDoc(p.Location)
	}
	if p.Status != nil {
		set["status"] = string(*p.Status)
	}
	if p.ReviewedBy != nil {
		set["reviewedBy"] = *p.ReviewedBy
	}
	if p.ReviewedAt != nil {
		set["reviewedAt"] = *p.ReviewedAt
	}
	switch {
	case p.ClearRejectionReason:
		unset["rejectionReason"] = ""
	case p.RejectionReason != nil:
		set["rejectionReason"] = *p.RejectionReason
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return mapError(err, id)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// Delete hard-deletes a report.
func (r *Repo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError(err, id)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// List returns the page selected by the filter and the total number of
// matching reports.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, int, error) {
	f = normalize(f)
	query := buildQuery(f)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	opts := options.Find().
		SetSort(sortSpec(f)).
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]domain.Report, 0, f.Limit)
	for cur.Next(ctx) {
		var doc reportDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode report: %w", err)
		}
		items = append(items, toDomain(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	return items, int(total), nil
}

// ---------------------------------------------------------------------------
// Query building
// ---------------------------------------------------------------------------

func normalize(f domain.ReportFilter) domain.ReportFilter {
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
	return f
}

// buildQuery ANDs every set clause of the filter.
func buildQuery(f domain.ReportFilter) bson.M {
	var and []bson.M

	if term := strings.TrimSpace(f.Search); term != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		and = append(and, bson.M{"$or": []bson.M{
			{"title": re},
			{"content": re},
			{"authorName": re},
		}})
	}

	switch {
	case f.Status != nil:
		and = append(and, bson.M{"status": string(*f.Status)})
	case len(f.ExcludeStatuses) > 0:
		excluded := make([]string, 0, len(f.ExcludeStatuses))
		for _, s := range f.ExcludeStatuses {
			excluded = append(excluded, string(s))
		}
		and = append(and, bson.M{"status": bson.M{"$nin": excluded}})
	}

	if f.Priority != nil {
		and = append(and, bson.M{"priority": string(*f.Priority)})
	}
	if f.Category != nil {
		and = append(and, bson.M{"category": string(*f.Category)})
	}
	if f.CreatedFrom != nil || f.CreatedTo != nil {
		var bounds bson.A
		if f.CreatedFrom != nil {
			bounds = append(bounds, bson.M{"$gte": bson.A{createdAtDate, f.CreatedFrom.UTC()}})
		}
		if f.CreatedTo != nil {
			bounds = append(bounds, bson.M{"$lte": bson.A{createdAtDate, f.CreatedTo.UTC()}})
		}
		and = append(and, bson.M{"$expr": bson.M{"$and": bounds}})
	}
	if f.HasLocation != nil {
		if *f.HasLocation {
			and = append(and, bson.M{"location.latitude": bson.M{"$type": "number"}})
		} else {
			and = append(and, bson.M{"location.latitude": bson.M{"$not": bson.M{"$type": "number"}}})
		}
	}

	if len(and) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": and}
}

func sortSpec(f domain.ReportFilter) bson.D {
	dir := -1
	if f.SortOrder == domain.SortAsc {
		dir = 1
	}
	return bson.D{{Key: sortField(f.SortBy), Value: dir}, {Key: "_id", Value: dir}}
}

func sortField(field domain.ReportSortField) string {
	switch field {
	case domain.SortByUpdatedAt:
		return "updatedAt"
	case domain.SortByTitle:
		return "title"
	case domain.SortByPriority:
		return "priority"
	case domain.SortByStatus:
		return "status"
	case domain.SortByCategory:
		return "category"
	default:
		return "createdAt"
	}
}

// createdAtDate converts createdAt to a date inside expressions. Documents
// written by the previous service store it as an ISO-8601 string.
var createdAtDate = bson.M{"$toDate": "$createdAt"}

func window(from, to time.Time, inclusiveTo bool) bson.M {
	upper := "$lt"
	if inclusiveTo {
		upper = "$lte"
	}
	return bson.M{"$expr": bson.M{"$and": bson.A{
		bson.M{"$gte": bson.A{createdAtDate, from.UTC()}},
		bson.M{upper: bson.A{createdAtDate, to.UTC()}},
	}}}
}

func mapError(err error, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	}
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
