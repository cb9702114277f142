package report

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
)

type groupRow struct {
	Key   string `bson:"_id"`
	Count int    `bson:"count"`
}

// group runs a $group on expr, optionally preceded by a $match.
func (r *Repo) group(ctx context.Context, match bson.M, expr any) ([]groupRow, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: expr},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}})

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []groupRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByStatus groups all reports by their stored status value.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := r.group(ctx, nil, bson.M{"$ifNull": bson.A{"$status", ""}})
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	out := make([]domain.StatusCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.StatusCount{Status: row.Key, Count: row.Count})
	}
	return out, nil
}

// CountCreatedBetween counts reports with createdAt in [from, to] or [from, to).
func (r *Repo) CountCreatedBetween(ctx context.Context, from, to time.Time, inclusiveTo bool) (int, error) {
	n, err := r.col.CountDocuments(ctx, window(from, to, inclusiveTo))
	if err != nil {
		return 0, fmt.Errorf("count between: %w", err)
	}
	return int(n), nil
}

// CountByDay counts reports created in [from, to) per UTC calendar date.
func (r *Repo) CountByDay(ctx context.Context, from, to time.Time) (map[string]int, error) {
	rows, err := r.group(ctx, window(from, to, false), bson.M{"$dateToString": bson.M{
		"format":   "%Y-%m-%d",
		"date":     createdAtDate,
		"timezone": "UTC",
	}})
	if err != nil {
		return nil, fmt.Errorf("count by day: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}

// CountByCategory groups all reports by category. A missing field groups as "".
func (r *Repo) CountByCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.group(ctx, nil, bson.M{"$ifNull": bson.A{"$category", ""}})
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	out := make([]domain.CategoryCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CategoryCount{Category: row.Key, Count: row.Count})
	}
	return out, nil
}

// CountByAuthor returns the number of reports per author id for the given ids.
func (r *Repo) CountByAuthor(ctx context.Context, authorIDs []string) (map[string]int, error) {
	out := make(map[string]int, len(authorIDs))
	if len(authorIDs) == 0 {
		return out, nil
	}

	rows, err := r.group(ctx, bson.M{"authorId": bson.M{"$in": authorIDs}}, "$authorId")
	if err != nil {
		return nil, fmt.Errorf("count by author: %w", err)
	}
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}
