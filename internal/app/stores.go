package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/fieldreports-backend/internal/adapter/mongodb"
	mongoreport "github.com/heartmarshall/fieldreports-backend/internal/adapter/mongodb/report"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	pgreport "github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/fieldreports-backend/internal/config"
	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/internal/transport/rest"
)

// ReportStore is everything the services need from the report backend.
type ReportStore interface {
	Create(ctx context.Context, r *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	Update(ctx context.Context, id string, p domain.ReportPatch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f domain.ReportFilter) ([]domain.Report, int, error)

	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time, inclusiveTo bool) (int, error)
	CountByDay(ctx context.Context, from, to time.Time) (map[string]int, error)
	CountByCategory(ctx context.Context) ([]domain.CategoryCount, error)
	CountByAuthor(ctx context.Context, authorIDs []string) (map[string]int, error)
}

var (
	_ ReportStore = (*pgreport.Repo)(nil)
	_ ReportStore = (*mongoreport.Repo)(nil)
)

// TxRunner runs fn atomically with respect to the report backend.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// reportBackend is the selected report store plus what it needs at shutdown
// and for health checks.
type reportBackend struct {
	store   ReportStore
	tx      TxRunner
	pingers map[string]rest.Pinger
	close   func()
}

// openReportBackend selects the report repository from cfg.Reports.Store.
// The Postgres pool is shared with the other repositories.
func openReportBackend(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*reportBackend, error) {
	pingers := map[string]rest.Pinger{"postgres": pool}

	switch cfg.Reports.Store {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		repo := mongoreport.New(db.Collection(cfg.Mongo.Collection))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		pingers["mongo"] = mongoPinger{client}
		logger.Info("report store selected", slog.String("store", "mongo"), slog.String("database", cfg.Mongo.Database))
		return &reportBackend{
			store:   repo,
			tx:      mongodb.TxManager{},
			pingers: pingers,
			close:   func() { _ = client.Disconnect(context.Background()) },
		}, nil
	default:
		logger.Info("report store selected", slog.String("store", "postgres"))
		return &reportBackend{
			store:   pgreport.New(pool),
			tx:      postgres.NewTxManager(pool),
			pingers: pingers,
			close:   func() {},
		}, nil
	}
}

type mongoPinger struct{ client *mongo.Client }

func (p mongoPinger) Ping(ctx context.Context) error { return p.client.Ping(ctx, nil) }
