package report

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/fieldreports-backend/internal/domain"
	"github.com/heartmarshall/fieldreports-backend/pkg/ctxutil"
)

//go:generate moq -out report_repo_mock_test.go -pkg report . reportRepo
//go:generate moq -out address_resolver_mock_test.go -pkg report . addressResolver
//go:generate moq -out image_uploader_mock_test.go -pkg report . imageUploader
//go:generate moq -out notifier_mock_test.go -pkg report . notifier
//go:generate moq -out tx_manager_mock_test.go -pkg report . txManager

var fixedNow = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

type deps struct {
	repo     *reportRepoMock
	resolver *addressResolverMock
	uploader *imageUploaderMock
	notifier *notifierMock
	tx       *txManagerMock
}

// newDeps returns mocks that succeed by default. The repository is backed by
// an in-memory map that applies patches the way the stores do.
func newDeps() *deps {
	return &deps{
		repo: memRepo(),
		resolver: &addressResolverMock{
			ResolveFunc: func(ctx context.Context, lat, lng float64, language string) *string { return nil },
		},
		uploader: &imageUploaderMock{
			UploadFunc: func(ctx context.Context, encoded, filename string) (string, error) {
				return "https://cdn.example/" + filename, nil
			},
		},
		notifier: &notifierMock{
			NotifyFunc: func(ctx context.Context, category domain.ReportCategory, text string) error { return nil },
		},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
		},
	}
}

func (d *deps) service() *Service {
	s := NewService(newTestLogger(), d.repo, d.resolver, d.uploader, d.notifier, d.tx, Config{
		PageSize:        10,
		MaxPageSize:     100,
		GeocodeLanguage: "en",
	}, nil)
	s.now = func() time.Time { return fixedNow }
	return s
}

func adminCtx(id uuid.UUID) context.Context {
	return ctxutil.WithIdentity(context.Background(), domain.Identity{
		ID: id, Email: "admin@example.com", Role: domain.AdminRoleAdmin,
	})
}

func memRepo() *reportRepoMock {
	var mu sync.Mutex
	store := map[string]domain.Report{}
	seq := 0

	clone := func(r domain.Report) *domain.Report {
		r.Tags = append([]string(nil), r.Tags...)
		r.Images = append([]domain.Image(nil), r.Images...)
		if r.Location != nil {
			loc := *r.Location
			r.Location = &loc
		}
		return &r
	}

	return &reportRepoMock{
		CreateFunc: func(ctx context.Context, r *domain.Report) (*domain.Report, error) {
			mu.Lock()
			defer mu.Unlock()
			seq++
			r.ID = "r" + strconv.Itoa(seq)
			store[r.ID] = *clone(*r)
			return clone(*r), nil
		},
		GetByIDFunc: func(ctx context.Context, id string) (*domain.Report, error) {
			mu.Lock()
			defer mu.Unlock()
			r, ok := store[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return clone(r), nil
		},
		UpdateFunc: func(ctx context.Context, id string, p domain.ReportPatch) error {
			mu.Lock()
			defer mu.Unlock()
			r, ok := store[id]
			if !ok {
				return domain.ErrNotFound
			}
			applyPatch(&r, p)
			store[id] = r
			return nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			if _, ok := store[id]; !ok {
				return domain.ErrNotFound
			}
			delete(store, id)
			return nil
		},
		ListFunc: func(ctx context.Context, f domain.ReportFilter) ([]domain.Report, int, error) {
			mu.Lock()
			defer mu.Unlock()
			var out []domain.Report
			for _, r := range store {
				if f.Status != nil && r.Status != *f.Status {
					continue
				}
				if f.Status == nil && excluded(r.Status, f.ExcludeStatuses) {
					continue
				}
				out = append(out, *clone(r))
			}
			total := len(out)
			if f.Offset >= len(out) {
				return nil, total, nil
			}
			out = out[f.Offset:]
			if len(out) > f.Limit {
				out = out[:f.Limit]
			}
			return out, total, nil
		},
	}
}

func excluded(s domain.ReportStatus, list []domain.ReportStatus) bool {
	for _, x := range list {
		if s == x {
			return true
		}
	}
	return false
}

func applyPatch(r *domain.Report, p domain.ReportPatch) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.Tags != nil {
		r.Tags = *p.Tags
	}
	if p.Images != nil {
		r.Images = *p.Images
	}
	if p.Location != nil {
		loc := *p.Location
		r.Location = &loc
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.ReviewedBy != nil {
		r.ReviewedBy = p.ReviewedBy
	}
	if p.ReviewedAt != nil {
		r.ReviewedAt = p.ReviewedAt
	}
	if p.RejectionReason != nil {
		r.RejectionReason = p.RejectionReason
	}
	if p.ClearRejectionReason {
		r.RejectionReason = nil
	}
	r.UpdatedAt = p.UpdatedAt
}

// seed inserts a report directly into the in-memory repository.
func seed(t interface{ Fatalf(string, ...any) }, d *deps, r domain.Report) *domain.Report {
	created, err := d.repo.CreateFunc(context.Background(), &r)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return created
}
