package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/adapter/postgres"
	"github.com/heartmarshall/fieldreports-backend/internal/adapter/provider/telegram"
	"github.com/heartmarshall/fieldreports-backend/internal/config"
	"github.com/heartmarshall/fieldreports-backend/internal/scheduler"
	"github.com/heartmarshall/fieldreports-backend/internal/service/digest"
	"github.com/heartmarshall/fieldreports-backend/internal/service/stats"
)

const digestTimeout = 2 * time.Minute

// RunDigest sends the statistics digest to the configured Telegram chat.
// With once set it sends a single digest and returns. Otherwise it runs on
// cfg.Digest.Cron until ctx is cancelled.
func RunDigest(ctx context.Context, cfg *config.Config, logger *slog.Logger, once bool) error {
	sender, err := telegram.NewSender(cfg.Telegram, "", logger)
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	backend, err := openReportBackend(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer backend.close()

	svc := digest.NewService(logger, stats.NewService(logger, backend.store), sender, cfg.Digest.TopCategories)

	if once {
		runCtx, cancel := context.WithTimeout(ctx, digestTimeout)
		defer cancel()
		return svc.Send(runCtx)
	}

	sched, err := scheduler.New(logger, cfg.Digest.Timezone)
	if err != nil {
		return err
	}
	if err := sched.Add("digest", cfg.Digest.Cron, digestTimeout, svc.Send); err != nil {
		return err
	}

	sched.Start()
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	sched.Stop(stopCtx)
	return nil
}
