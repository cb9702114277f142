// Command digest posts report statistics to a Telegram chat on a cron
// schedule.
//
// Flags:
//
//	--once   send one digest now and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/fieldreports-backend/internal/app"
	"github.com/heartmarshall/fieldreports-backend/internal/config"
)

func main() {
	onceFlag := flag.Bool("once", false, "send one digest now and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunDigest(ctx, cfg, logger, *onceFlag); err != nil {
		logger.Error("digest failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
