// Command linker recomputes the word_links edge set from all stored
// definitions. The rebuild is atomic: the old edges are replaced in one
// transaction, so the job can be re-run at any time.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/xnillio/lexigraph/internal/adapter/postgres"
	"github.com/xnillio/lexigraph/internal/adapter/postgres/link"
	"github.com/xnillio/lexigraph/internal/adapter/postgres/word"
	"github.com/xnillio/lexigraph/internal/app"
	"github.com/xnillio/lexigraph/internal/config"
	"github.com/xnillio/lexigraph/internal/service/linker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	wordRepo := word.New(pool)
	txm := postgres.NewTxManager(pool)
	linkRepo := link.New(pool, txm)

	svc := linker.New(logger, wordRepo)
	result, err := svc.RecomputeAll(ctx, wordRepo, linkRepo)
	if err != nil {
		logger.Error("recompute failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("recompute completed",
		slog.Int("words", result.Words),
		slog.Int("edges", result.Edges),
		slog.Duration("duration", result.Duration),
	)
}
