// Command seeder parses the GNU GCIDE dictionary files and bulk-loads the
// words table. It is intended to be run offline, not as part of the server.
//
// Flags:
//
//	--data-dir  directory containing CIDE.* files (overrides config)
//	--dry-run   parse and count without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/xnillio/lexigraph/internal/adapter/postgres"
	"github.com/xnillio/lexigraph/internal/adapter/postgres/word"
	"github.com/xnillio/lexigraph/internal/app"
	"github.com/xnillio/lexigraph/internal/app/seeder"
	"github.com/xnillio/lexigraph/internal/config"
)

// Compile-time interface assertion.
var _ seeder.WordBulkRepo = (*word.Repo)(nil)

func main() {
	dataDirFlag := flag.String("data-dir", "", "directory containing CIDE.* files")
	dryRunFlag := flag.Bool("dry-run", false, "parse without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	if *dataDirFlag != "" {
		cfg.Seeder.DataDir = *dataDirFlag
	}
	if *dryRunFlag {
		cfg.Seeder.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, word.New(pool), cfg.Seeder)
	result, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding finished",
		slog.Int("files", result.Files),
		slog.Int("parsed", result.Parsed),
		slog.Int("rejected", result.Rejected),
		slog.Int("inserted", result.Inserted),
	)
}
