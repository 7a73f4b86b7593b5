package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/xnillio/lexigraph/internal/adapter/postgres"
	"github.com/xnillio/lexigraph/internal/adapter/postgres/link"
	"github.com/xnillio/lexigraph/internal/adapter/postgres/word"
	"github.com/xnillio/lexigraph/internal/config"
	"github.com/xnillio/lexigraph/internal/service/dictionary"
	"github.com/xnillio/lexigraph/internal/service/graph"
	"github.com/xnillio/lexigraph/internal/service/linker"
	"github.com/xnillio/lexigraph/internal/transport/rest"
)

// Run is the server entry point: it loads configuration, connects to the
// database, wires the services and the REST router, and serves until SIGINT
// or SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	wordRepo := word.New(pool)
	txm := postgres.NewTxManager(pool)
	linkRepo := link.New(pool, txm)

	linkerSvc := linker.New(logger, wordRepo)
	graphSvc := graph.New(logger, cfg.Graph, wordRepo, linkRepo)
	dictSvc := dictionary.NewService(logger, wordRepo, linkerSvc, graphSvc)

	handler := rest.NewRouter(
		logger,
		cfg.CORS,
		rest.NewWordHandler(dictSvc, graphSvc, logger),
		rest.NewStatsHandler(graphSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("http server started", slog.String("addr", srv.Addr))

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
