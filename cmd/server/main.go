package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ocobiz/fnbcalc/internal/config"
	"github.com/ocobiz/fnbcalc/internal/db"
	"github.com/ocobiz/fnbcalc/internal/logger"
	"github.com/ocobiz/fnbcalc/internal/metrics"
	"github.com/ocobiz/fnbcalc/internal/migrations"
	"github.com/ocobiz/fnbcalc/internal/seed"
	"github.com/ocobiz/fnbcalc/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	for _, w := range cfg.Warnings {
		log.Warn("config", zap.String("warning", w))
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		return err
	}
	version, err := migrations.Version(database)
	if err != nil {
		return err
	}
	log.Info("schema migrated", zap.Int64("version", version))

	stats, err := seed.Run(database, seed.Config{VATPercent: cfg.VATPercent})
	if err != nil {
		return err
	}
	log.Info("seed completed", zap.Int("inserts", stats.Inserts), zap.Int("updates", stats.Updates))

	srv := newServer(store.New(database), metrics.New())

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.routes(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", httpServer.Addr), zap.String("db_path", cfg.DBPath))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
