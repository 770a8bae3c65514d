package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kennel-tycoon/internal/adapters/storage/memory"
	pg "kennel-tycoon/internal/adapters/storage/postgres"
	"kennel-tycoon/internal/adapters/storage/sqlite"
	"kennel-tycoon/internal/domain/game"
	"kennel-tycoon/internal/platform/config"
	"kennel-tycoon/internal/platform/logger"
	"kennel-tycoon/internal/platform/otel"
	"kennel-tycoon/internal/platform/rng"
	"kennel-tycoon/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, cfg.AppName, cfg.OTelEndpoint)
	if err != nil {
		log.Warn("tracing disabled", map[string]any{"error": err.Error()})
	}

	repo, closeRepo, err := openRepo(ctx, cfg, log)
	if err != nil {
		log.Error("storage error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer closeRepo()

	src, seed := rng.New(cfg.Seed)
	log.Info("random source ready", map[string]any{"seed": seed})

	svc := game.NewService(repo, src, log)

	// Partida por defecto lista al arrancar
	if _, err := svc.Get(ctx, cfg.DefaultSlot); errors.Is(err, game.ErrNotFound) {
		if _, err := svc.NewGame(ctx, cfg.DefaultSlot); err != nil {
			log.Error("new game failed", map[string]any{"slot": cfg.DefaultSlot, "error": err.Error()})
			os.Exit(1)
		}
	} else if err != nil {
		log.Error("load game failed", map[string]any{"slot": cfg.DefaultSlot, "error": err.Error()})
		os.Exit(1)
	}

	if cfg.AutoTick {
		go game.NewClock(svc, cfg.DayInterval, log).Run(ctx)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(router.Options{Service: svc, Logger: log, DefaultSlot: cfg.DefaultSlot}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		_ = shutdownTracing(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// openRepo elige el storage: Postgres si hay DB_DSN, SQLite si hay SQLITE_PATH, si no in-memory.
func openRepo(ctx context.Context, cfg config.Config, log logger.Logger) (game.Repository, func(), error) {
	switch {
	case cfg.DBDSN != "":
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, err
		}
		repo := pg.NewGameRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("storage: postgres", nil)
		return repo, func() { _ = db.Close() }, nil

	case cfg.SQLitePath != "":
		repo, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("storage: sqlite", map[string]any{"path": cfg.SQLitePath})
		return repo, func() { _ = repo.Close() }, nil

	default:
		log.Warn("storage: in-memory, games are lost on restart", nil)
		return memory.NewGameRepo(), func() {}, nil
	}
}
