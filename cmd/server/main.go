package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"movie_backend/internal/app/di"
	"movie_backend/internal/app/router"
	"movie_backend/internal/config"
	"movie_backend/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Storage（REPOSITORY_TYPE に応じてSQLまたはMongoDB）
	storage, err := di.OpenStorage(ctx, cfg.Repository, di.StorageOptions{Migrate: cfg.RunMigrations, Debug: cfg.Debug})
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(context.Background()); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	// Redis（失効リスト。未接続の場合は失効なしで起動）
	denylist, closeRedis := di.NewTokenDenylist(ctx, cfg.Redis, cfg.Auth.RevocationPrefix)
	defer closeRedis()

	// Handler
	h, err := di.NewHandlers(storage.Conn, cfg.Auth, denylist, di.NewWorldTimeClient(cfg.WorldTime))
	if err != nil {
		return err
	}

	// ルータ生成
	r, err := router.NewRouter(h)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", srv.Addr, "repository", storage.Conn.Mode)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down the server gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
