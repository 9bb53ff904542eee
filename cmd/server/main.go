// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tolex081/provernaire-backend/internal/config"
	dbconfig "github.com/Tolex081/provernaire-backend/internal/database/config"
	"github.com/Tolex081/provernaire-backend/internal/database/database"
	"github.com/Tolex081/provernaire-backend/internal/database/migrate"
	"github.com/Tolex081/provernaire-backend/pkg/logger"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	if err := run(cfg, sugar); err != nil {
		sugar.Errorw("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, sugar *zap.SugaredLogger) error {
	dbCfg := dbconfig.LoadConfigFromEnv()
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), cfg.DatabaseConnectTimeout)
	db, err := database.Open(connectCtx, dbCfg, sugar)
	cancelConnect()
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			sugar.Warnw("failed to close database", "error", err)
		}
	}()
	sugar.Infow("database connected", "driver", dbCfg.Driver)

	if cfg.AutoMigrate {
		if err := migrate.Run(db, dbCfg.Driver); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		sugar.Infow("database migrations applied")
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      newRouter(db, cfg, sugar),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,

		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Infow("shutting down server", "timeout", cfg.Server.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
