package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"avy-dashboard/internal/config"
	"avy-dashboard/internal/database"
	"avy-dashboard/internal/observability"
	"avy-dashboard/internal/rating"
	"avy-dashboard/internal/server"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the dashboard over HTTP",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				return goerr.Wrap(err, "failed to load config")
			}

			w := cmd.Root().Writer
			if w == nil {
				w = os.Stdout
			}
			logger := observability.NewLoggerTo(w, cfg)
			if err := serve(ctx, cfg, logger); err != nil {
				logger.Error("serve failed", "error", err)
				return err
			}
			return nil
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	defaults, err := rating.LoadGridProfile(cfg.DangerGridFile)
	if err != nil {
		return err
	}
	metrics := observability.NewMetrics()
	if cfg.DangerGridFile != "" {
		logger.Info("danger grid profile loaded", "path", cfg.DangerGridFile)
	}

	if cfg.AuditEnabled() {
		if err := database.Init(cfg.DBDSN, logger); err != nil {
			return err
		}
		logger.Info("grid audit journal enabled")
	} else {
		logger.Info("grid audit journal disabled")
	}

	r, err := server.NewRouter(cfg, defaults, logger, metrics)
	if err != nil {
		return goerr.Wrap(err, "failed to build router")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return goerr.Wrap(err, "server error", goerr.V("addr", srv.Addr))
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "http server shutdown error")
	}
	logger.Info("shutdown complete")
	return nil
}
