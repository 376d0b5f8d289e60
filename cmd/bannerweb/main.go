package main

import (
	"bannerweb/internal/client/backend"
	"bannerweb/internal/config"
	"bannerweb/internal/coordinator"
	"bannerweb/internal/form"
	"bannerweb/internal/http-server/router"
	"bannerweb/pkg/lib/logger"
	"bannerweb/pkg/lib/sl"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env, os.Stdout)

	log.Info("starting banner web client", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := backend.New(log, cfg.BaseURL, cfg.RequestTimeout)
	coord := coordinator.New(log, client, coordinator.WithContext(ctx))
	defer coord.Close()

	adminForm := form.New(coord, nil)
	coord.Subscribe(adminForm.Seed)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      router.NewWeb(log, coord, adminForm, cfg.PollInterval),
		ReadTimeout:  cfg.ReadTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", slog.String("address", cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// a failed load is surfaced as a notification, not a shutdown
		_ = coord.Load(gCtx)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("stopping server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", sl.Err(err))
		return
	}

	log.Info("server stopped")
}
