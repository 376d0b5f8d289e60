package main

import (
	"bannerweb/internal/config"
	"bannerweb/internal/database/driver"
	"bannerweb/internal/database/repository"
	"bannerweb/internal/database/repository/memory"
	"bannerweb/internal/database/repository/pgsql"
	"bannerweb/internal/http-server/router"
	"bannerweb/pkg/lib/logger"
	"bannerweb/pkg/lib/sl"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env, os.Stdout)

	log.Info("starting banner stub backend", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))

	repo, closer, err := setupStorage(cfg, log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      router.NewStub(log, repo),
		ReadTimeout:  cfg.ReadTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("shutting server", sl.Err(err))
				return
			}
			log.Error("failed to start server", sl.Err(err))
		}
	}()

	log.Info("server started", slog.String("address", cfg.Address))
	sign := <-done
	log.Info("stopping server", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to stop server", sl.Err(err))
		return
	}

	if err := closer.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
		return
	}

	log.Info("server stopped")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func setupStorage(cfg *config.Config, log *slog.Logger) (repository.BannerRepository, io.Closer, error) {
	if cfg.Storage != config.StoragePostgres {
		return memory.NewBannerRepository(), nopCloser{}, nil
	}

	scr := config.MustLoadSecret()

	sqlxConfig := &driver.SQLXConfig{
		DriverName:     cfg.DriverName,
		DataSourceName: driver.PostgresDSN(cfg.Host, cfg.Port, cfg.Username, scr.PostgresPassword, cfg.DBname, cfg.SSLmode),
		MaxOpenConns:   cfg.MaxOpenConns,
		MaxIdleConns:   cfg.MaxIdleConns,
		MaxLifetime:    cfg.MaxLifetime,
	}

	db, err := sqlxConfig.NewSQLXDatabase(log)
	if err != nil {
		return nil, nil, err
	}

	repo := pgsql.NewBannerRepository(db)
	if err := repo.Migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return repo, db, nil
}
