// Package router wires the chi routers for the web client and the
// development backend.
package router

import (
	"log/slog"
	"net/http"
	"time"

	"bannerweb/internal/coordinator"
	"bannerweb/internal/database/repository"
	"bannerweb/internal/form"
	"bannerweb/internal/http-server/handler/admin"
	"bannerweb/internal/http-server/handler/banner"
	"bannerweb/internal/http-server/handler/banner/save"
	"bannerweb/internal/http-server/handler/dismiss"
	"bannerweb/internal/http-server/handler/page"
	"bannerweb/internal/http-server/handler/state"
	"bannerweb/internal/http-server/middleware/logger"
	"bannerweb/internal/http-server/middleware/validator"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewWeb(log *slog.Logger, coord *coordinator.Coordinator, f *form.Form, poll time.Duration) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(logger.New(log))

	router.Get("/", page.New(log, coord, f, poll))
	router.Get("/api/state", state.New(log, coord))
	router.Post("/banner/dismiss", dismiss.New(log, coord))
	router.Post("/admin", admin.New(log, coord, f, poll))

	return router
}

func NewStub(log *slog.Logger, repo repository.BannerRepository) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(validator.New(log))
	router.Use(logger.New(log))

	router.Get("/banner", banner.New(log, repo))
	router.Post("/banner", save.New(log, repo))

	return router
}
