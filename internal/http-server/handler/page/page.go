package page

import (
	"log/slog"
	"net/http"
	"time"

	"bannerweb/internal/http-server/view"
	"bannerweb/pkg/lib/sl"
)

func New(log *slog.Logger, state view.StateProvider, form view.FormViewer, poll time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Page.New"

		log := log.With(
			slog.String("op", op),
		)

		Write(log, w, http.StatusOK, view.NewPage(state, form, poll))
	}
}

// Write renders p with the given status.
func Write(log *slog.Logger, w http.ResponseWriter, status int, p view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := view.Render(w, p); err != nil {
		log.Error("failed to render page", sl.Err(err))
	}
}
