package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"bannerweb/internal/form"
	"bannerweb/internal/http-server/handler/page"
	"bannerweb/internal/http-server/view"
	"bannerweb/pkg/lib/sl"
)

type FormSubmitter interface {
	Submit(ctx context.Context, d form.Draft) error
	View() form.View
}

func New(log *slog.Logger, state view.StateProvider, submitter FormSubmitter, poll time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Admin.New"

		log := log.With(
			slog.String("op", op),
		)

		if err := r.ParseForm(); err != nil {
			log.Info("bad request", sl.Err(err))
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		draft := form.ParseDraft(r.PostForm)

		err := submitter.Submit(r.Context(), draft)
		switch {
		case err == nil:
			log.Info("banner form submitted")
			http.Redirect(w, r, "/", http.StatusSeeOther)
		case errors.Is(err, form.ErrInvalid):
			log.Debug("invalid draft", sl.Err(err))
			page.Write(log, w, http.StatusUnprocessableEntity, view.NewPage(state, submitter, poll))
		case errors.Is(err, form.ErrSubmitting):
			log.Info("form is busy")
			page.Write(log, w, http.StatusConflict, view.NewPage(state, submitter, poll))
		default:
			log.Error("failed to submit banner form", sl.Err(err))
			page.Write(log, w, http.StatusBadGateway, view.NewPage(state, submitter, poll))
		}
	}
}
