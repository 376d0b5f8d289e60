package dismiss

import (
	"log/slog"
	"net/http"
)

type BannerDismisser interface {
	Dismiss() bool
}

func New(log *slog.Logger, bannerDismisser BannerDismisser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Dismiss.New"

		log := log.With(
			slog.String("op", op),
		)

		if !bannerDismisser.Dismiss() {
			log.Info("no banner to dismiss")
		} else {
			log.Info("banner dismissed")
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
