package banner

import (
	storage "bannerweb/internal/database"
	"bannerweb/internal/database/model"
	httpBanner "bannerweb/internal/http-server/model"
	"bannerweb/pkg/lib/api/response"
	"bannerweb/pkg/lib/sl"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type BannerProvider interface {
	Banner(ctx context.Context) (*model.Banner, error)
}

func New(log *slog.Logger, bannerProvider BannerProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Banner.New"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("providing banner")

		b, err := bannerProvider.Banner(r.Context())
		if err != nil {
			if errors.Is(err, storage.ErrBannerNotFound) {
				log.Info("banner not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(response.ErrBannerNotFound.Error()))
			} else {
				log.Error("internal error", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			}
			return
		}

		log.Info("banner provided", slog.Int64("banner_id", b.ID))
		render.JSON(w, r, httpBanner.BannerDBtoBannerHTTP(*b))
	}
}
