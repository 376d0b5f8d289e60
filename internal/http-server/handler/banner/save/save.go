package save

import (
	"bannerweb/internal/banner"
	storage "bannerweb/internal/database"
	"bannerweb/internal/database/model"
	"bannerweb/internal/http-server/middleware/validator"
	httpBanner "bannerweb/internal/http-server/model"
	"bannerweb/pkg/lib/api/response"
	"bannerweb/pkg/lib/sl"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type BannerSaver interface {
	SaveBanner(ctx context.Context, banner *model.Banner) (int64, error)
}

func New(log *slog.Logger, bannerSaver BannerSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.Banner.Save.New"

		log := log.With(
			slog.String("op", op),
		)

		log.Info("saving banner")

		req, ok := r.Context().Value(validator.PostBannerKey).(validator.PostBannerRequest)
		if !ok {
			log.Error("failed convert to request")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(response.ErrServerInternal.Error()))
			return
		}

		log.Debug("request body decoded", slog.Any("request", req))

		b := httpBanner.BannerHTTPtoBannerDB(banner.Banner{
			ID:          req.ID,
			Description: req.Description,
			Link:        req.Link,
			Timer:       req.Timer,
			IsVisible:   req.IsVisible,
		})

		id, err := bannerSaver.SaveBanner(r.Context(), b)
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

		b.ID = id

		log.Info("banner saved", slog.Int64("banner_id", id))
		render.Status(r, http.StatusOK)
		render.JSON(w, r, httpBanner.BannerDBtoBannerHTTP(*b))
	}
}
