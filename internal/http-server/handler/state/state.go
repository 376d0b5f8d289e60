package state

import (
	"log/slog"
	"net/http"

	"bannerweb/internal/banner"
	"bannerweb/internal/coordinator"
	"bannerweb/pkg/lib/api/response"

	"github.com/go-chi/render"
)

type StateProvider interface {
	Snapshot() coordinator.Snapshot
	Notices() []coordinator.Notice
}

type Response struct {
	response.Response
	Loading   bool                     `json:"loading"`
	Banner    *banner.Banner           `json:"banner"`
	Countdown *coordinator.DisplayView `json:"countdown"`
	Notices   []coordinator.Notice     `json:"notices"`
}

func New(log *slog.Logger, stateProvider StateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.State.New"

		log := log.With(
			slog.String("op", op),
		)

		s := stateProvider.Snapshot()
		notices := stateProvider.Notices()

		log.Debug("state provided", slog.Bool("loading", s.Loading), slog.Int("notices", len(notices)))

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Loading:   s.Loading,
			Banner:    s.Banner,
			Countdown: s.Display,
			Notices:   notices,
		})
	}
}
