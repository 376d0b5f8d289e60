package validator

import (
	"bannerweb/pkg/lib/api/response"
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/go-chi/render"
	playground "github.com/go-playground/validator/v10"
)

const banner = "/banner"

type Key string

const PostBannerKey = Key("post banner key")

// PostBannerRequest is the full banner record accepted by POST /banner.
type PostBannerRequest struct {
	ID          *int64 `json:"id" validate:"omitempty,gt=0"`
	Description string `json:"description" validate:"required,notblank"`
	Link        string `json:"link" validate:"omitempty,bannerlink"`
	Timer       int    `json:"timer" validate:"min=0"`
	IsVisible   bool   `json:"isVisible"`
}

var (
	httpLink = regexp.MustCompile(`^https?://`)
	wwwLink  = regexp.MustCompile(`^www\.`)
	blank    = regexp.MustCompile(`^\s*$`)
)

func newValidate() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	_ = v.RegisterValidation("bannerlink", func(fl playground.FieldLevel) bool {
		s := fl.Field().String()
		return httpLink.MatchString(s) || wwwLink.MatchString(s)
	})
	_ = v.RegisterValidation("notblank", func(fl playground.FieldLevel) bool {
		return !blank.MatchString(fl.Field().String())
	})
	return v
}

// New decodes and validates POST /banner bodies and stores the request in
// the context under PostBannerKey. Other requests pass through.
func New(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "http-server.middleware.validator"

		log := log.With(
			slog.String("op", op),
		)

		validate := newValidate()

		log.Info("validator middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != banner || r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			var req PostBannerRequest
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				log.Info("bad request", slog.String("reason", err.Error()))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(response.ErrBadRequest.Error()))
				return
			}

			if err := validate.Struct(req); err != nil {
				log.Info("invalid banner", slog.String("reason", err.Error()))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			ctx := context.WithValue(r.Context(), PostBannerKey, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}
