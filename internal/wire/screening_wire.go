package wire

import (
	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireScreening(
	r chi.Router,
	screeningHandler *adaptor.ScreeningHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Get("/api/screenings/{id}", screeningHandler.GetScreeningByID)

	r.Route("/api/admin/screenings", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", screeningHandler.CreateScreening)
		r.Put("/{id}", screeningHandler.UpdateScreening)
		r.Delete("/{id}", screeningHandler.DeleteScreening)
	})
}
