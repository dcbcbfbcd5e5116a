package wire

import (
	"net/http"

	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCinema(
	r chi.Router,
	cinemaHandler *adaptor.CinemaHandler,
	repo *repository.Repository,
	config *utils.Config,
	cached func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// Public browsing. The per-date program is deliberately not cached:
	// its past-date cutoff depends on the current day.
	r.Group(func(r chi.Router) {
		r.Use(cached)
		r.Get("/api/cinemas", cinemaHandler.GetCinemas)
		r.Get("/api/cinemas/{id}", cinemaHandler.GetCinemaByID)
		r.Get("/api/cinemas/{id}/auditoriums", cinemaHandler.GetAuditoriums)
	})
	r.Get("/api/cinemas/{id}/screenings", cinemaHandler.GetScreeningsForDate)
	r.Get("/api/cinemas/{id}/auditoriums/{auditoriumId}/screenings", cinemaHandler.GetAuditoriumScreenings)

	// Admin management.
	r.Route("/api/admin/cinemas", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", cinemaHandler.CreateCinema)
		r.Put("/{id}", cinemaHandler.UpdateCinema)
		r.Delete("/{id}", cinemaHandler.DeleteCinema)

		r.Post("/{id}/auditoriums", cinemaHandler.CreateAuditorium)
		r.Put("/{id}/auditoriums/{auditoriumId}", cinemaHandler.UpdateAuditorium)
		r.Delete("/{id}/auditoriums/{auditoriumId}", cinemaHandler.DeleteAuditorium)
	})
}
