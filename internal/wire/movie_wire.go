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

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	cached func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	// Public catalogue, served from the response cache when possible.
	r.Group(func(r chi.Router) {
		r.Use(cached)
		r.Get("/api/movies", movieHandler.GetMovies)
		r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
	})

	// Admin management.
	r.Route("/api/admin/movies", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", movieHandler.CreateMovie)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
