package wire

import (
	"net/http"
	"time"

	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/payment"
	"cinema-platform/pkg/queue"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts every route.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	rdb *redis.Client,
	payments *payment.Client,
	events *queue.Publisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, payments, events, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, rdb, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics)

	cached := middleware.Cache(rdb, time.Duration(config.Redis.CacheTTL)*time.Second, logger)

	wireCinema(r, handler.Cinema, repo, config, cached, logger)
	wireMovie(r, handler.Movie, repo, config, cached, logger)
	wireScreening(r, handler.Screening, repo, config, logger)
	wireTicket(r, handler.Ticket, repo, config, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
