package wire

import (
	"cinema-platform/internal/adaptor"
	"cinema-platform/internal/data/repository"
	"cinema-platform/pkg/middleware"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// The webhook authenticates by signature, not by bearer token.
	r.Post("/api/tickets/confirm-webhook", ticketHandler.ConfirmWebhook)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, repo.User, log))

		r.Get("/api/tickets", ticketHandler.GetMyTickets)
		r.Post("/api/tickets/checkout", ticketHandler.CreateCheckout)
		r.Get("/api/tickets/checkout/{sessionId}", ticketHandler.GetCheckoutStatus)
	})
}
