package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"cinema-platform/internal/dto/request"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/payment"
	"cinema-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxWebhookBody caps the webhook payload we are willing to read.
const maxWebhookBody = 1 << 20

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// CreateCheckout handles POST /api/tickets/checkout
func (h *TicketHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.CreateCheckoutSession(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create checkout")
		return
	}

	utils.ResponseCreated(w, "Checkout session created", session)
}

// GetCheckoutStatus handles GET /api/tickets/checkout/{sessionId}
func (h *TicketHandler) GetCheckoutStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	session, err := h.service.GetCheckoutStatus(r.Context(), userID, chi.URLParam(r, "sessionId"))
	if err != nil {
		respondServiceError(w, h.log, err, "get checkout status")
		return
	}

	utils.ResponseSuccess(w, "Checkout session retrieved", session)
}

// GetMyTickets handles GET /api/tickets
func (h *TicketHandler) GetMyTickets(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := request.NewPaginatedRequest(query.Get("page"), query.Get("per_page"))

	tickets, err := h.service.GetMyTickets(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "get my tickets")
		return
	}

	utils.ResponseSuccess(w, "Tickets retrieved successfully", tickets)
}

// ConfirmWebhook handles POST /api/tickets/confirm-webhook, the payment
// processor's confirmation delivery. A bad signature is 401 and nothing is
// written. A verified event always answers 200: per-entry failures are part
// of the batch result, and a non-2xx would only make the processor redeliver
// an event we already fully processed.
func (h *TicketHandler) ConfirmWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.ResponseBadRequest(w, "Failed to read request body", nil)
		return
	}

	result, err := h.service.HandlePaymentEvent(r.Context(), payload, r.Header.Get(payment.SignatureHeader))
	if err != nil {
		respondServiceError(w, h.log, err, "confirm webhook")
		return
	}

	utils.ResponseSuccess(w, "Payment event processed", result)
}
