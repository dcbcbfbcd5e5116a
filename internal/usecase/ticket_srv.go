package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cinema-platform/internal/data/entity"
	"cinema-platform/internal/data/repository"
	"cinema-platform/internal/dto/request"
	"cinema-platform/internal/dto/response"
	"cinema-platform/pkg/payment"
	"cinema-platform/pkg/queue"
	"cinema-platform/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// studentRate is the fraction of the standard price a student ticket costs.
const studentRate = 0.8

type TicketService interface {
	CreateCheckoutSession(ctx context.Context, customerID uuid.UUID, req *request.CheckoutRequest) (*response.CheckoutSessionResponse, error)
	GetCheckoutStatus(ctx context.Context, customerID uuid.UUID, sessionID string) (*response.CheckoutSessionResponse, error)
	HandlePaymentEvent(ctx context.Context, payload []byte, signatureHeader string) (*response.TicketBatchResponse, error)
	GetMyTickets(ctx context.Context, customerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error)
}

type ticketService struct {
	repo          *repository.Repository
	payments      *payment.Client
	events        *queue.Publisher
	webhookSecret string
	log           *zap.Logger
	now           func() time.Time
}

func NewTicketService(
	repo *repository.Repository,
	config *utils.Config,
	payments *payment.Client,
	events *queue.Publisher,
	log *zap.Logger,
) TicketService {
	return &ticketService{
		repo:          repo,
		payments:      payments,
		events:        events,
		webhookSecret: config.Payment.WebhookSecret,
		log:           log.With(zap.String("service", "ticket")),
		now:           time.Now,
	}
}

// CreateCheckoutSession registers a pending purchase batch with the payment
// processor. Nothing is persisted here; the processor's metadata carries
// the batch until its confirmation webhook arrives.
func (s *ticketService) CreateCheckoutSession(ctx context.Context, customerID uuid.UUID, req *request.CheckoutRequest) (*response.CheckoutSessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	screeningID, err := uuid.Parse(req.ScreeningID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid screening id", ErrValidation)
	}

	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		s.log.Error("Failed to get screening for checkout",
			zap.Error(err),
			zap.String("screening_id", req.ScreeningID),
		)
		return nil, fmt.Errorf("get screening: %w", err)
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %s: %w", req.ScreeningID, ErrNotFound)
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, screening.AuditoriumID)
	if err != nil {
		return nil, fmt.Errorf("get auditorium: %w", err)
	}
	if auditorium == nil {
		return nil, fmt.Errorf("auditorium %s: %w", screening.AuditoriumID, ErrNotFound)
	}

	// Bounds are checked upfront so the customer is never charged for a
	// seat that cannot exist. The booked-seat check here is advisory
	// only; the uniqueness constraint at materialization time is the
	// real guard.
	for _, seat := range req.Seats {
		if !auditorium.SeatLayout.Contains(seat.Row, seat.Number) {
			return nil, fmt.Errorf("seat %d-%d: %w", seat.Row, seat.Number, ErrInvalidSeat)
		}
	}

	booked, err := s.repo.Ticket.FindByScreeningID(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("get booked seats: %w", err)
	}
	for _, seat := range req.Seats {
		for _, ticket := range booked {
			if ticket.Seat.Row == seat.Row && ticket.Seat.Number == seat.Number {
				return nil, fmt.Errorf("seat %d-%d: %w", seat.Row, seat.Number, ErrSeatAlreadyBooked)
			}
		}
	}

	perSeat := screening.Pricing
	if req.PricingCategory == string(entity.PricingCategoryStudent) {
		perSeat = screening.Pricing * studentRate
	}
	total := perSeat * float64(len(req.Seats))

	purchases := make([]request.PendingPurchaseRequest, len(req.Seats))
	for i, seat := range req.Seats {
		purchases[i] = request.PendingPurchaseRequest{
			ScreeningID:     req.ScreeningID,
			CustomerID:      customerID.String(),
			Seat:            seat,
			PricingCategory: req.PricingCategory,
			TotalPrice:      perSeat,
		}
	}

	metadata, err := json.Marshal(purchases)
	if err != nil {
		return nil, fmt.Errorf("marshal purchases: %w", err)
	}

	session, err := s.payments.CreateCheckoutSession(ctx, payment.CheckoutSessionRequest{
		AmountTotal: int64(total * 100),
		Metadata: map[string]string{
			"purchases": string(metadata),
		},
	})
	if err != nil {
		s.log.Error("Failed to create checkout session",
			zap.Error(err),
			zap.String("screening_id", req.ScreeningID),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	s.log.Info("Checkout session created",
		zap.String("session_id", session.ID),
		zap.String("customer_id", customerID.String()),
		zap.Int("seats", len(req.Seats)),
		zap.Float64("total", total),
	)

	return &response.CheckoutSessionResponse{
		SessionID:   session.ID,
		URL:         session.URL,
		Status:      session.Status,
		AmountTotal: total,
		Currency:    s.payments.Currency(),
	}, nil
}

func (s *ticketService) GetCheckoutStatus(ctx context.Context, customerID uuid.UUID, sessionID string) (*response.CheckoutSessionResponse, error) {
	session, err := s.payments.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		s.log.Error("Failed to get checkout session",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
		return nil, fmt.Errorf("get checkout session: %w", err)
	}

	return &response.CheckoutSessionResponse{
		SessionID:   session.ID,
		Status:      session.Status,
		AmountTotal: float64(session.AmountTotal) / 100,
		Currency:    session.Currency,
	}, nil
}

// HandlePaymentEvent verifies a webhook delivery and materializes its
// batch. Signature failure rejects the whole event; once the signature is
// good every entry gets an independent chance to become a ticket.
func (s *ticketService) HandlePaymentEvent(ctx context.Context, payload []byte, signatureHeader string) (*response.TicketBatchResponse, error) {
	if err := payment.VerifySignature(payload, signatureHeader, s.webhookSecret, s.now()); err != nil {
		s.log.Warn("Rejected payment event with bad signature", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var event request.PaymentEventRequest
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: malformed event body", ErrValidation)
	}
	if errs := utils.ValidateStruct(&event); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if event.Type != request.PaymentEventCompleted {
		s.log.Info("Ignoring non-completion payment event",
			zap.String("event_id", event.ID),
			zap.String("type", event.Type),
		)
		return &response.TicketBatchResponse{
			Created:  []response.TicketResponse{},
			Failures: []response.TicketFailure{},
		}, nil
	}

	result := s.materialize(ctx, event.Purchases)

	s.log.Info("Payment event processed",
		zap.String("event_id", event.ID),
		zap.String("session_id", event.SessionID),
		zap.Int("created", len(result.Created)),
		zap.Int("failed", len(result.Failures)),
	)

	return result, nil
}

// materialize turns each confirmed purchase into a ticket. Entries fail
// independently: payment has already been captured for the whole batch, so
// one bad entry must never block its siblings. Redelivered events fall out
// as per-entry seat-already-booked failures.
func (s *ticketService) materialize(ctx context.Context, purchases []json.RawMessage) *response.TicketBatchResponse {
	result := &response.TicketBatchResponse{
		Created:  []response.TicketResponse{},
		Failures: []response.TicketFailure{},
	}

	for i, raw := range purchases {
		ticket, failReason, seat := s.materializeOne(ctx, raw)
		if ticket == nil {
			result.Failures = append(result.Failures, response.TicketFailure{
				Index:  i,
				Seat:   seat,
				Reason: failReason,
			})
			continue
		}

		result.Created = append(result.Created, response.TicketToResponse(ticket))

		// Best effort: a broker outage must not fail a paid booking.
		_ = s.events.PublishTicketCreated(ctx, queue.TicketCreatedEvent{
			TicketID:    ticket.ID,
			ScreeningID: ticket.ScreeningID,
			CustomerID:  ticket.CustomerID,
			SeatRow:     ticket.Seat.Row,
			SeatNumber:  ticket.Seat.Number,
			CreatedAt:   ticket.CreatedAt,
		})
	}

	return result
}

func (s *ticketService) materializeOne(ctx context.Context, raw json.RawMessage) (*entity.Ticket, string, *response.SeatResponse) {
	var purchase request.PendingPurchaseRequest
	if err := json.Unmarshal(raw, &purchase); err != nil {
		return nil, "malformed purchase entry", nil
	}

	seat := &response.SeatResponse{Row: purchase.Seat.Row, Number: purchase.Seat.Number}

	if errs := utils.ValidateStruct(&purchase); len(errs) > 0 {
		return nil, utils.FormatValidationErrors(errs), seat
	}

	screeningID, err := uuid.Parse(purchase.ScreeningID)
	if err != nil {
		return nil, "invalid screening id", seat
	}
	customerID, err := uuid.Parse(purchase.CustomerID)
	if err != nil {
		return nil, "invalid customer id", seat
	}

	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		s.log.Error("Failed to get screening for purchase",
			zap.Error(err),
			zap.String("screening_id", purchase.ScreeningID),
		)
		return nil, "internal error", seat
	}
	if screening == nil {
		return nil, ErrNotFound.Error(), seat
	}

	auditorium, err := s.repo.Auditorium.FindByID(ctx, screening.AuditoriumID)
	if err != nil || auditorium == nil {
		s.log.Error("Failed to get auditorium for purchase",
			zap.Error(err),
			zap.String("auditorium_id", screening.AuditoriumID.String()),
		)
		return nil, "internal error", seat
	}

	if !auditorium.SeatLayout.Contains(purchase.Seat.Row, purchase.Seat.Number) {
		return nil, ErrInvalidSeat.Error(), seat
	}

	ticket := &entity.Ticket{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		ScreeningID:     screeningID,
		CustomerID:      customerID,
		Seat:            entity.Seat{Row: purchase.Seat.Row, Number: purchase.Seat.Number},
		PricingCategory: entity.PricingCategory(purchase.PricingCategory),
	}

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrDuplicateSeat) {
			return nil, ErrSeatAlreadyBooked.Error(), seat
		}
		s.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("screening_id", purchase.ScreeningID),
			zap.Int("seat_row", purchase.Seat.Row),
			zap.Int("seat_number", purchase.Seat.Number),
		)
		return nil, "internal error", seat
	}

	return ticket, "", nil
}

func (s *ticketService) GetMyTickets(ctx context.Context, customerID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TicketResponse], error) {
	tickets, err := s.repo.Ticket.FindByCustomerID(ctx, customerID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get tickets",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("get tickets: %w", err)
	}

	total, err := s.repo.Ticket.CountByCustomerID(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to count tickets",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	ticketResponses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = response.TicketToResponse(ticket)
	}

	return response.NewPaginatedResponse(ticketResponses, req.Page, req.PerPage, total), nil
}
