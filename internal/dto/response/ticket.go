package response

import (
	"time"

	"cinema-platform/internal/data/entity"
)

type SeatResponse struct {
	Row    int `json:"row"`
	Number int `json:"number"`
}

type TicketResponse struct {
	ID              string       `json:"id"`
	ScreeningID     string       `json:"screening_id"`
	CustomerID      string       `json:"customer_id"`
	Seat            SeatResponse `json:"seat"`
	PricingCategory string       `json:"pricing_category"`
	CreatedAt       time.Time    `json:"created_at,omitempty"`
}

type CheckoutSessionResponse struct {
	SessionID   string  `json:"session_id"`
	URL         string  `json:"url,omitempty"`
	Status      string  `json:"status"`
	AmountTotal float64 `json:"amount_total"`
	Currency    string  `json:"currency"`
}

// TicketFailure records why one entry of a confirmation batch did not
// materialize. Index refers to the entry's position in the delivered batch
// so the caller can reconcile it out of band.
type TicketFailure struct {
	Index  int           `json:"index"`
	Seat   *SeatResponse `json:"seat,omitempty"`
	Reason string        `json:"reason"`
}

// TicketBatchResponse is the outcome of materializing one confirmation
// event: every entry is accounted for, either as a created ticket or as a
// failure with its reason.
type TicketBatchResponse struct {
	Created  []TicketResponse `json:"created"`
	Failures []TicketFailure  `json:"failures"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID.String(),
		ScreeningID: ticket.ScreeningID.String(),
		CustomerID:  ticket.CustomerID.String(),
		Seat: SeatResponse{
			Row:    ticket.Seat.Row,
			Number: ticket.Seat.Number,
		},
		PricingCategory: string(ticket.PricingCategory),
		CreatedAt:       ticket.CreatedAt,
	}
}
