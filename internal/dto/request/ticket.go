package request

import "encoding/json"

type SeatRequest struct {
	Row    int `json:"row" validate:"required,min=1"`
	Number int `json:"number" validate:"required,min=1"`
}

// CheckoutRequest starts a payment for one or more seats of a screening.
// No ticket is written here; tickets materialize from the confirmation
// webhook.
type CheckoutRequest struct {
	ScreeningID     string        `json:"screening_id" validate:"required,uuid4"`
	Seats           []SeatRequest `json:"seats" validate:"required,min=1,max=10,dive"`
	PricingCategory string        `json:"pricing_category" validate:"required,oneof=standard student"`
}

// PendingPurchaseRequest is one seat of a paid checkout batch, echoed back
// by the payment processor inside the confirmation event.
type PendingPurchaseRequest struct {
	ScreeningID     string      `json:"screening_id" validate:"required,uuid4"`
	CustomerID      string      `json:"customer_id" validate:"required,uuid4"`
	Seat            SeatRequest `json:"seat"`
	PricingCategory string      `json:"pricing_category" validate:"required,oneof=standard student"`
	TotalPrice      float64     `json:"total_price" validate:"required,gt=0"`
}

// PaymentEventRequest is the signed webhook body. Purchases stay raw here
// so one malformed entry can fail on its own during materialization
// without poisoning the rest of the batch.
type PaymentEventRequest struct {
	ID        string            `json:"id" validate:"required"`
	Type      string            `json:"type" validate:"required"`
	SessionID string            `json:"session_id" validate:"required"`
	Purchases []json.RawMessage `json:"purchases" validate:"required,min=1"`
}

const (
	PaymentEventCompleted = "checkout.session.completed"
	PaymentEventFailed    = "checkout.session.failed"
)
