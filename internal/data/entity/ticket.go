package entity

import "github.com/google/uuid"

type PricingCategory string

const (
	PricingCategoryStandard PricingCategory = "standard"
	PricingCategoryStudent  PricingCategory = "student"
)

// Seat is a 1-indexed coordinate inside an auditorium's seat layout.
type Seat struct {
	Row    int `db:"seat_row" json:"row"`
	Number int `db:"seat_number" json:"number"`
}

// Ticket is only ever created from a confirmed payment event. The pair
// (ScreeningID, Seat) is unique: the tickets table carries a composite
// unique index over (screening_id, seat_row, seat_number) which is the
// authoritative guard against double-booking.
type Ticket struct {
	BaseSimple
	ScreeningID     uuid.UUID       `db:"screening_id"`
	CustomerID      uuid.UUID       `db:"customer_id"`
	Seat            Seat
	PricingCategory PricingCategory `db:"pricing_category"`
}
