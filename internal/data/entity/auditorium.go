package entity

import "github.com/google/uuid"

type AuditoriumType string

const (
	AuditoriumTypeStandard AuditoriumType = "Standard"
	AuditoriumType4DX      AuditoriumType = "4dx"
	AuditoriumTypeIMAX     AuditoriumType = "IMAX"
)

// SeatLayout is the row/column capacity grid of an auditorium. Seat
// coordinates are 1-indexed: row 1..Rows, number 1..SeatsPerRow.
type SeatLayout struct {
	Rows        int `db:"layout_rows"`
	SeatsPerRow int `db:"layout_seats_per_row"`
}

// Contains reports whether the 1-indexed seat coordinate exists in the grid.
func (l SeatLayout) Contains(row, number int) bool {
	if row <= 0 || row > l.Rows {
		return false
	}
	if number <= 0 || number > l.SeatsPerRow {
		return false
	}
	return true
}

type Auditorium struct {
	Base
	CinemaID    uuid.UUID      `db:"cinema_id"`
	Number      int            `db:"number"`
	Capacity    int            `db:"capacity"`
	Type        AuditoriumType `db:"type"`
	SeatLayout  SeatLayout
	ScreenSize  string `db:"screen_size"`
	SoundSystem string `db:"sound_system"`
	Projection  string `db:"projection"`
}
