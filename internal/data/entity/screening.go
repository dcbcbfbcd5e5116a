package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningType string

const (
	// ScreeningTypeScheduled is a one-off showing on a single calendar date.
	ScreeningTypeScheduled ScreeningType = "Scheduled"
	// ScreeningTypeRecurring occupies its time slot on every date for
	// conflict purposes.
	ScreeningTypeRecurring ScreeningType = "Recurring"
)

type Screening struct {
	Base
	CinemaID     uuid.UUID     `db:"cinema_id"`
	AuditoriumID uuid.UUID     `db:"auditorium_id"`
	MovieID      uuid.UUID     `db:"movie_id"`
	ShowDate     time.Time     `db:"show_date"` // UTC midnight, no time-of-day
	StartTime    int           `db:"start_time"` // hour of day, 0-24
	Type         ScreeningType `db:"type"`
	Pricing      float64       `db:"pricing"`
	Language     string        `db:"language"`
	Subtitle     string        `db:"subtitle"`
	CreatedBy    uuid.UUID     `db:"created_by"`
}

func (s *Screening) IsRecurring() bool {
	return s.Type == ScreeningTypeRecurring
}
