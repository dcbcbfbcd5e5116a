package repository

import (
	"cinema-platform/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Cinema     CinemaRepository
	Auditorium AuditoriumRepository
	Movie      MovieRepository
	Screening  ScreeningRepository
	Ticket     TicketRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Cinema:     NewCinemaRepository(db, log),
		Auditorium: NewAuditoriumRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		Screening:  NewScreeningRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
	}
}
