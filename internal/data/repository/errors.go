package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateSeat is returned when an insert hits the unique index
	// over (screening_id, seat_row, seat_number). Concurrent confirmations
	// for the same seat race down to this constraint; exactly one insert
	// wins and every loser gets this error.
	ErrDuplicateSeat = errors.New("repository: seat already taken for this screening")

	// ErrDuplicateAuditorium is returned when an insert hits the unique
	// index over (cinema_id, number).
	ErrDuplicateAuditorium = errors.New("repository: auditorium number already exists in this cinema")
)

const pgUniqueViolation = "23505"

// Default Postgres names for the unique constraints the repositories map
// to domain errors. A 23505 on any other constraint (the primary key
// included) must surface as an internal failure, not a domain conflict.
const (
	constraintTicketSeat       = "tickets_screening_id_seat_row_seat_number_key"
	constraintAuditoriumNumber = "auditoriums_cinema_id_number_key"
)

// isUniqueViolation reports whether err is a Postgres duplicate-key error
// on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgUniqueViolation {
		return false
	}
	return pgErr.ConstraintName == constraint
}
