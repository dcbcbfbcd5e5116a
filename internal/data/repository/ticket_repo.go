package repository

import (
	"context"
	"fmt"

	"cinema-platform/internal/data/entity"
	"cinema-platform/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// Create inserts the ticket as a single atomic statement. The unique
	// index over (screening_id, seat_row, seat_number) is the authoritative
	// double-booking guard; a violation comes back as ErrDuplicateSeat and
	// is an expected outcome under concurrent payment confirmations, not an
	// internal failure.
	Create(ctx context.Context, ticket *entity.Ticket) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Ticket, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Ticket, error)
	CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, screening_id, customer_id, seat_row, seat_number,
		                     pricing_category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.ScreeningID,
		ticket.CustomerID,
		ticket.Seat.Row,
		ticket.Seat.Number,
		ticket.PricingCategory,
		ticket.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, constraintTicketSeat) {
			r.log.Warn("Seat already taken",
				zap.String("screening_id", ticket.ScreeningID.String()),
				zap.Int("row", ticket.Seat.Row),
				zap.Int("number", ticket.Seat.Number),
			)
			return ErrDuplicateSeat
		}
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("screening_id", ticket.ScreeningID.String()),
			zap.String("customer_id", ticket.CustomerID.String()),
		)
		return fmt.Errorf("create ticket for screening %s seat %d-%d: %w",
			ticket.ScreeningID.String(), ticket.Seat.Row, ticket.Seat.Number, err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		SELECT id, screening_id, customer_id, seat_row, seat_number, pricing_category, created_at
		FROM tickets
		WHERE id = $1
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ScreeningID,
		&ticket.CustomerID,
		&ticket.Seat.Row,
		&ticket.Seat.Number,
		&ticket.PricingCategory,
		&ticket.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, screening_id, customer_id, seat_row, seat_number, pricing_category, created_at
		FROM tickets
		WHERE screening_id = $1
		ORDER BY seat_row, seat_number
	`

	return r.queryTickets(ctx, query, screeningID)
}

func (r *ticketRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Ticket, error) {
	query := `
		SELECT id, screening_id, customer_id, seat_row, seat_number, pricing_category, created_at
		FROM tickets
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryTickets(ctx, query, customerID, limit, offset)
}

func (r *ticketRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tickets WHERE customer_id = $1`, customerID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count tickets", zap.Error(err))
		return 0, fmt.Errorf("count tickets for customer %s: %w", customerID.String(), err)
	}

	return total, nil
}

func (r *ticketRepository) queryTickets(ctx context.Context, query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find tickets", zap.Error(err))
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.ScreeningID,
			&ticket.CustomerID,
			&ticket.Seat.Row,
			&ticket.Seat.Number,
			&ticket.PricingCategory,
			&ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tickets WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return fmt.Errorf("delete ticket %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", id.String())
	}

	r.log.Info("Ticket deleted", zap.String("ticket_id", id.String()))
	return nil
}
