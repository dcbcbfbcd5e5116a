// Package queue publishes domain events to RabbitMQ so downstream
// consumers (notifications, reporting) can react to confirmed bookings.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinema-platform/pkg/utils"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// TicketCreatedEvent is emitted once per ticket materialized from a
// confirmed payment.
type TicketCreatedEvent struct {
	TicketID    uuid.UUID `json:"ticketId"`
	ScreeningID uuid.UUID `json:"screeningId"`
	CustomerID  uuid.UUID `json:"customerId"`
	SeatRow     int       `json:"seatRow"`
	SeatNumber  int       `json:"seatNumber"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Publisher sends events to a topic exchange. A nil Publisher is valid and
// drops every event, so the broker stays optional in development.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *zap.Logger
}

// InitQueue connects to the broker and declares the event exchange.
// Returns nil without error when no broker URL is configured.
func InitQueue(config *utils.Config, logger *zap.Logger) (*Publisher, error) {
	log := logger.With(zap.String("component", "queue"))

	if config.Queue.URL == "" {
		log.Info("Message broker not configured, event publishing disabled")
		return nil, nil
	}

	conn, err := amqp.Dial(config.Queue.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to message broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open broker channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		config.Queue.Exchange,
		"topic",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info("Message broker connected", zap.String("exchange", config.Queue.Exchange))

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: config.Queue.Exchange,
		logger:   log,
	}, nil
}

// PublishTicketCreated sends a ticket.created event. Failures are logged
// and returned; callers treat publishing as best effort and never fail the
// booking over a broker error.
func (p *Publisher) PublishTicketCreated(ctx context.Context, event TicketCreatedEvent) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		"ticket.created",
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish ticket.created event",
			zap.Error(err),
			zap.String("ticket_id", event.TicketID.String()))
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
