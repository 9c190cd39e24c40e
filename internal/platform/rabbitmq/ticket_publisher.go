package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	TicketEventCreated  = "created"
	TicketEventResolved = "resolved"
)

// TicketEvent is the payload published for every help ticket lifecycle
// change, consumed by the staff notification service.
type TicketEvent struct {
	Event       string    `json:"event"`
	TicketID    uint      `json:"ticket_id"`
	StudentName string    `json:"student_name"`
	Topic       string    `json:"topic,omitempty"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type TicketPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewTicketPublisher(conn *amqp.Connection, queueName string) *TicketPublisher {
	return &TicketPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *TicketPublisher) Publish(ctx context.Context, event TicketEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal ticket event failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish ticket event failed: %w", err)
	}
	return nil
}
