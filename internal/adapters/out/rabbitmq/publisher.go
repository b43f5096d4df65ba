// Package rabbitmq provides the AMQP adapter for the notification relay.
// Messages are published with publisher confirms so the relay only marks an
// outbox row sent after the broker acknowledged the publish.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"laundryops/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// NotificationsExchange is the fanout exchange customer notification
	// consumers bind to.
	NotificationsExchange = "laundry.notifications"

	// notificationsQueue backs the exchange so messages survive until the
	// messaging collaborator consumes them.
	notificationsQueue = "laundry.notifications.q"
)

// notificationMessage is the wire payload consumed by the messaging
// collaborator. The id lets consumers deduplicate redelivered messages.
type notificationMessage struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	Phone      string          `json:"phone"`
	TemplateID string          `json:"template_id"`
	Params     json.RawMessage `json:"params"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Publisher implements ports.NotificationPublisher on top of an AMQP channel
// in confirm mode. Publishes are serialized with a mutex so each publish can
// be matched with its confirmation.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	acks <-chan amqp.Confirmation
	mu   sync.Mutex
}

// NewPublisher dials the broker, opens a channel in confirm mode and declares
// the notification exchange, queue and binding.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	if err = declareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch, acks: acks}, nil
}

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(
		NotificationsExchange, "fanout", true, false, false, false, nil,
	); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(notificationsQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(notificationsQueue, "", NotificationsExchange, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Publish sends one notification to the broker and waits for the confirm.
// A nil return means the broker acknowledged the message.
func (p *Publisher) Publish(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(notificationMessage{
		ID:         aggregate.ID().String(),
		OrderID:    aggregate.OrderID().String(),
		Phone:      aggregate.Phone().String(),
		TemplateID: aggregate.TemplateID(),
		Params:     json.RawMessage(aggregate.Params()),
		CreatedAt:  aggregate.CreatedAt(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification %s: %w", aggregate.ID(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(
		ctx,
		NotificationsExchange,
		"",    // routing key, ignored by fanout
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    aggregate.ID().String(),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification %s: %w", aggregate.ID(), err)
	}

	select {
	case conf := <-p.acks:
		if conf.Ack {
			return nil
		}
		return errors.New("publish nacked by broker")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ping reports whether the broker connection is still open.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
