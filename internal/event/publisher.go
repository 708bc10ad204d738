package event

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"

	"elearning-service/internal/models"
)

type Publisher interface {
	Publish(eventType models.EventType, payload any) error
	Close()
}

type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	enabled  bool
}

// NewEventPublisher connects to RabbitMQ and declares a durable topic
// exchange. An empty URI returns a disabled publisher so callers never have
// to nil-check.
func NewEventPublisher(amqpURL, exchange string) (*EventPublisher, error) {
	if amqpURL == "" {
		log.Println("RabbitMQ not configured, events will not be published")
		return &EventPublisher{exchange: exchange, enabled: false}, nil
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &EventPublisher{conn: conn, channel: ch, exchange: exchange, enabled: true}, nil
}

// Publish sends the payload as JSON with the event type as routing key.
func (p *EventPublisher) Publish(eventType models.EventType, payload any) error {
	if !p.enabled {
		return nil
	}

	body, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		return err
	}

	return p.channel.Publish(
		p.exchange,
		string(eventType), // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *EventPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
