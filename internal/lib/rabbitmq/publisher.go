package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// EventPublisher publishes JSON events to a fixed exchange over one
// channel.
type EventPublisher struct {
	ch       *amqp.Channel
	exchange string
}

// NewEventPublisher creates a publisher bound to the given channel and
// exchange.
func NewEventPublisher(ch *amqp.Channel, exchange string) *EventPublisher {
	return &EventPublisher{ch: ch, exchange: exchange}
}

// Publish sends a message with the given routing key.
func (p *EventPublisher) Publish(routingKey string, message any) error {
	return PublishMessage(p.ch, p.exchange, routingKey, message)
}

// PublishMessage publishes a JSON-encoded message to the given exchange.
func PublishMessage(ch *amqp.Channel, exchange string, routingkey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
