package queue

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// RabbitQueue publishes payloads as JSON to durable RabbitMQ queues. The
// connection is created once and owned by the caller; consumption happens in
// the worker binary.
type RabbitQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitQueue(url string) (*RabbitQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open RabbitMQ channel: %w", err)
	}

	return &RabbitQueue{conn: conn, ch: ch}, nil
}

func (q *RabbitQueue) Publish(topic string, payload any) error {
	if _, err := q.ch.QueueDeclare(topic, true, false, false, false, nil); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return q.ch.Publish("", topic, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// Subscribe is not supported on the publisher side; the worker consumes
// directly from the channel.
func (q *RabbitQueue) Subscribe(topic string, handler func(payload any) error) error {
	return fmt.Errorf("subscribe not supported on publisher; run the worker binary")
}

func (q *RabbitQueue) Close() error {
	q.ch.Close()
	return q.conn.Close()
}

var _ Queue = (*RabbitQueue)(nil)
