// The worker consumes campaign lifecycle events from RabbitMQ and records
// them as activity-log rows.
package main

import (
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/clientforge/agencymail-backend/internal/config"
	"github.com/clientforge/agencymail-backend/internal/db"
	"github.com/clientforge/agencymail-backend/internal/queue"
	"github.com/clientforge/agencymail-backend/internal/repository"
	"github.com/clientforge/agencymail-backend/internal/service"
)

// maxEventRetries caps how many times a failing event is put back on the
// queue before it is dropped.
const maxEventRetries = 3

// publisher is the slice of *amqp.Channel the requeue path needs.
type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	conn, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal("failed to connect to DB:", err)
	}
	defer conn.Close()

	activityService := &service.ActivityService{
		ActivityRepo: &repository.ActivityLogRepository{DB: conn},
	}

	amqpConn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		log.Fatal("failed to connect to RabbitMQ:", err)
	}
	defer amqpConn.Close()

	ch, err := amqpConn.Channel()
	if err != nil {
		log.Fatal("failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(queue.EventsTopic, true, false, false, false, nil)
	if err != nil {
		log.Fatal("failed to declare queue:", err)
	}

	msgs, err := ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		log.Fatal("failed to register consumer:", err)
	}

	log.Println("worker running, waiting for campaign events...")
	for d := range msgs {
		processDelivery(activityService, ch, d)
	}
}

// processDelivery records one event and always settles the delivery. A failed
// event is acked and republished as a copy with an incremented x-retry-count
// header; a broker redelivery keeps the original headers, so the counter only
// advances through republishing.
func processDelivery(svc *service.ActivityService, pub publisher, d amqp.Delivery) {
	var event queue.Event
	if err := json.Unmarshal(d.Body, &event); err != nil {
		log.Println("invalid event payload:", err)
		d.Ack(false)
		return
	}

	if err := svc.Record(event); err != nil {
		retries := retryCount(d.Headers)
		if retries >= maxEventRetries {
			log.Println("dropping event", event.ID, "after", retries, "retries:", err)
			d.Ack(false)
			return
		}

		log.Println("failed to record event", event.ID, ":", err)
		if err := requeue(pub, d, retries+1); err != nil {
			log.Println("failed to requeue event", event.ID, ":", err)
			d.Nack(false, true)
			return
		}
		d.Ack(false)
		return
	}

	d.Ack(false)
}

// retryCount reads the requeue counter; the amqp field table may carry it as
// any integer width.
func retryCount(headers amqp.Table) int {
	switch v := headers["x-retry-count"].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func requeue(pub publisher, d amqp.Delivery, retries int) error {
	headers := amqp.Table{}
	for k, v := range d.Headers {
		headers[k] = v
	}
	headers["x-retry-count"] = int32(retries)

	return pub.Publish("", queue.EventsTopic, false, false, amqp.Publishing{
		ContentType: d.ContentType,
		Headers:     headers,
		Body:        d.Body,
	})
}
