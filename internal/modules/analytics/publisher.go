package analytics

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"

	"stayhub/internal/domain"
)

const defaultQueue = "analytics_events"

// AMQPPublisher forwards recorded events to a broker queue so downstream
// pipelines can consume them without touching the events table.
type AMQPPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

func NewAMQPPublisher(amqpURL, queueName string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if queueName == "" {
		queueName = defaultQueue
	}
	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPPublisher{connection: conn, channel: ch, queueName: queueName}, nil
}

func (p *AMQPPublisher) Publish(e *domain.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.channel.Publish(
		"",          // default exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.connection != nil {
		return p.connection.Close()
	}
	return nil
}
