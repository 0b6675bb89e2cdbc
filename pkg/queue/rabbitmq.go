package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"content-ledger/pkg/config"
	"content-ledger/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	LedgerEventsQueueName = "ledger_events_queue"
	LedgerEventsExchange  = "ledger_events"
	LedgerBindingKey      = "ledger.#"
)

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Topic exchange: routing keys are the ledger event types
	err = channel.ExchangeDeclare(
		LedgerEventsExchange, // name
		"topic",              // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		LedgerEventsQueueName, // name
		true,                  // durable
		false,                 // delete when unused
		false,                 // exclusive
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		LedgerEventsQueueName, // queue name
		LedgerBindingKey,      // routing key
		LedgerEventsExchange,  // exchange
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishEvent publishes a committed ledger event. The routing key is the
// event type, e.g. "ledger.purchase.settled".
func (c *Client) PublishEvent(routingKey string, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		LedgerEventsExchange, // exchange
		routingKey,           // routing key
		false,                // mandatory
		false,                // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         routingKey,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish message to exchange=%s, routing_key=%s: %v", LedgerEventsExchange, routingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published ledger event to exchange=%s, routing_key=%s: %s", LedgerEventsExchange, routingKey, string(body))
	return nil
}

// ConsumeEvents delivers ledger events to handler, acking on success and
// requeueing on handler failure.
func (c *Client) ConsumeEvents(handler func(routingKey string, payload map[string]string) error) error {
	msgs, err := c.channel.Consume(
		LedgerEventsQueueName, // queue
		"",                    // consumer
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from ledger queue: %s", LedgerEventsQueueName)

	go func() {
		for msg := range msgs {
			var payload map[string]string
			if err := json.Unmarshal(msg.Body, &payload); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal ledger event: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false)
				continue
			}

			if err := handler(msg.RoutingKey, payload); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed to process ledger event %s: %v", msg.RoutingKey, err)
				msg.Nack(false, true)
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}

// GetQueueLength returns the number of messages in the queue
func (c *Client) GetQueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(LedgerEventsQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
